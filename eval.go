package bezier2d

// EvalQuadratic evaluates the quadratic Bézier curve with control points a, b
// and c at t, using de Casteljau's algorithm.
//
// t is not clamped; values outside [0, 1] extrapolate the curve.
func EvalQuadratic(a, b, c Point, t float64) Point {
	p0 := a.Lerp(b, t)
	p1 := b.Lerp(c, t)
	return p0.Lerp(p1, t)
}

// EvalCubic evaluates the cubic Bézier curve with control points a, b, c and d
// at t, reducing it to two quadratic evaluations.
//
// EvalCubic(a, b, c, d, 0) is exactly a and EvalCubic(a, b, c, d, 1) is
// exactly d for finite inputs. Like [EvalQuadratic], t is not clamped.
func EvalCubic(a, b, c, d Point, t float64) Point {
	p0 := EvalQuadratic(a, b, c, t)
	p1 := EvalQuadratic(b, c, d, t)
	return p0.Lerp(p1, t)
}
