package bezier2d

var _ ParametricCurve = QuadBez{}

type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

func (q QuadBez) Eval(t float64) Point {
	return EvalQuadratic(q.P0, q.P1, q.P2, t)
}

func (q QuadBez) Start() Point {
	return q.P0
}

func (q QuadBez) End() Point {
	return q.P2
}

func (q QuadBez) Differentiate() Line {
	return Line{
		Point(q.P1.Sub(q.P0).Mul(2)),
		Point(q.P2.Sub(q.P1).Mul(2)),
	}
}

// Extrema reports the parameters at which either coordinate of the curve
// has a local extremum.
func (q QuadBez) Extrema() ([MaxExtrema]float64, int) {
	// The derivative of a quadratic is a line; its roots are the extrema.
	var out [MaxExtrema]float64
	var outN int
	d0 := q.P1.Sub(q.P0)
	d1 := q.P2.Sub(q.P1)
	dd := d1.Sub(d0)
	if dd.X != 0.0 {
		t := -d0.X / dd.X
		if t > 0.0 && t < 1.0 {
			out[outN] = t
			outN++
		}
	}
	if dd.Y != 0 {
		t := -d0.Y / dd.Y
		if t > 0.0 && t < 1.0 {
			out[outN] = t
			outN++
		}
	}
	if outN == 2 && out[1] < out[0] {
		out[0], out[1] = out[1], out[0]
	}
	return out, outN
}

func (q QuadBez) BoundingBox() Rect {
	return BoundingBox(q)
}
