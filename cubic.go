package bezier2d

import (
	"math"
	"sort"
)

var _ ParametricCurve = CubicBez{}

// CubicBez is a single cubic Bézier segment. In a [Path], P0 and P3 are
// anchors and P1 and P2 are the handles between them.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

func (c CubicBez) Eval(t float64) Point {
	return EvalCubic(c.P0, c.P1, c.P2, c.P3, t)
}

func (c CubicBez) Start() Point {
	return c.P0
}

func (c CubicBez) End() Point {
	return c.P3
}

// Points returns the four control points in order.
func (c CubicBez) Points() [4]Point {
	return [4]Point{c.P0, c.P1, c.P2, c.P3}
}

func (c CubicBez) Differentiate() QuadBez {
	return QuadBez{
		Point(c.P1.Sub(c.P0).Mul(3)),
		Point(c.P2.Sub(c.P1).Mul(3)),
		Point(c.P3.Sub(c.P2).Mul(3)),
	}
}

// Extrema reports the parameters at which either coordinate of the curve
// has a local extremum, in increasing order.
func (c CubicBez) Extrema() ([MaxExtrema]float64, int) {
	// two calls to oneCoord, up to 2 roots per call, for a total of 4 possible values.
	var out [MaxExtrema]float64
	var outN int
	oneCoord := func(d0, d1, d2 float64) {
		a := d0 - 2*d1 + d2
		b := 2 * (d1 - d0)
		c := d0
		roots, n := SolveQuadratic(c, b, a)
		for _, t := range roots[:n] {
			if t > 0.0 && t < 1.0 {
				out[outN] = t
				outN++
			}
		}
	}

	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)
	oneCoord(d0.X, d1.X, d2.X)
	oneCoord(d0.Y, d1.Y, d2.Y)
	sort.Float64s(out[:outN])
	return out, outN
}

func (c CubicBez) BoundingBox() Rect {
	return BoundingBox(c)
}

// ControlNetLength returns the summed length of the three control polygon
// edges. It is an upper bound of the curve's arc length.
func (c CubicBez) ControlNetLength() float64 {
	return c.P0.Distance(c.P1) + c.P1.Distance(c.P2) + c.P2.Distance(c.P3)
}

// EstimatedLength cheaply estimates the arc length as the chord length plus
// half the control net length. It is not exact; it is meant for choosing step
// sizes.
func (c CubicBez) EstimatedLength() float64 {
	return c.P0.Distance(c.P3) + c.ControlNetLength()/2
}

func (c CubicBez) Transform(aff Affine) CubicBez {
	return CubicBez{
		P0: c.P0.Transform(aff),
		P1: c.P1.Transform(aff),
		P2: c.P2.Transform(aff),
		P3: c.P3.Transform(aff),
	}
}

// Nearest finds the point on the curve nearest to pt. It returns the squared
// distance and the curve parameter of that point.
//
// The curve is first sampled as a polyline, then the best span is refined
// until it is shorter than accuracy in parameter space.
func (c CubicBez) Nearest(pt Point, accuracy float64) (distSq, t float64) {
	const coarse = 32
	if accuracy <= 0 {
		accuracy = DefaultAccuracy
	}

	bestD := math.Inf(1)
	bestT := 0.0
	prev := c.P0
	for i := 1; i <= coarse; i++ {
		t1 := float64(i) / coarse
		p := c.Eval(t1)
		d, lt := Line{prev, p}.Nearest(pt)
		if d < bestD {
			bestD = d
			bestT = (float64(i-1) + lt) / coarse
		}
		prev = p
	}

	// Shrink a bracket around bestT, keeping the better of the two samples.
	lo := max(bestT-1.0/coarse, 0)
	hi := min(bestT+1.0/coarse, 1)
	for hi-lo > accuracy {
		m1 := lo + (hi-lo)/3
		m2 := hi - (hi-lo)/3
		if c.Eval(m1).DistanceSquared(pt) < c.Eval(m2).DistanceSquared(pt) {
			hi = m2
		} else {
			lo = m1
		}
	}
	t = (lo + hi) / 2
	return c.Eval(t).DistanceSquared(pt), t
}
