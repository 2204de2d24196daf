package bezier2d

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0).Translate(Vec(-10, 0)), Pt(-10, 0))
	diff(t, Pt(3, 4).Sub(Pt(1, 1)), Vec(2, 3))
	diff(t, Pt(1, 2).Mirror(Pt(3, 3)), Pt(5, 4))
	diff(t, Pt(-1, 0).Midpoint(Pt(1, 4)), Pt(0, 2))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
	if d := p3.DistanceSquared(p4); d != 25 {
		t.Errorf("got squared distance %v, want 25", d)
	}
}

func TestPointLerpEndpoints(t *testing.T) {
	a := Pt(0.1, -7.3)
	b := Pt(1e8/3, math.Pi)
	if got := a.Lerp(b, 0); got != a {
		t.Errorf("got %s at t=0, want %s", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("got %s at t=1, want %s", got, b)
	}
	assertNear(t, Pt(0, 0).Lerp(Pt(2, 4), 0.5), Pt(1, 2), 1e-15)
	// Extrapolation is allowed.
	assertNear(t, Pt(0, 0).Lerp(Pt(2, 4), 2), Pt(4, 8), 1e-15)
}

func TestVecNormalizeOrZero(t *testing.T) {
	diff(t, Vec(0, 0).NormalizeOrZero(), Vec(0, 0))
	diff(t, Vec(3, 4).NormalizeOrZero(), Vec(0.6, 0.8), approx(1e-15))
	if c := Vec(1, 0).Cross(Vec(0, 1)); c != 1 {
		t.Errorf("got cross product %v, want 1", c)
	}
}

func TestPointIsFinite(t *testing.T) {
	if !Pt(math.NaN(), 0).IsNaN() {
		t.Error("NaN point not reported as NaN")
	}
	if !Pt(0, math.Inf(-1)).IsInf() {
		t.Error("infinite point not reported as infinite")
	}
	if p := Pt(1, 2); p.IsNaN() || p.IsInf() {
		t.Errorf("%s reported as non-finite", p)
	}
}
