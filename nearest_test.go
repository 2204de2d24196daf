package bezier2d

import (
	"math"
	"testing"
)

func TestNearestPoint(t *testing.T) {
	p := NewPath(Pt(0, 0))
	p.AddSegment(Pt(3, 0))

	if i, ok := p.NearestPoint(Pt(1.05, 0), 0.2); !ok || i != 3 {
		t.Errorf("got (%d, %t), want (3, true)", i, ok)
	}
	if i, ok := p.NearestPoint(Pt(1.4, 0.45), 0.2); !ok || i != 4 {
		t.Errorf("got (%d, %t), want (4, true)", i, ok)
	}
	if _, ok := p.NearestPoint(Pt(10, 10), 1); ok {
		t.Error("found a point outside the radius")
	}
	for _, radius := range []float64{-1, math.NaN()} {
		if i, ok := p.NearestPoint(Pt(-1, 0), radius); ok || i != -1 {
			t.Errorf("radius %v: got (%d, %t), want (-1, false)", radius, i, ok)
		}
	}
	// A zero radius still matches exact hits.
	if i, ok := p.NearestPoint(Pt(3, 0), 0); !ok || i != 6 {
		t.Errorf("got (%d, %t), want (6, true)", i, ok)
	}
}

func TestNearestPointPrefersAnchors(t *testing.T) {
	// Handle 2 sits exactly on anchor 3.
	p := mustPath(t, []Point{Pt(0, 0), Pt(1, 1), Pt(3, 0), Pt(3, 0)}, false, false)
	if i, ok := p.NearestPoint(Pt(3, 0.1), 1); !ok || i != 3 {
		t.Errorf("got (%d, %t), want (3, true)", i, ok)
	}
}

func TestNearestSegment(t *testing.T) {
	p := mustPath(t, []Point{
		Pt(0, 0), Pt(3, 0), Pt(7, 0),
		Pt(10, 0), Pt(10, 3), Pt(10, 7),
		Pt(10, 10),
	}, false, false)

	seg, ts, distSq := p.NearestSegment(Pt(5, 1), 1e-9)
	if seg != 0 || math.Abs(ts-0.5) > 1e-6 || math.Abs(distSq-1) > 1e-6 {
		t.Errorf("got (%d, %v, %v), want (0, 0.5, 1)", seg, ts, distSq)
	}

	seg, ts, distSq = p.NearestSegment(Pt(11, 5), 1e-9)
	if seg != 1 || math.Abs(ts-0.5) > 1e-6 || math.Abs(distSq-1) > 1e-6 {
		t.Errorf("got (%d, %v, %v), want (1, 0.5, 1)", seg, ts, distSq)
	}
}
