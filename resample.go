package bezier2d

import (
	"fmt"
	"iter"
	"math"
	"slices"
)

const (
	// maxDivisions bounds the number of evaluation steps per segment.
	maxDivisions = 1 << 20
	// maxSamples bounds the number of points EvenlySpacedPoints returns.
	maxSamples = 1 << 24
)

// EvenlySpacedPoints walks the path and returns points that are spacing apart,
// measured along a fine polyline approximation of the curve. The first point is
// the first anchor; the walk doesn't append the final anchor unless it happens
// to fall on the spacing.
//
// Each segment is evaluated in ceil(L·resolution·10) equal parameter steps,
// where L is [CubicBez.EstimatedLength]. Higher resolutions give more accurate
// spacing at proportional cost.
//
// It returns an error matching [ErrInvalidArgument] if spacing or resolution is
// not a positive finite number, if the path contains non-finite points, or if
// the path is so long relative to spacing that more than 2²⁴ points could
// result.
func (p *Path) EvenlySpacedPoints(spacing, resolution float64) ([]Point, error) {
	if !(spacing > 0) || math.IsInf(spacing, 0) {
		return nil, fmt.Errorf("evenly spaced points: spacing %g: %w", spacing, ErrInvalidArgument)
	}
	if !(resolution > 0) || math.IsInf(resolution, 0) {
		return nil, fmt.Errorf("evenly spaced points: resolution %g: %w", resolution, ErrInvalidArgument)
	}
	for i, pt := range p.points {
		if pt.IsNaN() || pt.IsInf() {
			return nil, fmt.Errorf("evenly spaced points: point %d is %s: %w", i, pt, ErrInvalidArgument)
		}
	}
	// The polyline walked below is never longer than the control polygons.
	var net float64
	for c := range p.Segments() {
		net += c.ControlNetLength()
	}
	if !(net/spacing <= maxSamples) {
		return nil, fmt.Errorf("evenly spaced points: spacing %g too small for path of length up to %g: %w", spacing, net, ErrInvalidArgument)
	}
	Logger().Debug("resampling path",
		"spacing", spacing,
		"resolution", resolution,
		"segments", p.SegmentCount())
	return slices.Collect(p.evenlySpaced(spacing, resolution)), nil
}

// EstimatedSegmentLength returns the cheap length estimate that
// [Path.EvenlySpacedPoints] uses to choose its step size.
func (p *Path) EstimatedSegmentLength(segment int) (float64, error) {
	c, err := p.Segment(segment)
	if err != nil {
		return 0, err
	}
	return c.EstimatedLength(), nil
}

func (p *Path) evenlySpaced(spacing, resolution float64) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		prev := p.points[0]
		if !yield(prev) {
			return
		}
		// Distance travelled since the last emitted point.
		var dist float64
		emitted := 1
		for c := range p.Segments() {
			divisions := int(min(math.Ceil(c.EstimatedLength()*resolution*10), maxDivisions))
			divisions = max(divisions, 1)
			for k := 1; k <= divisions; k++ {
				pt := c.Eval(float64(k) / float64(divisions))
				dist += prev.Distance(pt)
				for dist >= spacing {
					overshoot := dist - spacing
					if overshoot == dist || emitted >= maxSamples {
						// Either spacing is below the precision of dist and
						// the walk can't advance, or the sample limit is hit.
						return
					}
					even := pt.Translate(prev.Sub(pt).NormalizeOrZero().Mul(overshoot))
					if !yield(even) {
						return
					}
					dist = overshoot
					prev = even
					emitted++
				}
				prev = pt
			}
		}
	}
}
