package bezier2d

import "math"

// NearestPoint returns the index of the stored point closest to pt, if any
// lies within radius. A negative or NaN radius matches nothing. When an anchor
// and a handle are equally close, the anchor wins, as anchors are what users
// usually mean to grab.
func (p *Path) NearestPoint(pt Point, radius float64) (int, bool) {
	if !(radius >= 0) {
		return -1, false
	}
	best := -1
	bestD := radius * radius
	for i, q := range p.points {
		d := q.DistanceSquared(pt)
		switch {
		case d > bestD:
		case best == -1, d < bestD:
			best, bestD = i, d
		case i%3 == 0 && best%3 != 0:
			best = i
		}
	}
	return best, best != -1
}

// NearestSegment finds the segment passing closest to pt. It returns the
// segment index, the curve parameter of the closest point on that segment
// and the squared distance. Hosts use it to pick the segment to split when
// inserting an anchor.
func (p *Path) NearestSegment(pt Point, accuracy float64) (segment int, t, distSq float64) {
	distSq = math.Inf(1)
	i := 0
	for c := range p.Segments() {
		d, ct := c.Nearest(pt, accuracy)
		if d < distSq {
			segment, t, distSq = i, ct, d
		}
		i++
	}
	return segment, t, distSq
}
