package bezier2d

// autoSetAnchor places the two handles of the anchor at index i on the line
// through i that is parallel to the direction between its neighbouring
// anchors. Each handle lies half the distance to its neighbour away from the
// anchor. Open path endpoints only consider their one neighbour.
func (p *Path) autoSetAnchor(i int) {
	n := len(p.points)
	anchor := p.points[i]
	var dir Vec2
	var dists [2]float64
	if i-3 >= 0 || p.closed {
		off := p.points[p.loopIndex(i-3)].Sub(anchor)
		dir = dir.Add(off.NormalizeOrZero())
		dists[0] = off.Hypot()
	}
	if i+3 < n || p.closed {
		off := p.points[p.loopIndex(i+3)].Sub(anchor)
		dir = dir.Sub(off.NormalizeOrZero())
		dists[1] = -off.Hypot()
	}
	dir = dir.NormalizeOrZero()

	for k, dist := range dists {
		h := i + k*2 - 1
		if (h >= 0 && h < n) || p.closed {
			p.points[p.loopIndex(h)] = anchor.Translate(dir.Mul(dist * 0.5))
		}
	}
}

// autoSetStartAndEnd pulls the outer handles of an open path onto the midpoint
// between their anchor and the next handle inward, so the ends don't
// overshoot.
func (p *Path) autoSetStartAndEnd() {
	if p.closed {
		return
	}
	n := len(p.points)
	p.points[1] = p.points[0].Midpoint(p.points[2])
	p.points[n-2] = p.points[n-1].Midpoint(p.points[n-3])
}

func (p *Path) autoSetAll() {
	for i := 0; i < len(p.points); i += 3 {
		p.autoSetAnchor(i)
	}
	p.autoSetStartAndEnd()
}

// autoSetAffected recomputes the handles of anchor i and of its two
// neighbouring anchors.
func (p *Path) autoSetAffected(i int) {
	n := len(p.points)
	for j := i - 3; j <= i+3; j += 3 {
		if (j >= 0 && j < n) || p.closed {
			p.autoSetAnchor(p.loopIndex(j))
		}
	}
	p.autoSetStartAndEnd()
}
