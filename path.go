package bezier2d

import (
	"fmt"
	"iter"
	"slices"
)

// Path is an editable sequence of cubic Bézier segments.
//
// Points are stored flat, in groups of anchor, outgoing handle and incoming
// handle of the next anchor. An open path holds 3n+1 points for n segments, a
// closed path 3n. Anchor positions are authoritative; handles are stored
// explicitly even when they are derived automatically.
//
// The zero value is not usable; create paths with [NewPath] or
// [NewPathFromPoints].
type Path struct {
	points  []Point
	closed  bool
	autoSet bool
	policy  EditPolicy
}

// NewPath returns an open, one segment path centered at center, running from
// center − ⟨1, 0⟩ to center + ⟨1, 0⟩ with handles at ⟨−½, ½⟩ and ⟨½, −½⟩
// relative to center. Automatic control points are disabled.
func NewPath(center Point) *Path {
	return &Path{
		points: []Point{
			center.Translate(Vec(-1, 0)),
			center.Translate(Vec(-0.5, 0.5)),
			center.Translate(Vec(0.5, -0.5)),
			center.Translate(Vec(1, 0)),
		},
	}
}

// NewPathFromPoints rebuilds a path from its persisted state. The points are
// copied and used as is; in particular, handles are not recomputed even if
// autoSet is true.
//
// It returns an error matching [ErrInvalidLayout] if the number of points
// doesn't describe at least one open or two closed segments.
func NewPathFromPoints(points []Point, closed, autoSet bool) (*Path, error) {
	if !validLayout(len(points), closed) {
		return nil, fmt.Errorf("%d points for a path with closed=%t: %w", len(points), closed, ErrInvalidLayout)
	}
	return &Path{
		points:  slices.Clone(points),
		closed:  closed,
		autoSet: autoSet,
	}, nil
}

func validLayout(n int, closed bool) bool {
	if closed {
		return n >= 6 && n%3 == 0
	}
	return n >= 4 && (n-1)%3 == 0
}

// Clone returns an independent copy of p, including its edit policy.
func (p *Path) Clone() *Path {
	q := *p
	q.points = slices.Clone(p.points)
	return &q
}

// PointCount returns the number of stored points, anchors and handles alike.
func (p *Path) PointCount() int { return len(p.points) }

// SegmentCount returns the number of cubic segments.
func (p *Path) SegmentCount() int { return len(p.points) / 3 }

// AnchorCount returns the number of anchors.
func (p *Path) AnchorCount() int {
	if p.closed {
		return len(p.points) / 3
	}
	return len(p.points)/3 + 1
}

func (p *Path) IsClosed() bool { return p.closed }

func (p *Path) AutoSetControlPoints() bool { return p.autoSet }

func (p *Path) EditPolicy() EditPolicy { return p.policy }

// SetEditPolicy sets how edits that cannot be performed are reported.
func (p *Path) SetEditPolicy(policy EditPolicy) { p.policy = policy }

// IsAnchor reports whether i is the index of an anchor.
func (p *Path) IsAnchor(i int) bool {
	return i >= 0 && i < len(p.points) && i%3 == 0
}

// Point returns the point at index i.
func (p *Path) Point(i int) (Point, error) {
	if i < 0 || i >= len(p.points) {
		return Point{}, &IndexError{Op: "point", Kind: "point", Index: i, Len: len(p.points)}
	}
	return p.points[i], nil
}

// Points returns a copy of all stored points.
func (p *Path) Points() []Point {
	return slices.Clone(p.points)
}

// All returns an iterator over indices and points.
func (p *Path) All() iter.Seq2[int, Point] {
	return slices.All(p.points)
}

// PointsInSegment returns the anchor, handle, handle, anchor quadruple of a
// segment. For the last segment of a closed path, the final point is anchor 0.
func (p *Path) PointsInSegment(segment int) ([4]Point, error) {
	c, err := p.Segment(segment)
	if err != nil {
		return [4]Point{}, err
	}
	return c.Points(), nil
}

// Segment returns a segment as a cubic Bézier.
func (p *Path) Segment(segment int) (CubicBez, error) {
	if segment < 0 || segment >= p.SegmentCount() {
		return CubicBez{}, &IndexError{Op: "segment", Kind: "segment", Index: segment, Len: p.SegmentCount()}
	}
	return p.segment(segment), nil
}

func (p *Path) segment(i int) CubicBez {
	off := i * 3
	return CubicBez{p.points[off], p.points[off+1], p.points[off+2], p.points[p.loopIndex(off+3)]}
}

// Segments returns an iterator over all segments.
func (p *Path) Segments() iter.Seq[CubicBez] {
	return func(yield func(CubicBez) bool) {
		for i := range p.SegmentCount() {
			if !yield(p.segment(i)) {
				return
			}
		}
	}
}

// AddSegment appends a segment ending in anchor. The first new handle mirrors
// the last anchor's incoming handle, the second sits halfway between the first
// and anchor; with automatic control points both are recomputed.
//
// Closed paths cannot grow this way; see [EditPolicy].
func (p *Path) AddSegment(anchor Point) error {
	if p.closed {
		return p.invalid("add segment", "path is closed")
	}
	n := len(p.points)
	h := p.points[n-2].Mirror(p.points[n-1])
	p.points = append(p.points, h, h.Midpoint(anchor), anchor)
	if p.autoSet {
		p.autoSetAffected(len(p.points) - 1)
	}
	return nil
}

// MovePoint moves the point at index i to pos.
//
// With automatic control points, only anchors can be moved; moving a handle
// leaves it where the automatic rule puts it. Otherwise, moving an anchor drags
// its handles along, and moving a handle rotates the opposite handle of the
// same anchor so the tangent stays continuous, keeping that handle's distance
// to the anchor.
func (p *Path) MovePoint(i int, pos Point) error {
	n := len(p.points)
	if i < 0 || i >= n {
		return &IndexError{Op: "move point", Kind: "point", Index: i, Len: n}
	}

	if p.autoSet {
		if i%3 == 0 {
			p.points[i] = pos
			p.autoSetAffected(i)
		} else {
			p.autoSetAffected(p.owningAnchor(i))
		}
		return nil
	}

	delta := pos.Sub(p.points[i])
	p.points[i] = pos

	if i%3 == 0 {
		if i+1 < n || p.closed {
			j := p.loopIndex(i + 1)
			p.points[j] = p.points[j].Translate(delta)
		}
		if i-1 >= 0 || p.closed {
			j := p.loopIndex(i - 1)
			p.points[j] = p.points[j].Translate(delta)
		}
		return nil
	}

	anchor, opposite := i-1, i-2
	if (i+1)%3 == 0 {
		anchor, opposite = i+1, i+2
	}
	if (opposite >= 0 && opposite < n) || p.closed {
		anchor = p.loopIndex(anchor)
		opposite = p.loopIndex(opposite)
		a := p.points[anchor]
		dst := a.Distance(p.points[opposite])
		dir := a.Sub(pos).NormalizeOrZero()
		p.points[opposite] = a.Translate(dir.Mul(dst))
	}
	return nil
}

// ToggleClosed closes an open path or opens a closed one.
//
// Closing appends a handle mirroring the last anchor's incoming handle and one
// mirroring the first anchor's outgoing handle. Opening removes those two
// handles again.
func (p *Path) ToggleClosed() {
	p.closed = !p.closed
	n := len(p.points)
	if p.closed {
		p.points = append(p.points,
			p.points[n-2].Mirror(p.points[n-1]),
			p.points[1].Mirror(p.points[0]))
		if p.autoSet {
			p.autoSetAnchor(0)
			p.autoSetAnchor(len(p.points) - 3)
		}
	} else {
		p.points = p.points[:n-2]
		if p.autoSet {
			p.autoSetStartAndEnd()
		}
	}
}

// SetClosed opens or closes the path. It does nothing if the path already is
// in the requested state.
func (p *Path) SetClosed(closed bool) {
	if closed != p.closed {
		p.ToggleClosed()
	}
}

// SetAutoSetControlPoints enables or disables automatic control points.
// Enabling recomputes every handle.
func (p *Path) SetAutoSetControlPoints(on bool) {
	if on == p.autoSet {
		return
	}
	p.autoSet = on
	if on {
		p.autoSetAll()
	}
}

func (p *Path) ToggleAutoSetControlPoints() {
	p.SetAutoSetControlPoints(!p.autoSet)
}

// SplitSegment splits a segment in two by inserting a new anchor at pos. The
// handles around the new anchor are computed with the automatic rule, even
// when automatic control points are disabled.
func (p *Path) SplitSegment(pos Point, segment int) error {
	if segment < 0 || segment >= p.SegmentCount() {
		return &IndexError{Op: "split segment", Kind: "segment", Index: segment, Len: p.SegmentCount()}
	}
	p.points = slices.Insert(p.points, segment*3+2, Point{}, pos, Point{})
	anchor := segment*3 + 3
	if p.autoSet {
		p.autoSetAffected(anchor)
	} else {
		p.autoSetAnchor(anchor)
	}
	return nil
}

// DeleteSegment removes the anchor at anchorIndex together with its two
// handles, merging the segments on either side.
//
// Open paths keep at least one segment and closed paths at least two; deleting
// beyond that is an invalid operation (see [EditPolicy]).
func (p *Path) DeleteSegment(anchorIndex int) error {
	n := len(p.points)
	if !p.IsAnchor(anchorIndex) {
		return &IndexError{Op: "delete segment", Kind: "anchor", Index: anchorIndex, Len: n}
	}
	if segs := p.SegmentCount(); !(segs > 2 || (!p.closed && segs > 1)) {
		return p.invalid("delete segment", "path has the minimum number of segments")
	}

	// next is the anchor that takes the removed anchor's place.
	var next int
	switch {
	case anchorIndex == 0:
		if p.closed {
			// The closing segment now ends in the old second anchor.
			p.points[n-1] = p.points[2]
		}
		p.points = slices.Delete(p.points, 0, 3)
	case anchorIndex == n-1 && !p.closed:
		p.points = slices.Delete(p.points, anchorIndex-2, anchorIndex+1)
		next = len(p.points) - 1
	default:
		p.points = slices.Delete(p.points, anchorIndex-1, anchorIndex+2)
		next = p.loopIndex(anchorIndex)
	}

	if p.autoSet {
		p.autoSetAffected(next)
	}
	return nil
}

// Transform applies aff to every stored point. With automatic control points,
// handles are recomputed afterwards, since the automatic rule isn't invariant
// under non-uniform scaling.
func (p *Path) Transform(aff Affine) {
	for i, pt := range p.points {
		p.points[i] = pt.Transform(aff)
	}
	if p.autoSet {
		p.autoSetAll()
	}
}

// PathElements returns the path as drawing commands: a MoveTo to the first
// anchor, one CubicTo per segment and, for closed paths, a ClosePath.
func (p *Path) PathElements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		if !yield(MoveTo(p.points[0])) {
			return
		}
		for c := range p.Segments() {
			if !yield(CubicTo(c.P1, c.P2, c.P3)) {
				return
			}
		}
		if p.closed {
			yield(ClosePath())
		}
	}
}

// BezPath collects [Path.PathElements].
func (p *Path) BezPath() BezPath {
	return slices.Collect(p.PathElements())
}

// SVG returns the path as SVG path data.
func (p *Path) SVG(opts SVGOptions) string {
	return SVG(p.PathElements(), opts)
}

// ControlBox returns the smallest rectangle enclosing all stored points. It
// always contains the curve.
func (p *Path) ControlBox() Rect {
	r := NewRectFromPoints(p.points[0], p.points[0])
	for _, pt := range p.points[1:] {
		r = r.UnionPoint(pt)
	}
	return r
}

// BoundingBox returns the smallest rectangle enclosing the curve.
func (p *Path) BoundingBox() Rect {
	r := NewRectFromPoints(p.points[0], p.points[0])
	for c := range p.Segments() {
		r = r.Union(c.BoundingBox())
	}
	return r
}

func (p *Path) invalid(op, reason string) error {
	if p.policy == RejectInvalid {
		return fmt.Errorf("%s: %s: %w", op, reason, ErrInvalidOperation)
	}
	Logger().Debug("ignoring edit", "op", op, "reason", reason)
	return nil
}

func (p *Path) loopIndex(i int) int {
	n := len(p.points)
	return ((i % n) + n) % n
}

// owningAnchor returns the anchor that handle i belongs to.
func (p *Path) owningAnchor(i int) int {
	if (i+1)%3 == 0 {
		return p.loopIndex(i + 1)
	}
	return i - 1
}
