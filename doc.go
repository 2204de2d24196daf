// Package bezier2d provides an editable piecewise-cubic Bézier path, the kind
// that curve editors let designers drag around in a scene view, along with the
// small set of 2D primitives it is built from.
//
// # Paths
//
// [Path] stores its curve as a flat sequence of points in repeating groups of
// three:
//
//	anchor₀, handleOut₀, handleIn₁, anchor₁, handleOut₁, handleIn₂, anchor₂, ...
//
// Index i is an anchor iff i % 3 == 0. Anchors lie on the curve; handles only
// shape it. An open path with n segments stores 3n+1 points. Closing a path
// appends two more handles that connect the last anchor back to the first one,
// after which all index arithmetic wraps around (see [Path.SetClosed]).
//
// Paths are edited in place through [Path.AddSegment], [Path.MovePoint],
// [Path.SplitSegment], [Path.DeleteSegment], [Path.SetClosed], and
// [Path.SetAutoSetControlPoints]. When automatic control points are enabled,
// handle positions are derived from neighbouring anchors after every edit,
// producing a smooth, Catmull-Rom like curve; users then only move anchors.
//
// Hosts draw a path with [Path.PointsInSegment] or [Path.PathElements] and
// place objects along it with [Path.EvenlySpacedPoints].
//
// The complete state of a path is its points, its closed flag and its
// auto-set flag. [NewPathFromPoints] rebuilds a path from those three values.
//
// # Evaluation
//
// [EvalQuadratic] and [EvalCubic] evaluate Bézier curves by repeated linear
// interpolation (de Casteljau). They do not clamp t and return the first and
// last control point exactly at t = 0 and t = 1, respectively. [QuadBez] and
// [CubicBez] wrap them in value types with a few extra operations.
//
// Easing functions for scalar parameters live in the ease subpackage.
//
// # Errors
//
// Edit operations never panic on bad input. Out-of-range indices produce an
// [*IndexError], which matches [ErrIndexOutOfRange]. Edits that are
// structurally impossible, such as adding a segment to a closed path, are
// ignored by default; see [EditPolicy].
//
// # Concurrency
//
// A Path is owned by a single editing session. It performs no locking and must
// not be mutated concurrently. All free functions in this package are pure.
package bezier2d
