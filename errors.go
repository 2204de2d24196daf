package bezier2d

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is matched by every [*IndexError].
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrInvalidOperation reports an edit that the path's current topology
	// doesn't allow. It is only returned under [RejectInvalid].
	ErrInvalidOperation = errors.New("invalid operation")
	// ErrInvalidLayout reports a point sequence that doesn't describe a path.
	ErrInvalidLayout = errors.New("invalid point layout")
	// ErrInvalidArgument reports a non-index argument outside its domain.
	ErrInvalidArgument = errors.New("invalid argument")
)

// IndexError describes a point, anchor or segment index that is out of range.
// For anchors, Len is the number of points and indices that aren't multiples
// of three are rejected too. No mutation happens before an IndexError is
// returned.
type IndexError struct {
	Op    string
	Kind  string
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	if e.Kind == "anchor" && e.Index >= 0 && e.Index < e.Len {
		return fmt.Sprintf("%s: index %d is not an anchor", e.Op, e.Index)
	}
	return fmt.Sprintf("%s: %s index %d out of range [0, %d)", e.Op, e.Kind, e.Index, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

// EditPolicy controls what happens to edits that the path cannot perform, such
// as adding a segment to a closed path or deleting one of the last segments.
type EditPolicy uint8

const (
	// IgnoreInvalid silently leaves the path unchanged and reports success.
	IgnoreInvalid EditPolicy = iota
	// RejectInvalid leaves the path unchanged and returns an error matching
	// [ErrInvalidOperation].
	RejectInvalid
)

func (p EditPolicy) String() string {
	switch p {
	case IgnoreInvalid:
		return "ignore"
	case RejectInvalid:
		return "reject"
	default:
		return fmt.Sprintf("EditPolicy(%d)", uint8(p))
	}
}
