package ease

import (
	"errors"
	"fmt"
)

// ErrDomain is matched by every [*DomainError].
var ErrDomain = errors.New("parameter outside its domain")

// DomainError reports a parameter that the [Strict] policy rejected.
type DomainError struct {
	Func     string
	T        float64
	Min, Max float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: t = %g outside [%g, %g]", e.Func, e.T, e.Min, e.Max)
}

func (e *DomainError) Unwrap() error { return ErrDomain }

// Policy selects how out-of-range parameters are handled.
type Policy uint8

const (
	// Clamp saturates parameters to their valid range. It never fails.
	Clamp Policy = iota
	// Strict rejects parameters outside their valid range with a
	// [*DomainError].
	Strict
)

func (p Policy) String() string {
	switch p {
	case Clamp:
		return "clamp"
	case Strict:
		return "strict"
	default:
		return fmt.Sprintf("Policy(%d)", uint8(p))
	}
}

// Apply evaluates the easing function of m at t.
func (p Policy) Apply(m Mode, t float64) (float64, error) {
	f := m.Func()
	if f == nil {
		return 0, fmt.Errorf("apply %s: invalid mode", m)
	}
	if p == Strict && !isUnit(t) {
		return 0, &DomainError{Func: m.String(), T: t, Min: 0, Max: 1}
	}
	return f(t), nil
}

// RangeMap01 is like the package-level [RangeMap01], but under [Strict] it
// rejects t outside [min, max] (in either orientation) and empty ranges.
func (p Policy) RangeMap01(t, min, max float64) (float64, error) {
	if p == Strict {
		lo, hi := min, max
		if lo > hi {
			lo, hi = hi, lo
		}
		if min == max || !(t >= lo && t <= hi) {
			return 0, &DomainError{Func: "rangemap01", T: t, Min: min, Max: max}
		}
		return (t - min) / (max - min), nil
	}
	return RangeMap01(t, min, max), nil
}

// RangeMap is like the package-level [RangeMap] with the input side checked as
// in [Policy.RangeMap01].
func (p Policy) RangeMap(t, inMin, inMax, outMin, outMax float64) (float64, error) {
	u, err := p.RangeMap01(t, inMin, inMax)
	if err != nil {
		return 0, err
	}
	return Lerp(u, outMin, outMax), nil
}
