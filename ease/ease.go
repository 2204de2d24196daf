// Package ease implements easing functions that map a normalized parameter
// t ∈ [0, 1] to an eased value, plus helpers for mapping between ranges.
//
// The families and their names follow Squirrel Eiserloh's "Math for Game
// Programmers: Fast and Funky 1D Nonlinear Transformations": SmoothStart
// eases in, SmoothStop eases out, SmoothStep does both and Arch rises from 0
// to 1 and back.
//
// # Out-of-range parameters
//
// The functions in this package clamp t to [0, 1] before evaluating, so they
// never fail and never extrapolate. Code that would rather detect bad input
// can evaluate through the [Strict] [Policy], which reports a [*DomainError]
// instead. [Lerp] is the exception: it is a plain linear interpolation and
// accepts any t.
//
// All functions are pure and safe for concurrent use.
package ease

import "math"

// Func is an easing function.
type Func func(t float64) float64

// Saturate clamps t to [0, 1]. NaN stays NaN.
func Saturate(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Lerp linearly interpolates between min and max, computing min + t·(max−min).
// At t = 1 the result isn't guaranteed to be exactly max.
func Lerp(t, min, max float64) float64 {
	return min + t*(max-min)
}

// RangeMap01 maps t from [min, max] to [0, 1], clamping the result.
//
// If min == max, the range has no width and the result is a step: 0 for
// t < max and 1 otherwise.
func RangeMap01(t, min, max float64) float64 {
	if min == max {
		if t < max {
			return 0
		}
		return 1
	}
	return Saturate((t - min) / (max - min))
}

// RangeMap maps t from [inMin, inMax] to [outMin, outMax]. The input side is
// clamped like in [RangeMap01].
func RangeMap(t, inMin, inMax, outMin, outMax float64) float64 {
	return Lerp(RangeMap01(t, inMin, inMax), outMin, outMax)
}

// SmoothStart2 returns t².
func SmoothStart2(t float64) float64 {
	t = Saturate(t)
	return t * t
}

// SmoothStart3 returns t³.
func SmoothStart3(t float64) float64 {
	t = Saturate(t)
	return t * t * t
}

// SmoothStart4 returns t⁴.
func SmoothStart4(t float64) float64 {
	t = Saturate(t)
	t2 := t * t
	return t2 * t2
}

// SmoothStop2 returns 1 − (1−t)².
func SmoothStop2(t float64) float64 {
	t = Saturate(t)
	return t * (2 - t)
}

// SmoothStop3 returns 1 − (1−t)³.
func SmoothStop3(t float64) float64 {
	t = Saturate(t)
	return t * (3 + t*(t-3))
}

// SmoothStop4 returns 1 − (1−t)⁴.
func SmoothStop4(t float64) float64 {
	t = Saturate(t)
	return t * (4 + t*(t*(4-t)-6))
}

// SmoothStep3 is the classic smoothstep, 3t² − 2t³.
func SmoothStep3(t float64) float64 {
	t = Saturate(t)
	return t * t * (3 - 2*t)
}

// SmoothStep5 is smootherstep, 6t⁵ − 15t⁴ + 10t³, with zero first and second
// derivatives at both ends.
func SmoothStep5(t float64) float64 {
	t = Saturate(t)
	return t * t * t * (10 + t*(6*t-15))
}

// SmoothStep7 returns −20t⁷ + 70t⁶ − 84t⁵ + 35t⁴, which also has zero third
// derivatives at both ends.
func SmoothStep7(t float64) float64 {
	t = Saturate(t)
	t2 := t * t
	return t2 * t2 * (35 + t*(t*(70-20*t)-84))
}

// Arch2 returns 4t(1−t), a parabola through 0 at both ends peaking at 1 for
// t = 0.5.
func Arch2(t float64) float64 {
	t = Saturate(t)
	return 4 * t * (1 - t)
}

// Arch4 returns 16t²(1−t)².
func Arch4(t float64) float64 {
	t = Saturate(t)
	a := t * (1 - t)
	return 16 * a * a
}

// Arch6 returns 64t³(1−t)³.
func Arch6(t float64) float64 {
	t = Saturate(t)
	return t * t * t * (64 + t*(t*(192-64*t)-192))
}

// NormalizedBezier3 evaluates a one-dimensional cubic Bézier with endpoints 0
// and 1 and inner control values b and c:
//
//	3b(1−t)²t + 3c(1−t)t² + t³
//
// With b = 1/3 and c = 2/3 it is the identity.
func NormalizedBezier3(b, c, t float64) float64 {
	t = Saturate(t)
	s := 1 - t
	return 3*b*s*s*t + 3*c*s*t*t + t*t*t
}

func isUnit(t float64) bool {
	return t >= 0 && t <= 1 && !math.IsNaN(t)
}
