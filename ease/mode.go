package ease

import (
	"fmt"
	"strings"
)

// Mode names one of the easing families of this package.
type Mode int

const (
	ModeSmoothStart2 Mode = iota + 1
	ModeSmoothStart3
	ModeSmoothStart4
	ModeSmoothStop2
	ModeSmoothStop3
	ModeSmoothStop4
	ModeSmoothStep3
	ModeSmoothStep5
	ModeSmoothStep7
	ModeArch2
	ModeArch4
	ModeArch6
)

var modes = [...]struct {
	name string
	fn   Func
}{
	ModeSmoothStart2: {"smoothstart2", SmoothStart2},
	ModeSmoothStart3: {"smoothstart3", SmoothStart3},
	ModeSmoothStart4: {"smoothstart4", SmoothStart4},
	ModeSmoothStop2:  {"smoothstop2", SmoothStop2},
	ModeSmoothStop3:  {"smoothstop3", SmoothStop3},
	ModeSmoothStop4:  {"smoothstop4", SmoothStop4},
	ModeSmoothStep3:  {"smoothstep3", SmoothStep3},
	ModeSmoothStep5:  {"smoothstep5", SmoothStep5},
	ModeSmoothStep7:  {"smoothstep7", SmoothStep7},
	ModeArch2:        {"arch2", Arch2},
	ModeArch4:        {"arch4", Arch4},
	ModeArch6:        {"arch6", Arch6},
}

func (m Mode) valid() bool {
	return m >= ModeSmoothStart2 && m <= ModeArch6
}

func (m Mode) String() string {
	if !m.valid() {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modes[m].name
}

// Func returns the easing function of m, or nil if m isn't a valid mode.
func (m Mode) Func() Func {
	if !m.valid() {
		return nil
	}
	return modes[m].fn
}

// Modes returns all modes in declaration order.
func Modes() []Mode {
	out := make([]Mode, 0, len(modes)-1)
	for m := ModeSmoothStart2; m <= ModeArch6; m++ {
		out = append(out, m)
	}
	return out
}

// ParseMode returns the mode with the given name. Matching ignores case,
// hyphens and underscores, so "smooth-step-5" and "SmoothStep5" both work.
func ParseMode(name string) (Mode, error) {
	key := strings.ToLower(strings.NewReplacer("-", "", "_", "").Replace(name))
	for _, m := range Modes() {
		if modes[m].name == key {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown easing mode %q", name)
}
