package mhd

import "github.com/plasmakit/tokaval/internal/plasma"

// Mode identifies an instability class.
type Mode string

const (
	ModeBallooning Mode = "ballooning"
	ModeKink       Mode = "kink"
	ModeTearing    Mode = "tearing"
	ModeNTM        Mode = "ntm"
	ModeSawtooth   Mode = "sawtooth"
	ModeRWM        Mode = "rwm"
	ModeELM        Mode = "elm"
)

// Title returns the display name used in report tables.
func (m Mode) Title() string {
	switch m {
	case ModeBallooning:
		return "Ballooning Modes"
	case ModeKink:
		return "Kink Modes"
	case ModeTearing:
		return "Tearing Modes"
	case ModeNTM:
		return "NTM Modes"
	case ModeSawtooth:
		return "Sawteeth"
	case ModeRWM:
		return "Resistive Wall Modes"
	case ModeELM:
		return "Edge Localized Modes"
	}
	return string(m)
}

// Verdict is the outcome of one mode evaluation. NotApplicable marks the
// vacuous case where no rational surface exists inside the plasma; it is
// excluded from the overall AND rather than counted as stable.
type Verdict int

const (
	Unstable Verdict = iota
	Stable
	NotApplicable
)

func (v Verdict) String() string {
	switch v {
	case Stable:
		return "stable"
	case Unstable:
		return "unstable"
	case NotApplicable:
		return "n/a"
	}
	return "unknown"
}

// Result holds one evaluator's computed quantity, the threshold it was
// compared against, and the verdict. FloorCriterion marks checks where the
// quantity must stay at or above the threshold (sawtooth); all others are
// ceilings.
type Result struct {
	Mode           Mode
	Value          float64
	Threshold      float64
	Verdict        Verdict
	FloorCriterion bool
}

// Margin is the distance to the threshold, signed so that positive always
// means stable headroom.
func (r Result) Margin() float64 {
	if r.FloorCriterion {
		return r.Value - r.Threshold
	}
	return r.Threshold - r.Value
}

// Evaluator is one analytic stability check. Implementations are pure
// functions of the equilibrium and the threshold set.
type Evaluator interface {
	Mode() Mode
	Evaluate(eq plasma.Equilibrium, lim Limits) Result
}
