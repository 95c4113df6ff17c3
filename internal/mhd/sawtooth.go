package mhd

import "github.com/plasmakit/tokaval/internal/plasma"

// Sawtooth checks the classical sawtooth trigger: sawteeth appear once the
// axis safety factor drops below one. q0 exactly at the minimum counts as
// stable.
type Sawtooth struct{}

func NewSawtooth() *Sawtooth { return &Sawtooth{} }

func (s *Sawtooth) Mode() Mode { return ModeSawtooth }

func (s *Sawtooth) Evaluate(eq plasma.Equilibrium, lim Limits) Result {
	verdict := Unstable
	if eq.Q0 >= lim.SawtoothQ0Min {
		verdict = Stable
	}
	return Result{
		Mode:           ModeSawtooth,
		Value:          eq.Q0,
		Threshold:      lim.SawtoothQ0Min,
		Verdict:        verdict,
		FloorCriterion: true,
	}
}
