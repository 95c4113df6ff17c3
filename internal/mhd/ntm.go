package mhd

import "github.com/plasmakit/tokaval/internal/plasma"

// NTM checks the neoclassical tearing mode seed-island trigger: NTMs are
// not triggered while beta stays below the trigger threshold.
type NTM struct{}

func NewNTM() *NTM { return &NTM{} }

func (n *NTM) Mode() Mode { return ModeNTM }

func (n *NTM) Evaluate(eq plasma.Equilibrium, lim Limits) Result {
	verdict := Unstable
	if eq.Beta < lim.NTMBetaTrigger {
		verdict = Stable
	}
	return Result{
		Mode:      ModeNTM,
		Value:     eq.Beta,
		Threshold: lim.NTMBetaTrigger,
		Verdict:   verdict,
	}
}
