package mhd

import "github.com/plasmakit/tokaval/internal/plasma"

// Kink checks current-driven kink stability against the Troyon limit.
// Units follow the Troyon convention: current in MA, minor radius in m,
// field in T.
type Kink struct{}

func NewKink() *Kink { return &Kink{} }

func (k *Kink) Mode() Mode { return ModeKink }

// NormalizedBeta returns beta_N = beta / (Ip[MA] / (a·B)).
func NormalizedBeta(eq plasma.Equilibrium) float64 {
	return eq.Beta / (eq.CurrentMA() / (eq.MinorRadius * eq.Field))
}

func (k *Kink) Evaluate(eq plasma.Equilibrium, lim Limits) Result {
	betaN := NormalizedBeta(eq)
	verdict := Unstable
	if betaN < lim.Troyon {
		verdict = Stable
	}
	return Result{
		Mode:      ModeKink,
		Value:     betaN,
		Threshold: lim.Troyon,
		Verdict:   verdict,
	}
}
