package mhd

import "github.com/plasmakit/tokaval/internal/plasma"

// RWM checks resistive wall mode stability against the ideal no-wall beta
// limit, which rises with elongation.
type RWM struct{}

func NewRWM() *RWM { return &RWM{} }

func (r *RWM) Mode() Mode { return ModeRWM }

// NoWallBetaLimit returns the elongation-dependent no-wall limit
// c·(1 + κ²).
func NoWallBetaLimit(eq plasma.Equilibrium, lim Limits) float64 {
	return lim.RWMCoeff * (1 + eq.Elongation*eq.Elongation)
}

func (r *RWM) Evaluate(eq plasma.Equilibrium, lim Limits) Result {
	limit := NoWallBetaLimit(eq, lim)
	verdict := Unstable
	if eq.Beta < limit {
		verdict = Stable
	}
	return Result{
		Mode:      ModeRWM,
		Value:     eq.Beta,
		Threshold: limit,
		Verdict:   verdict,
	}
}
