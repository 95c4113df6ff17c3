package mhd

import (
	"math"

	"github.com/plasmakit/tokaval/internal/plasma"
)

// ELM reports the mitigated edge-localized-mode energy-loss fraction. The
// mitigation scales the standard loss fraction by exp(-φ²); the value is
// informational and carries no pass/fail semantics, so the verdict is
// always stable.
type ELM struct{}

func NewELM() *ELM { return &ELM{} }

func (e *ELM) Mode() Mode { return ModeELM }

// MitigatedLossFraction returns the suppressed per-ELM energy-loss
// fraction.
func MitigatedLossFraction(lim Limits) float64 {
	return lim.ELMBaseLoss * math.Exp(-plasma.Phi*plasma.Phi)
}

func (e *ELM) Evaluate(eq plasma.Equilibrium, lim Limits) Result {
	return Result{
		Mode:      ModeELM,
		Value:     MitigatedLossFraction(lim),
		Threshold: lim.ELMBaseLoss,
		Verdict:   Stable,
	}
}
