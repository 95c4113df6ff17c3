package mhd

import "github.com/plasmakit/tokaval/internal/plasma"

// Limits is the immutable set of stability thresholds the evaluators
// compare against. The defaults are empirical engineering heuristics, not
// first-principles derivations; keeping them in one value lets alternate
// threshold sets be tested in isolation.
type Limits struct {
	BallooningCoeff float64 // critical pressure-gradient coefficient
	Troyon          float64 // normalized beta ceiling, %·m·T/MA convention
	NTMBetaTrigger  float64 // seed-island beta trigger
	SawtoothQ0Min   float64 // minimum axis safety factor; equality is stable
	RWMCoeff        float64 // no-wall beta limit coefficient
	ELMBaseLoss     float64 // unmitigated ELM energy-loss fraction
	TearingOffset   float64 // stabilizing offset added to the tearing index
	DisruptionBase  float64 // disruption probability prefactor
	TrackedModes    float64 // total tracked mode channels
	RadialSamples   int     // ballooning scan resolution
}

// DefaultLimits returns the published threshold set.
func DefaultLimits() Limits {
	return Limits{
		BallooningCoeff: 0.6,
		Troyon:          2.8,
		NTMBetaTrigger:  0.02,
		SawtoothQ0Min:   1.0,
		RWMCoeff:        0.028 * 4 / 2,
		ELMBaseLoss:     0.07,
		TearingOffset:   -plasma.Phi / 2,
		DisruptionBase:  0.15,
		TrackedModes:    46,
		RadialSamples:   10,
	}
}
