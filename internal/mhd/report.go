package mhd

import (
	"math"

	"github.com/plasmakit/tokaval/internal/plasma"
)

// Report collects the per-mode verdicts, in fixed order, plus the derived
// disruption probability. Stable is the AND of every verdict that applied;
// NotApplicable results are excluded from the conjunction. The disruption
// probability is descriptive output only and never feeds back into Stable.
type Report struct {
	Results               []Result
	DisruptionProbability float64
	Stable                bool
}

// Result returns the entry for the given mode, if present.
func (r Report) Result(m Mode) (Result, bool) {
	for _, res := range r.Results {
		if res.Mode == m {
			return res, true
		}
	}
	return Result{}, false
}

// Evaluators returns the seven mode evaluators in report order.
func Evaluators() []Evaluator {
	return []Evaluator{
		NewBallooning(),
		NewKink(),
		NewTearing(),
		NewNTM(),
		NewSawtooth(),
		NewRWM(),
		NewELM(),
	}
}

// Run executes every evaluator sequentially against the equilibrium and
// aggregates the verdicts. The computation is pure: identical inputs yield
// identical reports.
func Run(eq plasma.Equilibrium, lim Limits) Report {
	evaluators := Evaluators()
	results := make([]Result, 0, len(evaluators))

	stable := true
	for _, ev := range evaluators {
		res := ev.Evaluate(eq, lim)
		results = append(results, res)
		if res.Verdict == Unstable {
			stable = false
		}
	}

	return Report{
		Results:               results,
		DisruptionProbability: DisruptionProbability(lim),
		Stable:                stable,
	}
}

// DisruptionProbability estimates the per-run disruption probability from
// the number of tracked mode channels: base·exp(-N/φ⁴).
func DisruptionProbability(lim Limits) float64 {
	return lim.DisruptionBase * math.Exp(-lim.TrackedModes/math.Pow(plasma.Phi, 4))
}
