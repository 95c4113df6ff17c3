package mhd

import (
	"math"
	"reflect"
	"testing"

	"github.com/plasmakit/tokaval/internal/plasma"
)

var reportOrder = []Mode{
	ModeBallooning, ModeKink, ModeTearing, ModeNTM, ModeSawtooth, ModeRWM, ModeELM,
}

func TestRunFixedOrder(t *testing.T) {
	rep := Run(plasma.Reference(), DefaultLimits())

	if len(rep.Results) != len(reportOrder) {
		t.Fatalf("expected %d results, got %d", len(reportOrder), len(rep.Results))
	}
	for i, res := range rep.Results {
		if res.Mode != reportOrder[i] {
			t.Errorf("position %d: expected %s, got %s", i, reportOrder[i], res.Mode)
		}
	}
}

func TestRunReferenceAllStable(t *testing.T) {
	rep := Run(plasma.Reference(), DefaultLimits())

	if !rep.Stable {
		t.Error("reference design should pass every mode check")
	}
	for _, res := range rep.Results {
		if res.Verdict == Unstable {
			t.Errorf("mode %s unexpectedly unstable", res.Mode)
		}
	}
}

func TestRunOverallIsConjunction(t *testing.T) {
	eq := plasma.Reference()
	eq.Q0 = 0.9 // trips the sawtooth check only

	rep := Run(eq, DefaultLimits())
	if rep.Stable {
		t.Error("one unstable mode must flip the overall verdict")
	}

	res, ok := rep.Result(ModeSawtooth)
	if !ok || res.Verdict != Unstable {
		t.Error("expected the sawtooth mode to be the unstable one")
	}
}

func TestRunExcludesNotApplicableFromConjunction(t *testing.T) {
	// No rational surface exists in [3.2, 4.0]; the tearing verdict is
	// NotApplicable and must not count for or against the overall flag.
	eq, err := plasma.New(plasma.Equilibrium{
		MajorRadius: 11.09, MinorRadius: 2.62, Field: 24.6,
		Current: 25.3e6, Beta: 0.0163,
		Q0: 3.2, Q95: 4.0, Elongation: 1.7, Triangularity: 0.4,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rep := Run(eq, DefaultLimits())
	res, _ := rep.Result(ModeTearing)
	if res.Verdict != NotApplicable {
		t.Fatalf("expected NotApplicable tearing verdict, got %v", res.Verdict)
	}
	if !rep.Stable {
		t.Error("NotApplicable must not fail the overall verdict when all applicable modes pass")
	}
}

func TestRunIdempotent(t *testing.T) {
	eq := plasma.Reference()
	lim := DefaultLimits()

	first := Run(eq, lim)
	second := Run(eq, lim)

	if !reflect.DeepEqual(first, second) {
		t.Error("two runs on identical inputs must produce identical reports")
	}
}

func TestDisruptionProbability(t *testing.T) {
	p := DisruptionProbability(DefaultLimits())

	want := 0.15 * math.Exp(-46/math.Pow(plasma.Phi, 4))
	if math.Abs(p-want) > 1e-15 {
		t.Errorf("expected %e, got %e", want, p)
	}
	// ~0.018% for 46 tracked channels
	if p < 1.5e-4 || p > 2.1e-4 {
		t.Errorf("probability out of expected range: %e", p)
	}
}
