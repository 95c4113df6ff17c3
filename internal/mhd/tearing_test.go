package mhd

import (
	"math"
	"testing"

	"github.com/plasmakit/tokaval/internal/plasma"
)

func TestTearingReferenceAllSurfacesEvaluated(t *testing.T) {
	eq := plasma.Reference() // q0=1, q95=3 covers every default surface
	tr := NewTearing()

	results := tr.Scan(eq, DefaultLimits())
	if len(results) != len(DefaultSurfaces) {
		t.Fatalf("expected %d surface results, got %d", len(DefaultSurfaces), len(results))
	}
	for _, sr := range results {
		if sr.Skipped {
			t.Errorf("surface %s should be inside [q0, q95]", sr.Surface)
		}
		if !sr.Stable {
			t.Errorf("surface %s unstable: index %f", sr.Surface, sr.Index)
		}
	}

	res := tr.Evaluate(eq, DefaultLimits())
	if res.Verdict != Stable {
		t.Errorf("expected stable aggregate, got %v", res.Verdict)
	}
}

func TestTearingSkipsSurfacesOutsideProfile(t *testing.T) {
	eq := plasma.Reference()
	tr := &Tearing{Surfaces: []RationalSurface{{2, 1}, {10, 1}}}

	results := tr.Scan(eq, DefaultLimits())
	if results[0].Skipped {
		t.Error("surface 2/1 (q=2.0) lies inside [1, 3] and must be evaluated")
	}
	if !results[1].Skipped {
		t.Error("surface 10/1 (q=10.0) lies outside [1, 3] and must be skipped")
	}
}

func TestTearingIndexFormula(t *testing.T) {
	eq := plasma.Reference()
	lim := DefaultLimits()
	tr := &Tearing{Surfaces: []RationalSurface{{2, 1}}}

	sr := tr.Scan(eq, lim)[0]

	rs := eq.MinorRadius * math.Sqrt((2.0-eq.Q0)/(eq.Q95-eq.Q0))
	deltaPrime := -2*2/rs + (4-1)/rs
	want := deltaPrime*eq.MinorRadius/eq.Enhancement - plasma.Phi/2

	if math.Abs(sr.Radius-rs) > 1e-12 {
		t.Errorf("expected r_s %f, got %f", rs, sr.Radius)
	}
	if math.Abs(sr.Index-want) > 1e-12 {
		t.Errorf("expected index %f, got %f", want, sr.Index)
	}
}

func TestTearingOnAxisSurfaceSkipped(t *testing.T) {
	// q0=1.5 puts the 3/2 surface exactly on axis, where r_s = 0 and the
	// index is undefined. The surface must be skipped, not evaluated into
	// a NaN, and the aggregate must agree with every per-surface verdict.
	eq, err := plasma.New(plasma.Equilibrium{
		MajorRadius: 11.09, MinorRadius: 2.62, Field: 24.6,
		Current: 25.3e6, Beta: 0.0163,
		Q0: 1.5, Q95: 3.0, Elongation: 1.7, Triangularity: 0.4,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tr := NewTearing()
	lim := DefaultLimits()

	allStable := true
	for _, sr := range tr.Scan(eq, lim) {
		if sr.Surface == (RationalSurface{3, 2}) && !sr.Skipped {
			t.Errorf("surface 3/2 (q=1.5) sits on axis and must be skipped, got index %f", sr.Index)
		}
		if sr.Skipped {
			continue
		}
		if math.IsNaN(sr.Index) {
			t.Errorf("surface %s evaluated to NaN index", sr.Surface)
		}
		if !sr.Stable {
			allStable = false
		}
	}

	res := tr.Evaluate(eq, lim)
	if (res.Verdict == Stable) != allStable {
		t.Errorf("aggregate verdict %v disagrees with per-surface stability %v", res.Verdict, allStable)
	}
}

func TestTearingAggregateFollowsSurfaceVerdicts(t *testing.T) {
	// A surface marked unstable must fail the aggregate even when another
	// evaluated surface carries the largest index.
	eq := plasma.Reference()
	lim := DefaultLimits()
	lim.TearingOffset = 0.7 // lifts the 2/1 index above zero

	tr := &Tearing{Surfaces: []RationalSurface{{2, 1}, {3, 2}}}
	var unstable int
	for _, sr := range tr.Scan(eq, lim) {
		if !sr.Skipped && !sr.Stable {
			unstable++
		}
	}
	if unstable == 0 {
		t.Fatal("expected at least one unstable surface with the raised offset")
	}

	res := tr.Evaluate(eq, lim)
	if res.Verdict != Unstable {
		t.Errorf("expected unstable aggregate, got %v", res.Verdict)
	}
}

func TestTearingVacuousScanNotApplicable(t *testing.T) {
	// q0=3.2, q95=4.0: every default surface target (1.25..3.0) falls
	// below the axis value, so nothing is evaluated.
	eq, err := plasma.New(plasma.Equilibrium{
		MajorRadius: 11.09, MinorRadius: 2.62, Field: 24.6,
		Current: 25.3e6, Beta: 0.0163,
		Q0: 3.2, Q95: 4.0, Elongation: 1.7, Triangularity: 0.4,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	res := NewTearing().Evaluate(eq, DefaultLimits())
	if res.Verdict != NotApplicable {
		t.Errorf("all-skipped scan must report NotApplicable, got %v", res.Verdict)
	}
}

func TestRationalSurfaceQTarget(t *testing.T) {
	tests := []struct {
		surface RationalSurface
		want    float64
	}{
		{RationalSurface{2, 1}, 2.0},
		{RationalSurface{3, 2}, 1.5},
		{RationalSurface{4, 3}, 4.0 / 3.0},
		{RationalSurface{5, 4}, 1.25},
	}
	for _, tt := range tests {
		if got := tt.surface.QTarget(); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("%s: expected q %f, got %f", tt.surface, tt.want, got)
		}
	}
}
