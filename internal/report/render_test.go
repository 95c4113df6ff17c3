package report

import (
	"strings"
	"testing"

	"github.com/plasmakit/tokaval/internal/checks"
	"github.com/plasmakit/tokaval/internal/mhd"
	"github.com/plasmakit/tokaval/internal/plasma"
)

func TestMHDListsEveryMode(t *testing.T) {
	rep := mhd.Run(plasma.Reference(), mhd.DefaultLimits())
	out := MHD(rep)

	for _, res := range rep.Results {
		if !strings.Contains(out, res.Mode.Title()) {
			t.Errorf("output missing mode %q", res.Mode.Title())
		}
	}
	if !strings.Contains(out, "disruption probability") {
		t.Error("output missing disruption probability line")
	}
	if !strings.Contains(out, "DISRUPTION-FREE") {
		t.Error("stable report should carry the pass banner")
	}
}

func TestMHDFailBanner(t *testing.T) {
	eq := plasma.Reference()
	eq.Q0 = 0.5
	out := MHD(mhd.Run(eq, mhd.DefaultLimits()))

	if !strings.Contains(out, "NOT FEASIBLE") {
		t.Error("unstable report should carry the fail banner")
	}
}

func TestChecksTable(t *testing.T) {
	cs := []checks.Check{
		checks.Below("Heat Flux", 1, 10, "1.0 < 10 MW/m²"),
		checks.Above("Lifetime", 1, 2, "1.0 fpy"),
	}
	out := Checks("ENGINEERING", "PASS", "FAIL", cs)

	if !strings.Contains(out, "Heat Flux") || !strings.Contains(out, "Lifetime") {
		t.Error("output missing check names")
	}
	if !strings.Contains(out, "FAIL") {
		t.Error("failing check set should carry the fail banner")
	}
}

func TestScanListsSamples(t *testing.T) {
	b := mhd.NewBallooning()
	samples := b.Scan(plasma.Reference(), mhd.DefaultLimits())
	out := Scan(samples, 10)

	if !strings.Contains(out, "stability margin") {
		t.Error("output missing plot caption")
	}
	if !strings.Contains(out, "0.950") {
		t.Error("output missing the near-edge sample row")
	}
}

func TestRuleWidth(t *testing.T) {
	if !strings.Contains(Rule(8), strings.Repeat("─", 8)) {
		t.Error("rule should repeat the separator glyph to the given width")
	}
}

func TestEquilibriumBlock(t *testing.T) {
	out := Equilibrium(plasma.Reference())
	if !strings.Contains(out, "25.3 MA") {
		t.Errorf("expected current in MA, got:\n%s", out)
	}
}
