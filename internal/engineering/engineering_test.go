package engineering

import (
	"math"
	"testing"

	"github.com/plasmakit/tokaval/internal/checks"
)

func TestDefaultDesignPasses(t *testing.T) {
	cs := Validate(DefaultDesign())

	if len(cs) != 8 {
		t.Fatalf("expected 8 checks, got %d", len(cs))
	}
	for _, c := range cs {
		if !c.Pass {
			t.Errorf("%s failed: value %f limit %f", c.Name, c.Value, c.Limit)
		}
	}
	if !checks.AllPass(cs) {
		t.Error("default design should be feasible")
	}
}

func TestMagnetStressFormula(t *testing.T) {
	d := DefaultDesign()
	c := MagnetStress(d)

	bCoil := d.Field * (d.MajorRadius - d.MinorRadius) / d.MajorRadius
	want := (bCoil * bCoil / (2 * mu0)) * (d.MinorRadius / caseThickness) / 1e6
	if math.Abs(c.Value-want) > 1e-9 {
		t.Errorf("expected %f MPa, got %f", want, c.Value)
	}
	if c.Limit != yieldSteel316LN*0.67 {
		t.Errorf("expected limit %f, got %f", yieldSteel316LN*0.67, c.Limit)
	}
}

func TestMagnetStressFailsAtHighField(t *testing.T) {
	d := DefaultDesign()
	d.Field = 30.0
	if MagnetStress(d).Pass {
		t.Error("30 T on the engineering geometry should exceed the case stress limit")
	}
}

func TestPowerBalanceSign(t *testing.T) {
	d := DefaultDesign()
	if !PowerConversion(d).Pass {
		t.Error("3.5 GW design should be net positive")
	}

	d.FusionPower = 0.3e9
	if PowerConversion(d).Pass {
		t.Error("0.3 GW cannot cover the auxiliary load")
	}
}

func TestNeutronLifetimeScalesInverselyWithPower(t *testing.T) {
	d := DefaultDesign()
	base := NeutronDamage(d).Value

	d.FusionPower *= 2
	doubled := NeutronDamage(d).Value

	if math.Abs(doubled-base/2) > 1e-9 {
		t.Errorf("doubling power should halve lifetime: %f vs %f", doubled, base/2)
	}
}

func TestWallAreaElongation(t *testing.T) {
	d := DefaultDesign()
	round := d
	round.Elongation = 1.0

	if d.WallArea() <= round.WallArea() {
		t.Error("elongation should increase wall area")
	}
}
