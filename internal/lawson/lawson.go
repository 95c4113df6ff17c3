// Package lawson validates the plasma-physics operating point against the
// Lawson criterion, D-T reactivity, confinement scaling, and overall power
// balance. The checks benchmark the golden-section parameters against
// published thresholds and the IPB98(y,2) confinement database.
package lawson

import (
	"fmt"
	"math"

	"github.com/plasmakit/tokaval/internal/checks"
	"github.com/plasmakit/tokaval/internal/plasma"
)

const (
	// EFusionJ is the 17.6 MeV released per D-T reaction, in joules.
	EFusionJ = 17.6 * 1.602e-13

	keVToJoule = 1.602e-16

	breakevenTriple = 3e21 // keV·s/m³
	ignitionTriple  = 5e21 // keV·s/m³

	expectedReactivity = 4.5e-22 // m³/s at ~30 keV

	bremsCoeff = 5.35e-37

	mu0 = 4 * math.Pi * 1e-7
)

// Params is the ignition-validation operating point.
type Params struct {
	Density         float64 // m^-3
	Temperature     float64 // keV
	ConfinementTime float64 // s, before enhancement
	Field           float64 // T
	MajorRadius     float64 // m
	MinorRadius     float64 // m
	Elongation      float64
	Q95             float64
	ZEff            float64
	HeatingPower    float64 // W, assumed external heating for the scaling law
	Enhancement     float64
}

// DefaultParams returns the golden-section operating point: the reference
// equilibrium plus the derived confinement time τ = φ⁻²(1+ε).
func DefaultParams() Params {
	eq := plasma.Reference()
	return Params{
		Density:         eq.Density,
		Temperature:     eq.Temperature,
		ConfinementTime: math.Pow(plasma.Phi, -2) * (1 + plasma.CartanTorsion),
		Field:           eq.Field,
		MajorRadius:     eq.MajorRadius,
		MinorRadius:     eq.MinorRadius,
		Elongation:      eq.Elongation,
		Q95:             eq.Q95,
		ZEff:            1.5,
		HeatingPower:    100e6,
		Enhancement:     eq.Enhancement,
	}
}

// Reactivity returns the D-T fusion reactivity <σv> in m³/s from the NRL
// Plasma Formulary piecewise fit.
func Reactivity(tKeV float64) float64 {
	switch {
	case tKeV < 10:
		return 1.1e-22 * (tKeV / 10) * (tKeV / 10)
	case tKeV < 30:
		return 1.1e-22 + (5.0e-22-1.1e-22)*(tKeV-10)/20
	case tKeV < 50:
		return 5.0e-22 - (5.0e-22-3.5e-22)*(tKeV-30)/20
	default:
		return 3.5e-22 * math.Sqrt(50/tKeV)
	}
}

// TripleProduct returns n·τ·T in keV·s/m³.
func (p Params) TripleProduct() float64 {
	return p.Density * p.ConfinementTime * p.Temperature
}

// Volume returns the plasma volume 2π²Ra².
func (p Params) Volume() float64 {
	return 2 * math.Pi * math.Pi * p.MajorRadius * p.MinorRadius * p.MinorRadius
}

// FusionPower returns P_fus = n²<σv>E_fus·V/4 in watts.
func (p Params) FusionPower() float64 {
	sv := Reactivity(p.Temperature)
	return p.Density * p.Density * sv * EFusionJ * p.Volume() / 4
}

// CurrentMA returns the plasma current in MA from the cylindrical safety
// factor relation Ip = 5a²B/(R·q95).
func (p Params) CurrentMA() float64 {
	return 5 * p.MinorRadius * p.MinorRadius * p.Field / (p.MajorRadius * p.Q95)
}

// Beta returns the kinetic-to-magnetic pressure ratio.
func (p Params) Beta() float64 {
	kinetic := p.Density * p.Temperature * keVToJoule
	magnetic := p.Field * p.Field / (2 * mu0)
	return kinetic / magnetic
}

// NormalizedBeta returns β_N with the derived current.
func (p Params) NormalizedBeta() float64 {
	return p.Beta() / (p.CurrentMA() / (p.MinorRadius * p.Field))
}

// IPB98Tau returns the IPB98(y,2) H-mode confinement time prediction in
// seconds, with deuterium-tritium average ion mass 2.5.
func (p Params) IPB98Tau() float64 {
	return 0.0562 *
		math.Pow(p.CurrentMA(), 0.93) *
		math.Pow(p.Field, 0.15) *
		math.Pow(p.Density/1e19, 0.41) *
		math.Pow(p.HeatingPower/1e6, -0.69) *
		math.Pow(p.MajorRadius, 1.97) *
		math.Pow(p.Elongation, 0.78) *
		math.Pow(p.MinorRadius, 0.58) *
		math.Pow(2.5, 0.19)
}

// EnhancedTau returns the flow-enhanced confinement time H·τ.
func (p Params) EnhancedTau() float64 {
	return p.ConfinementTime * p.Enhancement
}

// PowerBalance returns P_alpha - P_brem - P_transport in watts. A positive
// result means the plasma self-heats without auxiliary power.
func (p Params) PowerBalance() float64 {
	v := p.Volume()
	alpha := 0.2 * p.FusionPower()
	brem := bremsCoeff * p.Density * p.Density * p.ZEff * math.Sqrt(p.Temperature) * v
	thermal := 1.5 * p.Density * p.Temperature * keVToJoule * v
	transport := thermal / p.EnhancedTau()
	return alpha - brem - transport
}

// Validate runs every ignition check in report order.
func Validate(p Params) []checks.Check {
	triple := p.TripleProduct()
	svRatio := Reactivity(p.Temperature) / expectedReactivity
	tauRatio := p.EnhancedTau() / p.IPB98Tau()
	balance := p.PowerBalance()

	balanceDetail := "needs auxiliary heating"
	if balance > 0 {
		balanceDetail = "ignition"
	}

	return []checks.Check{
		checks.Above("Lawson Criterion", triple, breakevenTriple,
			fmt.Sprintf("%.1fx breakeven, %.1fx ignition", triple/breakevenTriple, triple/ignitionTriple)),
		checks.Within("D-T Reactivity", svRatio, 0.5, 2.0,
			fmt.Sprintf("%.2fx expected <σv>", svRatio)),
		checks.Above("Fusion Power", p.FusionPower(), 0,
			fmt.Sprintf("%.1f GW in %.0f m³", p.FusionPower()/1e9, p.Volume())),
		checks.Within("Confinement Scaling", tauRatio, 0.1, 10.0,
			fmt.Sprintf("%.2fx IPB98(y,2), H = %.1f", tauRatio, p.Enhancement)),
		checks.Below("Beta Limit", p.NormalizedBeta(), 4.0,
			fmt.Sprintf("beta_N = %.2f", p.NormalizedBeta())),
		checks.Above("Power Balance", balance, 0, balanceDetail),
	}
}
