package plasma

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidEquilibrium indicates equilibrium parameters that would make
// later stability formulas undefined.
var ErrInvalidEquilibrium = errors.New("plasma: invalid equilibrium")

// Equilibrium is a frozen set of scalar plasma and geometry parameters.
// It is constructed once and never mutated; every evaluator is a pure
// function of an Equilibrium and its own inputs.
type Equilibrium struct {
	MajorRadius   float64 // R, m
	MinorRadius   float64 // a, m
	Field         float64 // toroidal field B, T
	Density       float64 // n, m^-3
	Temperature   float64 // T, keV
	Current       float64 // Ip, A
	Beta          float64 // normalized pressure
	Q0            float64 // safety factor on axis
	Q95           float64 // safety factor at the 95% flux surface
	Elongation    float64 // kappa
	Triangularity float64 // delta
	Enhancement   float64 // confinement enhancement H
}

// New validates eq and returns it. A zero Enhancement defaults to the
// golden-section flow value. Validation fails fast so NaN never reaches the
// mode evaluators.
func New(eq Equilibrium) (Equilibrium, error) {
	if eq.Enhancement == 0 {
		eq.Enhancement = FlowEnhancement
	}
	if err := eq.Validate(); err != nil {
		return Equilibrium{}, err
	}
	return eq, nil
}

// Validate checks the invariants required by the stability formulas:
// q95 > q0 > 0, 0 < a < R, beta > 0, and positive field and current.
func (eq Equilibrium) Validate() error {
	switch {
	case eq.Q0 <= 0:
		return fmt.Errorf("%w: axis safety factor q0 = %g must be positive", ErrInvalidEquilibrium, eq.Q0)
	case eq.Q95 <= eq.Q0:
		return fmt.Errorf("%w: edge safety factor q95 = %g must exceed q0 = %g", ErrInvalidEquilibrium, eq.Q95, eq.Q0)
	case eq.MinorRadius <= 0:
		return fmt.Errorf("%w: minor radius a = %g must be positive", ErrInvalidEquilibrium, eq.MinorRadius)
	case eq.MinorRadius >= eq.MajorRadius:
		return fmt.Errorf("%w: minor radius a = %g must be less than major radius R = %g", ErrInvalidEquilibrium, eq.MinorRadius, eq.MajorRadius)
	case eq.Beta <= 0:
		return fmt.Errorf("%w: beta = %g must be positive", ErrInvalidEquilibrium, eq.Beta)
	case eq.Field <= 0:
		return fmt.Errorf("%w: toroidal field B = %g must be positive", ErrInvalidEquilibrium, eq.Field)
	case eq.Current <= 0:
		return fmt.Errorf("%w: plasma current Ip = %g must be positive", ErrInvalidEquilibrium, eq.Current)
	case eq.Enhancement <= 0:
		return fmt.Errorf("%w: enhancement H = %g must be positive", ErrInvalidEquilibrium, eq.Enhancement)
	}
	return nil
}

// Q interpolates the safety factor profile quadratically between the axis
// and edge values: q(r) = q0 + (q95-q0)·r² for normalized radius r.
func (eq Equilibrium) Q(r float64) float64 {
	return eq.Q0 + (eq.Q95-eq.Q0)*r*r
}

// HasSurface reports whether the rational surface q = qt exists inside the
// plasma, i.e. qt lies within (q0, q95]. A surface at exactly q0 sits on
// the magnetic axis where r_s = 0 and the tearing index is undefined.
func (eq Equilibrium) HasSurface(qt float64) bool {
	return qt > eq.Q0 && qt <= eq.Q95
}

// SurfaceRadius inverts the quadratic q profile, returning the radius (in
// meters) of the surface where q = qt. Callers must check HasSurface first.
func (eq Equilibrium) SurfaceRadius(qt float64) float64 {
	return eq.MinorRadius * math.Sqrt((qt-eq.Q0)/(eq.Q95-eq.Q0))
}

// ShapingFactor is the elongation/triangularity stabilization factor
// 1 + 0.5κ + 0.3δ applied to the ballooning critical threshold.
func (eq Equilibrium) ShapingFactor() float64 {
	return 1 + 0.5*eq.Elongation + 0.3*eq.Triangularity
}

// AspectRatio returns R/a.
func (eq Equilibrium) AspectRatio() float64 {
	return eq.MajorRadius / eq.MinorRadius
}

// CurrentMA returns the plasma current in megaamperes.
func (eq Equilibrium) CurrentMA() float64 {
	return eq.Current / 1e6
}
