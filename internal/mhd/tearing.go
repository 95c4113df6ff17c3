package mhd

import (
	"fmt"

	"github.com/plasmakit/tokaval/internal/plasma"
)

// RationalSurface is a poloidal/toroidal mode-number pair (m, n). The
// surface exists where the safety factor equals m/n.
type RationalSurface struct {
	M int
	N int
}

// QTarget returns the safety factor m/n at which the surface sits.
func (s RationalSurface) QTarget() float64 {
	return float64(s.M) / float64(s.N)
}

func (s RationalSurface) String() string {
	return fmt.Sprintf("%d/%d", s.M, s.N)
}

// DefaultSurfaces is the fixed list of low-order rational surfaces checked
// for tearing stability.
var DefaultSurfaces = []RationalSurface{
	{2, 1}, {3, 2}, {3, 1}, {4, 3}, {5, 4},
}

// SurfaceResult is the tearing evaluation at one rational surface. Skipped
// surfaces lie outside [q0, q95] and are excluded from aggregation.
type SurfaceResult struct {
	Surface RationalSurface
	Radius  float64 // r_s, m
	Index   float64 // stabilized tearing index
	Skipped bool
	Stable  bool
}

// Tearing evaluates resistive tearing stability at each rational surface
// inside the plasma. The classical index Delta' is normalized by minor
// radius, suppressed by the confinement enhancement factor, and shifted by
// the stabilizing offset; a surface is stable iff the result is negative.
type Tearing struct {
	Surfaces []RationalSurface
}

func NewTearing() *Tearing {
	return &Tearing{Surfaces: DefaultSurfaces}
}

func (t *Tearing) Mode() Mode { return ModeTearing }

// Scan evaluates every configured surface in order.
func (t *Tearing) Scan(eq plasma.Equilibrium, lim Limits) []SurfaceResult {
	results := make([]SurfaceResult, 0, len(t.Surfaces))
	for _, surf := range t.Surfaces {
		qt := surf.QTarget()
		if !eq.HasSurface(qt) {
			results = append(results, SurfaceResult{Surface: surf, Skipped: true})
			continue
		}

		rs := eq.SurfaceRadius(qt)
		m := float64(surf.M)
		deltaPrime := -2*m/rs + (m*m-1)/rs
		index := deltaPrime*eq.MinorRadius/eq.Enhancement + lim.TearingOffset

		results = append(results, SurfaceResult{
			Surface: surf,
			Radius:  rs,
			Index:   index,
			Stable:  index < 0,
		})
	}
	return results
}

// Evaluate aggregates the surface scan: stable iff every evaluated surface
// is stable. When no surface exists inside [q0, q95] the verdict is
// NotApplicable rather than a vacuous "stable". The reported value is the
// worst (largest) stabilized index; the threshold is zero.
func (t *Tearing) Evaluate(eq plasma.Equilibrium, lim Limits) Result {
	res := Result{Mode: ModeTearing, Verdict: NotApplicable}

	evaluated := 0
	stable := true
	for _, sr := range t.Scan(eq, lim) {
		if sr.Skipped {
			continue
		}
		if evaluated == 0 || sr.Index > res.Value {
			res.Value = sr.Index
		}
		if !sr.Stable {
			stable = false
		}
		evaluated++
	}

	if evaluated == 0 {
		return res
	}

	res.Verdict = Stable
	if !stable {
		res.Verdict = Unstable
	}
	return res
}
