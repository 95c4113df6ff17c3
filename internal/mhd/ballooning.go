package mhd

import "github.com/plasmakit/tokaval/internal/plasma"

// Sample is one point of the ballooning radial scan.
type Sample struct {
	R         float64 // normalized radius
	Q         float64 // local safety factor
	Alpha     float64 // pressure-gradient parameter
	AlphaCrit float64 // critical threshold
	Stable    bool
}

// Margin is the stability headroom at this radius.
func (s Sample) Margin() float64 {
	return s.AlphaCrit - s.Alpha
}

// Ballooning evaluates pressure-gradient stability across a radial scan of
// the plasma. The scan spans [0.1, 0.95] inclusive so both the near-axis
// and near-edge points, where the margin is weakest, are always checked.
type Ballooning struct{}

func NewBallooning() *Ballooning { return &Ballooning{} }

func (b *Ballooning) Mode() Mode { return ModeBallooning }

// SampleAt evaluates the local ballooning criterion at normalized radius r:
// alpha = beta·q²·2r against alpha_crit = c·s²/q² raised by the shaping
// factor, with shear proxy s = 2r.
func (b *Ballooning) SampleAt(eq plasma.Equilibrium, lim Limits, r float64) Sample {
	q := eq.Q(r)
	alpha := eq.Beta * q * q * 2 * r
	s := 2 * r
	alphaCrit := lim.BallooningCoeff * s * s / (q * q) * eq.ShapingFactor()
	return Sample{
		R:         r,
		Q:         q,
		Alpha:     alpha,
		AlphaCrit: alphaCrit,
		Stable:    alpha < alphaCrit,
	}
}

// Scan evaluates the criterion at lim.RadialSamples evenly spaced radii.
// Samples are independent; no state is shared between them.
func (b *Ballooning) Scan(eq plasma.Equilibrium, lim Limits) []Sample {
	radii := RadialGrid(lim.RadialSamples)
	samples := make([]Sample, len(radii))
	for i, r := range radii {
		samples[i] = b.SampleAt(eq, lim, r)
	}
	return samples
}

// Evaluate aggregates the radial scan: stable iff every sample is stable.
// The reported value and threshold come from the worst-margin sample.
func (b *Ballooning) Evaluate(eq plasma.Equilibrium, lim Limits) Result {
	samples := b.Scan(eq, lim)

	worst := samples[0]
	verdict := Stable
	for _, s := range samples {
		if !s.Stable {
			verdict = Unstable
		}
		if s.Margin() < worst.Margin() {
			worst = s
		}
	}

	return Result{
		Mode:      ModeBallooning,
		Value:     worst.Alpha,
		Threshold: worst.AlphaCrit,
		Verdict:   verdict,
	}
}

// RadialGrid returns n evenly spaced normalized radii spanning
// [0.1, 0.95] inclusive.
func RadialGrid(n int) []float64 {
	if n < 2 {
		n = 2
	}
	const lo, hi = 0.1, 0.95
	step := (hi - lo) / float64(n-1)
	radii := make([]float64, n)
	for i := range radii {
		radii[i] = lo + float64(i)*step
	}
	return radii
}
