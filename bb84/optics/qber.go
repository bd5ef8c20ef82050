package optics

import "math"

// Weights of the closed-form QBER estimate. These are empirically chosen to
// match observed channel behavior, not derived from a Kraus-operator
// calculation; scenario presets and the protocol thresholds depend on these
// exact values, so treat them as protocol constants.
const (
	depolarizationWeight = 0.25
	phaseDampingWeight   = 0.125
	thermalNoiseWeight   = 0.05
	pmdContributionCap   = 0.15
	qberCeiling          = 0.5
)

// EstimateQBER returns the expected quantum bit error rate for a channel
// configured with p, without running a photon-by-photon simulation. It backs
// the distance and noise sweep preview curves.
//
// Amplitude damping and fiber loss contribute nothing: lost photons never
// enter the sifted key, so they reduce key rate rather than raise the error
// rate. The result is always in [0, 0.5].
func EstimateQBER(p NoiseParameters) float64 {
	pmd := math.Min(p.PMDCoefficient*math.Sqrt(p.FiberLengthKm)/100, pmdContributionCap)
	qber := p.DepolarizationProb*depolarizationWeight +
		p.PhaseDampingProb*phaseDampingWeight +
		pmd +
		p.ThermalNoiseProb*thermalNoiseWeight
	return math.Min(qber, qberCeiling)
}
