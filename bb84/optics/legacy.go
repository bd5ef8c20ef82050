package optics

// Proportional split of the legacy single-slider noise value across the
// physical mechanisms. The split is part of the public contract: saved
// experiment links from the old simulator must keep producing the same
// curves.
const (
	legacyDepolarizationShare = 0.40
	legacyPhaseDampingShare   = 0.30
	legacyAmplitudeShare      = 0.20
	legacyPMDShare            = 0.05
	legacyThermalShare        = 0.05

	// The legacy simulator modeled a fixed short lab fiber; PMD shares are
	// converted to a coefficient against this span.
	legacyFiberLengthKm = 1
)

// LegacyNoiseToOptical converts a legacy "noise percent" slider value in
// [0, 100] into a full parameter set, distributing the slider value across
// the channel mechanisms in fixed proportions: 40% depolarization, 30% phase
// damping, 20% amplitude damping, and the remainder split between PMD and
// thermal noise. Out-of-range slider values are clamped.
func LegacyNoiseToOptical(percent float64) NoiseParameters {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	noise := percent / 100

	// Invert the estimator's PMD term over the legacy fiber span so the
	// coefficient carries exactly legacyPMDShare of the slider value.
	pmdCoeff := legacyPMDShare * noise * 100

	return NoiseParameters{
		FiberLengthKm:        legacyFiberLengthKm,
		WavelengthNm:         1550,
		DepolarizationProb:   legacyDepolarizationShare * noise,
		PhaseDampingProb:     legacyPhaseDampingShare * noise,
		AmplitudeDampingProb: legacyAmplitudeShare * noise,
		ThermalNoiseProb:     legacyThermalShare * noise,
		PMDCoefficient:       pmdCoeff,
	}
}
