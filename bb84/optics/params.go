package optics

import (
	"fmt"
	"sort"
)

// attenuationByWavelength holds fiber attenuation in dB/km at the standard
// telecom windows. Wavelengths between table points are linearly
// interpolated; wavelengths outside the table are clamped to the nearest
// entry.
var attenuationByWavelength = map[float64]float64{
	850:  2.2,
	1310: 0.35,
	1550: 0.2,
}

// NoiseParameters describes one optical channel configuration. A parameter
// set is immutable once applied to a photon; the same set may be reused
// across an entire run.
type NoiseParameters struct {
	// FiberLengthKm is the length of the fiber span. Must be >= 0.
	FiberLengthKm float64 `yaml:"fiber_length_km"`

	// WavelengthNm is the carrier wavelength. Attenuation is derived from it
	// via the standard telecom windows unless AttenuationDbPerKm is set.
	WavelengthNm float64 `yaml:"wavelength_nm"`

	// AttenuationDbPerKm overrides the wavelength-derived attenuation when
	// positive. Zero means "derive from WavelengthNm".
	AttenuationDbPerKm float64 `yaml:"attenuation_db_per_km,omitempty"`

	// DepolarizationProb is the per-photon probability of a
	// birefringence-driven polarization flip. In [0, 1].
	DepolarizationProb float64 `yaml:"depolarization_prob"`

	// PhaseDampingProb is the per-photon probability of a decoherence event
	// randomizing the relative phase. In [0, 1].
	PhaseDampingProb float64 `yaml:"phase_damping_prob"`

	// AmplitudeDampingProb is the per-photon absorption probability, applied
	// on top of Beer-Lambert fiber loss. In [0, 1].
	AmplitudeDampingProb float64 `yaml:"amplitude_damping_prob"`

	// ThermalNoiseProb is the per-photon probability of a dark count flipping
	// the detected bit. In [0, 1].
	ThermalNoiseProb float64 `yaml:"thermal_noise_prob"`

	// PMDCoefficient is the polarization-mode dispersion coefficient in
	// ps/sqrt(km). Must be >= 0.
	PMDCoefficient float64 `yaml:"pmd_coefficient"`
}

// Validate returns an error if any parameter lies outside its documented
// domain. It is called at every public entry point before any simulation
// runs.
func (p NoiseParameters) Validate() error {
	if p.FiberLengthKm < 0 {
		return fmt.Errorf("fiber length must be non-negative, got %v", p.FiberLengthKm)
	}
	if p.WavelengthNm <= 0 {
		return fmt.Errorf("wavelength must be positive, got %v", p.WavelengthNm)
	}
	if p.AttenuationDbPerKm < 0 {
		return fmt.Errorf("attenuation must be non-negative, got %v", p.AttenuationDbPerKm)
	}
	if p.PMDCoefficient < 0 {
		return fmt.Errorf("PMD coefficient must be non-negative, got %v", p.PMDCoefficient)
	}
	probs := []struct {
		name string
		val  float64
	}{
		{"depolarization", p.DepolarizationProb},
		{"phase damping", p.PhaseDampingProb},
		{"amplitude damping", p.AmplitudeDampingProb},
		{"thermal noise", p.ThermalNoiseProb},
	}
	for _, pr := range probs {
		if pr.val < 0 || pr.val > 1 {
			return fmt.Errorf("%s probability must be in [0, 1], got %v", pr.name, pr.val)
		}
	}
	return nil
}

// Attenuation returns the fiber attenuation in dB/km for the given
// wavelength, interpolating between the standard telecom windows and
// clamping outside them.
func Attenuation(wavelengthNm float64) float64 {
	points := make([]float64, 0, len(attenuationByWavelength))
	for wl := range attenuationByWavelength {
		points = append(points, wl)
	}
	sort.Float64s(points)
	if wavelengthNm <= points[0] {
		return attenuationByWavelength[points[0]]
	}
	last := points[len(points)-1]
	if wavelengthNm >= last {
		return attenuationByWavelength[last]
	}
	for i := 1; i < len(points); i++ {
		lo, hi := points[i-1], points[i]
		if wavelengthNm > hi {
			continue
		}
		frac := (wavelengthNm - lo) / (hi - lo)
		a, b := attenuationByWavelength[lo], attenuationByWavelength[hi]
		return a + frac*(b-a)
	}
	return attenuationByWavelength[last]
}

// attenuation resolves the effective attenuation for p, honoring an explicit
// override.
func (p NoiseParameters) attenuation() float64 {
	if p.AttenuationDbPerKm > 0 {
		return p.AttenuationDbPerKm
	}
	return Attenuation(p.WavelengthNm)
}
