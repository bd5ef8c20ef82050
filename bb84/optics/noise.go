package optics

import (
	"math"
	"math/rand"
)

// pmdRotationCap bounds the PMD-induced flip probability. Without it, long
// spans with large coefficients would drive the flip probability past a coin
// toss.
const pmdRotationCap = 0.5

// ApplyNoise sends one polarization state through the five-stage channel
// model and returns the degraded state, or a lost outcome if the photon was
// absorbed.
//
// The stage order is fixed: loss, depolarization, PMD, phase damping,
// thermal noise. Later stages act on the possibly-already-flipped bit and
// phase from earlier ones, and loss is resolved first since a lost photon
// cannot be further degraded. Reordering the stages changes the statistics
// of every downstream consumer and is a compatibility-breaking change.
//
// The function is pure given rng: a seeded generator replays every coin flip
// of a transmission exactly.
func ApplyNoise(state PolarizationState, p NoiseParameters, rng *rand.Rand) TransmissionOutcome {
	// Stage 1: amplitude damping and Beer-Lambert fiber loss.
	pLoss := 1 - math.Pow(10, -p.attenuation()*p.FiberLengthKm/10)
	combined := math.Min(p.AmplitudeDampingProb+pLoss, 1)
	if rng.Float64() < combined {
		return TransmissionOutcome{Lost: true}
	}
	state.Amplitude *= math.Sqrt(1 - combined)

	// Stage 2: depolarization. The dominant error source.
	if rng.Float64() < p.DepolarizationProb {
		state.Bit = 1 - state.Bit
		state.Amplitude *= math.Sqrt(1 - p.DepolarizationProb)
	}

	// Stage 3: polarization-mode dispersion. Severity grows with the square
	// root of distance.
	rotationProb := math.Min(p.PMDCoefficient*math.Sqrt(p.FiberLengthKm)/100, pmdRotationCap)
	if rng.Float64() < rotationProb {
		state.Bit = 1 - state.Bit
		state.Phase = math.Mod(state.Phase+math.Pi/4, 2*math.Pi)
	}

	// Stage 4: phase damping. No direct bit flip; decoherence scrambles the
	// relative phase.
	if rng.Float64() < p.PhaseDampingProb {
		state.Phase = rng.Float64() * 2 * math.Pi
		state.Amplitude *= math.Sqrt(1 - p.PhaseDampingProb/2)
	}

	// Stage 5: thermal noise. A dark count fires independent of the photon.
	if rng.Float64() < p.ThermalNoiseProb {
		state.Bit = 1 - state.Bit
	}

	return TransmissionOutcome{State: state}
}
