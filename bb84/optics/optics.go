// Package optics models the degradation of polarization-encoded qubits in a
// noisy optical channel. It provides the per-photon noise pipeline, a
// closed-form QBER estimator for parameter sweeps, and named parameter
// presets for common deployment scenarios.
package optics

import "fmt"

// A Basis identifies one of the two conjugate polarization bases used by
// BB84.
type Basis int

const (
	// Rectilinear is the horizontal/vertical basis.
	Rectilinear Basis = iota
	// Diagonal is the +45/-45 degree basis.
	Diagonal
)

// String implements fmt.Stringer.
func (b Basis) String() string {
	switch b {
	case Rectilinear:
		return "rectilinear"
	case Diagonal:
		return "diagonal"
	default:
		return fmt.Sprintf("Basis(%d)", int(b))
	}
}

// A PolarizationState is the unit transmitted per protocol round: a logical
// bit encoded as a photon polarization, together with the amplitude and
// relative phase the channel has left it with.
type PolarizationState struct {
	// Basis is the encoding basis the sender used.
	Basis Basis

	// Bit is the logical value encoded, 0 or 1.
	Bit int

	// Amplitude is the surviving probability amplitude in [0, 1]. It only
	// ever decreases as the photon traverses the channel.
	Amplitude float64

	// Phase is the relative phase in [0, 2pi). Decoherence events mutate it;
	// it is not separately observable.
	Phase float64
}

// NewState returns an ideal polarization state encoding bit in basis, with
// full amplitude and zero phase.
func NewState(bit int, basis Basis) PolarizationState {
	return PolarizationState{
		Basis:     basis,
		Bit:       bit,
		Amplitude: 1,
	}
}

// A TransmissionOutcome is the result of sending one photon through the
// channel: either a possibly-mutated state, or no detection event at all.
// Loss is always explicit; a surviving state never has zero amplitude.
type TransmissionOutcome struct {
	State PolarizationState
	Lost  bool
}
