// Package bb84 drives simulated rounds of the BB84 protocol over the optical
// channel model, producing a sifted key and the error statistics the
// protocol uses to judge channel security.
package bb84

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/qkdlab/bb84sim/bb84/optics"
	"github.com/qkdlab/bb84sim/bitmap"
)

// QBER thresholds for the security verdict. These are fixed protocol
// constants, not tuning knobs: 11% is the usual BB84 abort bound under
// one-way post-processing, and the band up to 15% is reported as a caution
// zone for teaching purposes.
const (
	SecureQBERThreshold  = 0.11
	CautionQBERThreshold = 0.15
)

// A Verdict is the protocol's judgment of a finished run.
type Verdict int

const (
	// VerdictSecure means the observed QBER is low enough to distill a key.
	VerdictSecure Verdict = iota
	// VerdictCaution means the QBER is elevated but below the abort bound.
	VerdictCaution
	// VerdictAbort means the run must be discarded: the error rate is
	// consistent with eavesdropping or the sifted key is empty.
	VerdictAbort
)

// String implements fmt.Stringer.
func (v Verdict) String() string {
	switch v {
	case VerdictSecure:
		return "secure"
	case VerdictCaution:
		return "caution"
	case VerdictAbort:
		return "abort"
	default:
		return fmt.Sprintf("Verdict(%d)", int(v))
	}
}

// VerdictFor maps an observed QBER to a verdict.
func VerdictFor(qber float64) Verdict {
	switch {
	case qber < SecureQBERThreshold:
		return VerdictSecure
	case qber < CautionQBERThreshold:
		return VerdictCaution
	default:
		return VerdictAbort
	}
}

// RunStatistics aggregates one simulation run. It is immutable once returned
// and owned by the caller.
type RunStatistics struct {
	// Rounds is the number of photons sent.
	Rounds int

	// Lost counts photons the channel absorbed before detection.
	Lost int

	// MatchedBases counts detected photons measured in the encoding basis;
	// these form the sifted key. MismatchedBases counts detected photons
	// measured in the wrong basis and discarded.
	MatchedBases    int
	MismatchedBases int

	// AliceKey and BobKey are the two ends' views of the sifted key, in
	// transmission order. BitErrors counts the positions where they differ.
	AliceKey  bitmap.Dense
	BobKey    bitmap.Dense
	BitErrors int

	// QBER is BitErrors / MatchedBases. It is undefined when the sifted key
	// is empty; QBERValid reports whether it holds a meaningful value.
	QBER      float64
	QBERValid bool

	// Verdict is the protocol's judgment: VerdictAbort whenever QBER is
	// undefined or at least CautionQBERThreshold.
	Verdict Verdict
}

// RunOpts packages the arguments for a simulation run. Rand has no default:
// randomness is an explicit dependency so that a seeded generator replays an
// entire run, every noise-stage coin flip included.
type RunOpts struct {
	// Rounds is the number of photons to send. Must be positive.
	Rounds int

	// Noise configures the optical channel.
	Noise optics.NoiseParameters

	// Rand is the randomness source for both protocol and channel draws.
	// Must be non-nil.
	Rand *rand.Rand
}

func (o RunOpts) validate() error {
	if o.Rounds <= 0 {
		return fmt.Errorf("rounds must be positive, got %d", o.Rounds)
	}
	if o.Rand == nil {
		return errors.New("must provide Rand")
	}
	if err := o.Noise.Validate(); err != nil {
		return fmt.Errorf("noise parameters: %w", err)
	}
	return nil
}
