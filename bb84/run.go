package bb84

import (
	"math/rand"

	"github.com/qkdlab/bb84sim/bb84/optics"
	"github.com/qkdlab/bb84sim/bitmap"
)

// Run simulates one full BB84 exchange: opts.Rounds photons prepared by
// Alice, degraded by the channel, measured by Bob, then sifted down to the
// matching-basis rounds.
func Run(opts RunOpts) (RunStatistics, error) {
	if err := opts.validate(); err != nil {
		return RunStatistics{}, err
	}
	rng := opts.Rand

	var aliceBits, aliceBases, bobBases, bobBits, detected bitmap.Dense
	stats := RunStatistics{Rounds: opts.Rounds}
	for i := 0; i < opts.Rounds; i++ {
		bit := rng.Intn(2)
		basis := optics.Basis(rng.Intn(2))
		bobBasis := optics.Basis(rng.Intn(2))
		aliceBits.AppendBit(bit == 1)
		aliceBases.AppendBit(basis == optics.Diagonal)
		bobBases.AppendBit(bobBasis == optics.Diagonal)

		out := optics.ApplyNoise(optics.NewState(bit, basis), opts.Noise, rng)
		if out.Lost {
			stats.Lost++
			detected.AppendBit(false)
			bobBits.AppendBit(false)
			continue
		}
		detected.AppendBit(true)
		bobBits.AppendBit(measure(out.State, bobBasis, rng))
	}

	siftMask := bitmap.And(bitmap.XNor(aliceBases, bobBases), detected)
	stats.AliceKey = bitmap.Select(aliceBits, siftMask)
	stats.BobKey = bitmap.Select(bobBits, siftMask)
	stats.MatchedBases = bitmap.CountOnes(siftMask)
	stats.MismatchedBases = bitmap.CountOnes(detected) - stats.MatchedBases
	stats.BitErrors = bitmap.CountOnes(bitmap.XOr(stats.AliceKey, stats.BobKey))

	if stats.MatchedBases == 0 {
		// All photons lost or no basis ever matched: QBER is undefined, and
		// an empty key is never usable.
		stats.Verdict = VerdictAbort
		return stats, nil
	}
	stats.QBER = float64(stats.BitErrors) / float64(stats.MatchedBases)
	stats.QBERValid = true
	stats.Verdict = VerdictFor(stats.QBER)
	return stats, nil
}

// measure collapses a received state in Bob's basis. A matching basis reads
// out the channel's (possibly flipped) bit; an orthogonal basis collapses to
// a fair coin.
func measure(state optics.PolarizationState, basis optics.Basis, rng *rand.Rand) bool {
	if basis == state.Basis {
		return state.Bit == 1
	}
	return rng.Intn(2) == 1
}
