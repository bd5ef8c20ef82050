package optics

import (
	"math"
	"math/rand"
	"testing"
)

// noiseless is a zero-noise, zero-length channel at 1550nm.
var noiseless = NoiseParameters{WavelengthNm: 1550}

func TestApplyNoiseIdealChannel(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for bit := 0; bit <= 1; bit++ {
		for _, basis := range []Basis{Rectilinear, Diagonal} {
			out := ApplyNoise(NewState(bit, basis), noiseless, rng)
			if out.Lost {
				t.Fatalf("ideal channel lost a photon (bit=%d, basis=%v)", bit, basis)
			}
			if out.State.Bit != bit {
				t.Errorf("ideal channel flipped bit %d in basis %v", bit, basis)
			}
			if out.State.Amplitude != 1 {
				t.Errorf("ideal channel damped amplitude to %v", out.State.Amplitude)
			}
			if out.State.Phase != 0 {
				t.Errorf("ideal channel shifted phase to %v", out.State.Phase)
			}
		}
	}
}

func TestApplyNoiseCertainEvents(t *testing.T) {
	tcs := []struct {
		name     string
		params   NoiseParameters
		wantLost bool
		wantBit  int
	}{
		{
			name:     "amplitude damping of 1 always loses the photon",
			params:   NoiseParameters{WavelengthNm: 1550, AmplitudeDampingProb: 1},
			wantLost: true,
		}, {
			name:    "depolarization of 1 always flips",
			params:  NoiseParameters{WavelengthNm: 1550, DepolarizationProb: 1},
			wantBit: 1,
		}, {
			name:    "thermal noise of 1 always flips",
			params:  NoiseParameters{WavelengthNm: 1550, ThermalNoiseProb: 1},
			wantBit: 1,
		}, {
			name: "two certain flips cancel",
			params: NoiseParameters{
				WavelengthNm:       1550,
				DepolarizationProb: 1,
				ThermalNoiseProb:   1,
			},
			wantBit: 0,
		}, {
			name:    "phase damping never flips",
			params:  NoiseParameters{WavelengthNm: 1550, PhaseDampingProb: 1},
			wantBit: 0,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(7))
			for i := 0; i < 100; i++ {
				out := ApplyNoise(NewState(0, Rectilinear), tc.params, rng)
				if out.Lost != tc.wantLost {
					t.Fatalf("Lost == %v, want %v", out.Lost, tc.wantLost)
				}
				if out.Lost {
					continue
				}
				if out.State.Bit != tc.wantBit {
					t.Fatalf("Bit == %d, want %d", out.State.Bit, tc.wantBit)
				}
			}
		})
	}
}

func TestAmplitudeMonotoneNonIncreasing(t *testing.T) {
	params := NoiseParameters{
		FiberLengthKm:      10,
		WavelengthNm:       1550,
		DepolarizationProb: 0.3,
		PhaseDampingProb:   0.4,
		ThermalNoiseProb:   0.2,
		PMDCoefficient:     1,
	}
	rng := rand.New(rand.NewSource(99))
	for i := 0; i < 1000; i++ {
		out := ApplyNoise(NewState(i%2, Diagonal), params, rng)
		if out.Lost {
			continue
		}
		if out.State.Amplitude <= 0 || out.State.Amplitude >= 1 {
			t.Fatalf("survivor amplitude %v outside (0, 1) on round %d", out.State.Amplitude, i)
		}
		if out.State.Phase < 0 || out.State.Phase >= 2*math.Pi {
			t.Fatalf("phase %v outside [0, 2pi) on round %d", out.State.Phase, i)
		}
	}
}

func TestLossRateMatchesBeerLambert(t *testing.T) {
	// 25km at 1550nm: P_loss = 1 - 10^(-0.2*25/10) ~= 0.684.
	params := NoiseParameters{FiberLengthKm: 25, WavelengthNm: 1550}
	want := 1 - math.Pow(10, -0.2*25/10)

	rng := rand.New(rand.NewSource(3))
	const n = 20000
	lost := 0
	for i := 0; i < n; i++ {
		if ApplyNoise(NewState(0, Rectilinear), params, rng).Lost {
			lost++
		}
	}
	got := float64(lost) / n
	if math.Abs(got-want) > 0.02 {
		t.Errorf("loss rate %v, want %v within 0.02", got, want)
	}
}

func TestPMDRotationIsCapped(t *testing.T) {
	// Coefficient and span chosen so the uncapped rotation probability would
	// be far above 1; observed flips should hover at the 0.5 cap.
	params := NoiseParameters{FiberLengthKm: 400, WavelengthNm: 1550, PMDCoefficient: 50,
		AttenuationDbPerKm: 1e-9}

	rng := rand.New(rand.NewSource(11))
	const n = 20000
	flips := 0
	for i := 0; i < n; i++ {
		out := ApplyNoise(NewState(0, Rectilinear), params, rng)
		if out.Lost {
			continue
		}
		if out.State.Bit == 1 {
			flips++
		}
	}
	got := float64(flips) / n
	if math.Abs(got-0.5) > 0.02 {
		t.Errorf("capped PMD flip rate %v, want 0.5 within 0.02", got)
	}
}
