package optics

import (
	"fmt"
	"sort"
	"strings"
)

// Names of the built-in scenario presets.
const (
	PresetIdeal        = "ideal"
	PresetUrban        = "urban"
	PresetLongDistance = "long-distance"
)

var presets = map[string]NoiseParameters{
	// A lossless, noiseless bench setup. Useful as a baseline and for
	// exercising the sifting logic in isolation.
	PresetIdeal: {
		FiberLengthKm: 0,
		WavelengthNm:  1550,
	},

	// A metropolitan link: short span at the 1310nm window, moderate
	// birefringence from temperature and vibration.
	PresetUrban: {
		FiberLengthKm:        20,
		WavelengthNm:         1310,
		DepolarizationProb:   0.03,
		PhaseDampingProb:     0.02,
		AmplitudeDampingProb: 0.01,
		ThermalNoiseProb:     0.005,
		PMDCoefficient:       0.1,
	},

	// A long-haul span at 1550nm. High loss and accumulated dispersion; the
	// protocol should land near its caution region here.
	PresetLongDistance: {
		FiberLengthKm:        80,
		WavelengthNm:         1550,
		DepolarizationProb:   0.08,
		PhaseDampingProb:     0.05,
		AmplitudeDampingProb: 0.03,
		ThermalNoiseProb:     0.01,
		PMDCoefficient:       0.2,
	},
}

// Preset returns the named built-in parameter bundle.
func Preset(name string) (NoiseParameters, error) {
	p, ok := presets[name]
	if !ok {
		return NoiseParameters{}, fmt.Errorf("unknown preset %q, have: %s",
			name, strings.Join(PresetNames(), ", "))
	}
	return p, nil
}

// PresetNames returns the built-in preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
