package optics

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const goodScenarios = `
- name: lab-bench
  description: short patch cable on the optical bench
  params:
    fiber_length_km: 0.5
    wavelength_nm: 1550
    depolarization_prob: 0.01
    phase_damping_prob: 0
    amplitude_damping_prob: 0
    thermal_noise_prob: 0.001
    pmd_coefficient: 0.05
- name: campus-link
  params:
    fiber_length_km: 5
    wavelength_nm: 1310
    depolarization_prob: 0.02
    phase_damping_prob: 0.01
    amplitude_damping_prob: 0.005
    thermal_noise_prob: 0.002
    pmd_coefficient: 0.1
`

func TestLoadScenarios(t *testing.T) {
	scenarios, err := LoadScenarios(strings.NewReader(goodScenarios))
	require.NoError(t, err)
	require.Len(t, scenarios, 2)

	assert.Equal(t, "lab-bench", scenarios[0].Name)
	assert.Equal(t, 0.5, scenarios[0].Params.FiberLengthKm)
	assert.Equal(t, "campus-link", scenarios[1].Name)
	assert.Equal(t, 1310.0, scenarios[1].Params.WavelengthNm)
	for _, s := range scenarios {
		assert.NoError(t, s.Params.Validate(), "scenario %q", s.Name)
	}
}

func TestLoadScenariosRejects(t *testing.T) {
	tcs := []struct {
		name string
		yaml string
	}{
		{
			name: "missing name",
			yaml: `
- params:
    fiber_length_km: 1
    wavelength_nm: 1550
`,
		}, {
			name: "duplicate names",
			yaml: `
- name: twin
  params: {fiber_length_km: 1, wavelength_nm: 1550}
- name: twin
  params: {fiber_length_km: 2, wavelength_nm: 1550}
`,
		}, {
			name: "probability out of range",
			yaml: `
- name: haunted
  params:
    fiber_length_km: 1
    wavelength_nm: 1550
    depolarization_prob: 1.7
`,
		}, {
			name: "not yaml",
			yaml: `{{{`,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadScenarios(strings.NewReader(tc.yaml))
			assert.Error(t, err)
		})
	}
}
