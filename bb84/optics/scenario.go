package optics

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// A Scenario is a named, human-edited channel configuration, typically
// shipped alongside the simulator so that lesson material can reference
// parameter bundles without recompiling.
type Scenario struct {
	Name        string          `yaml:"name"`
	Description string          `yaml:"description,omitempty"`
	Params      NoiseParameters `yaml:"params"`
}

// LoadScenarios decodes a YAML scenario list from r. Every entry is
// validated; a single bad entry fails the whole load so that a typo in a
// lesson file is caught immediately rather than surfacing as a strange
// curve.
func LoadScenarios(r io.Reader) ([]Scenario, error) {
	var scenarios []Scenario
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&scenarios); err != nil {
		return nil, fmt.Errorf("decoding scenarios: %w", err)
	}
	seen := make(map[string]bool, len(scenarios))
	for i, s := range scenarios {
		if s.Name == "" {
			return nil, fmt.Errorf("scenario %d has no name", i)
		}
		if seen[s.Name] {
			return nil, fmt.Errorf("duplicate scenario name %q", s.Name)
		}
		seen[s.Name] = true
		if err := s.Params.Validate(); err != nil {
			return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
		}
	}
	return scenarios, nil
}

// LoadScenarioFile reads and validates a YAML scenario file.
func LoadScenarioFile(path string) ([]Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadScenarios(f)
}
