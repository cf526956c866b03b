package grid

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"
)

// ReadExperiment loads and validates a YAML experiment definition.
func ReadExperiment(path string) (*Experiment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("grid: could not read experiment file: %w", err)
	}

	exp, err := ParseExperiment(data)
	if err != nil {
		return nil, fmt.Errorf("grid: %s: %w", path, err)
	}
	return exp, nil
}

// ParseExperiment decodes a YAML experiment definition. Unknown fields are
// rejected so that typos do not silently drop dimensions.
func ParseExperiment(data []byte) (*Experiment, error) {
	exp := &Experiment{}
	if err := yaml.UnmarshalStrict(data, exp); err != nil {
		return nil, err
	}
	if err := exp.Validate(); err != nil {
		return nil, err
	}
	return exp, nil
}
