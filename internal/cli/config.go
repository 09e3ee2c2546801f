package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config mirrors the solver settings a YAML file may provide. Zero
// values mean "not set"; explicit command-line flags always win.
//
// Example:
//
//	tol: 1e-8
//	max_iterations: 100000
//	workers: 4
//	step: 0.005
//	source: 2.0
type Config struct {
	Tol           float64 `yaml:"tol"`
	MaxIterations int     `yaml:"max_iterations"`
	Workers       int     `yaml:"workers"`
	Step          float64 `yaml:"step"`
	Source        float64 `yaml:"source"`
}

// LoadConfig reads and parses a YAML settings file.
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("cli: read config %q: %w", path, err)
	}

	var cfg Config
	if err = yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("cli: parse config %q: %w", path, err)
	}

	return cfg, nil
}
