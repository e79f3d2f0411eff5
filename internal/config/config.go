package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SolverConfig holds the two effort budgets.
type SolverConfig struct {
	MaxChecks              int `yaml:"maxChecks"`
	MaxChecksWithoutAction int `yaml:"maxChecksWithoutAction"`
}

// Config is the file-backed configuration for the CLI and the server.
// Flags override individual fields after loading.
type Config struct {
	Addr        string       `yaml:"addr"`
	PersistPath string       `yaml:"persistPath"`
	LogLevel    string       `yaml:"logLevel"`
	Color       bool         `yaml:"color"`
	Solver      SolverConfig `yaml:"solver"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Addr:        ":8080",
		PersistPath: "./data",
		LogLevel:    "info",
		Solver: SolverConfig{
			MaxChecks:              10000,
			MaxChecksWithoutAction: 500,
		},
	}
}

// Load reads a YAML config file over the defaults. Unset fields keep
// their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.Solver.MaxChecks <= 0 {
		cfg.Solver.MaxChecks = Default().Solver.MaxChecks
	}
	if cfg.Solver.MaxChecksWithoutAction <= 0 {
		cfg.Solver.MaxChecksWithoutAction = Default().Solver.MaxChecksWithoutAction
	}
	return cfg, nil
}
