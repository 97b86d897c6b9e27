// Package config exposes the strongly typed job configuration loaded from YAML.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config carries the validated settings for a single run.
type Config struct {
	Seed        int
	Window      int
	Version     string
	MetricsAddr string
}

// fileConfig mirrors the YAML document. Required fields are pointers so a
// missing key is distinguishable from a zero value (seed: 0 is legal).
type fileConfig struct {
	Seed        *int    `yaml:"seed" validate:"required"`
	Window      *int    `yaml:"window" validate:"required,gte=1"`
	Version     *string `yaml:"version" validate:"required"`
	MetricsAddr string  `yaml:"metrics_addr"`
}

// Load reads a YAML file from disk, applies SIGNALRUN_* environment overrides,
// and validates the result before the core is invoked.
func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	var raw fileConfig
	if err := yaml.NewDecoder(file).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}

	if err := applyEnvOverrides(&raw); err != nil {
		return nil, err
	}

	validate := validator.New()
	if err := validate.Struct(raw); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Config{
		Seed:        *raw.Seed,
		Window:      *raw.Window,
		Version:     *raw.Version,
		MetricsAddr: raw.MetricsAddr,
	}, nil
}

// applyEnvOverrides lets environment variables win over file values.
func applyEnvOverrides(raw *fileConfig) error {
	if v := os.Getenv("SIGNALRUN_SEED"); v != "" {
		seed, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("SIGNALRUN_SEED must be an integer: %w", err)
		}
		raw.Seed = &seed
	}
	if v := os.Getenv("SIGNALRUN_WINDOW"); v != "" {
		window, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("SIGNALRUN_WINDOW must be an integer: %w", err)
		}
		raw.Window = &window
	}
	if v := os.Getenv("SIGNALRUN_VERSION"); v != "" {
		raw.Version = &v
	}
	if v := os.Getenv("SIGNALRUN_METRICS_ADDR"); v != "" {
		raw.MetricsAddr = v
	}
	return nil
}
