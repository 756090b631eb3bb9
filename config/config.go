// Package config provides configuration loading and access for the
// simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters: grid dimensions,
// the geological features to place, and the initial population
// composition. Everything else about the rules is fixed by the species
// variants.
type Config struct {
	World      WorldConfig        `yaml:"world"`
	Features   []FeatureConfig    `yaml:"features"`
	Population []PopulationConfig `yaml:"population"`
	Run        RunConfig          `yaml:"run"`
	Telemetry  TelemetryConfig    `yaml:"telemetry"`
}

// WorldConfig holds the toroidal grid dimensions.
type WorldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// FeatureConfig describes one group of identical geological features.
// Count copies are placed at random grid cells at world setup.
type FeatureConfig struct {
	Name      string           `yaml:"name"`
	Count     int              `yaml:"count"`
	Compounds []CompoundConfig `yaml:"compounds"`
}

// CompoundConfig describes one chemical compound found at a feature.
type CompoundConfig struct {
	Name   string  `yaml:"name"`
	Energy float64 `yaml:"energy"`
}

// PopulationConfig describes one species cohort: how many organisms start,
// and with what energy and size.
type PopulationConfig struct {
	Species string  `yaml:"species"` // canonical key: microbe, tubeworm, crab
	Count   int     `yaml:"count"`
	Energy  float64 `yaml:"energy"`
	Size    float64 `yaml:"size"`
}

// RunConfig holds default run parameters, overridable from the CLI.
type RunConfig struct {
	Cycles int   `yaml:"cycles"`
	Seed   int64 `yaml:"seed"` // 0 = time-based
}

// TelemetryConfig holds reporting parameters.
type TelemetryConfig struct {
	LogEvery int `yaml:"log_every"` // cycles between stats log lines
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults
// if path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded
// defaults. If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	return cfg, nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
