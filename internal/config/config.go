// Package config defines the run-configuration record that drives a
// render: black hole mass, disk parameters, camera geometry, and
// execution parameters such as thread count. Values are loaded from
// or saved to YAML via gopkg.in/yaml.v3, matching every other
// configuration-bearing package in this module's lineage.
package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults per the run-configuration table.
const (
	DefaultSolarMass         = 10.0
	DefaultEddingtonFraction = 0.1
	DefaultWidth             = 800
	DefaultHeight            = 600
	DefaultObserverRadius    = 100.0
	DefaultInclination       = 75.0
	DefaultFov               = 45.0
	DefaultThreads           = 4
)

// RunConfig is the full set of inputs a render needs. It has no
// dependency on the rendering packages themselves; internal/config
// only ever produces values, never consumes raytracer/disk/metric
// types.
type RunConfig struct {
	SolarMass         float64 `yaml:"solar_mass"`
	IncludeDisk       bool    `yaml:"include_disk"`
	EddingtonFraction float64 `yaml:"eddington_fraction"`
	Width             int     `yaml:"width"`
	Height            int     `yaml:"height"`
	ObserverRadius    float64 `yaml:"observer_radius"` // units of r_s
	Inclination       float64 `yaml:"inclination"`     // degrees
	Fov               float64 `yaml:"fov"`             // degrees, horizontal
	Threads           int     `yaml:"threads"`
	OutputDir         string  `yaml:"output_dir"`
}

// DefaultConfig returns the configuration described by the
// run-configuration defaults table.
func DefaultConfig() *RunConfig {
	return &RunConfig{
		SolarMass:         DefaultSolarMass,
		IncludeDisk:       true,
		EddingtonFraction: DefaultEddingtonFraction,
		Width:             DefaultWidth,
		Height:            DefaultHeight,
		ObserverRadius:    DefaultObserverRadius,
		Inclination:       DefaultInclination,
		Fov:               DefaultFov,
		Threads:           DefaultThreads,
		OutputDir:         "output",
	}
}

// Load reads a YAML run configuration from path, starting from
// DefaultConfig so an omitted field keeps its default rather than
// zeroing out.
func Load(path string) (*RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg to path as YAML.
func Save(path string, cfg *RunConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects a configuration before any rendering begins, per
// the "invalid configuration fails fast with no partial output" error
// policy: non-positive dimensions, non-finite or non-positive mass,
// non-positive FOV, and less than one thread are all rejected.
func (c *RunConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: width and height must be positive, got %dx%d", c.Width, c.Height)
	}
	if !(c.SolarMass > 0) || math.IsNaN(c.SolarMass) || math.IsInf(c.SolarMass, 0) {
		return fmt.Errorf("config: solar_mass must be a positive finite number, got %v", c.SolarMass)
	}
	if c.EddingtonFraction <= 0 {
		return fmt.Errorf("config: eddington_fraction must be positive, got %v", c.EddingtonFraction)
	}
	if c.ObserverRadius <= 1 {
		return fmt.Errorf("config: observer_radius must exceed 1 (in units of r_s), got %v", c.ObserverRadius)
	}
	if c.Inclination < 0 || c.Inclination > 90 {
		return fmt.Errorf("config: inclination must be in [0, 90] degrees, got %v", c.Inclination)
	}
	if c.Fov <= 0 {
		return fmt.Errorf("config: fov must be positive, got %v", c.Fov)
	}
	if c.Threads < 1 {
		return fmt.Errorf("config: threads must be at least 1, got %d", c.Threads)
	}
	return nil
}
