// Package config loads session settings from YAML and the environment.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds everything needed to start a session.
type Config struct {
	// Seed for the shared random source. Zero means seed from the clock.
	Seed int64 `yaml:"seed"`

	// EncounterRate is the per-frame chance of a wild battle in the overworld.
	// Pointer so an explicit 0 (no encounters) survives defaults.
	EncounterRate *float64 `yaml:"encounter_rate"`

	// EncounterRequiresMovement skips the encounter roll on frames with no movement.
	EncounterRequiresMovement bool `yaml:"encounter_requires_movement"`

	// ClampMinDamage floors every hit at 1. Pointer so an explicit false survives defaults.
	ClampMinDamage *bool `yaml:"clamp_min_damage"`

	// SignatureStrategy is "exact" or "prefix".
	SignatureStrategy string `yaml:"signature_strategy"`

	PlayerSpeed int         `yaml:"player_speed"`
	FrameRate   int         `yaml:"frame_rate"`
	Field       FieldConfig `yaml:"field"`
	Starter     Starter     `yaml:"starter"`

	// DataDir overrides the embedded catalogs when set.
	DataDir string `yaml:"data_dir"`

	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// FieldConfig sizes the overworld in cells.
type FieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Starter is the Pokemon placed in the party at session start.
type Starter struct {
	Species string `yaml:"species"`
	Level   int    `yaml:"level"`
}

type TelemetryConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Defaults.
const (
	DefaultEncounterRate     = 0.1
	DefaultSignatureStrategy = "prefix"
	DefaultPlayerSpeed       = 1
	DefaultFrameRate         = 30
	DefaultFieldWidth        = 20 // 160px viewport at 8px per cell
	DefaultFieldHeight       = 18 // 144px viewport at 8px per cell
	DefaultStarterSpecies    = "Charmander"
	DefaultStarterLevel      = 5
)

// Default returns a config with every field at its default.
func Default() *Config {
	c := &Config{}
	c.ApplyDefaults()
	return c
}

// Load reads a YAML file and fills unset fields with defaults.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(b)
}

// Parse decodes YAML bytes and fills unset fields with defaults.
func Parse(b []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	c.ApplyDefaults()
	return &c, nil
}

// ApplyDefaults fills unset fields.
func (c *Config) ApplyDefaults() {
	if c.EncounterRate == nil {
		v := DefaultEncounterRate
		c.EncounterRate = &v
	}
	if c.ClampMinDamage == nil {
		v := true
		c.ClampMinDamage = &v
	}
	if c.SignatureStrategy == "" {
		c.SignatureStrategy = DefaultSignatureStrategy
	}
	if c.PlayerSpeed == 0 {
		c.PlayerSpeed = DefaultPlayerSpeed
	}
	if c.FrameRate == 0 {
		c.FrameRate = DefaultFrameRate
	}
	if c.Field.Width == 0 {
		c.Field.Width = DefaultFieldWidth
	}
	if c.Field.Height == 0 {
		c.Field.Height = DefaultFieldHeight
	}
	if c.Starter.Species == "" {
		c.Starter.Species = DefaultStarterSpecies
	}
	if c.Starter.Level == 0 {
		c.Starter.Level = DefaultStarterLevel
	}
}

// Encounter returns the per-frame encounter probability.
func (c *Config) Encounter() float64 {
	if c.EncounterRate == nil {
		return DefaultEncounterRate
	}
	return *c.EncounterRate
}

// ClampDamage reports whether hits are floored at 1.
func (c *Config) ClampDamage() bool {
	return c.ClampMinDamage == nil || *c.ClampMinDamage
}

// Validate checks ranges that defaults cannot repair.
func (c *Config) Validate() error {
	var errs []error
	if r := c.Encounter(); r < 0 || r > 1 {
		errs = append(errs, fmt.Errorf("encounter_rate %v outside [0,1]", r))
	}
	if c.PlayerSpeed < 1 {
		errs = append(errs, fmt.Errorf("player_speed %d must be at least 1", c.PlayerSpeed))
	}
	if c.FrameRate < 1 {
		errs = append(errs, fmt.Errorf("frame_rate %d must be at least 1", c.FrameRate))
	}
	if c.Field.Width < 1 || c.Field.Height < 1 {
		errs = append(errs, fmt.Errorf("field %dx%d must be positive", c.Field.Width, c.Field.Height))
	}
	if c.Starter.Level < 1 {
		errs = append(errs, fmt.Errorf("starter level %d must be at least 1", c.Starter.Level))
	}
	switch c.SignatureStrategy {
	case "exact", "prefix":
	default:
		errs = append(errs, fmt.Errorf("signature_strategy %q must be exact or prefix", c.SignatureStrategy))
	}
	return errors.Join(errs...)
}
