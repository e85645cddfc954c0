package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variables that override file values.
const (
	EnvSeed             = "WILDENCOUNTER_SEED"
	EnvEncounterRate    = "WILDENCOUNTER_ENCOUNTER_RATE"
	EnvClampDamage      = "WILDENCOUNTER_CLAMP_DAMAGE"
	EnvSignature        = "WILDENCOUNTER_SIGNATURE"
	EnvPlayerSpeed      = "WILDENCOUNTER_PLAYER_SPEED"
	EnvDataDir          = "WILDENCOUNTER_DATA_DIR"
	EnvRequiresMovement = "WILDENCOUNTER_ENCOUNTER_REQUIRES_MOVEMENT"
	EnvTelemetryAPIKey  = "HONEYCOMB_WILDENCOUNTER_API_KEY"
	EnvTelemetryDataset = "HONEYCOMB_WILDENCOUNTER_DATASET"
)

// ApplyEnv overrides fields from the environment.
// Unset variables leave the field alone; malformed values are errors.
func (c *Config) ApplyEnv() error {
	if v, ok := lookup(EnvSeed); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		c.Seed = seed
	}
	if v, ok := lookup(EnvEncounterRate); ok {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvEncounterRate, err)
		}
		c.EncounterRate = &rate
	}
	if v, ok := lookup(EnvClampDamage); ok {
		clamp, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvClampDamage, err)
		}
		c.ClampMinDamage = &clamp
	}
	if v, ok := lookup(EnvRequiresMovement); ok {
		req, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvRequiresMovement, err)
		}
		c.EncounterRequiresMovement = req
	}
	if v, ok := lookup(EnvPlayerSpeed); ok {
		speed, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvPlayerSpeed, err)
		}
		c.PlayerSpeed = speed
	}
	if v, ok := lookup(EnvSignature); ok {
		c.SignatureStrategy = v
	}
	if v, ok := lookup(EnvDataDir); ok {
		c.DataDir = v
	}
	if os.Getenv(EnvTelemetryAPIKey) != "" {
		c.Telemetry.Enabled = true
	}
	return nil
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
