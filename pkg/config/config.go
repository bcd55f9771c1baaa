// Package config provides TOML-backed configuration for the manasim CLI,
// grounded on the teacher companion app's internal/config package.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config is the top-level manasim configuration file shape.
type Config struct {
	Mulligan MulliganDefaults `toml:"mulligan"`
	Run      RunDefaults      `toml:"run"`
	Log      LogConfig        `toml:"log"`
}

// MulliganDefaults seeds pkg/mulligan.Policy parameters for runs that don't
// override them. MulliganDownTo and MulliganOnLands reach the policy;
// StartingHandSize is only checked by Validate, and simulation.Run always
// deals a seven-card starting hand.
type MulliganDefaults struct {
	StartingHandSize int   `toml:"starting_hand_size"`
	MulliganDownTo   int   `toml:"mulligan_down_to"`
	MulliganOnLands  []int `toml:"mulligan_on_lands"`
}

// RunDefaults seeds pkg/simulation.Input fields for runs that don't
// override them.
type RunDefaults struct {
	Runs      uint32 `toml:"runs"`
	OnThePlay bool   `toml:"on_the_play"`
}

// LogConfig controls the verbosity of internal/logger.
type LogConfig struct {
	Level string `toml:"level"` // one of META, SIM, DECK, CARD
}

// DefaultConfig returns the configuration manasim ships with when no
// config.toml is present.
func DefaultConfig() *Config {
	return &Config{
		Mulligan: MulliganDefaults{
			StartingHandSize: 7,
			MulliganDownTo:   5,
			MulliganOnLands:  []int{0, 1, 6, 7},
		},
		Run: RunDefaults{
			Runs:      10000,
			OnThePlay: true,
		},
		Log: LogConfig{
			Level: "SIM",
		},
	}
}

// MulliganOnLandsSet converts the configured slice into the set shape
// pkg/mulligan.Policy expects.
func (d MulliganDefaults) MulliganOnLandsSet() map[int]bool {
	set := make(map[int]bool, len(d.MulliganOnLands))
	for _, n := range d.MulliganOnLands {
		set[n] = true
	}
	return set
}

// Load reads a TOML config file from path, falling back to DefaultConfig
// if path does not exist.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	return cfg, nil
}

// Save writes cfg to path in TOML form, creating parent directories as
// needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks configuration values the TOML decoder can't constrain on
// its own.
func (c *Config) Validate() error {
	if c.Mulligan.StartingHandSize <= 0 {
		return fmt.Errorf("mulligan.starting_hand_size must be positive, got %d", c.Mulligan.StartingHandSize)
	}
	if c.Mulligan.MulliganDownTo < 0 || c.Mulligan.MulliganDownTo > c.Mulligan.StartingHandSize {
		return fmt.Errorf("mulligan.mulligan_down_to %d out of range [0,%d]", c.Mulligan.MulliganDownTo, c.Mulligan.StartingHandSize)
	}
	if c.Run.Runs == 0 {
		return fmt.Errorf("run.runs must be positive")
	}
	return nil
}
