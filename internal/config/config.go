// Package config loads the solver configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-bnb/puzzlesolver/internal/geode"
	"github.com/go-bnb/puzzlesolver/internal/logging"
	"github.com/go-bnb/puzzlesolver/internal/valley"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Blizzard configures the valley crossing search.
type Blizzard struct {
	Input      string `yaml:"input"`
	MaxMinutes int    `yaml:"max_minutes"`
	Memoize    bool   `yaml:"memoize"`
	Workers    int    `yaml:"workers"`
	Trace      bool   `yaml:"trace"`
}

// Geode configures the robot factory optimizer.
type Geode struct {
	Input   string `yaml:"input"`
	Minutes int    `yaml:"minutes"`
	// Blueprint selects the blueprint by id; 0 selects the first one.
	Blueprint int `yaml:"blueprint"`
	Workers   int `yaml:"workers"`
}

// Config is the configuration of both solvers.
type Config struct {
	Log      logging.Config `yaml:"log"`
	Blizzard Blizzard       `yaml:"blizzard"`
	Geode    Geode          `yaml:"geode"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Log: logging.Config{Level: "info", Format: logging.FormatText},
		Blizzard: Blizzard{
			Input:      "src/input24.txt",
			MaxMinutes: valley.DefaultMaxMinutes,
			Memoize:    true,
			Workers:    1,
		},
		Geode: Geode{
			Input:   "src/input19.txt",
			Minutes: geode.DefaultMinutes,
			Workers: 1,
		},
	}
}

// Load reads the YAML file at path on top of the defaults. An empty path
// returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	switch strings.ToLower(c.Log.Format) {
	case "", logging.FormatText, logging.FormatJSON:
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalidConfig, c.Log.Format)
	}
	if c.Blizzard.MaxMinutes <= 0 {
		return fmt.Errorf("%w: blizzard max_minutes must be positive", ErrInvalidConfig)
	}
	if c.Geode.Minutes < 0 {
		return fmt.Errorf("%w: geode minutes must not be negative", ErrInvalidConfig)
	}
	if c.Geode.Blueprint < 0 {
		return fmt.Errorf("%w: geode blueprint must not be negative", ErrInvalidConfig)
	}
	return nil
}
