// Package config provides configuration loading and management for the
// mks CLI.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/mks/dimension"
)

// Config represents the complete mks configuration.
type Config struct {
	Display DisplayConfig `yaml:"display"`
}

// DisplayConfig controls how quantities are rendered.
type DisplayConfig struct {
	// Style selects the exponent rendering: "unicode" or "ascii".
	Style string `yaml:"style"`

	// Precision is the number of significant digits to print, or -1
	// for the shortest form that round-trips.
	Precision int `yaml:"precision"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Display: DisplayConfig{
			Style:     "unicode",
			Precision: -1,
		},
	}
}

// Style returns the dimension.Style selected by the config.
func (c *Config) Style() dimension.Style {
	if c.Display.Style == "ascii" {
		return dimension.ASCII
	}
	return dimension.Unicode
}

// Merge overlays non-zero fields from other onto c.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.Display.Style != "" {
		c.Display.Style = other.Display.Style
	}
	if other.Display.Precision != 0 {
		c.Display.Precision = other.Display.Precision
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	switch c.Display.Style {
	case "unicode", "ascii":
	default:
		return fmt.Errorf("invalid display style %q (want unicode or ascii)", c.Display.Style)
	}
	if c.Display.Precision < -1 || c.Display.Precision > 21 {
		return fmt.Errorf("invalid display precision %d (want -1..21)", c.Display.Precision)
	}
	return nil
}

// LoadFromFile reads a YAML config file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}
