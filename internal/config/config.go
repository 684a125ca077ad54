// Package config loads tool configuration from files, environment
// variables, and command-line flags.
package config

import (
	"fmt"
)

// Output format names accepted by the estimate command.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config represents the complete configuration for the homography tool.
type Config struct {
	LogLevel string `mapstructure:"log_level" yaml:"log_level" json:"log_level"`
	Verbose  bool   `mapstructure:"verbose" yaml:"verbose" json:"verbose"`
	Format   string `mapstructure:"format" yaml:"format" json:"format"`

	Warp WarpConfig `mapstructure:"warp" yaml:"warp" json:"warp"`
}

// WarpConfig contains defaults for the warp command.
type WarpConfig struct {
	OutputWidth  int `mapstructure:"output_width" yaml:"output_width" json:"output_width"`
	OutputHeight int `mapstructure:"output_height" yaml:"output_height" json:"output_height"`
}

// DefaultConfig returns the configuration used when no file, environment
// variable, or flag overrides a value.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Verbose:  false,
		Format:   FormatText,
		Warp: WarpConfig{
			OutputWidth:  0, // derived from quad aspect ratio when zero
			OutputHeight: 1024,
		},
	}
}

// Validate checks the configuration for values the commands cannot work
// with.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q (expected debug, info, warn, or error)", c.LogLevel)
	}

	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("invalid format %q (expected %s or %s)", c.Format, FormatText, FormatJSON)
	}

	if c.Warp.OutputWidth < 0 {
		return fmt.Errorf("warp.output_width must not be negative, got %d", c.Warp.OutputWidth)
	}
	if c.Warp.OutputHeight <= 0 {
		return fmt.Errorf("warp.output_height must be positive, got %d", c.Warp.OutputHeight)
	}
	return nil
}
