// Package config handles meshtool configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all meshtool settings.
type Config struct {
	Normals   NormalsConfig   `yaml:"normals"`
	Integrity IntegrityConfig `yaml:"integrity"`
	Preview   PreviewConfig   `yaml:"preview"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// NormalsConfig controls normal computation.
type NormalsConfig struct {
	Normalize bool `yaml:"normalize"`
	Smooth    bool `yaml:"smooth"` // also compute angle-weighted vertex normals
}

// IntegrityConfig controls how integrity findings are treated.
type IntegrityConfig struct {
	FailOnError bool `yaml:"fail_on_error"` // non-zero exit when a check fails
}

// PreviewConfig holds software preview settings.
type PreviewConfig struct {
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	Yaw       float64 `yaml:"yaw"`   // degrees around the vertical axis
	Pitch     float64 `yaml:"pitch"` // degrees above the horizon
	Format    string  `yaml:"format"`
	OutputDir string  `yaml:"output_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Normals: NormalsConfig{
			Normalize: true,
			Smooth:    true,
		},
		Integrity: IntegrityConfig{
			FailOnError: true,
		},
		Preview: PreviewConfig{
			Width:     800,
			Height:    600,
			Yaw:       30,
			Pitch:     25,
			Format:    "png",
			OutputDir: "previews",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports settings no command can work with.
func (c *Config) Validate() error {
	if c.Preview.Width <= 0 || c.Preview.Height <= 0 {
		return fmt.Errorf("%w: preview size %dx%d", ErrInvalidConfig, c.Preview.Width, c.Preview.Height)
	}
	switch c.Preview.Format {
	case "png", "bmp":
	default:
		return fmt.Errorf("%w: preview format %q (want png or bmp)", ErrInvalidConfig, c.Preview.Format)
	}
	if c.Preview.Pitch < -90 || c.Preview.Pitch > 90 {
		return fmt.Errorf("%w: preview pitch %g outside [-90, 90]", ErrInvalidConfig, c.Preview.Pitch)
	}
	return nil
}
