// Package config loads the timeit CLI configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigDir is relative to the user's home directory.
	DefaultConfigDir  = ".config/timeit"
	DefaultConfigFile = "config.yaml"
)

// Color modes accepted by the CLI.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds CLI defaults. Flags override file values.
type Config struct {
	// Silent suppresses the timing line by default.
	Silent bool `yaml:"silent"`
	// Color is one of auto, always, never.
	Color string `yaml:"color"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Silent: false,
		Color:  ColorAuto,
	}
}

// DefaultPath returns the standard config file location.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determine home directory: %w", err)
	}
	return filepath.Join(home, DefaultConfigDir, DefaultConfigFile), nil
}

// Load reads the configuration at path. A missing file is not an error; the
// defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	case "":
		c.Color = ColorAuto
		return nil
	default:
		return fmt.Errorf("invalid color mode %q (want auto, always or never)", c.Color)
	}
}
