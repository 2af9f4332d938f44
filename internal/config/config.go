package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the settings file name inside the config directory.
const FileName = "config.yaml"

// Config holds the optional user settings loaded from config.yaml.
type Config struct {
	// DataFile is the habits data file path. Empty means the default
	// (habits.json in the working directory).
	DataFile string `yaml:"data_file"`
	// Color is the color mode: "auto", "always", or "never".
	Color string `yaml:"color"`
}

// Default returns the built-in settings used when no config file exists.
func Default() *Config {
	return &Config{Color: "auto"}
}

// Load reads config.yaml from the config directory.
// A missing file or unresolvable config directory yields the defaults, not
// an error. A file that exists but does not parse is an error.
func Load() (*Config, error) {
	dir := Dir()
	if dir == "" {
		return Default(), nil
	}
	return LoadFile(filepath.Join(dir, FileName))
}

// LoadFile reads a config file from an explicit path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if cfg.Color == "" {
		cfg.Color = "auto"
	}
	return cfg, nil
}
