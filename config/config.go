package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file inside Dir().
const FileName = "config.yaml"

// Dir returns the stixpick configuration directory.
// Respects XDG_CONFIG_HOME on Unix, APPDATA on Windows.
func Dir() string {
	var base string

	if runtime.GOOS == "windows" {
		base = os.Getenv("APPDATA")
		if base == "" {
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	} else {
		base = os.Getenv("XDG_CONFIG_HOME")
		if base == "" {
			home, _ := os.UserHomeDir()
			base = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(base, "stixpick")
}

// File returns the path to config.yaml.
func File() string {
	return filepath.Join(Dir(), FileName)
}

// Config holds the user settings.
type Config struct {
	// Language is a BCP 47 tag for entity type labels.
	Language string `yaml:"language"`

	// LabelLimit caps the label chips shown per row.
	LabelLimit int `yaml:"label_limit"`

	// VisibleRows is used until the terminal reports its size.
	VisibleRows int `yaml:"visible_rows"`

	// Columns overrides column widths by key.
	Columns map[string]int `yaml:"columns"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Language:    "en",
		LabelLimit:  3,
		VisibleRows: 15,
	}
}

// Load reads the configuration at path over the defaults. A missing file
// yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values no layout can render.
func (c Config) Validate() error {
	if c.LabelLimit < 0 {
		return fmt.Errorf("label_limit must not be negative, got %d", c.LabelLimit)
	}
	if c.VisibleRows < 0 {
		return fmt.Errorf("visible_rows must not be negative, got %d", c.VisibleRows)
	}
	for k, w := range c.Columns {
		if w <= 0 {
			return fmt.Errorf("column %q: width must be positive, got %d", k, w)
		}
	}
	return nil
}
