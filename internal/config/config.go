// Package config loads carerev settings and holds the billing-code catalogs.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/theirongolddev/carerev/internal/model"

	"github.com/BurntSushi/toml"
)

// Config holds all carerev configuration. The file is read-only to carerev.
type Config struct {
	Defaults   model.Params       `toml:"defaults"`
	Appearance AppearanceConfig   `toml:"appearance"`
	Rates      map[string]float64 `toml:"rates,omitempty"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Defaults: model.DefaultParams(),
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "carerev")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "carerev")
}

// Path returns the full path to the default config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config at path, returning defaults if it doesn't exist.
// An empty path means the default location.
func Load(path string) (Config, error) {
	if path == "" {
		path = Path()
	}
	cfg := DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // path is chosen by the local user
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	f := fileConfig{
		Defaults:   fileDefaults{Params: cfg.Defaults},
		Appearance: cfg.Appearance,
	}
	if err := toml.Unmarshal(data, &f); err != nil {
		return DefaultConfig(), fmt.Errorf("parsing config %s: %w", path, err)
	}

	cfg.Defaults = f.Defaults.Params
	if f.Defaults.PatientCount != nil {
		cfg.Defaults.PatientCount = model.RoundCount(*f.Defaults.PatientCount)
	}
	cfg.Appearance = f.Appearance
	cfg.Rates = f.Rates
	return cfg, nil
}

// fileConfig is the on-disk shape of Config. patient_count may be written
// as a float and is rounded like the flag and form inputs.
type fileConfig struct {
	Defaults   fileDefaults       `toml:"defaults"`
	Appearance AppearanceConfig   `toml:"appearance"`
	Rates      map[string]float64 `toml:"rates"`
}

type fileDefaults struct {
	model.Params
	PatientCount *float64 `toml:"patient_count"`
}

// Exists returns true if a config file exists at path (or the default location).
func Exists(path string) bool {
	if path == "" {
		path = Path()
	}
	_, err := os.Stat(path)
	return err == nil
}

// RateTable returns the catalog rates with the configured overrides applied.
func (c Config) RateTable() (RateTable, error) {
	return DefaultRates().WithOverrides(c.Rates)
}

// Encode writes cfg as TOML.
func Encode(w io.Writer, cfg Config) error {
	return toml.NewEncoder(w).Encode(cfg)
}
