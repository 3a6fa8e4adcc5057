// Package config loads and saves tanklog user configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all tanklog configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Units      UnitsConfig      `toml:"units"`
	Currency   CurrencyConfig   `toml:"currency"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	ActiveVehicle   string `toml:"active_vehicle,omitempty"`
	DefaultPreviews int    `toml:"default_previews"`
	DataDir         string `toml:"data_dir,omitempty"`
}

// UnitsConfig holds display unit labels and the economy display mode. The
// stats engine is unit-agnostic; these only affect formatting.
type UnitsConfig struct {
	Distance string `toml:"distance"` // e.g. "km", "mi"
	Volume   string `toml:"volume"`   // e.g. "L", "gal"
	Economy  string `toml:"economy"`  // "per-volume" (km/L) or "per-100" (L/100km)
}

// CurrencyConfig holds the display currency symbol.
type CurrencyConfig struct {
	Symbol string `toml:"symbol"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// Supported economy display modes.
const (
	EconomyPerVolume = "per-volume"
	EconomyPer100    = "per-100"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			DefaultPreviews: 10,
		},
		Units: UnitsConfig{
			Distance: "km",
			Volume:   "L",
			Economy:  EconomyPerVolume,
		},
		Currency: CurrencyConfig{
			Symbol: "$",
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "tanklog")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "tanklog")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}
