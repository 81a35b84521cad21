// Package config loads and saves the user configuration file.
//
// The file is INI-formatted and lives at ~/.config/kernelvet/config.
// Values found in the file are overlaid onto built-in defaults, so a
// missing or partial file is never an error.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
	"gopkg.in/ini.v1"
)

// defaultInventoryPath is where an external collector drops the inventory.
const defaultInventoryPath = "/usr/lib/kernelvet/inventory.csv"

// Paths holds file location overrides.
type Paths struct {
	Blacklist string `ini:"blacklist"`
	Inventory string `ini:"inventory"`
	Support   string `ini:"support"`
}

// Checks holds one-time warning acknowledgements.
type Checks struct {
	Warning string `ini:"warning"`
}

// Hidden holds the externally-maintained hidden kernel set. Hidden kernels
// are excluded from all processing, blacklist rules included.
type Hidden struct {
	Kernels []string `ini:"kernels"`
}

// Config is the full user configuration.
type Config struct {
	Paths  Paths  `ini:"paths"`
	Checks Checks `ini:"checks"`
	Hidden Hidden `ini:"hidden"`
}

// Dir returns the kernelvet config directory (~/.config/kernelvet).
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(base, "kernelvet"), nil
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config"), nil
}

// Default returns the built-in configuration.
func Default() Config {
	cfg := Config{
		Paths: Paths{Inventory: defaultInventoryPath},
	}
	if dir, err := Dir(); err == nil {
		cfg.Paths.Blacklist = filepath.Join(dir, "blacklist")
	}
	return cfg
}

// Load reads the config file at path over the defaults. A missing file
// yields the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	file, err := ini.Load(path)
	if err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}

	if err := file.MapTo(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration to path atomically.
func (c Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	file := ini.Empty()
	if err := file.ReflectFrom(&c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	var buf bytes.Buffer
	if _, err := file.WriteTo(&buf); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := renameio.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// HiddenSet returns the hidden kernel names as a lookup set.
func (c Config) HiddenSet() map[string]bool {
	set := make(map[string]bool, len(c.Hidden.Kernels))
	for _, name := range c.Hidden.Kernels {
		set[name] = true
	}
	return set
}
