// Package config loads optimizer options from an optional css-tokens.toml file.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the tool's runtime options.
type Config struct {
	// Dir is the bundled output directory to optimize.
	Dir string `toml:"dir"`

	// Prefix is the synthetic-name prefix for mangled variables.
	Prefix string `toml:"prefix"`

	// Verbose enables per-file size reporting.
	Verbose bool `toml:"verbose"`
}

// Default returns the configuration used when no file and no flags are given.
func Default() Config {
	return Config{
		Dir:    "dist",
		Prefix: "--_",
	}
}

// Load reads path and overlays it on the defaults. A missing file is not an
// error: the defaults are returned unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, nil
}
