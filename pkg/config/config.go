// Package config loads the command-line tool's TOML configuration file.
package config

import (
	"context"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/seekerror/logw"
)

// Config holds the settings read from config.toml.
type Config struct {
	Catalog    CatalogConfig    `toml:"catalog"`
	Generation GenerationConfig `toml:"generation"`
}

// CatalogConfig configures where saved puzzles live.
type CatalogConfig struct {
	Dir string `toml:"dir"`
}

// GenerationConfig configures default parameters for puzzle generation.
type GenerationConfig struct {
	MaxPieces     int  `toml:"max_pieces"`
	RequireUnique bool `toml:"require_unique"`
	MaxAttempts   int  `toml:"max_attempts"`
}

// Default returns the configuration used when no config file is present.
func Default() Config {
	return Config{
		Catalog: CatalogConfig{Dir: "puzzles"},
		Generation: GenerationConfig{
			MaxPieces:     20,
			RequireUnique: true,
			MaxAttempts:   10000,
		},
	}
}

// Load reads and parses the TOML file at path. A missing file is not an error: it returns
// Default(). A present-but-malformed file is a fatal startup condition -- the caller is expected
// to treat the returned error as fail-fast, since running with a half-parsed configuration would
// silently diverge from what the operator asked for.
func Load(ctx context.Context, path string) (Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		logw.Infof(ctx, "config: %v not found, using defaults", path)
		return Default(), nil
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %v: %w", path, err)
	}
	logw.Infof(ctx, "config: loaded %v", path)
	return cfg, nil
}
