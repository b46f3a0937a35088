package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/herohde/shogimate1/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := config.Load(context.Background(), filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadParsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	contents := `
[catalog]
dir = "mystuff"

[generation]
max_pieces = 12
require_unique = false
max_attempts = 500
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := config.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "mystuff", cfg.Catalog.Dir)
	assert.Equal(t, 12, cfg.Generation.MaxPieces)
	assert.False(t, cfg.Generation.RequireUnique)
	assert.Equal(t, 500, cfg.Generation.MaxAttempts)
}

func TestLoadMalformedFileIsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("not = [valid toml"), 0o644))

	_, err := config.Load(context.Background(), path)
	assert.Error(t, err)
}
