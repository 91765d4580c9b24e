package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/derekjohnsonva/minesweeper/internal/mines"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestReadMissingFileFallsBackToDefaults(t *testing.T) {
	config, err := Read(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, Default(), config)
	assert.False(t, config.Development())
}

func TestReadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `{
		"width": 30,
		"height": 16,
		"mine_count": 99,
		"glyphs": "ascii",
		"log": {"level": "debug", "file": "/tmp/mines.log"}
	}`)

	config, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, mines.GameParams{Width: 30, Height: 16, MineCount: 99}, config.Params())
	assert.Equal(t, "ascii", config.Glyphs)
	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "/tmp/mines.log", config.Log.File)
	// untouched keys keep their defaults
	assert.Equal(t, 3, config.Log.MaxBackups)
	assert.Equal(t, "production", config.Mode)
}

func TestReadMalformed(t *testing.T) {
	_, err := Read(writeConfig(t, `{"width": "wide"}`))
	assert.ErrorContains(t, err, "unable to parse config")
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("MINES_LOG_LEVEL", "warn")
	t.Setenv("MINES_GLYPHS", "ascii")
	t.Setenv("MINES_COLOR", "true")
	t.Setenv("DEVELOPMENT", "1")

	config, err := Read("")
	require.NoError(t, err)
	assert.Equal(t, "warn", config.Log.Level)
	assert.Equal(t, "ascii", config.Glyphs)
	assert.True(t, config.Color)
	assert.True(t, config.Development())
}

func TestEnvBadColor(t *testing.T) {
	t.Setenv("MINES_COLOR", "maybe")
	_, err := Read("")
	assert.ErrorContains(t, err, "MINES_COLOR")
}

func TestFields(t *testing.T) {
	fields := Default().Fields()
	assert.Equal(t, "9:9:10", fields["params"])
	assert.Equal(t, "production", fields["mode"])
}
