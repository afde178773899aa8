package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Reads values from the file", func(t *testing.T) {
		// Given: a config file with every value set
		path := writeConfig(t, "log-level: debug\nplayer:\n  mark: O\nengine:\n  seed: 42\n")

		// When: the config is loaded
		conf, err := Load(path)

		// Then: the values are taken from the file
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "O", conf.Player.Mark)
		assert.Equal(t, uint64(42), conf.Engine.Seed)
	})

	t.Run("Falls back to defaults", func(t *testing.T) {
		path := writeConfig(t, "{}\n")

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, "X", conf.Player.Mark)
		assert.Equal(t, uint64(0), conf.Engine.Seed)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		// Given: a file asking for X and an environment asking for O
		path := writeConfig(t, "player:\n  mark: X\n")
		t.Setenv("TTT_PLAYER_MARK", "O")

		// When: the config is loaded
		conf, err := Load(path)

		// Then: the environment wins
		require.NoError(t, err)
		assert.Equal(t, "O", conf.Player.Mark)
	})

	t.Run("Missing file is an error", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unable to load config file")
	})

	t.Run("MustLoad panics on a missing file", func(t *testing.T) {
		assert.Panics(t, func() { MustLoad(filepath.Join(t.TempDir(), "missing.yml")) })
	})
}
