package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

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
	t.Run("Fills defaults for missing keys", func(t *testing.T) {
		// Given: a config file that only sets the redis host
		path := writeConfig(t, "redis:\n  host: cache\n")

		// When: loading it
		conf, err := Load(path)
		require.NoError(t, err)

		// Then: everything else falls back to the defaults
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, "9090", conf.HTTPPort)
		assert.Equal(t, "cache:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, "cpu", conf.Game.Mode)
		assert.Equal(t, "X", conf.Game.HumanMark)
		assert.False(t, conf.Game.CPUStarts)
		assert.Equal(t, 320*time.Millisecond, conf.Game.CPUDelay)
		assert.False(t, conf.Game.SearchOpening)
	})

	t.Run("Reads game settings", func(t *testing.T) {
		// Given: a config file with a full game section
		path := writeConfig(t, `log-level: debug
game:
  mode: pvp
  human-mark: O
  cpu-starts: true
  cpu-delay: 1s
  search-opening: true
`)

		// When: loading it
		conf, err := Load(path)
		require.NoError(t, err)

		// Then: the values are taken from the file
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, Game{Mode: "pvp", HumanMark: "O", CPUStarts: true, CPUDelay: time.Second, SearchOpening: true}, conf.Game)
	})

	t.Run("Env overrides the file", func(t *testing.T) {
		path := writeConfig(t, "http-port: \"8000\"\n")
		t.Setenv("HTTP_PORT", "7000")

		conf, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "7000", conf.HTTPPort)
	})

	t.Run("Rejects an unknown log level", func(t *testing.T) {
		// Given: a config file with a misspelled level
		path := writeConfig(t, "log-level: verbose\n")

		// When: loading it
		_, err := Load(path)

		// Then: the file is refused instead of logging at a level nobody asked for
		require.ErrorContains(t, err, "LogLevel")
	})

	t.Run("Accepts every supported log level", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error"} {
			conf, err := Load(writeConfig(t, "log-level: "+level+"\n"))
			require.NoError(t, err)
			assert.Equal(t, level, conf.LogLevel)
		}
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
		require.Error(t, err)
	})
}
