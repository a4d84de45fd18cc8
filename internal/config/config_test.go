package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetenv clears key for the duration of the test, restoring any prior
// value afterwards. t.Setenv cannot express "unset".
func unsetenv(t *testing.T, key string) {
	t.Helper()
	if v, ok := os.LookupEnv(key); ok {
		t.Cleanup(func() { os.Setenv(key, v) })
		os.Unsetenv(key)
	}
}

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "SERVER_MODE", "STORE_PATH", "LOG_LEVEL", "LOG_FORMAT"} {
		unsetenv(t, key)
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults apply without a config file", func(t *testing.T) {
		clearConfigEnv(t)

		cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)

		assert.Equal(t, "5000", cfg.Server.Port)
		assert.Equal(t, "development", cfg.Server.Mode)
		assert.Equal(t, "data/students.json", cfg.Store.Path)
		assert.Equal(t, "info", cfg.Logging.Level)
		assert.Equal(t, "console", cfg.Logging.Format)
	})

	t.Run("yaml file overrides defaults", func(t *testing.T) {
		clearConfigEnv(t)
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: "9090"
  mode: production
store:
  path: /var/lib/studentinfo/students.json
logging:
  level: debug
  format: json
`), 0o644))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)

		assert.Equal(t, "9090", cfg.Server.Port)
		assert.Equal(t, "production", cfg.Server.Mode)
		assert.Equal(t, "/var/lib/studentinfo/students.json", cfg.Store.Path)
		assert.Equal(t, "debug", cfg.Logging.Level)
		assert.Equal(t, "json", cfg.Logging.Format)
	})

	t.Run("PORT env beats both defaults and file", func(t *testing.T) {
		clearConfigEnv(t)
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("server:\n  port: \"9090\"\n"), 0o644))
		t.Setenv("PORT", "8080")

		cfg, err := LoadConfig(path)
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.Server.Port)
	})

	t.Run("STORE_PATH env overrides the store location", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("STORE_PATH", "/tmp/records.json")

		cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)

		assert.Equal(t, "/tmp/records.json", cfg.Store.Path)
	})

	t.Run("non-numeric port is rejected", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("PORT", "not-a-port")

		_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml is rejected", func(t *testing.T) {
		clearConfigEnv(t)
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("server: [broken"), 0o644))

		_, err := LoadConfig(path)
		assert.Error(t, err)
	})
}
