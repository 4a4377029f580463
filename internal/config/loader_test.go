package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoaderLoad(t *testing.T) {
	t.Run("loads config from file", func(t *testing.T) {
		path := writeConfig(t, `
force: true
failOnExists: true
templates:
  ruby: rails
  python: django
pins:
  ruby: "3.2.2"
  node: 22
log:
  timestamps: true
`)

		loader := NewLoader()
		cfg, err := loader.Load(path)
		require.NoError(t, err)

		assert.True(t, cfg.Force)
		assert.True(t, cfg.FailOnExists)
		assert.Equal(t, "rails", cfg.Templates["ruby"])
		assert.Equal(t, "django", cfg.Templates["python"])
		assert.Equal(t, "3.2.2", cfg.Pins.Ruby)
		assert.Equal(t, "22", cfg.Pins.Node)
		require.NotNil(t, cfg.Log.Timestamps)
		assert.True(t, *cfg.Log.Timestamps)

		assert.True(t, loader.InConfig("force"))
		assert.True(t, loader.InConfig("failOnExists"))
		assert.False(t, loader.InConfig("nope"))
		assert.Equal(t, path, loader.ConfigFileUsed())
	})

	t.Run("returns empty config for missing file", func(t *testing.T) {
		cfg, err := NewLoader().Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
		require.NoError(t, err)
		assert.False(t, cfg.Force)
		assert.Empty(t, cfg.Templates)
		assert.Nil(t, cfg.Log.Timestamps)
	})

	t.Run("environment overrides pins and templates", func(t *testing.T) {
		path := writeConfig(t, "pins:\n  node: \"20\"\ntemplates:\n  go: web\n")
		t.Setenv("ZACKSTRAP_PINS_NODE", "23")
		t.Setenv("ZACKSTRAP_TEMPLATES_GO", "cli")
		t.Setenv("ZACKSTRAP_TEMPLATES_RUST", "web")

		cfg, err := NewLoader().Load(path)
		require.NoError(t, err)
		assert.Equal(t, "23", cfg.Pins.Node)
		assert.Equal(t, "cli", cfg.Templates["go"])
		assert.Equal(t, "web", cfg.Templates["rust"])
	})

	t.Run("invalid yaml is an error", func(t *testing.T) {
		path := writeConfig(t, "force: [unclosed\n")
		_, err := NewLoader().Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading config file")
	})

	t.Run("uses ZACKSTRAP_CONFIG when no path given", func(t *testing.T) {
		path := writeConfig(t, "failOnExists: true\n")
		t.Setenv(EnvConfig, path)

		cfg, err := NewLoader().Load("")
		require.NoError(t, err)
		assert.True(t, cfg.FailOnExists)
	})
}
