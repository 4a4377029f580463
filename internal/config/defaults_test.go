package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigYAML(t *testing.T) {
	data, err := DefaultConfigYAML()
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "# zackstrap configuration")
	assert.Contains(t, out, "# Overwrite existing files (same as --force)\nforce: false")
	assert.Contains(t, out, "failOnExists: false")
	assert.Contains(t, out, "pins:\n  ruby: 3.3.0")
	assert.Contains(t, out, `node: "24"`, "numeric-looking pins stay strings")
	assert.Contains(t, out, "timestamps: false")

	// The generated file must pass its own validation.
	require.NoError(t, Validate(data))
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	require.NoError(t, WriteDefault(path, false))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	dirInfo, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o700), dirInfo.Mode().Perm())

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Pins, cfg.Pins)
}

func TestWriteDefault_Existing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("force: true\n"), 0o600))

	err := WriteDefault(path, false)
	require.ErrorIs(t, err, os.ErrExist)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "force: true\n", string(data))

	require.NoError(t, WriteDefault(path, true))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "force: false")
}
