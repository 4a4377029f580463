package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/zackstrap/cli/internal/errors"
	"github.com/zackstrap/cli/internal/testutil"
)

func TestKindCmd_WritesFiles(t *testing.T) {
	tests := []struct {
		args  []string
		files []string
	}{
		{[]string{"basic"}, []string{".editorconfig", ".prettierrc", "justfile"}},
		{[]string{"ruby", "-t", "rails"}, []string{".ruby-version", ".node-version", ".rubocop.yml", "package.json"}},
		{[]string{"python", "--template", "django"}, []string{".python-version", "pyproject.toml", ".flake8", "requirements-dev.txt"}},
		{[]string{"nodejs"}, []string{".nvmrc", ".eslintrc.json", "package.json"}},
		{[]string{"go", "-t", "web"}, []string{"go.mod", ".golangci.yml", ".gitignore"}},
		{[]string{"rust", "-t", "cli"}, []string{"rustfmt.toml", ".clippy.toml", ".cargo/config.toml"}},
	}

	for _, tt := range tests {
		t.Run(tt.args[0], func(t *testing.T) {
			testutil.IsolateConfig(t)
			dir := t.TempDir()

			out, err := executeCmd(t, append(tt.args, "--target", dir)...)
			require.NoError(t, err)

			for _, f := range tt.files {
				assert.FileExists(t, filepath.Join(dir, f))
				assert.Contains(t, out, "f:"+f)
			}
			assert.Contains(t, out, "created")
		})
	}
}

func TestKindCmd_TemplateSelectsJustfile(t *testing.T) {
	testutil.IsolateConfig(t)
	dir := t.TempDir()

	_, err := executeCmd(t, "ruby", "-t", "rails", "--target", dir)
	require.NoError(t, err)
	assert.Contains(t, testutil.ReadFile(t, dir, "justfile"), "rails-server:")
}

func TestKindCmd_SecondRunSkips(t *testing.T) {
	testutil.IsolateConfig(t)
	dir := t.TempDir()

	_, err := executeCmd(t, "basic", "--target", dir)
	require.NoError(t, err)
	testutil.WriteFile(t, dir, ".prettierrc", "mine")

	out, err := executeCmd(t, "basic", "--target", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "skipped")
	assert.Equal(t, "mine", testutil.ReadFile(t, dir, ".prettierrc"))
}

func TestKindCmd_Force(t *testing.T) {
	testutil.IsolateConfig(t)
	dir := t.TempDir()
	testutil.WriteFile(t, dir, ".prettierrc", "mine")

	out, err := executeCmd(t, "basic", "-f", "--target", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "overwritten")
	assert.NotEqual(t, "mine", testutil.ReadFile(t, dir, ".prettierrc"))
}

func TestKindCmd_ForceFromEnv(t *testing.T) {
	testutil.IsolateConfig(t)
	t.Setenv("ZACKSTRAP_FORCE", "true")
	dir := t.TempDir()
	testutil.WriteFile(t, dir, ".editorconfig", "mine")

	_, err := executeCmd(t, "basic", "--target", dir)
	require.NoError(t, err)
	assert.Contains(t, testutil.ReadFile(t, dir, ".editorconfig"), "root = true")
}

func TestKindCmd_FailOnExists(t *testing.T) {
	testutil.IsolateConfig(t)
	dir := t.TempDir()
	testutil.WriteFile(t, dir, ".editorconfig", "mine")

	_, err := executeCmd(t, "basic", "--fail-on-exists", "--target", dir)
	require.Error(t, err)
	assert.Equal(t, oerrors.ExitFileExists, oerrors.ExitCodeFromError(err))
	assert.ErrorIs(t, err, oerrors.ErrFileExists)
	assert.NoFileExists(t, filepath.Join(dir, ".prettierrc"))
}

func TestKindCmd_DryRun(t *testing.T) {
	testutil.IsolateConfig(t)
	dir := t.TempDir()

	out, err := executeCmd(t, "rust", "--dry-run", "--target", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Dry run:")
	assert.Contains(t, out, "config.toml")
	assert.Contains(t, out, "planned")
	assert.NoFileExists(t, filepath.Join(dir, "rustfmt.toml"))
	assert.NoDirExists(t, filepath.Join(dir, ".cargo"))
}

func TestKindCmd_InvalidTarget(t *testing.T) {
	testutil.IsolateConfig(t)
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	tests := []struct {
		name     string
		target   string
		sentinel error
	}{
		{"missing", filepath.Join(t.TempDir(), "nope"), oerrors.ErrDirectoryNotFound},
		{"regular file", file, oerrors.ErrNotADirectory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, extra := range [][]string{nil, {"--dry-run"}} {
				args := append([]string{"basic", "--target", tt.target}, extra...)
				_, err := executeCmd(t, args...)
				require.Error(t, err)
				assert.Equal(t, oerrors.ExitNotFound, oerrors.ExitCodeFromError(err))
				assert.ErrorIs(t, err, tt.sentinel)
			}
		})
	}
}

func TestKindCmd_InvalidPins(t *testing.T) {
	path := testutil.IsolateConfig(t)
	require.NoError(t, os.WriteFile(path, []byte("pins:\n  node: latest\n"), 0o644))

	_, err := executeCmd(t, "ruby", "--target", t.TempDir())
	require.Error(t, err)
	assert.Equal(t, oerrors.ExitValidationError, oerrors.ExitCodeFromError(err))
}

func TestKindCmd_ConfiguredPins(t *testing.T) {
	path := testutil.IsolateConfig(t)
	require.NoError(t, os.WriteFile(path, []byte("pins:\n  ruby: \"3.2.2\"\n"), 0o644))
	dir := t.TempDir()

	_, err := executeCmd(t, "ruby", "--target", dir)
	require.NoError(t, err)
	assert.Equal(t, "3.2.2\n", testutil.ReadFile(t, dir, ".ruby-version"))
}

func TestAutoCmd(t *testing.T) {
	testutil.IsolateConfig(t)
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "go.mod", "module example.com/app\n")

	out, err := executeCmd(t, "auto", "--target", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Detected Go project")
	assert.FileExists(t, filepath.Join(dir, ".golangci.yml"))
	assert.Equal(t, "module example.com/app\n", testutil.ReadFile(t, dir, "go.mod"))
}

func TestAutoCmd_ConfiguredTemplate(t *testing.T) {
	path := testutil.IsolateConfig(t)
	require.NoError(t, os.WriteFile(path, []byte("templates:\n  go: cli\n"), 0o644))
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "main.go", "package main\n")

	_, err := executeCmd(t, "auto", "--target", dir)
	require.NoError(t, err)
	assert.Contains(t, testutil.ReadFile(t, dir, "justfile"), "go-cli:")
}

func TestAutoCmd_EmptyDirectoryIsBasic(t *testing.T) {
	testutil.IsolateConfig(t)
	dir := t.TempDir()

	out, err := executeCmd(t, "auto", "--target", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Detected Basic project")
	assert.FileExists(t, filepath.Join(dir, "justfile"))
}
