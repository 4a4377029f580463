package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/zackstrap/cli/internal/errors"
	"github.com/zackstrap/cli/internal/output"
	"github.com/zackstrap/cli/internal/testutil"
)

func executeCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&buf)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return testutil.StripANSI(buf.String()), err
}

// captureOutput redirects user-facing output for tests that bypass the root
// command.
func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	output.SetOutput(&buf)
	t.Cleanup(func() { output.SetOutput(io.Discard) })
	return &buf
}

func TestNewRootCmd(t *testing.T) {
	root := NewRootCmd()

	assert.Equal(t, "zackstrap", root.Use)
	assert.True(t, root.SilenceUsage)
	assert.True(t, root.SilenceErrors)

	for _, name := range []string{"target", "force", "fail-on-exists", "dry-run", "config", "verbose", "timestamps"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(name), name)
	}
	assert.Equal(t, "f", root.PersistentFlags().Lookup("force").Shorthand)
	assert.Equal(t, "v", root.PersistentFlags().Lookup("verbose").Shorthand)

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"basic", "ruby", "python", "node", "go", "rust", "auto", "interactive", "hooks", "list", "config", "version"} {
		assert.Contains(t, names, want)
	}
}

func TestRoot_InvalidEnvOverride(t *testing.T) {
	testutil.IsolateConfig(t)
	t.Setenv("ZACKSTRAP_FORCE", "maybe")

	_, err := executeCmd(t, "basic", "--target", t.TempDir())
	require.Error(t, err)
	assert.Equal(t, oerrors.ExitValidationError, oerrors.ExitCodeFromError(err))
}

func TestRoot_BrokenConfigIsIgnored(t *testing.T) {
	path := testutil.IsolateConfig(t)
	require.NoError(t, os.WriteFile(path, []byte("force: [unclosed\n"), 0o644))
	dir := t.TempDir()

	_, err := executeCmd(t, "basic", "--target", dir)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, ".editorconfig"))
}

func TestVersionCmd(t *testing.T) {
	testutil.IsolateConfig(t)

	out, err := executeCmd(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "zackstrap:")
	assert.Contains(t, out, "Version:")
}
