package cmd

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zackstrap/cli/internal/cmdtypes"
	oerrors "github.com/zackstrap/cli/internal/errors"
	"github.com/zackstrap/cli/internal/testutil"
	"github.com/zackstrap/cli/internal/interactive"
)

// fakePrompter answers selects by title and every confirm with confirm.
type fakePrompter struct {
	selects map[string]string
	confirm bool
	err     error
	titles  []string
}

func (f *fakePrompter) Select(title string, _ []interactive.Option, initial string) (string, error) {
	f.titles = append(f.titles, title)
	if f.err != nil {
		return "", f.err
	}
	if v, ok := f.selects[title]; ok {
		return v, nil
	}
	return initial, nil
}

func (f *fakePrompter) Confirm(title string, _ bool) (bool, error) {
	f.titles = append(f.titles, title)
	return f.confirm, f.err
}

func interactiveCmd() *cobra.Command {
	c := &cobra.Command{}
	c.SetContext(context.Background())
	return c
}

func TestInteractiveCmd_RequiresTerminal(t *testing.T) {
	testutil.IsolateConfig(t)

	_, err := executeCmd(t, "interactive", "--target", t.TempDir())
	require.Error(t, err)
	assert.Equal(t, oerrors.ExitValidationError, oerrors.ExitCodeFromError(err))
	assert.Contains(t, err.Error(), "zackstrap auto")
}

func TestRunInteractive(t *testing.T) {
	captureOutput(t)
	dir := testutil.GitRepo(t)
	testutil.WriteFile(t, dir, "Gemfile", "source 'https://rubygems.org'\n")

	p := &fakePrompter{
		selects: map[string]string{"Ruby template": "sinatra"},
		confirm: true,
	}
	cfg := &cmdtypes.GlobalConfig{Target: dir}

	require.NoError(t, runInteractive(interactiveCmd(), cfg, p))

	assert.Equal(t, []string{"Project type", "Ruby template", "Existing files", "Install git hooks?"}, p.titles)
	assert.Contains(t, testutil.ReadFile(t, dir, ".rubocop.yml"), "Sinatra-specific")
	assert.FileExists(t, filepath.Join(dir, ".git", "hooks", "pre-commit"))
}

func TestRunInteractive_OverwritePolicy(t *testing.T) {
	captureOutput(t)
	dir := t.TempDir()
	testutil.WriteFile(t, dir, ".editorconfig", "mine")

	p := &fakePrompter{selects: map[string]string{
		"Project type":   "basic",
		"Existing files": interactive.PolicyOverwrite,
	}}
	cfg := &cmdtypes.GlobalConfig{Target: dir}

	require.NoError(t, runInteractive(interactiveCmd(), cfg, p))
	assert.Contains(t, testutil.ReadFile(t, dir, ".editorconfig"), "root = true")
	assert.NoDirExists(t, filepath.Join(dir, ".git"))
}

func TestRunInteractive_Cancelled(t *testing.T) {
	captureOutput(t)
	dir := t.TempDir()

	p := &fakePrompter{err: interactive.ErrCancelled}
	cfg := &cmdtypes.GlobalConfig{Target: dir}

	err := runInteractive(interactiveCmd(), cfg, p)
	require.Error(t, err)
	assert.Equal(t, oerrors.ExitCancelled, oerrors.ExitCodeFromError(err))
	assert.NoFileExists(t, filepath.Join(dir, ".editorconfig"))
}
