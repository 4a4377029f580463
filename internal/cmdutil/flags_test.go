package cmdutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zackstrap/cli/internal/config"
	oerrors "github.com/zackstrap/cli/internal/errors"
	"github.com/zackstrap/cli/internal/output"
	"github.com/zackstrap/cli/internal/project"
)

func TestTemplateFlags_AddTo(t *testing.T) {
	var tf TemplateFlags
	cmd := &cobra.Command{Use: "test"}
	tf.AddTo(cmd, project.Ruby)

	flag := cmd.Flags().Lookup("template")
	require.NotNil(t, flag)
	assert.Equal(t, "t", flag.Shorthand)
	assert.Equal(t, "", flag.DefValue)
	assert.Contains(t, flag.Usage, "rails, sinatra, gem")
}

func TestTemplateFlags_Resolve(t *testing.T) {
	cfg := &config.Config{Templates: map[string]string{"ruby": "rails"}}

	tests := []struct {
		name string
		flag string
		cfg  *config.Config
		kind project.Kind
		want string
	}{
		{"flag wins", "gem", cfg, project.Ruby, "gem"},
		{"config default", "", cfg, project.Ruby, "rails"},
		{"kind without config entry", "", cfg, project.Go, "default"},
		{"nil config", "", nil, project.Ruby, "default"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tf := TemplateFlags{Template: tt.flag}
			assert.Equal(t, tt.want, tf.Resolve(tt.cfg, tt.kind))
		})
	}
}

func TestOutputFlags(t *testing.T) {
	var of OutputFlags
	cmd := &cobra.Command{Use: "test"}
	of.AddTo(cmd)

	flag := cmd.Flags().Lookup("output")
	require.NotNil(t, flag)
	assert.Equal(t, "o", flag.Shorthand)
	assert.Equal(t, "table", flag.DefValue)

	of.Format = "json"
	got, err := of.Parse()
	require.NoError(t, err)
	assert.Equal(t, output.FormatJSON, got)

	of.Format = "xml"
	_, err = of.Parse()
	require.Error(t, err)
	assert.Equal(t, oerrors.ExitValidationError, oerrors.ExitCodeFromError(err))
}

func TestResolveTarget(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	got, err := ResolveTarget("")
	require.NoError(t, err)
	assert.Equal(t, wd, got)

	got, err = ResolveTarget("sub")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(wd, "sub"), got)

	dir := t.TempDir()
	got, err = ResolveTarget(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, got)
}

func TestParseKindArg(t *testing.T) {
	tests := []struct {
		arg      string
		wantKind project.Kind
		wantOK   bool
		wantErr  bool
	}{
		{"", "", false, false},
		{"auto", "", false, false},
		{"AUTO", "", false, false},
		{"ruby", project.Ruby, true, false},
		{"golang", project.Go, true, false},
		{"cobol", "", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			kind, ok, err := ParseKindArg(tt.arg)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, oerrors.ErrValidation)
				assert.Contains(t, err.Error(), "Valid kinds")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, kind)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}
