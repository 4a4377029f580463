package cmdutil

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/zackstrap/cli/internal/errors"
)

func TestExitErrorFor(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantHint string
		sentinel error
	}{
		{
			name:     "missing target",
			err:      &oerrors.TargetError{Path: "/nope", Err: oerrors.ErrDirectoryNotFound},
			wantCode: oerrors.ExitNotFound,
			wantHint: "Create the directory",
			sentinel: oerrors.ErrDirectoryNotFound,
		},
		{
			name:     "target is a file",
			err:      &oerrors.TargetError{Path: "/file", Err: oerrors.ErrNotADirectory},
			wantCode: oerrors.ExitNotFound,
			wantHint: "Pass a directory",
			sentinel: oerrors.ErrNotADirectory,
		},
		{
			name:     "file exists",
			err:      &oerrors.FileExistsError{Path: "/p/.editorconfig"},
			wantCode: oerrors.ExitFileExists,
			wantHint: "--force",
			sentinel: oerrors.ErrFileExists,
		},
		{
			name:     "hook exists",
			err:      &oerrors.HookExistsError{Path: "/p/.git/hooks/pre-commit"},
			wantCode: oerrors.ExitFileExists,
			wantHint: "replace existing hooks",
			sentinel: oerrors.ErrHookExists,
		},
		{
			name:     "git not initialized",
			err:      fmt.Errorf("%w: /p/.git/hooks", oerrors.ErrGitNotInitialized),
			wantCode: oerrors.ExitGitNotInitialized,
			wantHint: "git init",
			sentinel: oerrors.ErrGitNotInitialized,
		},
		{
			name:     "write failure",
			err:      &oerrors.WriteFileError{Path: "/p/justfile", Err: fs.ErrPermission},
			wantCode: oerrors.ExitGeneralError,
			sentinel: fs.ErrPermission,
		},
		{
			name:     "serialization",
			err:      &oerrors.SerializationError{Artifact: ".prettierrc", Err: errors.New("boom")},
			wantCode: oerrors.ExitGeneralError,
			sentinel: oerrors.ErrSerialization,
		},
		{
			name:     "validation",
			err:      oerrors.Wrap(oerrors.ErrValidation, "bad"),
			wantCode: oerrors.ExitValidationError,
			sentinel: oerrors.ErrValidation,
		},
		{
			name:     "prompt cancelled",
			err:      oerrors.ErrCancelled,
			wantCode: oerrors.ExitCancelled,
			sentinel: oerrors.ErrCancelled,
		},
		{
			name:     "context cancelled",
			err:      context.Canceled,
			wantCode: oerrors.ExitCancelled,
			sentinel: oerrors.ErrCancelled,
		},
		{
			name:     "unknown",
			err:      errors.New("boom"),
			wantCode: oerrors.ExitGeneralError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExitErrorFor(tt.err)

			var exitErr *oerrors.ExitError
			require.True(t, errors.As(got, &exitErr))
			assert.Equal(t, tt.wantCode, exitErr.Code)
			assert.False(t, exitErr.Printed)
			if tt.sentinel != nil {
				assert.ErrorIs(t, got, tt.sentinel)
			}
			if tt.wantHint != "" {
				var detail *oerrors.DetailError
				require.True(t, errors.As(got, &detail))
				assert.Contains(t, detail.Hint, tt.wantHint)
			}
		})
	}
}

func TestExitErrorFor_Passthrough(t *testing.T) {
	assert.NoError(t, ExitErrorFor(nil))

	orig := oerrors.NewExitError(errors.New("x"), oerrors.ExitValidationError)
	assert.Same(t, orig, ExitErrorFor(orig))
}
