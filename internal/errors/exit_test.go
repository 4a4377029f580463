//nolint:revive // Package name matches the package it tests
package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"explicit exit error", NewExitError(errors.New("x"), 42), 42},
		{"validation", NewValidationError("bad", "", ""), ExitValidationError},
		{"file exists", &FileExistsError{Path: "a"}, ExitFileExists},
		{"hook exists", &HookExistsError{Path: "a"}, ExitFileExists},
		{"directory not found", &TargetError{Path: "a", Err: ErrDirectoryNotFound}, ExitNotFound},
		{"not a directory", &TargetError{Path: "a", Err: ErrNotADirectory}, ExitNotFound},
		{"git not initialized", fmt.Errorf("%w: /p/.git/hooks", ErrGitNotInitialized), ExitGitNotInitialized},
		{"cancelled", ErrCancelled, ExitCancelled},
		{"write error is general", &WriteFileError{Path: "a", Err: errors.New("disk full")}, ExitGeneralError},
		{"unknown", errors.New("something else"), ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeFromError(tt.err))
		})
	}
}

func TestExitCodeName(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{ExitSuccess, "Success"},
		{ExitGeneralError, "General Error"},
		{ExitValidationError, "Validation Error"},
		{ExitFileExists, "File Exists"},
		{ExitNotFound, "Not Found"},
		{ExitGitNotInitialized, "Git Not Initialized"},
		{ExitCancelled, "Cancelled"},
		{99, "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeName(tt.code))
		})
	}
}

func TestExitErrorUnwrap(t *testing.T) {
	exitErr := NewExitError(ErrFileExists, ExitFileExists)
	assert.ErrorIs(t, exitErr, ErrFileExists)
	assert.Equal(t, ErrFileExists.Error(), exitErr.Error())
	assert.False(t, exitErr.Printed)
}
