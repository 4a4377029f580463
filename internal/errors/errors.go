// Package errors provides the error taxonomy for zackstrap.
package errors

import (
	"fmt"
	"strings"
)

// DetailError captures structured error information for terminal display.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file or directory involved (optional).
	Location string

	// Context contains additional key-value context (optional).
	Context map[string]string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}
	for k, v := range e.Context {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(v)
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a validation error with details.
func NewValidationError(message, location, hint string) error {
	return &DetailError{
		Type:     "validation failed",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrValidation,
	}
}

// TargetError reports an unusable target directory. Err is either
// ErrDirectoryNotFound or ErrNotADirectory.
type TargetError struct {
	Path string
	Err  error
}

func (e *TargetError) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Path)
}

func (e *TargetError) Unwrap() error {
	return e.Err
}

// FileExistsError is returned when an artifact already exists and the write
// policy requires failing instead of skipping.
type FileExistsError struct {
	Path string
}

func (e *FileExistsError) Error() string {
	return fmt.Sprintf("file already exists and force flag not set: %s", e.Path)
}

func (e *FileExistsError) Unwrap() error {
	return ErrFileExists
}

// WriteFileError wraps an I/O failure for a single artifact path.
type WriteFileError struct {
	Path string
	Err  error
}

func (e *WriteFileError) Error() string {
	return fmt.Sprintf("failed to write file %s: %v", e.Path, e.Err)
}

func (e *WriteFileError) Unwrap() []error {
	return []error{ErrWriteFile, e.Err}
}

// SerializationError wraps an encoding failure for a structured artifact.
type SerializationError struct {
	Artifact string
	Err      error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("failed to serialize %s: %v", e.Artifact, e.Err)
}

func (e *SerializationError) Unwrap() []error {
	return []error{ErrSerialization, e.Err}
}

// HookExistsError is returned when a git hook is present and force is off.
type HookExistsError struct {
	Path string
}

func (e *HookExistsError) Error() string {
	return fmt.Sprintf("hook already exists: %s", e.Path)
}

func (e *HookExistsError) Unwrap() error {
	return ErrHookExists
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}
