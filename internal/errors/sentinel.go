package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates invalid user input or configuration.
	ErrValidation = errors.New("validation error")

	// ErrDirectoryNotFound indicates the target directory does not exist.
	ErrDirectoryNotFound = errors.New("directory not found")

	// ErrNotADirectory indicates the target path exists but is not a directory.
	ErrNotADirectory = errors.New("path is not a directory")

	// ErrFileExists indicates an artifact is already present and the policy
	// forbids skipping it.
	ErrFileExists = errors.New("file already exists")

	// ErrWriteFile indicates a filesystem failure while writing an artifact.
	ErrWriteFile = errors.New("failed to write file")

	// ErrSerialization indicates a structured artifact could not be encoded.
	ErrSerialization = errors.New("failed to serialize configuration")

	// ErrGitNotInitialized indicates the target has no .git/hooks directory.
	ErrGitNotInitialized = errors.New("git repository not initialized")

	// ErrHookExists indicates a git hook is already installed.
	ErrHookExists = errors.New("hook already exists")

	// ErrCancelled indicates the user aborted an interactive prompt.
	ErrCancelled = errors.New("operation cancelled")
)
