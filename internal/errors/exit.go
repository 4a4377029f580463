package errors

import "errors"

// Process exit codes.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates invalid arguments or configuration.
	ExitValidationError = 2

	// ExitFileExists indicates an artifact already existed under --fail-on-exists.
	ExitFileExists = 3

	// ExitNotFound indicates the target directory is missing or not a directory.
	ExitNotFound = 4

	// ExitGitNotInitialized indicates hooks were requested outside a git repository.
	ExitGitNotInitialized = 5

	// ExitCancelled indicates the user aborted an interactive prompt.
	ExitCancelled = 130
)

// ExitError wraps an error with an exit code.
type ExitError struct {
	Err  error
	Code int

	// Printed is set once the command layer has already written the error.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitValidationError:
		return "Validation Error"
	case ExitFileExists:
		return "File Exists"
	case ExitNotFound:
		return "Not Found"
	case ExitGitNotInitialized:
		return "Git Not Initialized"
	case ExitCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, ErrValidation):
		return ExitValidationError
	case errors.Is(err, ErrFileExists), errors.Is(err, ErrHookExists):
		return ExitFileExists
	case errors.Is(err, ErrDirectoryNotFound), errors.Is(err, ErrNotADirectory):
		return ExitNotFound
	case errors.Is(err, ErrGitNotInitialized):
		return ExitGitNotInitialized
	case errors.Is(err, ErrCancelled):
		return ExitCancelled
	default:
		return ExitGeneralError
	}
}
