package cmdutil

import (
	"context"
	"errors"

	oerrors "github.com/zackstrap/cli/internal/errors"
)

// ExitErrorFor wraps a generation error in an *ExitError whose message is a
// DetailError with an actionable hint. Errors that already carry an exit code
// are returned unchanged.
func ExitErrorFor(err error) error {
	if err == nil {
		return nil
	}

	var exitErr *oerrors.ExitError
	if errors.As(err, &exitErr) {
		return err
	}

	var (
		targetErr *oerrors.TargetError
		existsErr *oerrors.FileExistsError
		hookErr   *oerrors.HookExistsError
		writeErr  *oerrors.WriteFileError
		serialErr *oerrors.SerializationError
		detailErr *oerrors.DetailError
	)

	switch {
	case errors.As(err, &targetErr) && errors.Is(err, oerrors.ErrNotADirectory):
		return detailExit(oerrors.ExitNotFound, &oerrors.DetailError{
			Type:     "target is not a directory",
			Message:  err.Error(),
			Location: targetErr.Path,
			Hint:     "Pass a directory with --target.",
			Cause:    err,
		})
	case errors.As(err, &targetErr):
		return detailExit(oerrors.ExitNotFound, &oerrors.DetailError{
			Type:     "target not found",
			Message:  err.Error(),
			Location: targetErr.Path,
			Hint:     "Create the directory first or pass an existing one with --target.",
			Cause:    err,
		})
	case errors.As(err, &existsErr):
		return detailExit(oerrors.ExitFileExists, &oerrors.DetailError{
			Type:     "file already exists",
			Message:  err.Error(),
			Location: existsErr.Path,
			Hint:     "Use --force to overwrite, or drop --fail-on-exists to skip existing files.",
			Cause:    err,
		})
	case errors.As(err, &hookErr):
		return detailExit(oerrors.ExitFileExists, &oerrors.DetailError{
			Type:     "hook already exists",
			Message:  err.Error(),
			Location: hookErr.Path,
			Hint:     "Use --force to replace existing hooks.",
			Cause:    err,
		})
	case errors.Is(err, oerrors.ErrGitNotInitialized):
		return detailExit(oerrors.ExitGitNotInitialized, &oerrors.DetailError{
			Type:    "not a git repository",
			Message: err.Error(),
			Hint:    "Run 'git init' in the target directory first.",
			Cause:   err,
		})
	case errors.As(err, &writeErr):
		return detailExit(oerrors.ExitGeneralError, &oerrors.DetailError{
			Type:     "write failed",
			Message:  err.Error(),
			Location: writeErr.Path,
			Cause:    err,
		})
	case errors.As(err, &serialErr):
		return detailExit(oerrors.ExitGeneralError, &oerrors.DetailError{
			Type:     "serialization failed",
			Message:  err.Error(),
			Location: serialErr.Artifact,
			Cause:    err,
		})
	case errors.Is(err, oerrors.ErrCancelled), errors.Is(err, context.Canceled):
		return &oerrors.ExitError{Code: oerrors.ExitCancelled, Err: oerrors.ErrCancelled}
	case errors.As(err, &detailErr):
		return &oerrors.ExitError{Code: oerrors.ExitCodeFromError(err), Err: err}
	case errors.Is(err, oerrors.ErrValidation):
		return validationExit(err.Error(), "", "")
	default:
		return &oerrors.ExitError{Code: oerrors.ExitCodeFromError(err), Err: err}
	}
}

func detailExit(code int, detail *oerrors.DetailError) *oerrors.ExitError {
	return &oerrors.ExitError{Code: code, Err: detail}
}

func validationExit(message, location, hint string) *oerrors.ExitError {
	return detailExit(oerrors.ExitValidationError, &oerrors.DetailError{
		Type:     "validation failed",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    oerrors.ErrValidation,
	})
}
