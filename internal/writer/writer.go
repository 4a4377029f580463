// Package writer puts artifact content on disk under an overwrite policy.
package writer

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	oerrors "github.com/zackstrap/cli/internal/errors"
)

const (
	dirPerm  os.FileMode = 0o755
	filePerm os.FileMode = 0o644
)

// Policy controls what happens when a target file already exists.
// Force always wins over FailOnExists.
type Policy struct {
	Force        bool
	FailOnExists bool
}

// Outcome is the result of a single write.
type Outcome int

const (
	OutcomeCreated Outcome = iota
	OutcomeOverwritten
	OutcomeSkipped
	OutcomeAppended
	// OutcomePlanned marks a dry-run entry. No I/O happened.
	OutcomePlanned
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCreated:
		return "created"
	case OutcomeOverwritten:
		return "overwritten"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeAppended:
		return "appended"
	case OutcomePlanned:
		return "planned"
	default:
		return "unknown"
	}
}

// MarshalText renders the outcome by name in list and report output.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Writer writes files through an afero filesystem.
type Writer struct {
	fs afero.Fs
}

// New returns a Writer over fsys.
func New(fsys afero.Fs) *Writer {
	return &Writer{fs: fsys}
}

// Write puts content at path according to policy. Parent directories are
// created as needed. Each call performs at most one write.
func (w *Writer) Write(path, content string, policy Policy) (Outcome, error) {
	exists, err := afero.Exists(w.fs, path)
	if err != nil {
		return 0, &oerrors.WriteFileError{Path: path, Err: err}
	}

	outcome := OutcomeCreated
	if exists {
		switch {
		case policy.Force:
			outcome = OutcomeOverwritten
		case policy.FailOnExists:
			return 0, &oerrors.FileExistsError{Path: path}
		default:
			return OutcomeSkipped, nil
		}
	}

	if err := w.put(path, []byte(content)); err != nil {
		return 0, err
	}
	return outcome, nil
}

// Append adds content to the end of path, creating it when missing.
// It never consults the overwrite policy.
func (w *Writer) Append(path, content string) (Outcome, error) {
	existing, err := afero.ReadFile(w.fs, path)
	switch {
	case err == nil:
		if err := w.put(path, append(existing, content...)); err != nil {
			return 0, err
		}
		return OutcomeAppended, nil
	case os.IsNotExist(err):
		if err := w.put(path, []byte(content)); err != nil {
			return 0, err
		}
		return OutcomeCreated, nil
	default:
		return 0, &oerrors.WriteFileError{Path: path, Err: err}
	}
}

// Chmod changes the mode of an already written file.
func (w *Writer) Chmod(path string, mode os.FileMode) error {
	if err := w.fs.Chmod(path, mode); err != nil {
		return &oerrors.WriteFileError{Path: path, Err: err}
	}
	return nil
}

func (w *Writer) put(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := w.fs.MkdirAll(dir, dirPerm); err != nil {
			return &oerrors.WriteFileError{Path: path, Err: err}
		}
	}
	if err := afero.WriteFile(w.fs, path, data, filePerm); err != nil {
		return &oerrors.WriteFileError{Path: path, Err: err}
	}
	return nil
}
