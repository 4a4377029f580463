package project

import (
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
)

// signature is one predicate set: a directory matches when any exact name
// exists at its top level or any entry name matches one of the globs.
type signature struct {
	kind  Kind
	names []string
	globs []string
}

// signatures are evaluated in order; the first match wins.
var signatures = []signature{
	{
		kind:  Ruby,
		names: []string{"Gemfile", "Gemfile.lock", "Rakefile", "config.ru", ".ruby-version"},
		globs: []string{"*.rb", "*.gemspec"},
	},
	{
		kind:  Python,
		names: []string{"requirements.txt", "pyproject.toml", "setup.py", "Pipfile", "poetry.lock", "__pycache__"},
		globs: []string{"*.py"},
	},
	{
		kind:  Node,
		names: []string{"package.json", "package-lock.json", "yarn.lock", "pnpm-lock.yaml", "node_modules"},
		globs: []string{"*.js", "*.mjs", "*.ts"},
	},
	{
		kind:  Go,
		names: []string{"go.mod", "go.sum", "go.work"},
		globs: []string{"*.go"},
	},
	{
		kind:  Rust,
		names: []string{"Cargo.toml", "Cargo.lock"},
		globs: []string{"*.rs"},
	},
}

// Detector classifies a directory by its top-level contents.
type Detector struct {
	fs     afero.Fs
	logger *log.Logger
}

// DetectorOption configures a Detector.
type DetectorOption func(*Detector)

// WithLogger sets the logger used for debug output.
func WithLogger(l *log.Logger) DetectorOption {
	return func(d *Detector) {
		d.logger = l
	}
}

// NewDetector creates a Detector over the given filesystem.
func NewDetector(fsys afero.Fs, opts ...DetectorOption) *Detector {
	d := &Detector{fs: fsys, logger: log.Default()}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Detect returns the kind of the project in dir. It never fails: unreadable
// or empty directories are Basic.
func (d *Detector) Detect(dir string) Kind {
	kind, _ := d.Match(dir)
	return kind
}

// Match is Detect plus the marker that decided the result. The marker is
// empty when nothing matched.
func (d *Detector) Match(dir string) (Kind, string) {
	for _, sig := range signatures {
		if marker, ok := d.matches(dir, sig); ok {
			d.logger.Debug("detected project kind", "kind", sig.kind, "marker", marker, "dir", dir)
			return sig.kind, marker
		}
	}
	d.logger.Debug("no project markers found", "dir", dir, "kind", Basic)
	return Basic, ""
}

func (d *Detector) matches(dir string, sig signature) (string, bool) {
	for _, name := range sig.names {
		if d.exists(filepath.Join(dir, name)) {
			return name, true
		}
	}
	if len(sig.globs) == 0 {
		return "", false
	}

	// Fresh listing per signature; the directory is never walked recursively.
	entries, err := afero.ReadDir(d.fs, dir)
	if err != nil {
		return "", false
	}
	for _, entry := range entries {
		for _, pattern := range sig.globs {
			if ok, _ := filepath.Match(pattern, entry.Name()); ok {
				return entry.Name(), true
			}
		}
	}
	return "", false
}

func (d *Detector) exists(path string) bool {
	_, err := d.fs.Stat(path)
	return err == nil
}
