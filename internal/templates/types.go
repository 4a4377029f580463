package templates

// ArtifactID names a file the catalog can produce.
type ArtifactID string

const (
	EditorConfig    ArtifactID = "editorconfig"
	Prettier        ArtifactID = "prettier"
	Justfile        ArtifactID = "justfile"
	RubyVersion     ArtifactID = "ruby-version"
	NodeVersion     ArtifactID = "node-version"
	Rubocop         ArtifactID = "rubocop"
	PackageJSON     ArtifactID = "package-json"
	PythonVersion   ArtifactID = "python-version"
	Pyproject       ArtifactID = "pyproject"
	Flake8          ArtifactID = "flake8"
	RequirementsDev ArtifactID = "requirements-dev"
	Nvmrc           ArtifactID = "nvmrc"
	ESLint          ArtifactID = "eslint"
	GoMod           ArtifactID = "go-mod"
	Golangci        ArtifactID = "golangci"
	Gitignore       ArtifactID = "gitignore"
	Rustfmt         ArtifactID = "rustfmt"
	Clippy          ArtifactID = "clippy"
	CargoConfig     ArtifactID = "cargo-config"

	PreCommit ArtifactID = "pre-commit"
	PrePush   ArtifactID = "pre-push"
	CommitMsg ArtifactID = "commit-msg"
)

// WriteMode selects how an artifact is put on disk.
type WriteMode int

const (
	// ModeGuarded writes subject to the caller's overwrite policy.
	ModeGuarded WriteMode = iota

	// ModeAppend appends to whatever is already there.
	ModeAppend
)

func (m WriteMode) String() string {
	if m == ModeAppend {
		return "append"
	}
	return "guarded"
}

// Artifact describes where an artifact lives relative to the target
// directory and how it is written.
type Artifact struct {
	ID          ArtifactID `json:"id"`
	Path        string     `json:"path"`
	Mode        WriteMode  `json:"-"`
	Description string     `json:"description"`
}

// DefaultTemplate is the variant every kind falls back to.
const DefaultTemplate = "default"
