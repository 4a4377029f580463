package templates

import (
	"path/filepath"
	"slices"

	"github.com/zackstrap/cli/internal/project"
)

var artifacts = map[ArtifactID]Artifact{
	EditorConfig:    {ID: EditorConfig, Path: ".editorconfig", Description: "Editor settings"},
	Prettier:        {ID: Prettier, Path: ".prettierrc", Description: "Prettier formatting"},
	Justfile:        {ID: Justfile, Path: "justfile", Description: "Task runner recipes"},
	RubyVersion:     {ID: RubyVersion, Path: ".ruby-version", Description: "Ruby version pin"},
	NodeVersion:     {ID: NodeVersion, Path: ".node-version", Description: "Node.js version pin"},
	Rubocop:         {ID: Rubocop, Path: ".rubocop.yml", Description: "RuboCop rules"},
	PackageJSON:     {ID: PackageJSON, Path: "package.json", Description: "npm manifest"},
	PythonVersion:   {ID: PythonVersion, Path: ".python-version", Description: "Python version pin"},
	Pyproject:       {ID: Pyproject, Path: "pyproject.toml", Description: "Python project metadata"},
	Flake8:          {ID: Flake8, Path: ".flake8", Description: "Flake8 rules"},
	RequirementsDev: {ID: RequirementsDev, Path: "requirements-dev.txt", Description: "Development dependencies"},
	Nvmrc:           {ID: Nvmrc, Path: ".nvmrc", Description: "nvm version pin"},
	ESLint:          {ID: ESLint, Path: ".eslintrc.json", Description: "ESLint rules"},
	GoMod:           {ID: GoMod, Path: "go.mod", Description: "Go module file"},
	Golangci:        {ID: Golangci, Path: ".golangci.yml", Description: "golangci-lint rules"},
	Gitignore:       {ID: Gitignore, Path: ".gitignore", Mode: ModeAppend, Description: "Ignore rules (appended)"},
	Rustfmt:         {ID: Rustfmt, Path: "rustfmt.toml", Description: "rustfmt settings"},
	Clippy:          {ID: Clippy, Path: ".clippy.toml", Description: "Clippy lints"},
	CargoConfig:     {ID: CargoConfig, Path: filepath.Join(".cargo", "config.toml"), Description: "Cargo build profiles"},

	PreCommit: {ID: PreCommit, Path: filepath.Join(".git", "hooks", "pre-commit"), Description: "Pre-commit checks"},
	PrePush:   {ID: PrePush, Path: filepath.Join(".git", "hooks", "pre-push"), Description: "Pre-push checks"},
	CommitMsg: {ID: CommitMsg, Path: filepath.Join(".git", "hooks", "commit-msg"), Description: "Conventional commit check"},
}

// baseSet is written for every kind before the kind's own artifacts.
var baseSet = []ArtifactID{EditorConfig, Prettier, Justfile}

// kindSets lists each kind's artifacts in write order.
var kindSets = map[project.Kind][]ArtifactID{
	project.Basic:  nil,
	project.Ruby:   {RubyVersion, NodeVersion, Rubocop, PackageJSON},
	project.Python: {PythonVersion, Pyproject, Flake8, RequirementsDev},
	project.Node:   {Nvmrc, ESLint, PackageJSON},
	project.Go:     {GoMod, Golangci, Gitignore},
	project.Rust:   {Rustfmt, Clippy, CargoConfig},
}

var hookSet = []ArtifactID{PreCommit, PrePush, CommitMsg}

// templateNames are the variants each kind recognizes. Anything else falls
// back to DefaultTemplate.
var templateNames = map[project.Kind][]string{
	project.Basic:  {"default", "google", "airbnb"},
	project.Ruby:   {"default", "rails", "sinatra", "gem"},
	project.Python: {"default", "django", "flask"},
	project.Node:   {"default", "express", "react"},
	project.Go:     {"default", "web", "cli"},
	project.Rust:   {"default", "web", "cli"},
}

// Lookup returns the metadata for an artifact.
func Lookup(id ArtifactID) (Artifact, bool) {
	a, ok := artifacts[id]
	return a, ok
}

// BaseArtifacts returns the artifacts shared by every kind.
func BaseArtifacts() []Artifact {
	return resolve(baseSet)
}

// KindArtifacts returns the kind-specific artifacts in write order.
func KindArtifacts(kind project.Kind) []Artifact {
	return resolve(kindSets[kind])
}

// HookArtifacts returns the git hooks in write order.
func HookArtifacts() []Artifact {
	return resolve(hookSet)
}

// ValidTemplates returns the template names known for a kind.
func ValidTemplates(kind project.Kind) []string {
	return slices.Clone(templateNames[kind])
}

// IsValidTemplate reports whether name is a known template for kind.
func IsValidTemplate(kind project.Kind, name string) bool {
	return slices.Contains(templateNames[kind], name)
}

func resolve(ids []ArtifactID) []Artifact {
	out := make([]Artifact, 0, len(ids))
	for _, id := range ids {
		out = append(out, artifacts[id])
	}
	return out
}
