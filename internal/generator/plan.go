package generator

import (
	"github.com/zackstrap/cli/internal/project"
	"github.com/zackstrap/cli/internal/templates"
)

// Stage is a phase of a generation plan. Stages execute in declaration order.
type Stage int

const (
	// StageBase writes the artifacts shared by every kind.
	StageBase Stage = iota
	// StageKind writes the kind's own artifacts.
	StageKind
	// StageOverride replaces the generic justfile with the kind's variant.
	StageOverride
	// StageHooks writes git hooks.
	StageHooks
)

func (s Stage) String() string {
	switch s {
	case StageBase:
		return "base"
	case StageKind:
		return "kind"
	case StageOverride:
		return "override"
	case StageHooks:
		return "hooks"
	default:
		return "unknown"
	}
}

// MarshalText renders the stage by name.
func (s Stage) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Step is one artifact write with its content already computed.
type Step struct {
	Stage    Stage
	Artifact templates.Artifact
	Content  string
}

// Plan is the ordered list of writes for a (kind, template) pair.
type Plan struct {
	Kind     project.Kind
	Template string
	Steps    []Step
}

// Paths returns the relative artifact paths in step order.
func (p *Plan) Paths() []string {
	paths := make([]string, 0, len(p.Steps))
	for _, s := range p.Steps {
		paths = append(paths, s.Artifact.Path)
	}
	return paths
}
