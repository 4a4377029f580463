// Package generator turns a (kind, template) pair into files in a target
// directory. Content is computed up front by Plan; Generate then executes the
// plan in order and stops at the first failure without rolling back.
package generator

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	oerrors "github.com/zackstrap/cli/internal/errors"
	"github.com/zackstrap/cli/internal/project"
	"github.com/zackstrap/cli/internal/templates"
	"github.com/zackstrap/cli/internal/writer"
)

// Generator writes project configuration into a single target directory.
type Generator struct {
	fs       afero.Fs
	root     string
	catalog  *templates.Catalog
	writer   *writer.Writer
	detector *project.Detector
	logger   *log.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger used for per-step debug output.
func WithLogger(l *log.Logger) Option {
	return func(g *Generator) {
		g.logger = l
	}
}

// New creates a Generator for root. The catalog supplies all content.
func New(fsys afero.Fs, root string, catalog *templates.Catalog, opts ...Option) *Generator {
	g := &Generator{
		fs:      fsys,
		root:    root,
		catalog: catalog,
		writer:  writer.New(fsys),
		logger:  log.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.detector = project.NewDetector(fsys, project.WithLogger(g.logger))
	return g
}

// Root returns the target directory.
func (g *Generator) Root() string {
	return g.root
}

// Detect classifies the target directory.
func (g *Generator) Detect() project.Kind {
	return g.detector.Detect(g.root)
}

// Plan computes every step for kind and template without touching the
// filesystem. Unknown templates resolve to the default variant per artifact.
func (g *Generator) Plan(kind project.Kind, template string) (*Plan, error) {
	if !kind.IsValid() {
		return nil, oerrors.NewValidationError("unknown project kind "+string(kind), "", "valid kinds: basic, ruby, python, node, go, rust")
	}
	if !templates.IsValidTemplate(kind, template) {
		g.logger.Debug("unknown template, using defaults", "kind", kind, "template", template)
	}

	plan := &Plan{Kind: kind, Template: template}

	// The base justfile is always the generic one; the kind's variant lands
	// in StageOverride.
	for _, a := range templates.BaseArtifacts() {
		contentKind := kind
		if a.ID == templates.Justfile {
			contentKind = project.Basic
		}
		if err := g.addStep(plan, StageBase, a, contentKind, template); err != nil {
			return nil, err
		}
	}

	for _, a := range g.catalog.Artifacts(kind) {
		if err := g.addStep(plan, StageKind, a, kind, template); err != nil {
			return nil, err
		}
	}

	if kind != project.Basic {
		justfile, _ := g.catalog.Artifact(templates.Justfile)
		if err := g.addStep(plan, StageOverride, justfile, kind, template); err != nil {
			return nil, err
		}
	}

	g.logger.Debug("planned", "kind", kind, "template", template, "paths", plan.Paths())
	return plan, nil
}

// Generate validates the target, plans, and writes every step. StageOverride
// always overwrites. The returned report covers the steps that ran, also when
// an error stops the run.
func (g *Generator) Generate(ctx context.Context, kind project.Kind, template string, policy writer.Policy) (*Report, error) {
	if err := g.CheckTarget(); err != nil {
		return nil, err
	}

	plan, err := g.Plan(kind, template)
	if err != nil {
		return nil, err
	}
	return g.execute(ctx, plan, policy)
}

// DryRun returns the report Generate would produce without any I/O. Every
// entry is OutcomePlanned.
func (g *Generator) DryRun(kind project.Kind, template string) (*Report, error) {
	plan, err := g.Plan(kind, template)
	if err != nil {
		return nil, err
	}
	return plannedReport(plan), nil
}

func (g *Generator) execute(ctx context.Context, plan *Plan, policy writer.Policy) (*Report, error) {
	report := &Report{Kind: plan.Kind, Template: plan.Template}

	for _, step := range plan.Steps {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		path := filepath.Join(g.root, step.Artifact.Path)
		stepPolicy := policy
		if step.Stage == StageOverride {
			stepPolicy = writer.Policy{Force: true}
		}

		var outcome writer.Outcome
		var err error
		if step.Artifact.Mode == templates.ModeAppend {
			outcome, err = g.writer.Append(path, step.Content)
		} else {
			outcome, err = g.writer.Write(path, step.Content, stepPolicy)
		}
		if err != nil {
			return report, err
		}

		g.logger.Debug("wrote artifact", "path", step.Artifact.Path, "stage", step.Stage, "outcome", outcome)
		report.add(step, outcome)
	}

	return report, nil
}

func (g *Generator) addStep(plan *Plan, stage Stage, a templates.Artifact, kind project.Kind, template string) error {
	content, err := g.catalog.Content(kind, template, a.ID)
	if err != nil {
		if errors.Is(err, templates.ErrUnknownArtifact) {
			return err
		}
		return &oerrors.SerializationError{Artifact: a.Path, Err: err}
	}
	plan.Steps = append(plan.Steps, Step{Stage: stage, Artifact: a, Content: content})
	return nil
}

// CheckTarget reports whether the target exists and is a directory. It only
// reads.
func (g *Generator) CheckTarget() error {
	info, err := g.fs.Stat(g.root)
	if err != nil {
		if os.IsNotExist(err) {
			return &oerrors.TargetError{Path: g.root, Err: oerrors.ErrDirectoryNotFound}
		}
		return &oerrors.TargetError{Path: g.root, Err: errors.Join(oerrors.ErrDirectoryNotFound, err)}
	}
	if !info.IsDir() {
		return &oerrors.TargetError{Path: g.root, Err: oerrors.ErrNotADirectory}
	}
	return nil
}

func plannedReport(plan *Plan) *Report {
	report := &Report{Kind: plan.Kind, Template: plan.Template, DryRun: true}
	for _, step := range plan.Steps {
		report.add(step, writer.OutcomePlanned)
	}
	return report
}
