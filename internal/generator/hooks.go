package generator

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	oerrors "github.com/zackstrap/cli/internal/errors"
	"github.com/zackstrap/cli/internal/project"
	"github.com/zackstrap/cli/internal/templates"
	"github.com/zackstrap/cli/internal/writer"
)

const hookPerm os.FileMode = 0o755

// HooksGenerator installs git hooks into an initialized repository.
type HooksGenerator struct {
	fs      afero.Fs
	root    string
	catalog *templates.Catalog
	writer  *writer.Writer
	logger  *log.Logger
}

// NewHooks creates a HooksGenerator for root.
func NewHooks(fsys afero.Fs, root string, catalog *templates.Catalog, opts ...Option) *HooksGenerator {
	g := New(fsys, root, catalog, opts...)
	return &HooksGenerator{
		fs:      fsys,
		root:    root,
		catalog: catalog,
		writer:  g.writer,
		logger:  g.logger,
	}
}

// Root returns the repository directory.
func (h *HooksGenerator) Root() string {
	return h.root
}

// Plan lists the hook writes for kind and template.
func (h *HooksGenerator) Plan(kind project.Kind, template string) (*Plan, error) {
	if !kind.IsValid() {
		return nil, oerrors.NewValidationError("unknown project kind "+string(kind), "", "valid kinds: basic, ruby, python, node, go, rust")
	}
	plan := &Plan{Kind: kind, Template: template}
	for _, a := range templates.HookArtifacts() {
		content, err := h.catalog.Content(kind, template, a.ID)
		if err != nil {
			return nil, fmt.Errorf("hook %s: %w", a.ID, err)
		}
		plan.Steps = append(plan.Steps, Step{Stage: StageHooks, Artifact: a, Content: content})
	}
	return plan, nil
}

// Generate writes pre-commit, pre-push and commit-msg as executables. An
// existing hook is an error unless force is set.
func (h *HooksGenerator) Generate(kind project.Kind, template string, force bool) (*Report, error) {
	hooksDir := filepath.Join(h.root, ".git", "hooks")
	info, err := h.fs.Stat(hooksDir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s does not exist (run git init first)", oerrors.ErrGitNotInitialized, hooksDir)
	}

	plan, err := h.Plan(kind, template)
	if err != nil {
		return nil, err
	}

	report := &Report{Kind: kind, Template: template}
	for _, step := range plan.Steps {
		path := filepath.Join(h.root, step.Artifact.Path)

		outcome, err := h.writer.Write(path, step.Content, writer.Policy{Force: force, FailOnExists: true})
		if err != nil {
			var exists *oerrors.FileExistsError
			if errors.As(err, &exists) {
				return report, &oerrors.HookExistsError{Path: path}
			}
			return report, err
		}
		if err := h.writer.Chmod(path, hookPerm); err != nil {
			return report, err
		}

		h.logger.Debug("installed hook", "path", step.Artifact.Path, "outcome", outcome)
		report.add(step, outcome)
	}
	return report, nil
}

// DryRun lists the hooks Generate would write.
func (h *HooksGenerator) DryRun(kind project.Kind, template string) (*Report, error) {
	plan, err := h.Plan(kind, template)
	if err != nil {
		return nil, err
	}
	return plannedReport(plan), nil
}
