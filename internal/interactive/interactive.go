// Package interactive runs the guided setup: it asks for the project kind,
// template, overwrite policy and whether to install git hooks.
package interactive

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	oerrors "github.com/zackstrap/cli/internal/errors"
	"github.com/zackstrap/cli/internal/project"
	"github.com/zackstrap/cli/internal/templates"
	"github.com/zackstrap/cli/internal/writer"
)

// ErrCancelled is returned when the user aborts a prompt.
var ErrCancelled = oerrors.ErrCancelled

// Overwrite policy choices.
const (
	PolicySkip      = "skip"
	PolicyFail      = "fail"
	PolicyOverwrite = "overwrite"
)

// Option is one choice in a select prompt.
type Option struct {
	Label string
	Value string
}

// Prompter asks one question at a time. Implementations return ErrCancelled
// when the user aborts.
type Prompter interface {
	Select(title string, options []Option, initial string) (string, error)
	Confirm(title string, initial bool) (bool, error)
}

// Answers are the choices collected by Run.
type Answers struct {
	Kind     project.Kind
	Template string
	Policy   writer.Policy
	Hooks    bool
}

var titleCaser = cases.Title(language.English)

// Run asks every question in order. The kind defaults to detected and the
// template to initialTemplate when it is valid for the chosen kind.
func Run(p Prompter, detected project.Kind, initialTemplate string) (*Answers, error) {
	kindOpts := make([]Option, 0, len(project.Kinds()))
	for _, k := range project.Kinds() {
		label := k.DisplayName()
		if k == detected {
			label += " (detected)"
		}
		kindOpts = append(kindOpts, Option{Label: label, Value: k.String()})
	}

	kindName, err := p.Select("Project type", kindOpts, detected.String())
	if err != nil {
		return nil, err
	}
	kind, err := project.ParseKind(kindName)
	if err != nil {
		return nil, err
	}

	if !templates.IsValidTemplate(kind, initialTemplate) {
		initialTemplate = templates.DefaultTemplate
	}
	names := templates.ValidTemplates(kind)
	tmplOpts := make([]Option, 0, len(names))
	for _, name := range names {
		tmplOpts = append(tmplOpts, Option{Label: titleCaser.String(name), Value: name})
	}

	template, err := p.Select(fmt.Sprintf("%s template", kind.DisplayName()), tmplOpts, initialTemplate)
	if err != nil {
		return nil, err
	}

	policyName, err := p.Select("Existing files", []Option{
		{Label: "Skip them", Value: PolicySkip},
		{Label: "Stop with an error", Value: PolicyFail},
		{Label: "Overwrite them", Value: PolicyOverwrite},
	}, PolicySkip)
	if err != nil {
		return nil, err
	}
	policy, err := ParsePolicy(policyName)
	if err != nil {
		return nil, err
	}

	hooks, err := p.Confirm("Install git hooks?", false)
	if err != nil {
		return nil, err
	}

	return &Answers{Kind: kind, Template: template, Policy: policy, Hooks: hooks}, nil
}

// ParsePolicy maps a policy choice to a writer policy.
func ParsePolicy(name string) (writer.Policy, error) {
	switch name {
	case PolicySkip:
		return writer.Policy{}, nil
	case PolicyFail:
		return writer.Policy{FailOnExists: true}, nil
	case PolicyOverwrite:
		return writer.Policy{Force: true}, nil
	default:
		return writer.Policy{}, fmt.Errorf("unknown overwrite policy %q: %w", name, oerrors.ErrValidation)
	}
}
