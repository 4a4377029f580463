// Package cmdutil provides shared command utilities for the generation verbs.
// It centralizes flag group management, target resolution, error mapping and
// report output.
package cmdutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zackstrap/cli/internal/config"
	"github.com/zackstrap/cli/internal/output"
	"github.com/zackstrap/cli/internal/project"
	"github.com/zackstrap/cli/internal/templates"
)

// TemplateFlags holds the template selector shared by the kind verbs and hooks.
type TemplateFlags struct {
	Template string
}

// AddTo registers the template flag. The help text lists the variants of kind;
// an empty kind lists none.
func (f *TemplateFlags) AddTo(cmd *cobra.Command, kind project.Kind) {
	usage := "Template variant (unknown names fall back to default)"
	if kind != "" {
		usage = fmt.Sprintf("Template variant (%s)", strings.Join(templates.ValidTemplates(kind), ", "))
	}
	cmd.Flags().StringVarP(&f.Template, "template", "t", "", usage)
}

// Resolve returns the flag value, or the configured default for kind when the
// flag is empty.
func (f *TemplateFlags) Resolve(cfg *config.Config, kind project.Kind) string {
	if f.Template != "" {
		return f.Template
	}
	return cfg.TemplateFor(kind)
}

// OutputFlags holds the output format selector of listing commands.
type OutputFlags struct {
	Format string
}

// AddTo registers the output flag on the given cobra command.
func (f *OutputFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Format, "output", "o", string(output.FormatTable),
		fmt.Sprintf("Output format (%s)", strings.Join(output.ValidFormats(), ", ")))
}

// Parse validates the format. An invalid value is a validation error.
func (f *OutputFlags) Parse() (output.OutputFormat, error) {
	format, err := output.ParseOutputFormat(f.Format)
	if err != nil {
		return "", validationExit(err.Error(), "", "")
	}
	return format, nil
}

// ResolveTarget returns the absolute target directory. An empty target means
// the working directory. The directory itself is checked by the generator.
func ResolveTarget(target string) (string, error) {
	if target == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getting working directory: %w", err)
		}
		return wd, nil
	}
	abs, err := filepath.Abs(config.ExpandTilde(target))
	if err != nil {
		return "", fmt.Errorf("resolving target %s: %w", target, err)
	}
	return abs, nil
}

// ParseKindArg parses a kind argument. "auto" and the empty string mean
// detection and return ok=false.
func ParseKindArg(arg string) (kind project.Kind, ok bool, err error) {
	if arg == "" || strings.EqualFold(arg, "auto") {
		return "", false, nil
	}
	kind, err = project.ParseKind(arg)
	if err != nil {
		return "", false, validationExit(err.Error(), "",
			"Valid kinds: "+kindNames()+", auto")
	}
	return kind, true, nil
}

func kindNames() string {
	kinds := project.Kinds()
	names := make([]string, 0, len(kinds))
	for _, k := range kinds {
		names = append(names, k.String())
	}
	return strings.Join(names, ", ")
}
