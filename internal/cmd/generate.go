package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zackstrap/cli/internal/cmdtypes"
	"github.com/zackstrap/cli/internal/cmdutil"
	"github.com/zackstrap/cli/internal/output"
	"github.com/zackstrap/cli/internal/project"
	"github.com/zackstrap/cli/internal/templates"
)

var kindAliases = map[project.Kind][]string{
	project.Node: {"nodejs"},
	project.Go:   {"golang"},
}

// NewKindCmd creates the generation verb for kind, e.g. `zackstrap ruby -t rails`.
func NewKindCmd(cfg *cmdtypes.GlobalConfig, kind project.Kind) *cobra.Command {
	var tf cmdutil.TemplateFlags

	c := &cobra.Command{
		Use:     kind.String(),
		Aliases: kindAliases[kind],
		Short:   fmt.Sprintf("Generate %s project configuration", kind.DisplayName()),
		Long:    kindLong(kind),
		Args:    cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runKind(c.Context(), cfg, kind, tf.Resolve(cfg.Config, kind))
		},
	}

	tf.AddTo(c, kind)

	return c
}

// NewAutoCmd creates the auto command.
func NewAutoCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "auto",
		Short: "Detect the project type and generate its configuration",
		Long: `Detect the project type from the files in the target directory and
generate its configuration with the configured template for that kind
(default: "default").

Detection checks Ruby, Python, Node.js, Go and Rust markers in that order
and falls back to a basic project.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runAuto(c.Context(), cfg)
		},
	}
}

func runKind(ctx context.Context, cfg *cmdtypes.GlobalConfig, kind project.Kind, template string) error {
	g, err := newGenerator(cfg)
	if err != nil {
		return cmdutil.ExitErrorFor(err)
	}
	return cmdutil.RunGenerate(ctx, g, cmdutil.GenerateOpts{
		Kind:     kind,
		Template: template,
		Policy:   cfg.Policy(),
		DryRun:   cfg.DryRun,
	})
}

func runAuto(ctx context.Context, cfg *cmdtypes.GlobalConfig) error {
	g, err := newGenerator(cfg)
	if err != nil {
		return cmdutil.ExitErrorFor(err)
	}
	if err := g.CheckTarget(); err != nil {
		return cmdutil.ExitErrorFor(err)
	}

	kind := g.Detect()
	template := cfg.Config.TemplateFor(kind)
	output.Println(fmt.Sprintf("Detected %s project", output.StyleNoun.Render(kind.DisplayName())))

	return cmdutil.RunGenerate(ctx, g, cmdutil.GenerateOpts{
		Kind:     kind,
		Template: template,
		Policy:   cfg.Policy(),
		DryRun:   cfg.DryRun,
	})
}

func kindLong(kind project.Kind) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Generate %s project configuration in the target directory.\n\nFiles:\n", kind.DisplayName())
	for _, a := range append(templates.BaseArtifacts(), templates.KindArtifacts(kind)...) {
		fmt.Fprintf(&sb, "  %-22s %s\n", a.Path, a.Description)
	}
	fmt.Fprintf(&sb, "\nTemplates: %s\nUnknown template names fall back to \"default\".",
		strings.Join(templates.ValidTemplates(kind), ", "))
	return sb.String()
}
