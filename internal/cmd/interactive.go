package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/zackstrap/cli/internal/cmdtypes"
	"github.com/zackstrap/cli/internal/cmdutil"
	oerrors "github.com/zackstrap/cli/internal/errors"
	"github.com/zackstrap/cli/internal/interactive"
	"github.com/zackstrap/cli/internal/output"
)

// NewInteractiveCmd creates the interactive command.
func NewInteractiveCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Guided setup",
		Long: `Ask for the project type, template, existing-file policy and whether to
install git hooks, then generate.

The detected project type is preselected. Requires a terminal; set
ACCESSIBLE=1 for plain line prompts.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runInteractive(c, cfg, nil)
		},
	}
}

// runInteractive drives the prompts. A nil prompter means the terminal UI,
// which requires a TTY.
func runInteractive(c *cobra.Command, cfg *cmdtypes.GlobalConfig, prompter interactive.Prompter) error {
	if prompter == nil {
		if !output.IsInteractive() {
			return &oerrors.ExitError{
				Code: oerrors.ExitValidationError,
				Err: &oerrors.DetailError{
					Type:    "not a terminal",
					Message: "interactive setup needs a terminal on stdin and stdout",
					Hint:    "Use a kind command instead, e.g. 'zackstrap ruby -t rails', or 'zackstrap auto'.",
					Cause:   oerrors.ErrValidation,
				},
			}
		}
		prompter = interactive.NewHuhPrompter(os.Getenv("ACCESSIBLE") != "")
	}

	g, err := newGenerator(cfg)
	if err != nil {
		return cmdutil.ExitErrorFor(err)
	}
	if err := g.CheckTarget(); err != nil {
		return cmdutil.ExitErrorFor(err)
	}

	detected := g.Detect()
	answers, err := interactive.Run(prompter, detected, cfg.Config.TemplateFor(detected))
	if err != nil {
		return cmdutil.ExitErrorFor(err)
	}
	output.Debug("interactive answers",
		"kind", answers.Kind,
		"template", answers.Template,
		"force", answers.Policy.Force,
		"fail-on-exists", answers.Policy.FailOnExists,
		"hooks", answers.Hooks,
	)

	if err := cmdutil.RunGenerate(c.Context(), g, cmdutil.GenerateOpts{
		Kind:     answers.Kind,
		Template: answers.Template,
		Policy:   answers.Policy,
		DryRun:   cfg.DryRun,
	}); err != nil {
		return err
	}

	if !answers.Hooks {
		return nil
	}
	h, err := newHooksGenerator(cfg)
	if err != nil {
		return cmdutil.ExitErrorFor(err)
	}
	output.Println("")
	return cmdutil.RunHooks(h, answers.Kind, answers.Template, answers.Policy.Force, cfg.DryRun)
}
