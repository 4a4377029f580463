package cmd

import (
	"github.com/spf13/cobra"

	"github.com/zackstrap/cli/internal/cmdtypes"
	"github.com/zackstrap/cli/internal/cmdutil"
)

// NewHooksCmd creates the hooks command.
func NewHooksCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var tf cmdutil.TemplateFlags

	c := &cobra.Command{
		Use:   "hooks [kind|auto]",
		Short: "Install git hooks for the project",
		Long: `Install pre-commit, pre-push and commit-msg hooks into .git/hooks.

The hooks run the kind's linters and tests. Without a kind argument, or with
"auto", the project type is detected. The target must be a git repository.
Existing hooks are kept unless --force is given.

Examples:
  zackstrap hooks
  zackstrap hooks ruby -t rails
  zackstrap hooks --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			var arg string
			if len(args) > 0 {
				arg = args[0]
			}
			return runHooks(cfg, arg, tf)
		},
	}

	tf.AddTo(c, "")

	return c
}

func runHooks(cfg *cmdtypes.GlobalConfig, arg string, tf cmdutil.TemplateFlags) error {
	kind, explicit, err := cmdutil.ParseKindArg(arg)
	if err != nil {
		return err
	}

	g, err := newGenerator(cfg)
	if err != nil {
		return cmdutil.ExitErrorFor(err)
	}
	if err := g.CheckTarget(); err != nil {
		return cmdutil.ExitErrorFor(err)
	}
	if !explicit {
		kind = g.Detect()
	}

	h, err := newHooksGenerator(cfg)
	if err != nil {
		return cmdutil.ExitErrorFor(err)
	}
	return cmdutil.RunHooks(h, kind, tf.Resolve(cfg.Config, kind), cfg.Policy().Force, cfg.DryRun)
}
