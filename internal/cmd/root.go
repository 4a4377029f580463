// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/zackstrap/cli/internal/cmd/config"
	"github.com/zackstrap/cli/internal/cmdtypes"
	"github.com/zackstrap/cli/internal/cmdutil"
	zconfig "github.com/zackstrap/cli/internal/config"
	oerrors "github.com/zackstrap/cli/internal/errors"
	"github.com/zackstrap/cli/internal/generator"
	"github.com/zackstrap/cli/internal/output"
	"github.com/zackstrap/cli/internal/project"
)

// rootFlags holds the raw global flag values.
type rootFlags struct {
	config       string
	target       string
	force        bool
	failOnExists bool
	dryRun       bool
	verbose      bool
	timestamps   bool
}

// NewRootCmd creates the root command for the zackstrap CLI.
func NewRootCmd() *cobra.Command {
	cfg := &cmdtypes.GlobalConfig{}
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "zackstrap",
		Short: "Bootstrap project configuration files",
		Long: `zackstrap writes common project configuration files such as .editorconfig,
.prettierrc and a justfile, plus the tooling files of a Ruby, Python, Node.js,
Go or Rust project.

Existing files are skipped unless --force is given. With --fail-on-exists an
existing file stops the run instead.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			return initializeGlobals(c, cfg, flags)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.target, "target", "", "Target directory (default: current directory)")
	pf.BoolVarP(&flags.force, "force", "f", false, "Overwrite existing files (env: ZACKSTRAP_FORCE)")
	pf.BoolVar(&flags.failOnExists, "fail-on-exists", false, "Fail instead of skipping existing files (env: ZACKSTRAP_FAIL_ON_EXISTS)")
	pf.BoolVar(&flags.dryRun, "dry-run", false, "Show what would be written without writing")
	pf.StringVar(&flags.config, "config", "", "Path to config file (env: ZACKSTRAP_CONFIG)")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output")
	pf.BoolVar(&flags.timestamps, "timestamps", false, "Show timestamps in log output (env: ZACKSTRAP_LOG_TIMESTAMPS)")

	for _, kind := range project.Kinds() {
		rootCmd.AddCommand(NewKindCmd(cfg, kind))
	}
	rootCmd.AddCommand(
		NewAutoCmd(cfg),
		NewInteractiveCmd(cfg),
		NewHooksCmd(cfg),
		NewListCmd(cfg),
		config.NewConfigCmd(cfg),
		NewVersionCmd(cfg),
	)

	return rootCmd
}

// initializeGlobals loads configuration, resolves flag-backed settings and
// sets up logging.
func initializeGlobals(cmd *cobra.Command, cfg *cmdtypes.GlobalConfig, flags *rootFlags) error {
	output.SetOutput(cmd.OutOrStdout())

	configPath, err := zconfig.ResolveConfigPath(flags.config)
	if err != nil {
		return err
	}

	// A broken config file should not block config vet or config init.
	loader := zconfig.NewLoader()
	loaded, loadErr := loader.Load(configPath.String())
	if loadErr != nil {
		loaded = nil
	}

	changed := func(name string) *bool {
		if !cmd.Flags().Changed(name) {
			return nil
		}
		v, _ := cmd.Flags().GetBool(name)
		return &v
	}

	resolved, err := zconfig.ResolveAll(zconfig.ResolveAllOptions{
		ConfigFlag:       flags.config,
		ForceFlag:        changed("force"),
		FailOnExistsFlag: changed("fail-on-exists"),
		TimestampsFlag:   changed("timestamps"),
		Config:           loaded,
		InConfig:         loader.InConfig,
	})
	if err != nil {
		return &oerrors.ExitError{Code: oerrors.ExitCodeFromError(err), Err: err}
	}

	output.SetupLogging(output.LogConfig{
		Verbose:    flags.verbose,
		Timestamps: output.BoolPtr(resolved.Timestamps.Bool()),
	})

	if loadErr != nil {
		output.Warn("ignoring config file", "path", configPath.String(), "error", loadErr)
	}

	cfg.Config = loaded
	cfg.Resolved = resolved
	cfg.ConfigPath = resolved.ConfigPath.String()
	cfg.Target = flags.target
	cfg.DryRun = flags.dryRun
	cfg.Verbose = flags.verbose

	zconfig.LogResolvedValues(resolved.Values())
	output.Debug("initializing CLI",
		"config", cfg.ConfigPath,
		"target", cfg.Target,
		"dry-run", cfg.DryRun,
	)

	return nil
}

// newGenerator builds a generator for the resolved target on the OS filesystem.
func newGenerator(cfg *cmdtypes.GlobalConfig) (*generator.Generator, error) {
	root, err := cmdutil.ResolveTarget(cfg.Target)
	if err != nil {
		return nil, err
	}
	catalog, err := cfg.Catalog()
	if err != nil {
		return nil, err
	}
	return generator.New(afero.NewOsFs(), root, catalog, generator.WithLogger(output.Logger())), nil
}

// newHooksGenerator builds a hooks generator for the resolved target.
func newHooksGenerator(cfg *cmdtypes.GlobalConfig) (*generator.HooksGenerator, error) {
	root, err := cmdutil.ResolveTarget(cfg.Target)
	if err != nil {
		return nil, err
	}
	catalog, err := cfg.Catalog()
	if err != nil {
		return nil, err
	}
	return generator.NewHooks(afero.NewOsFs(), root, catalog, generator.WithLogger(output.Logger())), nil
}
