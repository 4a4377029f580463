package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zackstrap/cli/internal/cmdtypes"
	"github.com/zackstrap/cli/internal/config"
	oerrors "github.com/zackstrap/cli/internal/errors"
	"github.com/zackstrap/cli/internal/output"
)

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var forceFlag bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a default configuration file",
		Long: `Create a zackstrap configuration file with default values.

The file is created at ~/.zackstrap/config.yaml by default.
Use --config or ZACKSTRAP_CONFIG to choose a different location.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runConfigInit(cfg, forceFlag)
		},
	}

	c.Flags().BoolVar(&forceFlag, "force", false, "Overwrite an existing config file")

	return c
}

func runConfigInit(cfg *cmdtypes.GlobalConfig, force bool) error {
	path, err := configPath(cfg)
	if err != nil {
		return err
	}

	if err := config.WriteDefault(path, force); err != nil {
		if errors.Is(err, os.ErrExist) {
			return &oerrors.ExitError{
				Code: oerrors.ExitFileExists,
				Err: &oerrors.DetailError{
					Type:     "config file already exists",
					Message:  err.Error(),
					Location: path,
					Hint:     "Use 'zackstrap config init --force' to overwrite it.",
					Cause:    oerrors.ErrFileExists,
				},
			}
		}
		return &oerrors.ExitError{Code: oerrors.ExitGeneralError, Err: err}
	}

	output.Println(output.FormatCheckmark("Config file created: " + output.StyleNoun.Render(path)))
	return nil
}

// configPath returns the resolved --config path, falling back to the default
// location when the root command did not resolve one.
func configPath(cfg *cmdtypes.GlobalConfig) (string, error) {
	path := cfg.ConfigPath
	if path == "" {
		var err error
		path, err = config.GetConfigFile()
		if err != nil {
			return "", &oerrors.ExitError{
				Code: oerrors.ExitGeneralError,
				Err:  fmt.Errorf("getting config file path: %w", err),
			}
		}
	}
	return config.ExpandTilde(path), nil
}
