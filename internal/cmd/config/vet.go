package config

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zackstrap/cli/internal/cmdtypes"
	"github.com/zackstrap/cli/internal/config"
	oerrors "github.com/zackstrap/cli/internal/errors"
	"github.com/zackstrap/cli/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate the configuration file",
		Long: `Validate the zackstrap configuration file against the embedded schema.

Version pins must be semantic versions and template names must be known
for their project kind. The file at ~/.zackstrap/config.yaml is checked
by default; use --config to check another one.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runConfigVet(cfg)
		},
	}
}

func runConfigVet(cfg *cmdtypes.GlobalConfig) error {
	path, err := configPath(cfg)
	if err != nil {
		return err
	}

	exists, err := config.FileExists(path)
	if err != nil {
		return &oerrors.ExitError{Code: oerrors.ExitGeneralError, Err: fmt.Errorf("checking config file: %w", err)}
	}
	if !exists {
		return &oerrors.ExitError{
			Code: oerrors.ExitNotFound,
			Err: &oerrors.DetailError{
				Type:     "config file not found",
				Message:  fmt.Sprintf("no config file at %s", path),
				Location: path,
				Hint:     "Run 'zackstrap config init' to create one.",
			},
		}
	}

	if err := config.ValidateFile(path); err != nil {
		var issues config.ValidationErrors
		if errors.As(err, &issues) {
			output.Error("config validation failed", "file", path, "issues", len(issues))
			for _, issue := range issues {
				output.Error(issue.String(), "keyword", issue.Keyword)
			}
			return &oerrors.ExitError{Code: oerrors.ExitValidationError, Err: err, Printed: true}
		}
		return &oerrors.ExitError{
			Code: oerrors.ExitValidationError,
			Err:  oerrors.NewValidationError(err.Error(), path, "Check the file is well-formed YAML."),
		}
	}

	output.Println(output.FormatCheckmark("Config file is valid: " + output.StyleNoun.Render(path)))
	return nil
}
