// Package cmdtypes provides shared types for the cmd package and its sub-packages.
// It is separate from internal/cmd to avoid import cycles between internal/cmd
// and its sub-packages (internal/cmd/config).
package cmdtypes

import (
	"fmt"

	"github.com/zackstrap/cli/internal/config"
	oerrors "github.com/zackstrap/cli/internal/errors"
	"github.com/zackstrap/cli/internal/templates"
	"github.com/zackstrap/cli/internal/writer"
)

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is populated once at startup and passed explicitly into every sub-command
// constructor.
type GlobalConfig struct {
	Config     *config.Config
	Resolved   *config.ResolvedConfig
	ConfigPath string // resolved --config path
	Target     string // --target, empty means the working directory
	DryRun     bool
	Verbose    bool
}

// Policy returns the write policy from the resolved force settings.
func (g *GlobalConfig) Policy() writer.Policy {
	if g.Resolved == nil {
		return writer.Policy{}
	}
	return writer.Policy{
		Force:        g.Resolved.Force.Bool(),
		FailOnExists: g.Resolved.FailOnExists.Bool(),
	}
}

// Catalog builds the template catalog with the configured version pins.
// Invalid pins are a validation error.
func (g *GlobalConfig) Catalog() (*templates.Catalog, error) {
	var opts []templates.Option
	if g.Config != nil {
		opts = append(opts, templates.WithPins(g.Config.Pins))
	}
	c, err := templates.NewCatalog(opts...)
	if err != nil {
		return nil, &oerrors.ExitError{
			Code: oerrors.ExitValidationError,
			Err: &oerrors.DetailError{
				Type:     "invalid configuration",
				Message:  err.Error(),
				Location: g.ConfigPath,
				Hint:     "Run 'zackstrap config vet' to check the config file.",
				Cause:    fmt.Errorf("%w: %w", oerrors.ErrValidation, err),
			},
		}
	}
	return c, nil
}

// Exit codes, aliased from internal/errors.
const (
	ExitSuccess           = oerrors.ExitSuccess
	ExitGeneralError      = oerrors.ExitGeneralError
	ExitValidationError   = oerrors.ExitValidationError
	ExitFileExists        = oerrors.ExitFileExists
	ExitNotFound          = oerrors.ExitNotFound
	ExitGitNotInitialized = oerrors.ExitGitNotInitialized
	ExitCancelled         = oerrors.ExitCancelled
)

// ExitError is a type alias to internal/errors.ExitError.
type ExitError = oerrors.ExitError
