// Package config provides configuration loading and management.
package config

import (
	"github.com/zackstrap/cli/internal/project"
	"github.com/zackstrap/cli/internal/templates"
)

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: false. Override with --timestamps.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty" json:"timestamps,omitempty"`
}

// Config represents the zackstrap configuration file.
// Loaded from ~/.zackstrap/config.yaml.
type Config struct {
	// Force overwrites existing files by default.
	// Env: ZACKSTRAP_FORCE, Flag: --force
	Force bool `mapstructure:"force" yaml:"force" json:"force"`

	// FailOnExists turns skipped files into errors by default.
	// Env: ZACKSTRAP_FAIL_ON_EXISTS, Flag: --fail-on-exists
	FailOnExists bool `mapstructure:"failOnExists" yaml:"failOnExists" json:"failOnExists"`

	// Templates maps a kind name to the template used when -t is not given.
	// Env: ZACKSTRAP_TEMPLATES_<KIND>
	Templates map[string]string `mapstructure:"templates" yaml:"templates,omitempty" json:"templates,omitempty"`

	// Pins overrides the version pin files. Each value must be a semantic version.
	// Env: ZACKSTRAP_PINS_<NAME>
	Pins templates.Pins `mapstructure:"pins" yaml:"pins" json:"pins"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log" yaml:"log" json:"log"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `zackstrap config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		Templates: map[string]string{},
		Pins:      templates.DefaultPins(),
		Log:       LogConfig{Timestamps: boolPtr(false)},
	}
}

// TemplateFor returns the configured default template for kind, or
// templates.DefaultTemplate when none is set.
func (c *Config) TemplateFor(kind project.Kind) string {
	if c != nil {
		if name := c.Templates[kind.String()]; name != "" {
			return name
		}
	}
	return templates.DefaultTemplate
}

func boolPtr(b bool) *bool {
	return &b
}
