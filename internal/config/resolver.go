package config

import (
	"fmt"
	"os"
	"strconv"

	oerrors "github.com/zackstrap/cli/internal/errors"
	"github.com/zackstrap/cli/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// Environment variables for values that also have flags.
const (
	EnvForce        = "ZACKSTRAP_FORCE"
	EnvFailOnExists = "ZACKSTRAP_FAIL_ON_EXISTS"
	EnvTimestamps   = "ZACKSTRAP_LOG_TIMESTAMPS"
)

// ResolvedValue is a configuration value with its provenance.
type ResolvedValue struct {
	Key    string
	Value  any
	Source ConfigSource
	// Shadowed holds values overridden by a higher-precedence source.
	Shadowed map[ConfigSource]any
}

// Bool returns the value as a bool, false when it is not one.
func (v ResolvedValue) Bool() bool {
	b, _ := v.Value.(bool)
	return b
}

// String returns the value formatted as a string.
func (v ResolvedValue) String() string {
	if s, ok := v.Value.(string); ok {
		return s
	}
	return fmt.Sprint(v.Value)
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) ZACKSTRAP_CONFIG env, (3) ~/.zackstrap/config.yaml
func ResolveConfigPath(flagValue string) (ResolvedValue, error) {
	result := ResolvedValue{Key: "config", Shadowed: make(map[ConfigSource]any)}

	paths, err := DefaultPaths()
	if err != nil {
		return result, err
	}
	defaultPath := paths.ConfigFile
	envValue := os.Getenv(EnvConfig)

	switch {
	case flagValue != "":
		result.Value, result.Source = ExpandTilde(flagValue), SourceFlag
		if envValue != "" {
			result.Shadowed[SourceEnv] = envValue
		}
		result.Shadowed[SourceDefault] = defaultPath
	case envValue != "":
		result.Value, result.Source = ExpandTilde(envValue), SourceEnv
		result.Shadowed[SourceDefault] = defaultPath
	default:
		result.Value, result.Source = defaultPath, SourceDefault
	}

	return result, nil
}

// ResolveBoolOptions describes one boolean setting across its sources.
// Nil pointers mean "not set" for that source.
type ResolveBoolOptions struct {
	Key     string
	Flag    *bool
	EnvVar  string
	Config  *bool
	Default bool
}

// ResolveBool resolves a boolean using precedence flag > env > config >
// default. An unparsable environment value is a validation error.
func ResolveBool(opts ResolveBoolOptions) (ResolvedValue, error) {
	result := ResolvedValue{Key: opts.Key, Shadowed: make(map[ConfigSource]any)}

	var env *bool
	if raw, ok := os.LookupEnv(opts.EnvVar); ok && raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return result, fmt.Errorf("%s=%q is not a boolean: %w", opts.EnvVar, raw, oerrors.ErrValidation)
		}
		env = &b
	}

	candidates := []struct {
		source ConfigSource
		value  *bool
	}{
		{SourceFlag, opts.Flag},
		{SourceEnv, env},
		{SourceConfig, opts.Config},
		{SourceDefault, &opts.Default},
	}

	for _, c := range candidates {
		if c.value == nil {
			continue
		}
		if result.Source == "" {
			result.Value, result.Source = *c.value, c.source
			continue
		}
		if c.source != SourceDefault {
			result.Shadowed[c.source] = *c.value
		}
	}

	return result, nil
}

// ResolveAllOptions carries the raw inputs for ResolveAll.
type ResolveAllOptions struct {
	// ConfigFlag is the raw --config value.
	ConfigFlag string

	// Flags that were explicitly set on the command line; nil otherwise.
	ForceFlag        *bool
	FailOnExistsFlag *bool
	TimestampsFlag   *bool

	// Config is the loaded file. InConfig reports which keys the file set.
	Config   *Config
	InConfig func(key string) bool
}

// ResolvedConfig holds every flag-backed setting with its provenance.
type ResolvedConfig struct {
	ConfigPath   ResolvedValue
	Force        ResolvedValue
	FailOnExists ResolvedValue
	Timestamps   ResolvedValue
}

// Values returns the resolved values in a stable order.
func (r *ResolvedConfig) Values() []ResolvedValue {
	return []ResolvedValue{r.ConfigPath, r.Force, r.FailOnExists, r.Timestamps}
}

// ResolveAll resolves the config path and every flag-backed setting.
func ResolveAll(opts ResolveAllOptions) (*ResolvedConfig, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = &Config{}
	}
	inConfig := opts.InConfig
	if inConfig == nil {
		inConfig = func(string) bool { return false }
	}
	fromFile := func(key string, v bool) *bool {
		if inConfig(key) {
			return &v
		}
		return nil
	}

	path, err := ResolveConfigPath(opts.ConfigFlag)
	if err != nil {
		return nil, err
	}

	force, err := ResolveBool(ResolveBoolOptions{
		Key: "force", Flag: opts.ForceFlag, EnvVar: EnvForce,
		Config: fromFile("force", cfg.Force),
	})
	if err != nil {
		return nil, err
	}

	failOnExists, err := ResolveBool(ResolveBoolOptions{
		Key: "failOnExists", Flag: opts.FailOnExistsFlag, EnvVar: EnvFailOnExists,
		Config: fromFile("failOnExists", cfg.FailOnExists),
	})
	if err != nil {
		return nil, err
	}

	timestamps, err := ResolveBool(ResolveBoolOptions{
		Key: "log.timestamps", Flag: opts.TimestampsFlag, EnvVar: EnvTimestamps,
		Config: cfg.Log.Timestamps,
	})
	if err != nil {
		return nil, err
	}

	return &ResolvedConfig{
		ConfigPath:   path,
		Force:        force,
		FailOnExists: failOnExists,
		Timestamps:   timestamps,
	}, nil
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
