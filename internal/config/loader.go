package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/zackstrap/cli/internal/project"
)

// Environment variable prefix for zackstrap configuration.
const envPrefix = "ZACKSTRAP"

// Loader reads the config file and the environment overrides that have no
// command-line flag (pins and per-kind templates). Values that do have flags
// are resolved separately by ResolveAll.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	for _, key := range []string{"pins.ruby", "pins.node", "pins.python", "pins.nvmrc"} {
		_ = v.BindEnv(key)
	}
	for _, kind := range project.Kinds() {
		_ = v.BindEnv("templates." + kind.String())
	}

	return &Loader{v: v}
}

// Load loads configuration from the given file path. An empty path means
// the default location. A missing file is not an error.
func (l *Loader) Load(configFile string) (*Config, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return nil, fmt.Errorf("getting config file path: %w", err)
		}
	}

	l.v.SetConfigFile(ExpandTilde(configFile))
	l.v.SetConfigType("yaml")

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return &cfg, nil
}

// InConfig reports whether key was set in the config file itself.
func (l *Loader) InConfig(key string) bool {
	return l.v.InConfig(key)
}

// ConfigFileUsed returns the path of the file Load read.
func (l *Loader) ConfigFileUsed() string {
	return l.v.ConfigFileUsed()
}
