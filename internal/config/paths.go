package config

import (
	"os"
	"path/filepath"
)

const (
	homeDirName = ".zackstrap"

	// EnvConfig overrides the config file location.
	EnvConfig = "ZACKSTRAP_CONFIG"
)

// Paths contains standard filesystem paths for zackstrap.
type Paths struct {
	// ConfigFile is the path to the config file (~/.zackstrap/config.yaml).
	ConfigFile string

	// HomeDir is the zackstrap home directory (~/.zackstrap).
	HomeDir string
}

// DefaultPaths returns the default paths.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	home := filepath.Join(homeDir, homeDirName)
	return &Paths{
		ConfigFile: filepath.Join(home, "config.yaml"),
		HomeDir:    home,
	}, nil
}

// GetConfigFile returns the config file path.
// If ZACKSTRAP_CONFIG is set, it takes precedence.
func GetConfigFile() (string, error) {
	if envPath := os.Getenv(EnvConfig); envPath != "" {
		return envPath, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}
	return paths.ConfigFile, nil
}

// ExpandTilde expands a leading ~ to the user's home directory. ~user forms
// and paths without a leading tilde are returned unchanged.
func ExpandTilde(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	if len(path) == 1 {
		return homeDir
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}
	return path
}

// FileExists reports whether the config file at path exists.
func FileExists(path string) (bool, error) {
	_, err := os.Stat(ExpandTilde(path))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
