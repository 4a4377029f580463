package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	configDirPerm  os.FileMode = 0o700
	configFilePerm os.FileMode = 0o600
)

const defaultHeader = "# zackstrap configuration\n# Validate with: zackstrap config vet\n\n"

// keyComments annotate the top-level keys of the generated file.
var keyComments = map[string]string{
	"force":        "Overwrite existing files (same as --force)",
	"failOnExists": "Fail instead of skipping existing files (same as --fail-on-exists)",
	"templates":    "Default template per kind, e.g. ruby: rails",
	"pins":         "Versions written to .ruby-version, .node-version, .python-version and .nvmrc",
	"log":          "Logging options",
}

// DefaultConfigYAML renders DefaultConfig as commented YAML.
func DefaultConfigYAML() ([]byte, error) {
	var node yaml.Node
	if err := node.Encode(DefaultConfig()); err != nil {
		return nil, fmt.Errorf("encoding default config: %w", err)
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		if c, ok := keyComments[key.Value]; ok {
			key.HeadComment = c
		}
	}

	var buf bytes.Buffer
	buf.WriteString(defaultHeader)
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&node); err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteDefault writes the default config to path, creating its directory.
// An existing file is only replaced when force is set; otherwise it returns
// an error wrapping os.ErrExist.
func WriteDefault(path string, force bool) error {
	path = ExpandTilde(path)

	exists, err := FileExists(path)
	if err != nil {
		return fmt.Errorf("checking config file: %w", err)
	}
	if exists && !force {
		return fmt.Errorf("config file %s: %w", path, os.ErrExist)
	}

	data, err := DefaultConfigYAML()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), configDirPerm); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, configFilePerm); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
