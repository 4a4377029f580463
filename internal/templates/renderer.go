package templates

import (
	"encoding/json"
	"fmt"
	"strings"
)

// EditorConfigSection is one [glob] block of an .editorconfig file.
type EditorConfigSection struct {
	Glob                   string
	IndentStyle            string
	IndentSize             string
	EndOfLine              string
	Charset                string
	TrimTrailingWhitespace bool
	InsertFinalNewline     bool
}

// EditorConfigFile is the structured form of .editorconfig.
type EditorConfigFile struct {
	Root     bool
	Sections []EditorConfigSection
}

// DefaultEditorConfig returns the shared editor settings: two-space indents
// for everything, with explicit Ruby and JavaScript/TypeScript sections.
func DefaultEditorConfig() EditorConfigFile {
	section := func(glob string) EditorConfigSection {
		return EditorConfigSection{
			Glob:                   glob,
			IndentStyle:            "space",
			IndentSize:             "2",
			EndOfLine:              "lf",
			Charset:                "utf-8",
			TrimTrailingWhitespace: true,
			InsertFinalNewline:     true,
		}
	}
	return EditorConfigFile{
		Root: true,
		Sections: []EditorConfigSection{
			section("*"),
			section("*.rb"),
			section("*.{js,jsx,ts,tsx}"),
		},
	}
}

// Render produces the INI text. Sections keep their declared order.
func (e EditorConfigFile) Render() (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "root = %t\n", e.Root)
	for _, s := range e.Sections {
		if s.Glob == "" {
			return "", fmt.Errorf("editorconfig section without glob")
		}
		fmt.Fprintf(&b, "\n[%s]\n", s.Glob)
		fmt.Fprintf(&b, "indent_style = %s\n", s.IndentStyle)
		fmt.Fprintf(&b, "indent_size = %s\n", s.IndentSize)
		if s.EndOfLine != "" {
			fmt.Fprintf(&b, "end_of_line = %s\n", s.EndOfLine)
		}
		if s.Charset != "" {
			fmt.Fprintf(&b, "charset = %s\n", s.Charset)
		}
		fmt.Fprintf(&b, "trim_trailing_whitespace = %t\n", s.TrimTrailingWhitespace)
		fmt.Fprintf(&b, "insert_final_newline = %t\n", s.InsertFinalNewline)
	}
	return b.String(), nil
}

// PrettierConfig is the structured form of .prettierrc.
type PrettierConfig struct {
	Semi          bool   `json:"semi"`
	SingleQuote   bool   `json:"singleQuote"`
	TabWidth      int    `json:"tabWidth"`
	TrailingComma string `json:"trailingComma"`
	PrintWidth    int    `json:"printWidth"`
}

var prettierPresets = map[string]PrettierConfig{
	"default": {Semi: true, SingleQuote: true, TabWidth: 2, TrailingComma: "es5", PrintWidth: 80},
	"google":  {Semi: true, SingleQuote: true, TabWidth: 2, TrailingComma: "all", PrintWidth: 80},
	"airbnb":  {Semi: true, SingleQuote: true, TabWidth: 2, TrailingComma: "all", PrintWidth: 100},
}

// PrettierPreset returns the named preset, or the default one.
func PrettierPreset(name string) PrettierConfig {
	if p, ok := prettierPresets[name]; ok {
		return p
	}
	return prettierPresets[DefaultTemplate]
}

// RubyPackageJSON is the package.json written into Ruby projects so Prettier
// can format Ruby sources.
type RubyPackageJSON struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Description     string            `json:"description"`
	DevDependencies map[string]string `json:"devDependencies"`
}

var rubyPackages = map[string]struct{ name, description string }{
	"default": {"project", "A Ruby project"},
	"rails":   {"rails-project", "A Ruby on Rails application"},
	"sinatra": {"sinatra-project", "A Sinatra application"},
	"gem":     {"ruby-gem", "A Ruby gem"},
}

// RubyPackage returns the manifest for a Ruby template.
func RubyPackage(template string) RubyPackageJSON {
	meta, ok := rubyPackages[template]
	if !ok {
		meta = rubyPackages[DefaultTemplate]
	}
	return RubyPackageJSON{
		Name:        meta.name,
		Version:     "0.1.0",
		Description: meta.description,
		DevDependencies: map[string]string{
			"prettier":             "^3.0.0",
			"prettier-plugin-ruby": "github:prettier/plugin-ruby",
		},
	}
}

// marshalJSON renders v as two-space indented JSON with a trailing newline.
func marshalJSON(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}
