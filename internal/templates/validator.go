package templates

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Pins are the runtime versions written into version files.
type Pins struct {
	Ruby   string `json:"ruby" yaml:"ruby" mapstructure:"ruby"`
	Node   string `json:"node" yaml:"node" mapstructure:"node"`
	Python string `json:"python" yaml:"python" mapstructure:"python"`
	Nvmrc  string `json:"nvmrc" yaml:"nvmrc" mapstructure:"nvmrc"`
}

// DefaultPins returns the versions used when nothing is configured.
func DefaultPins() Pins {
	return Pins{
		Ruby:   "3.3.0",
		Node:   "24",
		Python: "3.12",
		Nvmrc:  "20",
	}
}

// Merge returns p with empty fields filled from base.
func (p Pins) Merge(base Pins) Pins {
	if p.Ruby == "" {
		p.Ruby = base.Ruby
	}
	if p.Node == "" {
		p.Node = base.Node
	}
	if p.Python == "" {
		p.Python = base.Python
	}
	if p.Nvmrc == "" {
		p.Nvmrc = base.Nvmrc
	}
	return p
}

// PinIssue describes one invalid pin.
type PinIssue struct {
	Field string
	Value string
	Err   error
}

func (i PinIssue) String() string {
	return fmt.Sprintf("pins.%s: %q is not a valid version: %v", i.Field, i.Value, i.Err)
}

// Validate checks that every non-empty pin parses as a version. Partial
// versions such as "24" or "3.12" are accepted.
func (p Pins) Validate() []PinIssue {
	var issues []PinIssue
	for _, f := range []struct{ name, value string }{
		{"ruby", p.Ruby},
		{"node", p.Node},
		{"python", p.Python},
		{"nvmrc", p.Nvmrc},
	} {
		if f.value == "" {
			continue
		}
		if _, err := semver.NewVersion(strings.TrimPrefix(f.value, "v")); err != nil {
			issues = append(issues, PinIssue{Field: f.name, Value: f.value, Err: err})
		}
	}
	return issues
}

// ValidatePins returns an error listing every invalid pin, or nil.
func ValidatePins(p Pins) error {
	issues := p.Validate()
	if len(issues) == 0 {
		return nil
	}
	msgs := make([]string, 0, len(issues))
	for _, i := range issues {
		msgs = append(msgs, i.String())
	}
	return fmt.Errorf("invalid version pins: %s", strings.Join(msgs, "; "))
}
