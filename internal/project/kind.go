// Package project defines project kinds and detects them from a directory.
package project

import (
	"fmt"
	"strings"
)

// Kind is the ecosystem a project belongs to.
type Kind string

const (
	Basic  Kind = "basic"
	Ruby   Kind = "ruby"
	Python Kind = "python"
	Node   Kind = "node"
	Go     Kind = "go"
	Rust   Kind = "rust"
)

// Kinds returns every kind in detection priority order, followed by Basic.
func Kinds() []Kind {
	return []Kind{Ruby, Python, Node, Go, Rust, Basic}
}

// String returns the string representation of the kind.
func (k Kind) String() string {
	return string(k)
}

// DisplayName is the human label used in prompts and listings.
func (k Kind) DisplayName() string {
	switch k {
	case Ruby:
		return "Ruby"
	case Python:
		return "Python"
	case Node:
		return "Node.js"
	case Go:
		return "Go"
	case Rust:
		return "Rust"
	default:
		return "Basic"
	}
}

// IsValid reports whether k is one of the known kinds.
func (k Kind) IsValid() bool {
	switch k {
	case Basic, Ruby, Python, Node, Go, Rust:
		return true
	default:
		return false
	}
}

// ParseKind parses a case-insensitive kind name. "nodejs" and "golang" are
// accepted as aliases.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "basic":
		return Basic, nil
	case "ruby":
		return Ruby, nil
	case "python":
		return Python, nil
	case "node", "nodejs":
		return Node, nil
	case "go", "golang":
		return Go, nil
	case "rust":
		return Rust, nil
	default:
		return "", fmt.Errorf("unknown project kind: %q", s)
	}
}
