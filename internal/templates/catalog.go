package templates

import (
	"errors"
	"fmt"

	"github.com/zackstrap/cli/internal/project"
)

// ErrUnknownArtifact is returned when no content exists for an artifact.
var ErrUnknownArtifact = errors.New("unknown artifact")

// Catalog maps (kind, template, artifact) to file content.
type Catalog struct {
	static map[contentKey]string
	pins   Pins
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithPins overrides the version pins. Empty fields keep their defaults.
func WithPins(p Pins) Option {
	return func(c *Catalog) {
		c.pins = p.Merge(c.pins)
	}
}

// NewCatalog builds the catalog from the embedded content.
func NewCatalog(opts ...Option) (*Catalog, error) {
	static, err := loadStatic(contentFS)
	if err != nil {
		return nil, fmt.Errorf("loading embedded templates: %w", err)
	}

	c := &Catalog{static: static, pins: DefaultPins()}
	for _, opt := range opts {
		opt(c)
	}

	if err := ValidatePins(c.pins); err != nil {
		return nil, err
	}
	return c, nil
}

// Pins returns the version pins in effect.
func (c *Catalog) Pins() Pins {
	return c.pins
}

// Content returns the body of an artifact for the given kind and template.
// An unknown template silently resolves to the default variant. Errors from
// structured artifacts are serialization failures.
func (c *Catalog) Content(kind project.Kind, template string, id ArtifactID) (string, error) {
	switch id {
	case EditorConfig:
		return DefaultEditorConfig().Render()
	case Prettier:
		return marshalJSON(PrettierPreset(template))
	case RubyVersion:
		return c.pins.Ruby + "\n", nil
	case NodeVersion:
		return c.pins.Node + "\n", nil
	case PythonVersion:
		return c.pins.Python + "\n", nil
	case Nvmrc:
		return c.pins.Nvmrc + "\n", nil
	case PackageJSON:
		if kind == project.Ruby {
			return marshalJSON(RubyPackage(template))
		}
	}

	if body, ok := c.lookup(string(kind), id, template); ok {
		return body, nil
	}
	if body, ok := c.lookup(commonKind, id, template); ok {
		return body, nil
	}
	return "", fmt.Errorf("%w: %s for %s", ErrUnknownArtifact, id, kind)
}

func (c *Catalog) lookup(kind string, id ArtifactID, template string) (string, bool) {
	if body, ok := c.static[contentKey{kind: kind, artifact: id, template: template}]; ok {
		return body, true
	}
	body, ok := c.static[contentKey{kind: kind, artifact: id, template: DefaultTemplate}]
	return body, ok
}

// Artifacts lists the kind-stage artifacts of kind in write order.
func (c *Catalog) Artifacts(kind project.Kind) []Artifact {
	return KindArtifacts(kind)
}

// Templates lists the template names known for kind.
func (c *Catalog) Templates(kind project.Kind) []string {
	return ValidTemplates(kind)
}

// Artifact returns path and mode metadata for id.
func (c *Catalog) Artifact(id ArtifactID) (Artifact, bool) {
	return Lookup(id)
}
