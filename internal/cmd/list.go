package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/zackstrap/cli/internal/cmdtypes"
	"github.com/zackstrap/cli/internal/cmdutil"
	oerrors "github.com/zackstrap/cli/internal/errors"
	"github.com/zackstrap/cli/internal/output"
	"github.com/zackstrap/cli/internal/project"
	"github.com/zackstrap/cli/internal/templates"
)

// Listing is everything `list` reports.
type Listing struct {
	Artifacts []ListedArtifact `json:"artifacts"`
	Templates []ListedKind     `json:"templates"`
	Commands  []ListedCommand  `json:"commands"`
}

// ListedArtifact is a generated file and the kinds that write it.
type ListedArtifact struct {
	Path        string   `json:"path"`
	Kinds       []string `json:"kinds"`
	Mode        string   `json:"mode"`
	Description string   `json:"description"`
}

// ListedKind is a project kind and its template variants.
type ListedKind struct {
	Kind      string   `json:"kind"`
	Name      string   `json:"name"`
	Templates []string `json:"templates"`
}

// ListedCommand is a top-level command.
type ListedCommand struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// NewListCmd creates the list command.
func NewListCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var of cmdutil.OutputFlags

	c := &cobra.Command{
		Use:   "list",
		Short: "List configuration files, templates and commands",
		Long: `List every file zackstrap can write, the template variants of each
project kind, and the available commands. Nothing is written.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			format, err := of.Parse()
			if err != nil {
				return err
			}
			catalog, err := cfg.Catalog()
			if err != nil {
				return err
			}
			return runList(BuildListing(c.Root(), catalog), format)
		},
	}

	of.AddTo(c)

	return c
}

// BuildListing collects the catalog's artifacts and templates and the
// commands of root.
func BuildListing(root *cobra.Command, catalog *templates.Catalog) Listing {
	var l Listing

	for _, a := range templates.BaseArtifacts() {
		l.Artifacts = append(l.Artifacts, listed(a, "all"))
	}

	index := map[string]int{}
	for _, kind := range project.Kinds() {
		for _, a := range catalog.Artifacts(kind) {
			if i, ok := index[a.Path]; ok {
				l.Artifacts[i].Kinds = append(l.Artifacts[i].Kinds, kind.String())
				continue
			}
			index[a.Path] = len(l.Artifacts)
			l.Artifacts = append(l.Artifacts, listed(a, kind.String()))
		}
	}

	for _, a := range templates.HookArtifacts() {
		l.Artifacts = append(l.Artifacts, listed(a, "hooks"))
	}

	for _, kind := range project.Kinds() {
		l.Templates = append(l.Templates, ListedKind{
			Kind:      kind.String(),
			Name:      kind.DisplayName(),
			Templates: catalog.Templates(kind),
		})
	}

	if root != nil {
		for _, c := range root.Commands() {
			if !c.IsAvailableCommand() || c.Name() == "help" {
				continue
			}
			l.Commands = append(l.Commands, ListedCommand{Name: c.Name(), Description: c.Short})
		}
	}

	return l
}

func listed(a templates.Artifact, kind string) ListedArtifact {
	return ListedArtifact{
		Path:        a.Path,
		Kinds:       []string{kind},
		Mode:        a.Mode.String(),
		Description: a.Description,
	}
}

func runList(l Listing, format output.OutputFormat) error {
	switch format {
	case output.FormatJSON:
		data, err := json.MarshalIndent(l, "", "  ")
		if err != nil {
			return &oerrors.ExitError{Code: oerrors.ExitGeneralError, Err: fmt.Errorf("marshaling listing: %w", err)}
		}
		output.Println(string(data))
	case output.FormatYAML:
		data, err := yaml.Marshal(l)
		if err != nil {
			return &oerrors.ExitError{Code: oerrors.ExitGeneralError, Err: fmt.Errorf("marshaling listing: %w", err)}
		}
		output.Print(string(data))
	default:
		printListTables(l)
	}
	return nil
}

func printListTables(l Listing) {
	files := output.NewTable("FILE", "PROJECTS", "DESCRIPTION")
	for _, a := range l.Artifacts {
		files.Row(a.Path, strings.Join(a.Kinds, ", "), a.Description)
	}

	kinds := output.NewTable("KIND", "TEMPLATES")
	for _, k := range l.Templates {
		kinds.Row(k.Name, strings.Join(k.Templates, ", "))
	}

	cmds := output.NewTable("COMMAND", "DESCRIPTION")
	for _, c := range l.Commands {
		cmds.Row(c.Name, c.Description)
	}

	output.Println(output.StyleSummary.Render("Configuration files"))
	output.Println(files.String())
	output.Println("")
	output.Println(output.StyleSummary.Render("Templates"))
	output.Println(kinds.String())
	output.Println("")
	output.Println(output.StyleSummary.Render("Commands"))
	output.Println(cmds.String())
}
