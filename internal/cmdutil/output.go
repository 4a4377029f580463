package cmdutil

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/zackstrap/cli/internal/generator"
	"github.com/zackstrap/cli/internal/output"
	"github.com/zackstrap/cli/internal/project"
	"github.com/zackstrap/cli/internal/writer"
)

// GenerateOpts controls RunGenerate.
type GenerateOpts struct {
	Kind     project.Kind
	Template string
	Policy   writer.Policy
	DryRun   bool
}

// RunGenerate plans or executes a generation run and prints its report. A
// failed run still prints the steps that completed before the error.
func RunGenerate(ctx context.Context, g *generator.Generator, opts GenerateOpts) error {
	kindLog := output.KindLogger(opts.Kind.String())

	if err := g.CheckTarget(); err != nil {
		return ExitErrorFor(err)
	}

	if opts.DryRun {
		report, err := g.DryRun(opts.Kind, opts.Template)
		if err != nil {
			return ExitErrorFor(err)
		}
		PrintReport(report, g.Root())
		return nil
	}

	kindLog.Debug("generating", "template", opts.Template,
		"force", opts.Policy.Force, "fail-on-exists", opts.Policy.FailOnExists)

	var report *generator.Report
	err := output.RunWithSpinner(ctx, func() error {
		var genErr error
		report, genErr = g.Generate(ctx, opts.Kind, opts.Template, opts.Policy)
		return genErr
	}, output.WithTitle(fmt.Sprintf("Generating %s configuration...", opts.Kind.DisplayName())))

	if report != nil {
		PrintReport(report, g.Root())
	}
	if err != nil {
		return ExitErrorFor(err)
	}
	return nil
}

// RunHooks plans or installs git hooks and prints the report.
func RunHooks(h *generator.HooksGenerator, kind project.Kind, template string, force, dryRun bool) error {
	var (
		report *generator.Report
		err    error
	)
	if dryRun {
		report, err = h.DryRun(kind, template)
	} else {
		report, err = h.Generate(kind, template, force)
	}
	if report != nil {
		PrintReport(report, h.Root())
	}
	return ExitErrorFor(err)
}

// PrintReport writes a report to stdout. Dry runs render as a file tree,
// executed runs as one line per write followed by a summary.
func PrintReport(r *generator.Report, root string) {
	if r.DryRun {
		files := make(map[string]string, len(r.Entries))
		for path, outcome := range r.Outcomes() {
			files[path] = outcome.String()
		}
		output.Println(fmt.Sprintf("%s %s configuration (template: %s)",
			output.StyleAction.Render("Dry run:"),
			r.Kind.DisplayName(),
			output.StyleNoun.Render(r.Template)))
		output.Print(output.RenderFileTree(filepath.Base(root), files))
		output.Println(output.StyleDim.Render(fmt.Sprintf("%d file(s) would be written, nothing was changed", len(files))))
		return
	}

	for _, e := range r.Entries {
		output.Println(output.FormatArtifactLine(e.Path, e.Outcome.String()))
	}
	output.Println("")
	output.Println(output.FormatCheckmark(output.StyleSummary.Render(
		fmt.Sprintf("%s configuration in %s (template: %s): %s",
			r.Kind.DisplayName(), root, r.Template, Summary(r)))))
}

// Summary counts the report outcomes, e.g. "3 created, 1 skipped".
func Summary(r *generator.Report) string {
	var parts []string
	for _, o := range []writer.Outcome{
		writer.OutcomeCreated,
		writer.OutcomeOverwritten,
		writer.OutcomeAppended,
		writer.OutcomeSkipped,
		writer.OutcomePlanned,
	} {
		if n := r.Count(o); n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, o))
		}
	}
	if len(parts) == 0 {
		return "nothing to do"
	}
	return strings.Join(parts, ", ")
}
