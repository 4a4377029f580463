package generator

import (
	"github.com/zackstrap/cli/internal/project"
	"github.com/zackstrap/cli/internal/writer"
)

// Entry records what happened to one artifact.
type Entry struct {
	Path    string         `json:"path"`
	Stage   Stage          `json:"stage"`
	Outcome writer.Outcome `json:"outcome"`
}

// Report lists the executed steps of a run in order. On failure it holds the
// steps that completed before the error.
type Report struct {
	Kind     project.Kind `json:"kind"`
	Template string       `json:"template"`
	DryRun   bool         `json:"dryRun,omitempty"`
	Entries  []Entry      `json:"entries"`
}

func (r *Report) add(step Step, outcome writer.Outcome) {
	r.Entries = append(r.Entries, Entry{Path: step.Artifact.Path, Stage: step.Stage, Outcome: outcome})
}

// Count returns how many entries ended with outcome.
func (r *Report) Count(outcome writer.Outcome) int {
	n := 0
	for _, e := range r.Entries {
		if e.Outcome == outcome {
			n++
		}
	}
	return n
}

// Outcomes maps each path to its final outcome. A path written twice, like
// the justfile, reports its last write.
func (r *Report) Outcomes() map[string]writer.Outcome {
	m := make(map[string]writer.Outcome, len(r.Entries))
	for _, e := range r.Entries {
		m[e.Path] = e.Outcome
	}
	return m
}
