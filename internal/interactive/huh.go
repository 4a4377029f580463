package interactive

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
)

// HuhPrompter asks questions with charmbracelet/huh forms. Each question is
// its own form.
type HuhPrompter struct {
	theme      *huh.Theme
	accessible bool
}

// NewHuhPrompter returns a terminal prompter. Accessible mode swaps the TUI
// for plain line prompts.
func NewHuhPrompter(accessible bool) *HuhPrompter {
	return &HuhPrompter{theme: huh.ThemeCharm(), accessible: accessible}
}

func (h *HuhPrompter) Select(title string, options []Option, initial string) (string, error) {
	value := initial
	opts := make([]huh.Option[string], 0, len(options))
	for _, o := range options {
		opts = append(opts, huh.NewOption(o.Label, o.Value))
	}

	sel := huh.NewSelect[string]().
		Title(title).
		Options(opts...).
		Value(&value)

	if err := h.run(huh.NewGroup(sel)); err != nil {
		return "", err
	}
	return value, nil
}

func (h *HuhPrompter) Confirm(title string, initial bool) (bool, error) {
	value := initial
	confirm := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&value)

	if err := h.run(huh.NewGroup(confirm)); err != nil {
		return false, err
	}
	return value, nil
}

func (h *HuhPrompter) run(g *huh.Group) error {
	form := huh.NewForm(g).
		WithTheme(h.theme).
		WithAccessible(h.accessible)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrCancelled
		}
		return fmt.Errorf("prompt failed: %w", err)
	}
	return nil
}
