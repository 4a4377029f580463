package output

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh/spinner"
)

// SpinnerOption configures a spinner.
type SpinnerOption func(*spinnerConfig)

type spinnerConfig struct {
	title string
	tty   func() bool
	// show animates title until wait returns or the user quits.
	show func(title string, wait func()) error
}

// WithTitle sets the spinner title.
func WithTitle(title string) SpinnerOption {
	return func(c *spinnerConfig) {
		c.title = title
	}
}

// RunWithSpinner executes action while a spinner animates on a TTY. Off a
// TTY the action runs directly. It returns only after action has returned,
// so anything action assigns is safe to read afterwards.
func RunWithSpinner(ctx context.Context, action func() error, opts ...SpinnerOption) error {
	cfg := &spinnerConfig{
		title: "Working...",
		tty:   IsTTY,
		show:  showSpinner,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if !cfg.tty() {
		return action()
	}

	done := make(chan struct{})
	var actionErr error
	go func() {
		defer close(done)
		actionErr = action()
	}()

	spinnerErr := cfg.show(cfg.title, func() {
		select {
		case <-done:
		case <-ctx.Done():
		}
	})

	// The spinner stops early on cancel or Ctrl-C; wait for the action
	// before its results are read.
	<-done

	if actionErr != nil {
		return actionErr
	}
	if spinnerErr != nil {
		return fmt.Errorf("spinner error: %w", spinnerErr)
	}
	return nil
}

func showSpinner(title string, wait func()) error {
	return spinner.New().Title(title).Action(wait).Run()
}
