// Package main is the entry point for the zackstrap CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/zackstrap/cli/internal/cmd"
	oerrors "github.com/zackstrap/cli/internal/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		var exitErr *oerrors.ExitError
		if errors.As(err, &exitErr) {
			// Only print if the command layer hasn't already printed it
			if !exitErr.Printed {
				fmt.Fprintln(os.Stderr, err)
			}
			stop()
			os.Exit(exitErr.Code)
		}
		// Flag parse errors and other unexpected failures
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(oerrors.ExitCodeFromError(err))
	}
}
