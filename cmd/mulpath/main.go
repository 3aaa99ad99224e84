// Package main is the entry point for the mulpath CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/mulpath/cmd/mulpath/commands"
	"go.trai.ch/mulpath/internal/app"
	"go.trai.ch/mulpath/internal/core/domain"
	_ "go.trai.ch/mulpath/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

// logControl is implemented by loggers that can switch format and verbosity.
type logControl interface {
	SetJSON(enable bool)
	SetVerbose(enable bool)
}

// progressControl is implemented by telemetry that can render vertices as they run.
type progressControl interface {
	SetProgress(w io.Writer)
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		if err != nil {
			return nil, nil, err
		}
		return c, func() { _ = c.Telemetry.Close() }, nil
	}))
}

func run(
	ctx context.Context,
	args []string,
	stdout, stderr io.Writer,
	provider ComponentProvider,
) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, cleanup, err := provider(ctx)
	if err != nil {
		// The logger is not available when initialization fails.
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	defer cleanup()

	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)
	cli.SetFlagHook(func(g commands.GlobalFlags) {
		if lc, ok := components.Logger.(logControl); ok {
			lc.SetJSON(g.JSON)
			lc.SetVerbose(g.Verbose)
		}
		if pc, ok := components.Telemetry.(progressControl); ok && g.Progress {
			pc.SetProgress(stderr)
		}
	})

	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, domain.ErrAssetsChanged) || errors.Is(err, domain.ErrAssetsUnavailable) {
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
