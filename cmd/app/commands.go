package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/allisson/secure/cmd/app/commands"
	"github.com/allisson/secure/internal/app"
	"github.com/allisson/secure/internal/config"
)

func getCommands() []*cli.Command {
	cmds := []*cli.Command{}
	cmds = append(cmds, getDecodeCommands()...)
	return cmds
}

// withContainer loads and validates the configuration, builds the container
// and hands it to fn. Metrics, when enabled, are written to stderr on exit.
func withContainer(ctx context.Context, fn func(container *app.Container) error) error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}

	container := app.NewContainer(cfg)
	defer commands.CloseContainer(ctx, container, os.Stderr)

	return fn(container)
}
