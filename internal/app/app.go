// Package app wires the configuration, managers and CLI together.
package app

import (
	"context"

	"umbreldev/internal/cli"
	"umbreldev/internal/config"
	"umbreldev/internal/git"
	"umbreldev/internal/logger"
	"umbreldev/internal/preflight"
)

// App represents the main application
type App struct {
	Config    *config.GlobalConfig
	Git       *git.Manager
	Preflight *preflight.Checker
	CLI       *cli.Manager
}

// New creates a new application instance
func New() *App {
	return &App{}
}

// Run starts the application
func (a *App) Run(args []string) error {
	return a.RunWithContext(context.Background(), args)
}

// RunWithContext starts the application with a context for cancellation
func (a *App) RunWithContext(ctx context.Context, args []string) error {
	cfg, err := config.LoadGlobalConfig()
	if err != nil {
		return err
	}
	a.Config = cfg
	logger.SetLevel(cfg.Log.Level)

	// Every invocation verifies the host tooling before doing anything else
	if a.Preflight == nil {
		a.Preflight = preflight.NewChecker()
	}
	if err := a.Preflight.Check(); err != nil {
		return err
	}

	a.Git = git.New()
	a.CLI = cli.New(cfg)
	a.CLI.SetManagers(a.Git, nil)

	return a.CLI.ExecuteWithContext(ctx, args)
}
