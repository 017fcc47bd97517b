// Package app initializes and orchestrates the main components of the
// CodeGrade application. It wires together the configuration, server, and
// the review pipeline.
package app

import (
	"context"
	"log/slog"

	"github.com/codegrade/codegrade/internal/config"
	"github.com/codegrade/codegrade/internal/review"
	"github.com/codegrade/codegrade/internal/server"
)

// App holds the main application components.
type App struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Reviewer *review.Service

	ctx    context.Context
	server *server.Server
}

// NewApp assembles the application from its wired components.
func NewApp(ctx context.Context, cfg *config.Config, srv *server.Server, reviewer *review.Service, logger *slog.Logger) *App {
	return &App{
		Cfg:      cfg,
		Logger:   logger,
		Reviewer: reviewer,
		ctx:      ctx,
		server:   srv,
	}
}

// Start runs the HTTP server and blocks until shutdown.
func (a *App) Start() error {
	a.Logger.Info("starting CodeGrade",
		"server_port", a.Cfg.ServerPort,
		"mistral_model", a.Cfg.Mistral.Model)

	if err := a.server.Start(); err != nil {
		a.Logger.Error("failed to start HTTP server", "error", err)
		return err
	}
	return nil
}

// Stop shuts down the application cleanly.
func (a *App) Stop() error {
	a.Logger.Info("shutting down CodeGrade services")

	if err := a.server.Stop(); err != nil {
		a.Logger.Error("error during HTTP server shutdown", "error", err)
		return err
	}

	a.Logger.Info("CodeGrade stopped successfully")
	return nil
}
