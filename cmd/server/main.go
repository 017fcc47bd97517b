package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/codegrade/codegrade/internal/wire"
)

func main() {
	if err := run(); err != nil {
		slog.Error("application failed to run", "error", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, cleanup, err := wire.InitializeApp(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer cleanup()

	slog.Info("starting CodeGrade application")

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return app.Start()
	})

	g.Go(func() error {
		<-gCtx.Done()
		slog.Info("shutdown signal received")
		return app.Stop()
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("application terminated: %w", err)
	}
	return nil
}
