// Code generated manually. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package wire

import (
	"context"
	"fmt"

	"github.com/codegrade/codegrade/internal/app"
	"github.com/codegrade/codegrade/internal/collector"
	"github.com/codegrade/codegrade/internal/config"
	"github.com/codegrade/codegrade/internal/llm"
	"github.com/codegrade/codegrade/internal/logger"
	"github.com/codegrade/codegrade/internal/review"
	"github.com/codegrade/codegrade/internal/server"
)

// InitializeApp creates and wires all application dependencies.
func InitializeApp(ctx context.Context) (*app.App, func(), error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	loggerConfig := provideLoggerConfig(cfg)
	logWriter := provideLogWriter(cfg)
	slogLogger := logger.NewLogger(loggerConfig, logWriter)

	ghClient := provideGitHubClient(ctx, cfg, slogLogger)
	policy := provideReviewPolicy(cfg, slogLogger)
	corpusCollector := collector.New(ghClient, policy, slogLogger)

	prompts, err := llm.NewPromptBuilder()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create prompt builder: %w", err)
	}
	mistral := provideMistralClient(cfg, slogLogger)

	reviewService := review.NewService(corpusCollector, prompts, mistral, slogLogger)

	srv := server.NewServer(ctx, cfg, reviewService, slogLogger)
	application := app.NewApp(ctx, cfg, srv, reviewService, slogLogger)

	cleanup := func() {}
	return application, cleanup, nil
}
