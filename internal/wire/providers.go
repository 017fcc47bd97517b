package wire

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/google/wire"

	"github.com/codegrade/codegrade/internal/app"
	"github.com/codegrade/codegrade/internal/collector"
	"github.com/codegrade/codegrade/internal/config"
	"github.com/codegrade/codegrade/internal/core"
	"github.com/codegrade/codegrade/internal/github"
	"github.com/codegrade/codegrade/internal/llm"
	"github.com/codegrade/codegrade/internal/logger"
	"github.com/codegrade/codegrade/internal/review"
	"github.com/codegrade/codegrade/internal/server"
)

var AppSet = wire.NewSet(
	app.NewApp,
	server.NewServer,
	logger.NewLogger,
	config.LoadConfig,
	collector.New,
	llm.NewPromptBuilder,
	review.NewService,
	wire.Bind(new(core.Reviewer), new(*review.Service)),
	provideGitHubClient,
	provideMistralClient,
	provideReviewPolicy,
	provideLoggerConfig,
	provideLogWriter,
)

func provideGitHubClient(ctx context.Context, cfg *config.Config, logger *slog.Logger) github.Client {
	if cfg.GitHubToken != "" {
		return github.NewPATClient(ctx, cfg.GitHubToken, logger)
	}
	logger.Info("no GitHub token configured, using anonymous API access")
	return github.NewAnonymousClient(logger)
}

func provideMistralClient(cfg *config.Config, logger *slog.Logger) llm.Client {
	return llm.NewMistralClient(cfg.Mistral.APIKey, cfg.Mistral.Model, cfg.Mistral.BaseURL, logger)
}

func provideReviewPolicy(cfg *config.Config, logger *slog.Logger) *core.ReviewPolicy {
	policy, err := config.LoadReviewPolicy(cfg.PolicyPath)
	if err != nil {
		if errors.Is(err, config.ErrPolicyNotFound) {
			logger.Info("no review policy file found, using defaults", "path", cfg.PolicyPath)
		} else {
			logger.Warn("failed to load review policy, using defaults",
				"path", cfg.PolicyPath, "error", err)
		}
		return core.DefaultReviewPolicy()
	}
	return policy
}

func provideLoggerConfig(cfg *config.Config) logger.Config {
	return cfg.Logging
}

func provideLogWriter(cfg *config.Config) io.Writer {
	switch cfg.Logging.Output {
	case "stderr":
		return os.Stderr
	case "file":
		f, _ := os.OpenFile("codegrade.log", os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0600)
		return f
	default:
		return os.Stdout
	}
}
