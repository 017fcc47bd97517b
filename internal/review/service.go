// Package review wires corpus collection, prompt construction, and the
// Mistral client into the single operation exposed by the API.
package review

import (
	"context"
	"log/slog"

	"github.com/codegrade/codegrade/internal/collector"
	"github.com/codegrade/codegrade/internal/core"
	"github.com/codegrade/codegrade/internal/llm"
)

// Service implements core.Reviewer.
type Service struct {
	collector *collector.Collector
	prompts   *llm.PromptBuilder
	client    llm.Client
	logger    *slog.Logger
}

// NewService creates the review Service.
func NewService(c *collector.Collector, prompts *llm.PromptBuilder, client llm.Client, logger *slog.Logger) *Service {
	return &Service{
		collector: c,
		prompts:   prompts,
		client:    client,
		logger:    logger,
	}
}

// Run collects the repository corpus via the GitHub API, builds the prompt,
// and requests the review. The request is expected to be validated already.
func (s *Service) Run(ctx context.Context, req *core.ReviewRequest) (string, error) {
	projectCode, err := s.collector.Collect(ctx, req.GitHubRepoURL)
	if err != nil {
		return "", err
	}
	return s.review(ctx, req, projectCode)
}

// RunLocal is the CLI variant of Run: it reads the corpus from an existing
// checkout on disk instead of the GitHub API.
func (s *Service) RunLocal(ctx context.Context, req *core.ReviewRequest, dir string) (string, error) {
	projectCode, err := s.collector.CollectFromDir(dir)
	if err != nil {
		return "", err
	}
	return s.review(ctx, req, projectCode)
}

func (s *Service) review(ctx context.Context, req *core.ReviewRequest, projectCode string) (string, error) {
	prompt, err := s.prompts.Build(req.CandidateLevel, req.AssignmentDescription, projectCode)
	if err != nil {
		return "", err
	}

	s.logger.InfoContext(ctx, "sending request to Mistral AI for review",
		"repo", req.GitHubRepoURL, "level", req.CandidateLevel)
	return s.client.Review(ctx, prompt)
}
