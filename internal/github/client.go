// Package github provides functionality for interacting with the GitHub API.
package github

import (
	"context"
	"log/slog"

	"github.com/google/go-github/v73/github"
	"golang.org/x/oauth2"
)

// Client defines the three repository-content operations the collector
// needs: repository metadata, the recursive file tree of a branch, and the
// content of a single blob.
//
//go:generate mockgen -destination=../../mocks/mock_github_client.go -package=mocks . Client
type Client interface {
	GetRepository(ctx context.Context, owner, repo string) (*github.Repository, error)
	GetRecursiveTree(ctx context.Context, owner, repo, branch string) (*github.Tree, error)
	GetBlob(ctx context.Context, owner, repo, sha string) (*github.Blob, error)
}

type gitHubClient struct {
	client *github.Client
	logger *slog.Logger
}

// NewClient wraps the official go-github client to provide a focused,
// testable interface for the repository-content operations used here.
func NewClient(client *github.Client, logger *slog.Logger) Client {
	return &gitHubClient{client: client, logger: logger}
}

// NewAnonymousClient creates an unauthenticated GitHub client. Public
// repositories are readable without credentials, at a lower rate limit.
func NewAnonymousClient(logger *slog.Logger) Client {
	return &gitHubClient{client: github.NewClient(nil), logger: logger}
}

// NewPATClient creates a GitHub client authenticated with a Personal Access
// Token, for private repositories or a higher rate limit.
func NewPATClient(ctx context.Context, token string, logger *slog.Logger) Client {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)
	return &gitHubClient{client: github.NewClient(tc), logger: logger}
}

// GetRepository retrieves repository metadata, including the default branch.
func (g *gitHubClient) GetRepository(ctx context.Context, owner, repo string) (*github.Repository, error) {
	repository, _, err := g.client.Repositories.Get(ctx, owner, repo)
	if err != nil {
		g.logger.Error("failed to fetch repository metadata", "owner", owner, "repo", repo, "error", err)
		return nil, err
	}
	return repository, nil
}

// GetRecursiveTree retrieves the full recursive file tree of a branch.
func (g *gitHubClient) GetRecursiveTree(ctx context.Context, owner, repo, branch string) (*github.Tree, error) {
	tree, _, err := g.client.Git.GetTree(ctx, owner, repo, branch, true)
	if err != nil {
		g.logger.Error("failed to fetch repository tree", "owner", owner, "repo", repo, "branch", branch, "error", err)
		return nil, err
	}
	return tree, nil
}

// GetBlob retrieves a single blob by SHA. Content is returned as delivered
// by the API, normally base64-encoded.
func (g *gitHubClient) GetBlob(ctx context.Context, owner, repo, sha string) (*github.Blob, error) {
	blob, _, err := g.client.Git.GetBlob(ctx, owner, repo, sha)
	if err != nil {
		g.logger.Error("failed to fetch blob", "owner", owner, "repo", repo, "sha", sha, "error", err)
		return nil, err
	}
	return blob, nil
}
