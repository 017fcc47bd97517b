package gitutil

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/go-git/go-git/v5"
)

// Cloner checks out repositories into temporary directories for local
// corpus collection.
type Cloner struct {
	logger *slog.Logger
}

// NewCloner returns a new Cloner instance.
func NewCloner(logger *slog.Logger) *Cloner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cloner{logger: logger}
}

// CloneTemp performs a shallow clone of the repository's default branch into
// a fresh temporary directory. The returned cleanup function removes the
// directory and must always be called, including on error paths.
func (c *Cloner) CloneTemp(ctx context.Context, repoURL string) (string, func(), error) {
	dir, err := os.MkdirTemp("", "codegrade-repo-*")
	if err != nil {
		return "", nil, fmt.Errorf("failed to create temp directory: %w", err)
	}
	cleanup := func() {
		if removeErr := os.RemoveAll(dir); removeErr != nil {
			c.logger.Error("failed to remove temp checkout", "path", dir, "error", removeErr)
		}
	}

	c.logger.InfoContext(ctx, "cloning repository", "url", repoURL, "path", dir)
	_, err = git.PlainCloneContext(ctx, dir, false, &git.CloneOptions{
		URL:          repoURL,
		Depth:        1,
		SingleBranch: true,
	})
	if err != nil {
		cleanup()
		return "", nil, fmt.Errorf("failed to clone %s: %w", repoURL, err)
	}
	return dir, cleanup, nil
}
