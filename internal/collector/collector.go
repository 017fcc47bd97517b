// Package collector assembles the review corpus from a candidate's GitHub
// repository: a bounded concatenation of eligible source files followed by a
// manifest of every encountered path.
package collector

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	gh "github.com/google/go-github/v73/github"

	"github.com/codegrade/codegrade/internal/core"
	"github.com/codegrade/codegrade/internal/github"
	"github.com/codegrade/codegrade/internal/gitutil"
)

const (
	// maxCorpusChars bounds the concatenated file contents; the manifest
	// appended afterwards does not count against it.
	maxCorpusChars = 20000
	// maxIncludedFiles bounds how many file bodies enter the corpus.
	maxIncludedFiles = 100

	fallbackBranch = "main"

	corpusTruncationMarker = "\n\n// Code truncated due to size limitations."
	manifestHeader         = "\nAll repository files:\n"

	msgInvalidDomain = "Invalid domain in GitHub repository URL."
	msgInvalidPath   = "Invalid path in GitHub repository URL."
	msgRepoAccess    = "Failed to access GitHub repository. Check the URL and access rights."
	msgTreeAccess    = "Failed to retrieve GitHub repository content."
)

// fileResult is the outcome of a single blob fetch attempt. Skipped files
// never abort collection; the reason is logged and the loop continues.
type fileResult struct {
	path       string
	content    string
	included   bool
	skipReason string
}

// Collector fetches repository content through the GitHub API and builds
// the corpus string consumed by the prompt builder.
type Collector struct {
	gh     github.Client
	policy *core.ReviewPolicy
	logger *slog.Logger
}

// New creates a Collector with the given GitHub client and review policy.
func New(ghClient github.Client, policy *core.ReviewPolicy, logger *slog.Logger) *Collector {
	if policy == nil {
		policy = core.DefaultReviewPolicy()
	}
	return &Collector{gh: ghClient, policy: policy, logger: logger}
}

// Collect resolves the repository's default branch, walks its recursive
// tree in upstream order, and returns the capped corpus plus the path
// manifest. Only URL-shape, metadata, and tree failures are fatal; every
// per-file failure is logged and skipped.
func (c *Collector) Collect(ctx context.Context, repoURL string) (string, error) {
	owner, name, err := gitutil.ParseRepoURL(repoURL)
	if err != nil {
		if errors.Is(err, gitutil.ErrInvalidHost) {
			return "", &core.CollectionError{Message: msgInvalidDomain, Err: err}
		}
		return "", &core.CollectionError{Message: msgInvalidPath, Err: err}
	}

	repo, err := c.gh.GetRepository(ctx, owner, name)
	if err != nil {
		return "", &core.CollectionError{Message: msgRepoAccess, Err: err}
	}

	branch := repo.GetDefaultBranch()
	if branch == "" {
		branch = fallbackBranch
	}

	tree, err := c.gh.GetRecursiveTree(ctx, owner, name, branch)
	if err != nil {
		return "", &core.CollectionError{Message: msgTreeAccess, Err: err}
	}

	var (
		corpus    strings.Builder
		manifest  strings.Builder
		fileCount int
	)
	manifest.WriteString(manifestHeader)

	for _, entry := range tree.Entries {
		if fileCount >= maxIncludedFiles || corpus.Len() >= maxCorpusChars {
			break
		}

		path := entry.GetPath()
		manifest.WriteString(path + "\n")

		if entry.GetType() != "blob" {
			continue
		}
		if !c.policy.Eligible(path) {
			c.logger.Info("skipping file with unsuitable extension", "path", path)
			continue
		}

		c.logger.Info("processing file", "path", path)
		res := c.fetchFile(ctx, owner, name, entry)
		if !res.included {
			c.logger.Warn("skipping file", "path", res.path, "reason", res.skipReason)
			continue
		}

		corpus.WriteString(fmt.Sprintf("\n\n// File: %s\n%s", res.path, res.content))
		fileCount++

		if corpus.Len() > maxCorpusChars {
			truncated := corpus.String()[:maxCorpusChars]
			corpus.Reset()
			corpus.WriteString(truncated)
			corpus.WriteString(corpusTruncationMarker)
			break
		}
	}

	return corpus.String() + manifest.String(), nil
}

// fetchFile retrieves and decodes a single blob. All failures are reported
// as a skip, never an error.
func (c *Collector) fetchFile(ctx context.Context, owner, name string, entry *gh.TreeEntry) fileResult {
	path := entry.GetPath()

	blob, err := c.gh.GetBlob(ctx, owner, name, entry.GetSHA())
	if err != nil {
		return fileResult{path: path, skipReason: fmt.Sprintf("fetch failed: %v", err)}
	}

	if blob.GetEncoding() != "base64" {
		return fileResult{path: path, skipReason: fmt.Sprintf("unknown encoding format %q", blob.GetEncoding())}
	}

	// The blobs API wraps base64 payloads in newlines.
	raw, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(blob.GetContent(), "\n", ""))
	if err != nil {
		return fileResult{path: path, skipReason: fmt.Sprintf("invalid base64 content: %v", err)}
	}
	if !utf8.Valid(raw) {
		return fileResult{path: path, skipReason: "content is not valid UTF-8"}
	}

	return fileResult{path: path, content: string(raw), included: true}
}
