package collector

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/codegrade/codegrade/internal/core"
)

const msgLocalAccess = "Failed to read repository contents from disk."

// CollectFromDir builds the corpus from a local checkout instead of the
// GitHub API, applying the same eligibility rules, caps, and manifest
// layout. Used by the CLI clone path.
func (c *Collector) CollectFromDir(root string) (string, error) {
	var (
		corpus    strings.Builder
		manifest  strings.Builder
		fileCount int
		done      = errors.New("collection caps reached")
	)
	manifest.WriteString(manifestHeader)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}

		if fileCount >= maxIncludedFiles || corpus.Len() >= maxCorpusChars {
			return done
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		manifest.WriteString(rel + "\n")

		if !c.policy.Eligible(rel) {
			c.logger.Info("skipping file with unsuitable extension", "path", rel)
			return nil
		}

		res := c.readFile(path, rel)
		if !res.included {
			c.logger.Warn("skipping file", "path", res.path, "reason", res.skipReason)
			return nil
		}

		corpus.WriteString(fmt.Sprintf("\n\n// File: %s\n%s", res.path, res.content))
		fileCount++

		if corpus.Len() > maxCorpusChars {
			truncated := corpus.String()[:maxCorpusChars]
			corpus.Reset()
			corpus.WriteString(truncated)
			corpus.WriteString(corpusTruncationMarker)
			return done
		}
		return nil
	})
	if err != nil && !errors.Is(err, done) {
		return "", &core.CollectionError{Message: msgLocalAccess, Err: err}
	}

	return corpus.String() + manifest.String(), nil
}

// readFile loads a single file from disk; failures are reported as skips.
func (c *Collector) readFile(absPath, relPath string) fileResult {
	raw, err := os.ReadFile(absPath)
	if err != nil {
		return fileResult{path: relPath, skipReason: fmt.Sprintf("read failed: %v", err)}
	}
	if !utf8.Valid(raw) {
		return fileResult{path: relPath, skipReason: "content is not valid UTF-8"}
	}
	return fileResult{path: relPath, content: string(raw), included: true}
}
