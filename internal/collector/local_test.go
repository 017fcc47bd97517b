package collector

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestCollectFromDir(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, root, "main.py", "print('hi')")
	writeTestFile(t, root, "src/app.go", "package app")
	writeTestFile(t, root, "README.md", "# readme")
	writeTestFile(t, root, ".git/config", "[core]")

	c := New(nil, nil, testLogger())
	got, err := c.CollectFromDir(root)
	require.NoError(t, err)

	assert.Contains(t, got, "// File: main.py\nprint('hi')")
	assert.Contains(t, got, "// File: src/app.go\npackage app")
	assert.NotContains(t, got, "// File: README.md")
	assert.NotContains(t, got, ".git/config")

	manifestAt := strings.Index(got, manifestHeader)
	require.GreaterOrEqual(t, manifestAt, 0)
	assert.Contains(t, got[manifestAt:], "README.md\n")
}

func TestCollectFromDirTruncates(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, root, "big.py", strings.Repeat("a", maxCorpusChars+500))

	c := New(nil, nil, testLogger())
	got, err := c.CollectFromDir(root)
	require.NoError(t, err)

	manifestAt := strings.Index(got, manifestHeader)
	require.GreaterOrEqual(t, manifestAt, 0)
	corpus := got[:manifestAt]
	assert.True(t, strings.HasSuffix(corpus, corpusTruncationMarker))
	assert.Len(t, corpus, maxCorpusChars+len(corpusTruncationMarker))
}

func TestCollectFromDirMissingRoot(t *testing.T) {
	c := New(nil, nil, testLogger())
	_, err := c.CollectFromDir(filepath.Join(t.TempDir(), "does-not-exist"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to read repository contents from disk.")
}
