package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codegrade/codegrade/internal/core"
)

func TestLoadReviewPolicyMissingFile(t *testing.T) {
	policy, err := LoadReviewPolicy(filepath.Join(t.TempDir(), "absent.yml"))

	assert.ErrorIs(t, err, ErrPolicyNotFound)
	require.NotNil(t, policy)
	assert.Equal(t, core.DefaultReviewPolicy().AllowedExts, policy.AllowedExts)
}

func TestLoadReviewPolicyParsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".codegrade.yml")
	content := `
allowed_exts:
  - py
  - .go
exclude_dirs:
  - vendor
  - node_modules
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	policy, err := LoadReviewPolicy(path)
	require.NoError(t, err)

	assert.Equal(t, []string{".py", ".go"}, policy.AllowedExts)
	assert.Equal(t, []string{"vendor", "node_modules"}, policy.ExcludeDirs)
}

func TestLoadReviewPolicyInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".codegrade.yml")
	require.NoError(t, os.WriteFile(path, []byte("allowed_exts: {broken"), 0o600))

	_, err := LoadReviewPolicy(path)
	assert.ErrorIs(t, err, ErrPolicyParsing)
}
