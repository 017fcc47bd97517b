package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/codegrade/codegrade/internal/core"
)

var (
	ErrPolicyNotFound = errors.New("review policy file not found")
	ErrPolicyParsing  = errors.New("review policy parsing failed")
)

// LoadReviewPolicy loads and parses the .codegrade.yml review policy file.
// A missing file is not fatal: the built-in defaults are returned alongside
// ErrPolicyNotFound so callers can log and continue.
func LoadReviewPolicy(path string) (*core.ReviewPolicy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return core.DefaultReviewPolicy(), ErrPolicyNotFound
		}
		return nil, fmt.Errorf("failed to read review policy %s: %w", path, err)
	}

	policy := core.DefaultReviewPolicy()
	if err := yaml.Unmarshal(data, policy); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPolicyParsing, err)
	}

	// Accept extensions written with or without the leading dot.
	for i, ext := range policy.AllowedExts {
		if !strings.HasPrefix(ext, ".") {
			policy.AllowedExts[i] = "." + ext
		}
	}
	return policy, nil
}
