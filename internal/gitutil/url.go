// Package gitutil provides helpers for working with Git repository URLs and
// local checkouts.
package gitutil

import (
	"errors"
	"net/url"
	"strings"
)

var (
	// ErrInvalidHost marks a URL whose host is not github.com.
	ErrInvalidHost = errors.New("invalid domain in GitHub repository URL")
	// ErrInvalidPath marks a URL whose path carries fewer than two segments.
	ErrInvalidPath = errors.New("invalid path in GitHub repository URL")
)

// ParseRepoURL extracts the owner and repository name from a GitHub
// repository URL. Extra path segments after owner/name are ignored.
// Supported format: https://github.com/{owner}/{name}[/...]
func ParseRepoURL(rawURL string) (owner, name string, err error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", "", ErrInvalidPath
	}
	if u.Host != "github.com" {
		return "", "", ErrInvalidHost
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", ErrInvalidPath
	}
	return parts[0], parts[1], nil
}
