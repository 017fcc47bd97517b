// Package core defines the essential interfaces and data structures that form the
// backbone of the application. These components are designed to be abstract,
// allowing for flexible and decoupled implementations of the application's logic.
package core

import (
	"context"
	"fmt"
	"net/url"
)

// CandidateLevel is the seniority level a candidate is applying for.
type CandidateLevel string

const (
	LevelJunior CandidateLevel = "Junior"
	LevelMiddle CandidateLevel = "Middle"
	LevelSenior CandidateLevel = "Senior"
)

// githubHost is the only repository host the service accepts.
const githubHost = "github.com"

// ReviewRequest is the inbound payload of the review endpoint. It is
// constructed once per call and validated before any upstream call is made.
type ReviewRequest struct {
	AssignmentDescription string `json:"assignment_description"`
	GitHubRepoURL         string `json:"github_url_repo"`
	CandidateLevel        string `json:"candidate_level"`
}

// ReviewResult wraps the free-text review returned to the caller.
type ReviewResult struct {
	Review string `json:"review"`
}

// Reviewer runs the full review pipeline for a validated request and returns
// the model's free-text review.
type Reviewer interface {
	Run(ctx context.Context, req *ReviewRequest) (string, error)
}

// Validate checks the request in one pass and reports every violated field,
// not just the first. A nil return means the request is usable as-is.
func (r *ReviewRequest) Validate() *ValidationError {
	var messages []string

	if r.AssignmentDescription == "" {
		messages = append(messages, "Field required: assignment_description.")
	}

	switch {
	case r.GitHubRepoURL == "":
		messages = append(messages, "Field required: github_url_repo.")
	case !isValidURL(r.GitHubRepoURL):
		messages = append(messages, "Invalid GitHub repository URL.")
	case !hasGitHubHost(r.GitHubRepoURL):
		messages = append(messages, "URL must be a GitHub repository.")
	}

	switch CandidateLevel(r.CandidateLevel) {
	case LevelJunior, LevelMiddle, LevelSenior:
	default:
		if r.CandidateLevel == "" {
			messages = append(messages, "Field required: candidate_level.")
		} else {
			messages = append(messages, fmt.Sprintf(
				"Invalid candidate level. Allowed values: %s, %s, %s.",
				LevelJunior, LevelMiddle, LevelSenior,
			))
		}
	}

	if len(messages) > 0 {
		return &ValidationError{Messages: messages}
	}
	return nil
}

func isValidURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func hasGitHubHost(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Host == githubHost
}
