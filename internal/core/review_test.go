package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() ReviewRequest {
	return ReviewRequest{
		AssignmentDescription: "Build a REST API",
		GitHubRepoURL:         "https://github.com/testuser/testrepo",
		CandidateLevel:        "Junior",
	}
}

func TestReviewRequestValidate(t *testing.T) {
	tests := []struct {
		name         string
		mutate       func(*ReviewRequest)
		wantMessages []string
	}{
		{
			name:   "valid request",
			mutate: func(_ *ReviewRequest) {},
		},
		{
			name:   "valid middle level",
			mutate: func(r *ReviewRequest) { r.CandidateLevel = "Middle" },
		},
		{
			name:   "valid senior level",
			mutate: func(r *ReviewRequest) { r.CandidateLevel = "Senior" },
		},
		{
			name:         "missing description",
			mutate:       func(r *ReviewRequest) { r.AssignmentDescription = "" },
			wantMessages: []string{"Field required: assignment_description."},
		},
		{
			name:         "missing repo URL",
			mutate:       func(r *ReviewRequest) { r.GitHubRepoURL = "" },
			wantMessages: []string{"Field required: github_url_repo."},
		},
		{
			name:         "missing level",
			mutate:       func(r *ReviewRequest) { r.CandidateLevel = "" },
			wantMessages: []string{"Field required: candidate_level."},
		},
		{
			name:         "malformed URL",
			mutate:       func(r *ReviewRequest) { r.GitHubRepoURL = "not-a-url" },
			wantMessages: []string{"Invalid GitHub repository URL."},
		},
		{
			name:         "non-github host",
			mutate:       func(r *ReviewRequest) { r.GitHubRepoURL = "https://gitlab.com/testuser/testrepo" },
			wantMessages: []string{"URL must be a GitHub repository."},
		},
		{
			name:         "unknown level",
			mutate:       func(r *ReviewRequest) { r.CandidateLevel = "Principal" },
			wantMessages: []string{"Invalid candidate level. Allowed values: Junior, Middle, Senior."},
		},
		{
			name:         "level is case sensitive",
			mutate:       func(r *ReviewRequest) { r.CandidateLevel = "junior" },
			wantMessages: []string{"Invalid candidate level. Allowed values: Junior, Middle, Senior."},
		},
		{
			name: "all fields missing",
			mutate: func(r *ReviewRequest) {
				*r = ReviewRequest{}
			},
			wantMessages: []string{
				"Field required: assignment_description.",
				"Field required: github_url_repo.",
				"Field required: candidate_level.",
			},
		},
		{
			name: "multiple independent violations",
			mutate: func(r *ReviewRequest) {
				r.GitHubRepoURL = "https://gitlab.com/testuser/testrepo"
				r.CandidateLevel = "Architect"
			},
			wantMessages: []string{
				"URL must be a GitHub repository.",
				"Invalid candidate level. Allowed values: Junior, Middle, Senior.",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			err := req.Validate()
			if len(tt.wantMessages) == 0 {
				assert.Nil(t, err)
				return
			}
			require.NotNil(t, err)
			assert.Equal(t, tt.wantMessages, err.Messages)
		})
	}
}
