package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codegrade/codegrade/internal/core"
	"github.com/codegrade/codegrade/internal/llm"
)

type stubReviewer struct {
	review string
	err    error
}

func (s *stubReviewer) Run(_ context.Context, _ *core.ReviewRequest) (string, error) {
	return s.review, s.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

const validBody = `{
	"assignment_description": "Build a REST API",
	"github_url_repo": "https://github.com/testuser/testrepo",
	"candidate_level": "Junior"
}`

func doRequest(t *testing.T, reviewer core.Reviewer, body string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewReviewHandler(reviewer, testLogger())
	req := httptest.NewRequest(http.MethodPost, "/review", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandleSuccess(t *testing.T) {
	rec := doRequest(t, &stubReviewer{review: "Solid work, 4/5."}, validBody)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got core.ReviewResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Solid work, 4/5.", got.Review)
}

func TestHandleInvalidJSON(t *testing.T) {
	rec := doRequest(t, &stubReviewer{}, "{not json")

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var got errorsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, []string{"Invalid request body."}, got.Errors)
}

func TestHandleValidationErrors(t *testing.T) {
	rec := doRequest(t, &stubReviewer{}, `{"github_url_repo": "https://gitlab.com/a/b", "candidate_level": "Lead"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var got errorsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, []string{
		"Field required: assignment_description.",
		"URL must be a GitHub repository.",
		"Invalid candidate level. Allowed values: Junior, Middle, Senior.",
	}, got.Errors)
}

func TestHandleCollectionError(t *testing.T) {
	reviewer := &stubReviewer{err: &core.CollectionError{
		Message: "Failed to access GitHub repository. Check the URL and access rights.",
		Err:     errors.New("404 not found"),
	}}
	rec := doRequest(t, reviewer, validBody)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var got detailResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Failed to access GitHub repository. Check the URL and access rights.", got.Detail)
}

func TestHandleUpstreamError(t *testing.T) {
	reviewer := &stubReviewer{err: fmt.Errorf("%w: status 500", llm.ErrUpstreamHTTP)}
	rec := doRequest(t, reviewer, validBody)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var got detailResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "HTTP error when accessing Mistral AI API.", got.Detail)
}

func TestHandleUnexpectedError(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"missing API key", llm.ErrAPIKeyMissing},
		{"malformed model response", llm.ErrMalformedResponse},
		{"arbitrary failure", errors.New("boom")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &stubReviewer{err: tt.err}, validBody)

			assert.Equal(t, http.StatusInternalServerError, rec.Code)

			var got detailResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, "An internal server error occurred. Please try again later.", got.Detail)
		})
	}
}
