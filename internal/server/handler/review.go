// Package handler contains the HTTP handlers of the review API.
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/codegrade/codegrade/internal/core"
	"github.com/codegrade/codegrade/internal/llm"
)

const (
	msgInvalidBody   = "Invalid request body."
	msgMistralError  = "HTTP error when accessing Mistral AI API."
	msgInternalError = "An internal server error occurred. Please try again later."
)

// errorsResponse carries one message per violated field.
type errorsResponse struct {
	Errors []string `json:"errors"`
}

// detailResponse carries a single caller-facing failure description.
type detailResponse struct {
	Detail string `json:"detail"`
}

// ReviewHandler serves POST /review.
type ReviewHandler struct {
	reviewer core.Reviewer
	logger   *slog.Logger
}

// NewReviewHandler creates a new review handler.
func NewReviewHandler(reviewer core.Reviewer, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{reviewer: reviewer, logger: logger}
}

// Handle decodes and validates the request, runs the review pipeline, and
// maps pipeline failures onto caller-facing status codes.
func (h *ReviewHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var req core.ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("failed to decode review request", "error", err)
		writeJSON(w, http.StatusUnprocessableEntity, errorsResponse{Errors: []string{msgInvalidBody}})
		return
	}

	if vErr := req.Validate(); vErr != nil {
		writeJSON(w, http.StatusUnprocessableEntity, errorsResponse{Errors: vErr.Messages})
		return
	}

	reviewText, err := h.reviewer.Run(r.Context(), &req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, core.ReviewResult{Review: reviewText})
}

func (h *ReviewHandler) writeError(w http.ResponseWriter, err error) {
	var collErr *core.CollectionError
	switch {
	case errors.As(err, &collErr):
		h.logger.Error("repository collection failed", "error", err)
		writeJSON(w, http.StatusBadRequest, detailResponse{Detail: collErr.Message})
	case errors.Is(err, llm.ErrUpstreamHTTP):
		h.logger.Error("mistral API call failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, detailResponse{Detail: msgMistralError})
	default:
		h.logger.Error("internal server error", "error", err)
		writeJSON(w, http.StatusInternalServerError, detailResponse{Detail: msgInternalError})
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
