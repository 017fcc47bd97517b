// Package llm contains the Mistral AI chat-completions client and the
// prompt construction for candidate project reviews.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
)

var (
	// ErrAPIKeyMissing indicates the client was built without a Mistral API key.
	ErrAPIKeyMissing = errors.New("mistral API key not found in environment variables")
	// ErrUpstreamHTTP indicates Mistral answered with a non-2xx status.
	ErrUpstreamHTTP = errors.New("HTTP error when accessing Mistral AI API")
	// ErrMalformedResponse indicates a 2xx body that does not carry a review.
	ErrMalformedResponse = errors.New("invalid response format from Mistral AI API")
)

// Client produces a review text for a fully rendered prompt.
type Client interface {
	Review(ctx context.Context, prompt string) (string, error)
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatRequest struct {
	Model          string         `json:"model"`
	Temperature    float64        `json:"temperature"`
	MaxTokens      int            `json:"max_tokens"`
	MinTokens      int            `json:"min_tokens"`
	Stream         bool           `json:"stream"`
	RandomSeed     *int           `json:"random_seed"`
	Messages       []chatMessage  `json:"messages"`
	ResponseFormat responseFormat `json:"response_format"`
	ToolChoice     string         `json:"tool_choice"`
	SafePrompt     bool           `json:"safe_prompt"`
}

type chatChoice struct {
	Message *chatMessage `json:"message"`
}

type chatResponse struct {
	Choices []chatChoice `json:"choices"`
}

type mistralClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewMistralClient creates a Client talking to the Mistral chat-completions
// API. An empty model falls back to the default; an empty baseURL targets the
// public endpoint. The key is only checked when a review is requested.
func NewMistralClient(apiKey, model, baseURL string, logger *slog.Logger) Client {
	if model == "" {
		model = defaultModel
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &mistralClient{
		apiKey:     apiKey,
		model:      model,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: requestTimeout},
		logger:     logger,
	}
}

func (c *mistralClient) Review(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", ErrAPIKeyMissing
	}

	payload := chatRequest{
		Model:       c.model,
		Temperature: temperature,
		MaxTokens:   maxTokens,
		MinTokens:   minTokens,
		Stream:      false,
		RandomSeed:  nil,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		ResponseFormat: responseFormat{Type: "text"},
		ToolChoice:     "auto",
		SafePrompt:     true,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+completionPath, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create chat request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUpstreamHTTP, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		c.logger.Error("mistral API returned an error status",
			"status", resp.StatusCode, "body", string(raw))
		return "", fmt.Errorf("%w: status %d", ErrUpstreamHTTP, resp.StatusCode)
	}

	var envelope chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		c.logger.Error("failed to decode mistral response", "error", err)
		return "", fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	if len(envelope.Choices) == 0 {
		return "", fmt.Errorf("%w: field \"choices\" is missing or empty", ErrMalformedResponse)
	}
	msg := envelope.Choices[0].Message
	if msg == nil {
		return "", fmt.Errorf("%w: field \"message\" is missing", ErrMalformedResponse)
	}
	if msg.Content == "" {
		return "", fmt.Errorf("%w: field \"content\" is missing", ErrMalformedResponse)
	}

	return msg.Content, nil
}
