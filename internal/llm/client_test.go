package llm

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func successBody(content string) string {
	return `{"choices":[{"message":{"role":"assistant","content":` + mustJSON(content) + `}}]}`
}

func mustJSON(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func TestMistralClientRequestShape(t *testing.T) {
	var captured map[string]any
	var gotAuth, gotPath string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(successBody("Looks good.")))
	}))
	defer srv.Close()

	client := NewMistralClient("test-key", "", srv.URL, testLogger())
	got, err := client.Review(context.Background(), "review my code")
	require.NoError(t, err)
	assert.Equal(t, "Looks good.", got)

	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "/v1/chat/completions", gotPath)

	assert.Equal(t, "mistral-small-latest", captured["model"])
	assert.Equal(t, 0.9, captured["temperature"])
	assert.Equal(t, float64(1500), captured["max_tokens"])
	assert.Equal(t, float64(50), captured["min_tokens"])
	assert.Equal(t, false, captured["stream"])
	assert.Equal(t, "auto", captured["tool_choice"])
	assert.Equal(t, true, captured["safe_prompt"])
	assert.Equal(t, map[string]any{"type": "text"}, captured["response_format"])

	// random_seed must be present and serialized as null
	seed, ok := captured["random_seed"]
	assert.True(t, ok)
	assert.Nil(t, seed)

	messages, ok := captured["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 2)
	system := messages[0].(map[string]any)
	assert.Equal(t, "system", system["role"])
	assert.Contains(t, system["content"], "professional code developer")
	user := messages[1].(map[string]any)
	assert.Equal(t, "user", user["role"])
	assert.Equal(t, "review my code", user["content"])
}

func TestMistralClientMissingKey(t *testing.T) {
	client := NewMistralClient("", "", "", testLogger())
	_, err := client.Review(context.Background(), "prompt")
	assert.ErrorIs(t, err, ErrAPIKeyMissing)
}

func TestMistralClientUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"message":"Unauthorized"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewMistralClient("bad-key", "", srv.URL, testLogger())
	_, err := client.Review(context.Background(), "prompt")
	assert.ErrorIs(t, err, ErrUpstreamHTTP)
}

func TestMistralClientMalformedResponses(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "plain text"},
		{"empty choices", `{"choices":[]}`},
		{"missing message", `{"choices":[{}]}`},
		{"empty content", `{"choices":[{"message":{"role":"assistant","content":""}}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := NewMistralClient("test-key", "", srv.URL, testLogger())
			_, err := client.Review(context.Background(), "prompt")
			assert.ErrorIs(t, err, ErrMalformedResponse)
		})
	}
}

func TestMistralClientCustomModel(t *testing.T) {
	var captured map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		_, _ = w.Write([]byte(successBody("ok")))
	}))
	defer srv.Close()

	client := NewMistralClient("test-key", "mistral-large-latest", srv.URL, testLogger())
	_, err := client.Review(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "mistral-large-latest", captured["model"])
}
