package llm

import (
	"embed"
	"fmt"
	"html"
	"strings"
	"text/template"
)

//go:embed prompts/*.prompt
var promptFiles embed.FS

const (
	// maxPromptChars bounds the rendered user prompt.
	maxPromptChars = 20000

	promptTruncationMarker = "\n\n// Prompt truncated due to size limitations."

	reviewPromptFile = "prompts/review_user.prompt"
)

// promptData feeds the review_user template.
type promptData struct {
	CandidateLevel        string
	AssignmentDescription string
	ProjectCode           string
}

// PromptBuilder renders the user prompt sent alongside the system prompt.
type PromptBuilder struct {
	tmpl *template.Template
}

// NewPromptBuilder parses the embedded review prompt template.
func NewPromptBuilder() (*PromptBuilder, error) {
	content, err := promptFiles.ReadFile(reviewPromptFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded prompt file %s: %w", reviewPromptFile, err)
	}
	tmpl, err := template.New("review_user").Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("could not parse prompt template: %w", err)
	}
	return &PromptBuilder{tmpl: tmpl}, nil
}

// Build renders the review prompt. The project code is HTML-escaped before
// templating and the result is capped at maxPromptChars with a marker
// appended when truncation happens.
func (b *PromptBuilder) Build(level, description, projectCode string) (string, error) {
	var sb strings.Builder
	err := b.tmpl.Execute(&sb, promptData{
		CandidateLevel:        level,
		AssignmentDescription: description,
		ProjectCode:           html.EscapeString(projectCode),
	})
	if err != nil {
		return "", fmt.Errorf("failed to render review prompt: %w", err)
	}

	prompt := sb.String()
	if len(prompt) > maxPromptChars {
		prompt = prompt[:maxPromptChars] + promptTruncationMarker
	}
	return prompt, nil
}
