package main

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/codegrade/codegrade/internal/app"
	"github.com/codegrade/codegrade/internal/core"
	"github.com/codegrade/codegrade/internal/wire"
)

func initializeAppCmd() tea.Cmd {
	return func() tea.Msg {
		app, _, err := wire.InitializeApp(context.Background())
		if err != nil {
			return appInitializedMsg{err: err}
		}
		return appInitializedMsg{app: app}
	}
}

// runReviewCmd executes the full review pipeline and renders the Markdown
// result for the viewport.
func runReviewCmd(app *app.App, req *core.ReviewRequest) tea.Cmd {
	return func() tea.Msg {
		reviewText, err := app.Reviewer.Run(context.Background(), req)
		if err != nil {
			return reviewCompleteMsg{err: err}
		}

		rendered, renderErr := glamour.Render(reviewText, "dark")
		if renderErr != nil {
			rendered = reviewText
		}
		return reviewCompleteMsg{review: rendered}
	}
}
