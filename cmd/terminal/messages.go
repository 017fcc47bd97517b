package main

import (
	"github.com/codegrade/codegrade/internal/app"
)

// Indicates that the core application services have been initialized.
type appInitializedMsg struct {
	app *app.App
	err error
}

// Carries the rendered review text once the pipeline has finished.
type reviewCompleteMsg struct {
	review string
	err    error
}
