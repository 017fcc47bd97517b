package core

import "strings"

// ValidationError carries every validation message collected for a request.
// The messages are surfaced verbatim to the caller.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, " ")
}

// CollectionError is a fatal failure while collecting repository content.
// Message is the fixed, caller-facing remediation text; Err holds the
// upstream detail and is only ever logged server-side.
type CollectionError struct {
	Message string
	Err     error
}

func (e *CollectionError) Error() string {
	return e.Message
}

func (e *CollectionError) Unwrap() error {
	return e.Err
}
