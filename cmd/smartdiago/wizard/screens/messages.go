// Package screens holds the individual wizard screens. Each screen is
// a self-contained tea.Model with Done/Cancelled accessors; the wizard
// orchestrator owns the transitions between them.
package screens

// GenerateResultMsg is sent when a generation call completes.
type GenerateResultMsg struct {
	Content     string
	RawFallback bool // service answered but without the expected text field
}

// GenerateErrorMsg is sent when a generation call fails.
type GenerateErrorMsg struct {
	Err error
}

// RenderDoneMsg is sent when the report has been written to disk.
type RenderDoneMsg struct {
	Path string
	Size int
}

// ErrorMsg is sent when a background action fails.
type ErrorMsg struct {
	Error error
}
