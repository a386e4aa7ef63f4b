package runner

import (
	"context"
)

// IOHandler defines the strategy for interacting with the user.
// This allows switching between Text (CLI/TUI) and JSON (Structured) modes.
type IOHandler interface {
	// Input presents a question and reads the answer.
	Input(ctx context.Context, prompt string) (string, error)

	// Output presents an informational line. An empty message is a paragraph break.
	Output(ctx context.Context, msg string) error

	// Report presents the outcome of a solve.
	Report(ctx context.Context, report *Report) error
}

// ContentRenderer is a function that transforms markdown before outputting it.
// This allows for TUI rendering (markdown to ANSI) without coupling the core package.
type ContentRenderer func(string) (string, error)
