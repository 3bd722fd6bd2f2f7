package domain

import "context"

// CompletionOptions tunes a single completion call.
type CompletionOptions struct {
	// Temperature overrides the client default when set. 0 is maximally deterministic.
	Temperature *float32
	// JSON asks the provider for a JSON object response.
	JSON bool
}

// Completer sends a prompt to a large language model and returns its text answer.
type Completer interface {
	Complete(ctx context.Context, prompt string, opts CompletionOptions) (string, error)
}

// Temperature returns a pointer to t for use in CompletionOptions.
func Temperature(t float32) *float32 {
	return &t
}
