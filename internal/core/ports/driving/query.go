package driving

import "context"

// QueryResponder answers policy questions from a fixed preamble.
type QueryResponder interface {
	// Answer returns the model response, or an outcome string describing
	// why no answer could be produced.
	Answer(ctx context.Context, query string) string

	// Model returns the selected model, or empty if none answered the probe.
	Model() string
}
