package driven

import "context"

// CompletionBackend sends a single prompt to a generative-language model.
//
// Implementations may include:
//   - Gemini (Google AI Studio)
//   - Gemini on Vertex AI
type CompletionBackend interface {
	// Generate produces the text response of model to prompt.
	Generate(ctx context.Context, model, prompt string) (string, error)
}

// CompletionClientFactory creates completion backends.
type CompletionClientFactory interface {
	// NewCompletionBackend creates a backend authenticated with apiKey.
	// Returns domain.ErrAPIKeyMissing for an empty key.
	NewCompletionBackend(ctx context.Context, apiKey string) (CompletionBackend, error)
}

// TraceRecorder receives trace entries from components outside the dispatcher.
// domain.Session satisfies it.
type TraceRecorder interface {
	Record(actor, action, detail string)
}
