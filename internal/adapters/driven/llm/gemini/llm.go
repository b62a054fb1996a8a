// Package gemini provides a completion backend using the Gemini API.
package gemini

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"google.golang.org/genai"

	"github.com/onboardai/onboard/internal/core/domain"
	"github.com/onboardai/onboard/internal/core/ports/driven"
)

// Ensure interfaces are implemented.
var (
	_ driven.CompletionBackend       = (*Backend)(nil)
	_ driven.CompletionClientFactory = (*Factory)(nil)
)

// DefaultTimeout bounds a single generate request.
const DefaultTimeout = 120 * time.Second

// Config holds transport settings shared by every backend the factory creates.
type Config struct {
	// BaseURL overrides the Gemini API endpoint (empty uses the default).
	BaseURL string

	// HTTPClient overrides the HTTP client (nil uses a client with DefaultTimeout).
	HTTPClient *http.Client
}

// Factory creates Gemini backends keyed by API key.
type Factory struct {
	cfg Config
}

// NewFactory creates a backend factory.
func NewFactory(cfg Config) *Factory {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Factory{cfg: cfg}
}

// NewCompletionBackend creates a Gemini client for apiKey. No request is made.
func (f *Factory) NewCompletionBackend(ctx context.Context, apiKey string) (driven.CompletionBackend, error) {
	if apiKey == "" {
		return nil, domain.ErrAPIKeyMissing
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  f.cfg.HTTPClient,
		HTTPOptions: genai.HTTPOptions{BaseURL: f.cfg.BaseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &Backend{client: client}, nil
}

// Backend sends prompts to Gemini models.
type Backend struct {
	client *genai.Client
}

// Generate sends prompt as a single user turn to model and returns the text.
func (b *Backend) Generate(ctx context.Context, model, prompt string) (string, error) {
	resp, err := b.client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content with %s: %w", model, err)
	}
	return resp.Text(), nil
}
