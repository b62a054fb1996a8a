package services

import (
	"context"
	"time"

	"github.com/onboardai/onboard/internal/core/domain"
	"github.com/onboardai/onboard/internal/core/ports/driven"
	"github.com/onboardai/onboard/internal/core/ports/driving"
	"github.com/onboardai/onboard/internal/logger"
)

// Ensure QueryResponder implements the interface.
var _ driving.QueryResponder = (*QueryResponder)(nil)

// probeTimeout bounds a single model probe.
const probeTimeout = 15 * time.Second

// QueryResponder answers HR policy questions with a selected model.
// Without an API key, or when no candidate answers the probe, it holds no
// model and every answer is the missing-key outcome.
type QueryResponder struct {
	backend driven.CompletionBackend
	model   string
}

// NewQueryResponder creates a responder for apiKey.
// An empty key creates no backend and probes nothing. Otherwise the first
// candidate that answers the probe prompt is selected and, when recorder is
// non-nil, a model selection entry is recorded.
func NewQueryResponder(
	ctx context.Context,
	apiKey string,
	candidates []string,
	factory driven.CompletionClientFactory,
	recorder driven.TraceRecorder,
) *QueryResponder {
	r := &QueryResponder{}
	if apiKey == "" || factory == nil {
		logger.Debug("no API key, responder disabled")
		return r
	}

	backend, err := factory.NewCompletionBackend(ctx, apiKey)
	if err != nil {
		logger.Warn("completion client unavailable: %v", err)
		return r
	}

	model, ok := SelectModel(ctx, candidates, func(ctx context.Context, model string) error {
		probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
		defer cancel()
		_, err := backend.Generate(probeCtx, model, domain.ProbePrompt)
		return err
	})
	if !ok {
		logger.Warn("%v: tried %d candidates", domain.ErrNoModelAvailable, len(candidates))
		return r
	}

	logger.Info("selected model %s", model)
	if recorder != nil {
		recorder.Record(domain.ActorSystem, "Model Selected", model)
	}
	r.backend = backend
	r.model = model
	return r
}

// Model returns the selected model, or empty if none was selected.
func (r *QueryResponder) Model() string {
	return r.model
}

// Answer sends the preamble and query to the selected model as one request.
func (r *QueryResponder) Answer(ctx context.Context, query string) string {
	if r.model == "" {
		return domain.MsgAPIKeyMissing
	}

	text, err := r.backend.Generate(ctx, r.model, domain.BuildPolicyPrompt(query))
	if err != nil {
		logger.Warn("generate with %s failed: %v", r.model, err)
		return domain.AnswerErrorOutcome(err)
	}
	return text
}
