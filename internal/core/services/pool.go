package services

import (
	"context"
	"sync"

	"github.com/onboardai/onboard/internal/core/domain"
	"github.com/onboardai/onboard/internal/core/ports/driven"
	"github.com/onboardai/onboard/internal/core/ports/driving"
	"github.com/onboardai/onboard/internal/logger"
)

// Ensure DispatcherPool implements the interface.
var _ driving.DispatcherPool = (*DispatcherPool)(nil)

// DispatcherPool shares one action client across every dispatcher and keeps
// one responder per API key, so models are probed once per key rather than
// on every UI interaction.
type DispatcherPool struct {
	actions    driving.ActionClient
	factory    driven.CompletionClientFactory
	candidates []string

	mu    sync.Mutex
	slots map[string]*responderSlot
}

// responderSlot serializes builds for one key. Builds for different keys
// run concurrently.
type responderSlot struct {
	mu        sync.Mutex
	responder *QueryResponder
}

// NewDispatcherPool creates a pool.
func NewDispatcherPool(
	actions driving.ActionClient,
	factory driven.CompletionClientFactory,
	candidates []string,
) *DispatcherPool {
	return &DispatcherPool{
		actions:    actions,
		factory:    factory,
		candidates: candidates,
		slots:      make(map[string]*responderSlot),
	}
}

// ForKey returns a dispatcher for apiKey. The first call for a key builds
// its responder and records the model selection into sess. A build that
// selected no model is retried on the next call.
func (p *DispatcherPool) ForKey(ctx context.Context, apiKey string, sess *domain.Session) driving.Dispatcher {
	return NewDispatcher(p.actions, p.responder(ctx, apiKey, sess))
}

// Actions returns the shared action client.
func (p *DispatcherPool) Actions() driving.ActionClient {
	return p.actions
}

func (p *DispatcherPool) slot(apiKey string) *responderSlot {
	p.mu.Lock()
	defer p.mu.Unlock()

	s, ok := p.slots[apiKey]
	if !ok {
		s = &responderSlot{}
		p.slots[apiKey] = s
	}
	return s
}

func (p *DispatcherPool) responder(ctx context.Context, apiKey string, sess *domain.Session) *QueryResponder {
	s := p.slot(apiKey)
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.responder != nil {
		return s.responder
	}

	var recorder driven.TraceRecorder
	if sess != nil {
		recorder = sess
	}
	r := NewQueryResponder(ctx, apiKey, p.candidates, p.factory, recorder)

	switch {
	case ctx.Err() != nil:
		logger.Debug("responder build interrupted: %v", ctx.Err())
	case r.Model() == "":
		logger.Debug("no model selected, responder not cached")
	default:
		s.responder = r
	}
	return r
}
