package driving

import (
	"context"

	"github.com/onboardai/onboard/internal/core/domain"
)

// Dispatcher routes UI intents to the leaf components and records every
// delegation and outcome into the session trace.
type Dispatcher interface {
	// RunOnboardingSequence schedules the induction meeting, then drafts the
	// welcome mail. The returned status does not depend on leaf outcomes.
	RunOnboardingSequence(ctx context.Context, sess *domain.Session, employee string) string

	// AnswerQuery passes query to the responder and returns its answer unchanged.
	AnswerQuery(ctx context.Context, sess *domain.Session, query string) string

	// Ask runs one chat round: user turn, AnswerQuery, assistant turn.
	Ask(ctx context.Context, sess *domain.Session, query string) string
}

// DispatcherPool hands out dispatchers keyed by API key.
type DispatcherPool interface {
	// ForKey returns the dispatcher for apiKey, building it on first use.
	// sess receives the model selection entry when a build happens.
	ForKey(ctx context.Context, apiKey string, sess *domain.Session) Dispatcher

	// Actions returns the shared action client.
	Actions() ActionClient
}
