package mcp

import (
	"context"
	"sync"

	"github.com/onboardai/onboard/internal/core/domain"
	"github.com/onboardai/onboard/internal/core/ports/driving"
)

// mockActions is a mock implementation of driving.ActionClient.
type mockActions struct{}

func (m *mockActions) ScheduleInductionEvent(context.Context, string) string { return "" }
func (m *mockActions) DraftWelcomeEmail(context.Context, string) string      { return "" }
func (m *mockActions) Authenticated() bool                                   { return true }
func (m *mockActions) Authorize(context.Context) error                       { return nil }
func (m *mockActions) Reload(context.Context) error                          { return nil }

// mockDispatcher writes the onboarding trace shape into the session.
type mockDispatcher struct {
	key string
}

func (m *mockDispatcher) RunOnboardingSequence(_ context.Context, sess *domain.Session, name string) string {
	sess.Record(domain.ActorOrchestrator, "Task Received", "Onboard "+name)
	sess.Record(domain.ActorToolAgent, "Output", domain.EventCreatedOutcome("evt123"))
	sess.Record(domain.ActorOrchestrator, "Task Completed", domain.MsgOnboardingComplete)
	return domain.MsgOnboardingComplete
}

func (m *mockDispatcher) AnswerQuery(_ context.Context, sess *domain.Session, _ string) string {
	sess.Record(domain.ActorOrchestrator, "Delegating", "PolicyAgent -> Gemini")
	sess.Record(domain.ActorPolicyAgent, "Output", domain.MsgResponseGenerated)
	if m.key == "" {
		return domain.MsgAPIKeyMissing
	}
	return "3 Months."
}

func (m *mockDispatcher) Ask(ctx context.Context, sess *domain.Session, q string) string {
	sess.AppendTurn(domain.RoleUser, q)
	a := m.AnswerQuery(ctx, sess, q)
	sess.AppendTurn(domain.RoleAssistant, a)
	return a
}

// mockPool is a mock implementation of driving.DispatcherPool.
type mockPool struct {
	mu   sync.Mutex
	keys []string
}

func (m *mockPool) ForKey(_ context.Context, key string, _ *domain.Session) driving.Dispatcher {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keys = append(m.keys, key)
	return &mockDispatcher{key: key}
}

func (m *mockPool) Actions() driving.ActionClient { return &mockActions{} }
