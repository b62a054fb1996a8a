package tui

import (
	"context"
	"sync"

	"github.com/onboardai/onboard/internal/core/domain"
	"github.com/onboardai/onboard/internal/core/ports/driving"
)

// MockActions implements driving.ActionClient for testing.
type MockActions struct {
	authenticated bool
}

func (m *MockActions) ScheduleInductionEvent(context.Context, string) string { return "" }
func (m *MockActions) DraftWelcomeEmail(context.Context, string) string      { return "" }
func (m *MockActions) Authenticated() bool                                   { return m.authenticated }
func (m *MockActions) Authorize(context.Context) error                       { return nil }
func (m *MockActions) Reload(context.Context) error                          { return nil }

// MockDispatcher records a fixed trace into the session.
type MockDispatcher struct {
	key string
}

func (m *MockDispatcher) RunOnboardingSequence(_ context.Context, sess *domain.Session, name string) string {
	sess.Record(domain.ActorOrchestrator, "Task Received", "Onboard "+name)
	sess.Record(domain.ActorToolAgent, "Output", domain.EventCreatedOutcome("evt123"))
	return domain.MsgOnboardingComplete
}

func (m *MockDispatcher) AnswerQuery(context.Context, *domain.Session, string) string {
	if m.key == "" {
		return domain.MsgAPIKeyMissing
	}
	return "18 paid leaves per year."
}

func (m *MockDispatcher) Ask(ctx context.Context, sess *domain.Session, q string) string {
	sess.AppendTurn(domain.RoleUser, q)
	answer := m.AnswerQuery(ctx, sess, q)
	sess.AppendTurn(domain.RoleAssistant, answer)
	return answer
}

// MockPool implements driving.DispatcherPool for testing.
type MockPool struct {
	mu      sync.Mutex
	keys    []string
	actions *MockActions
}

func (m *MockPool) ForKey(_ context.Context, key string, _ *domain.Session) driving.Dispatcher {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keys = append(m.keys, key)
	return &MockDispatcher{key: key}
}

func (m *MockPool) Actions() driving.ActionClient {
	if m.actions == nil {
		return &MockActions{}
	}
	return m.actions
}
