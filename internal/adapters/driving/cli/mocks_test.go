package cli

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/onboardai/onboard/internal/adapters/driven/storage/memory"
	"github.com/onboardai/onboard/internal/core/domain"
	"github.com/onboardai/onboard/internal/core/ports/driving"
	coreservices "github.com/onboardai/onboard/internal/core/services"
)

// mockAuth implements driving.AuthService for testing.
type mockAuth struct {
	loginErr error
	logins   int
	status   *domain.CredentialStatus
}

func (m *mockAuth) Login(context.Context) error {
	m.logins++
	return m.loginErr
}

func (m *mockAuth) Status(context.Context) (*domain.CredentialStatus, error) {
	if m.status == nil {
		return nil, errors.New("no status")
	}
	return m.status, nil
}

type mockActions struct{}

func (mockActions) ScheduleInductionEvent(context.Context, string) string { return "" }
func (mockActions) DraftWelcomeEmail(context.Context, string) string      { return "" }
func (mockActions) Authenticated() bool                                   { return true }
func (mockActions) Authorize(context.Context) error                       { return nil }
func (mockActions) Reload(context.Context) error                          { return nil }

type mockDispatcher struct {
	key string
}

func (m *mockDispatcher) RunOnboardingSequence(_ context.Context, sess *domain.Session, name string) string {
	sess.Record(domain.ActorOrchestrator, "Task Received", "Onboard "+name)
	sess.Record(domain.ActorToolAgent, "Output", domain.EventCreatedOutcome("evt123"))
	return domain.MsgOnboardingComplete
}

func (m *mockDispatcher) AnswerQuery(context.Context, *domain.Session, string) string {
	if m.key == "" {
		return domain.MsgAPIKeyMissing
	}
	return "18 paid leaves per year."
}

func (m *mockDispatcher) Ask(ctx context.Context, sess *domain.Session, q string) string {
	sess.AppendTurn(domain.RoleUser, q)
	answer := m.AnswerQuery(ctx, sess, q)
	sess.AppendTurn(domain.RoleAssistant, answer)
	return answer
}

// mockPool implements driving.DispatcherPool and records requested keys.
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

func (m *mockPool) Actions() driving.ActionClient { return mockActions{} }

// fixture bundles the services handed to commands by the test bootstrap.
type fixture struct {
	settings *coreservices.SettingsService
	auth     *mockAuth
	pool     *mockPool
	poolErr  error
	builds   int
	dir      string
}

func newFixture(t *testing.T, values map[string]any) *fixture {
	t.Helper()
	if values == nil {
		values = map[string]any{}
	}
	if _, ok := values["workspace.time_zone"]; !ok {
		values["workspace.time_zone"] = "UTC"
	}
	dir := t.TempDir()
	return &fixture{
		settings: coreservices.NewSettingsService(memory.NewConfigStoreFrom(values), dir).
			WithEnv(func(string) string { return "" }),
		auth: &mockAuth{},
		pool: &mockPool{},
	}
}

// execute runs the root command with args against f and returns its output.
func (f *fixture) execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	origBootstrap, origServices := bootstrap, services
	origFormat, origConfigDir := runFormat, configDir
	t.Cleanup(func() {
		bootstrap, services = origBootstrap, origServices
		runFormat, configDir = origFormat, origConfigDir
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	SetBootstrap(func(dir string) (*Services, error) {
		f.dir = dir
		return &Services{
			Settings: f.settings,
			Auth:     f.auth,
			Sessions: memory.NewSessionStore(time.Now),
			Pool: func(context.Context) (driving.DispatcherPool, error) {
				f.builds++
				if f.poolErr != nil {
					return nil, f.poolErr
				}
				return f.pool, nil
			},
		}, nil
	})

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}
