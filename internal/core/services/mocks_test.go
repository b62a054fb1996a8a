package services

import (
	"context"
	"errors"
	"sync"

	"github.com/onboardai/onboard/internal/core/domain"
	"github.com/onboardai/onboard/internal/core/ports/driven"
)

// mockBackend is a scripted completion backend.
type mockBackend struct {
	mu      sync.Mutex
	failing map[string]bool
	reply   string
	err     error
	calls   []backendCall
	// block, when set, holds every call until closed.
	block chan struct{}
}

type backendCall struct {
	model  string
	prompt string
}

func (m *mockBackend) Generate(_ context.Context, model, prompt string) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, backendCall{model: model, prompt: prompt})
	block := m.block
	m.mu.Unlock()
	if block != nil {
		<-block
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failing[model] {
		return "", errors.New("404 models/" + model + " is not found")
	}
	if prompt != domain.ProbePrompt && m.err != nil {
		return "", m.err
	}
	return m.reply, nil
}

func (m *mockBackend) promptsFor(model string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []string
	for _, c := range m.calls {
		if c.model == model {
			out = append(out, c.prompt)
		}
	}
	return out
}

func (m *mockBackend) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// mockCompletionFactory hands out one backend per key.
type mockCompletionFactory struct {
	mu       sync.Mutex
	backends map[string]*mockBackend
	created  []string
	err      error
}

func newMockCompletionFactory() *mockCompletionFactory {
	return &mockCompletionFactory{backends: make(map[string]*mockBackend)}
}

func (f *mockCompletionFactory) backend(key string) *mockBackend {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.backends[key]
	if !ok {
		b = &mockBackend{failing: map[string]bool{}, reply: "ok"}
		f.backends[key] = b
	}
	return b
}

func (f *mockCompletionFactory) NewCompletionBackend(_ context.Context, apiKey string) (driven.CompletionBackend, error) {
	if f.err != nil {
		return nil, f.err
	}
	if apiKey == "" {
		return nil, domain.ErrAPIKeyMissing
	}
	b := f.backend(apiKey)
	f.mu.Lock()
	f.created = append(f.created, apiKey)
	f.mu.Unlock()
	return b, nil
}

// recordedEntry mirrors a trace entry without its timestamp.
type recordedEntry struct {
	actor, action, detail string
}

// mockRecorder collects trace entries.
type mockRecorder struct {
	entries []recordedEntry
}

func (r *mockRecorder) Record(actor, action, detail string) {
	r.entries = append(r.entries, recordedEntry{actor, action, detail})
}

// mockCredentialStore is an in-memory credential cache.
type mockCredentialStore struct {
	mu      sync.Mutex
	cred    *domain.Credential
	loadErr error
	saveErr error
	saves   []domain.Credential
}

func (s *mockCredentialStore) Load(_ context.Context) (*domain.Credential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	if s.cred == nil {
		return nil, domain.ErrCredentialNotCached
	}
	c := *s.cred
	return &c, nil
}

func (s *mockCredentialStore) Save(_ context.Context, cred domain.Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saves = append(s.saves, cred)
	c := cred
	s.cred = &c
	return nil
}

func (s *mockCredentialStore) Path() string { return "/tmp/token.json" }

func (s *mockCredentialStore) saveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.saves)
}

// mockConsentFlow scripts refresh and interactive consent.
type mockConsentFlow struct {
	refreshed    *domain.Credential
	refreshErr   error
	authorized   *domain.Credential
	authorizeErr error
	hasSecret    bool

	refreshCalls   int
	authorizeCalls int
}

func (f *mockConsentFlow) Refresh(_ context.Context, cred domain.Credential) (*domain.Credential, error) {
	f.refreshCalls++
	if !cred.CanRefresh() {
		return nil, domain.ErrNotRefreshable
	}
	if f.refreshErr != nil {
		return nil, f.refreshErr
	}
	c := *f.refreshed
	return &c, nil
}

func (f *mockConsentFlow) Authorize(_ context.Context) (*domain.Credential, error) {
	f.authorizeCalls++
	if !f.hasSecret {
		return nil, domain.ErrClientSecretMissing
	}
	if f.authorizeErr != nil {
		return nil, f.authorizeErr
	}
	c := *f.authorized
	return &c, nil
}

func (f *mockConsentFlow) CanAuthorize() bool { return f.hasSecret }

// mockWorkspaceClient records Workspace calls.
type mockWorkspaceClient struct {
	mu        sync.Mutex
	eventID   string
	eventErr  error
	address   string
	addrErr   error
	draftErr  error
	events    []domain.CalendarEvent
	calendars []string
	drafts    []domain.MailDraft
	calls     int
}

func (c *mockWorkspaceClient) InsertEvent(_ context.Context, calendarID string, event domain.CalendarEvent) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	if c.eventErr != nil {
		return "", c.eventErr
	}
	c.events = append(c.events, event)
	c.calendars = append(c.calendars, calendarID)
	return c.eventID, nil
}

func (c *mockWorkspaceClient) MailboxAddress(_ context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	if c.addrErr != nil {
		return "", c.addrErr
	}
	return c.address, nil
}

func (c *mockWorkspaceClient) CreateDraft(_ context.Context, draft domain.MailDraft) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	if c.draftErr != nil {
		return "", c.draftErr
	}
	c.drafts = append(c.drafts, draft)
	return "draft-1", nil
}

func (c *mockWorkspaceClient) callCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

// mockWorkspaceFactory returns a fixed client and keeps the token provider.
type mockWorkspaceFactory struct {
	client *mockWorkspaceClient
	err    error
	tokens driven.TokenProvider
}

func (f *mockWorkspaceFactory) NewWorkspaceClient(_ context.Context, tokens driven.TokenProvider) (driven.WorkspaceClient, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.tokens = tokens
	return f.client, nil
}
