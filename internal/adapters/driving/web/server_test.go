package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/onboardai/onboard/internal/adapters/driven/storage/memory"
	"github.com/onboardai/onboard/internal/core/domain"
	"github.com/onboardai/onboard/internal/core/ports/driving"
)

type stubActions struct{ authenticated bool }

func (a *stubActions) ScheduleInductionEvent(context.Context, string) string { return "" }
func (a *stubActions) DraftWelcomeEmail(context.Context, string) string      { return "" }
func (a *stubActions) Authenticated() bool                                   { return a.authenticated }
func (a *stubActions) Authorize(context.Context) error                       { return nil }
func (a *stubActions) Reload(context.Context) error                          { return nil }

// stubDispatcher records into the session the way the real one does, with
// fixed leaf outcomes.
type stubDispatcher struct{ key string }

func (d *stubDispatcher) RunOnboardingSequence(_ context.Context, sess *domain.Session, name string) string {
	sess.Record(domain.ActorOrchestrator, "Task Received", "Onboard "+name)
	sess.Record(domain.ActorOrchestrator, "Task Completed", domain.MsgOnboardingComplete)
	return domain.MsgOnboardingComplete
}

func (d *stubDispatcher) AnswerQuery(_ context.Context, sess *domain.Session, q string) string {
	if d.key == "" {
		return domain.MsgAPIKeyMissing
	}
	return "answer to " + q
}

func (d *stubDispatcher) Ask(ctx context.Context, sess *domain.Session, q string) string {
	sess.AppendTurn(domain.RoleUser, q)
	a := d.AnswerQuery(ctx, sess, q)
	sess.AppendTurn(domain.RoleAssistant, a)
	return a
}

type stubPool struct {
	mu      sync.Mutex
	keys    []string
	actions *stubActions
}

func (p *stubPool) ForKey(_ context.Context, key string, _ *domain.Session) driving.Dispatcher {
	p.mu.Lock()
	p.keys = append(p.keys, key)
	p.mu.Unlock()
	return &stubDispatcher{key: key}
}

func (p *stubPool) Actions() driving.ActionClient { return p.actions }

func newTestServer(t *testing.T, defaultKey string) (*stubPool, *httptest.Server, *http.Client) {
	t.Helper()
	pool := &stubPool{actions: &stubActions{authenticated: true}}
	clock := func() time.Time { return time.Date(2026, 10, 17, 14, 5, 9, 0, time.UTC) }
	srv, err := NewServer(&Ports{
		Pool:       pool,
		Sessions:   memory.NewSessionStore(clock),
		DefaultKey: defaultKey,
	})
	require.NoError(t, err)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	client := ts.Client()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	client.Jar = jar
	return pool, ts, client
}

func post(t *testing.T, c *http.Client, url, body string) (int, map[string]any) {
	t.Helper()
	resp, err := c.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func get(t *testing.T, c *http.Client, url string) (int, map[string]any) {
	t.Helper()
	resp, err := c.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestNewServer_Validate(t *testing.T) {
	_, err := NewServer(&Ports{Sessions: memory.NewSessionStore(nil)})
	assert.ErrorIs(t, err, ErrMissingPool)

	_, err = NewServer(&Ports{Pool: &stubPool{}})
	assert.ErrorIs(t, err, ErrMissingSessions)
}

func TestServer_Health(t *testing.T) {
	_, ts, c := newTestServer(t, "")

	status, body := get(t, c, ts.URL+"/health")

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, true, body["authenticated"])
}

func TestServer_Index(t *testing.T) {
	_, ts, c := newTestServer(t, "")

	resp, err := c.Get(ts.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	resp404, err := c.Get(ts.URL + "/nope")
	require.NoError(t, err)
	resp404.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp404.StatusCode)
}

func TestServer_Onboard_EmptyName(t *testing.T) {
	pool, ts, c := newTestServer(t, "")

	status, body := post(t, c, ts.URL+"/api/onboard", `{"name":"   "}`)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, false, body["ok"])
	assert.Equal(t, "Enter a name.", body["error"])
	assert.Empty(t, pool.keys)
}

func TestServer_Onboard_InvalidJSON(t *testing.T) {
	_, ts, c := newTestServer(t, "")

	status, body := post(t, c, ts.URL+"/api/onboard", `{`)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, false, body["ok"])
}

func TestServer_Onboard(t *testing.T) {
	_, ts, c := newTestServer(t, "")

	status, body := post(t, c, ts.URL+"/api/onboard", `{"name":"Asha Rao"}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, domain.MsgOnboardingComplete, body["status"])

	_, state := get(t, c, ts.URL+"/api/session")
	trace := state["trace"].([]any)
	require.Len(t, trace, 2)
	newest := trace[0].(map[string]any)
	assert.Equal(t, "Task Completed", newest["action"])
	assert.Equal(t, "[14:05:09] **Orchestrator**: Task Completed -> "+domain.MsgOnboardingComplete, newest["line"])
	assert.Equal(t, "Task Received", trace[1].(map[string]any)["action"])
}

func TestServer_Ask_UsesSessionKey(t *testing.T) {
	pool, ts, c := newTestServer(t, "")

	status, body := post(t, c, ts.URL+"/api/ask", `{"query":"What are my leave days?"}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, domain.MsgAPIKeyMissing, body["answer"])

	status, body = post(t, c, ts.URL+"/api/key", `{"api_key":" k1 "}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["has_key"])

	_, body = post(t, c, ts.URL+"/api/ask", `{"query":"WFH?"}`)
	assert.Equal(t, "answer to WFH?", body["answer"])
	assert.Equal(t, []string{"", "k1"}, pool.keys)

	_, state := get(t, c, ts.URL+"/api/session")
	assert.Equal(t, true, state["has_key"])
	chat := state["chat"].([]any)
	require.Len(t, chat, 4)
	assert.Equal(t, "user", chat[0].(map[string]any)["role"])
	assert.Equal(t, "What are my leave days?", chat[0].(map[string]any)["content"])
	assert.Equal(t, "answer to WFH?", chat[3].(map[string]any)["content"])
}

func TestServer_Ask_EmptyQuery(t *testing.T) {
	_, ts, c := newTestServer(t, "")

	status, _ := post(t, c, ts.URL+"/api/ask", `{"query":""}`)

	assert.Equal(t, http.StatusBadRequest, status)
}

func TestServer_DefaultKey(t *testing.T) {
	pool, ts, c := newTestServer(t, "env-key")

	_, body := post(t, c, ts.URL+"/api/ask", `{"query":"hi"}`)
	assert.Equal(t, "answer to hi", body["answer"])

	// Clearing the session key falls back to the default.
	_, body = post(t, c, ts.URL+"/api/key", `{"api_key":""}`)
	assert.Equal(t, true, body["has_key"])
	assert.Equal(t, []string{"env-key"}, pool.keys)
}

func TestServer_SessionsAreIsolated(t *testing.T) {
	_, ts, c1 := newTestServer(t, "")

	_, _ = post(t, c1, ts.URL+"/api/onboard", `{"name":"Asha Rao"}`)

	// A second client with its own jar gets a fresh session.
	c2 := &http.Client{}
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	c2.Jar = jar

	_, state := get(t, c2, ts.URL+"/api/session")
	assert.Empty(t, state["trace"])

	_, state = get(t, c1, ts.URL+"/api/session")
	assert.Len(t, state["trace"], 2)
}

func TestServer_Export(t *testing.T) {
	_, ts, c := newTestServer(t, "")
	_, _ = post(t, c, ts.URL+"/api/onboard", `{"name":"Asha Rao"}`)

	t.Run("json", func(t *testing.T) {
		resp, err := c.Get(ts.URL + "/api/session/export?format=json")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, resp.Header.Get("Content-Disposition"), ".json")

		var snap domain.Transcript
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&snap))
		require.Len(t, snap.Trace, 2)
		assert.Equal(t, "Task Received", snap.Trace[0].Action)
	})

	t.Run("yaml", func(t *testing.T) {
		resp, err := c.Get(ts.URL + "/api/session/export?format=yaml")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var snap domain.Transcript
		require.NoError(t, yaml.NewDecoder(resp.Body).Decode(&snap))
		require.Len(t, snap.Trace, 2)
		assert.Equal(t, "Onboard Asha Rao", snap.Trace[0].Detail)
	})

	t.Run("unknown format", func(t *testing.T) {
		status, body := get(t, c, ts.URL+"/api/session/export?format=xml")
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, false, body["ok"])
	})
}
