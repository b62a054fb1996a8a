//nolint:noctx // Test file uses http.Get for convenience
package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onboardai/onboard/internal/core/domain"
)

// fakeTokenServer is a minimal Google token endpoint.
type fakeTokenServer struct {
	mu       sync.Mutex
	forms    []url.Values
	failWith string
}

func (f *fakeTokenServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()
	f.mu.Lock()
	f.forms = append(f.forms, r.PostForm)
	fail := f.failWith
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if fail != "" {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprintf(w, `{"error":%q}`, fail)
		return
	}

	switch r.PostForm.Get("grant_type") {
	case "refresh_token":
		fmt.Fprint(w, `{"access_token":"refreshed-at","token_type":"Bearer","expires_in":3600}`)
	case "authorization_code":
		fmt.Fprint(w, `{"access_token":"new-at","refresh_token":"new-rt","token_type":"Bearer","expires_in":3600}`)
	default:
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error":"unsupported_grant_type"}`)
	}
}

func (f *fakeTokenServer) lastForm() url.Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.forms[len(f.forms)-1]
}

func newTokenServer(t *testing.T) (*fakeTokenServer, *httptest.Server) {
	t.Helper()
	fake := &fakeTokenServer{}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)
	return fake, srv
}

func writeClientSecret(t *testing.T, tokenURL string) string {
	t.Helper()
	secret := map[string]any{
		"installed": map[string]any{
			"client_id":     "cid.apps.googleusercontent.com",
			"client_secret": "csecret",
			"auth_uri":      "https://accounts.example.com/o/oauth2/auth",
			"token_uri":     tokenURL,
			"redirect_uris": []string{"http://localhost"},
		},
	}
	data, err := json.Marshal(secret)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "credentials.json")
	require.NoError(t, os.WriteFile(path, data, 0600))
	return path
}

func TestFlow_Refresh(t *testing.T) {
	fake, srv := newTokenServer(t)
	flow := NewFlow(FlowOptions{HTTPClient: srv.Client()})

	cred := domain.Credential{
		AccessToken:  "old",
		RefreshToken: "keep-me",
		ClientID:     "cid",
		ClientSecret: "cs",
		TokenURI:     srv.URL + "/token",
		Scopes:       domain.WorkspaceScopes,
		Expiry:       time.Now().Add(-time.Hour),
	}

	got, err := flow.Refresh(context.Background(), cred)

	require.NoError(t, err)
	assert.Equal(t, "refreshed-at", got.AccessToken)
	assert.Equal(t, "keep-me", got.RefreshToken)
	assert.Equal(t, "cid", got.ClientID)
	assert.Equal(t, srv.URL+"/token", got.TokenURI)
	assert.Equal(t, domain.WorkspaceScopes, got.Scopes)
	assert.True(t, got.IsValid())

	form := fake.lastForm()
	assert.Equal(t, "refresh_token", form.Get("grant_type"))
	assert.Equal(t, "keep-me", form.Get("refresh_token"))
}

func TestFlow_Refresh_NotRefreshable(t *testing.T) {
	flow := NewFlow(FlowOptions{})

	_, err := flow.Refresh(context.Background(), domain.Credential{AccessToken: "a"})

	assert.ErrorIs(t, err, domain.ErrNotRefreshable)
}

func TestFlow_Refresh_Rejected(t *testing.T) {
	fake, srv := newTokenServer(t)
	fake.failWith = "invalid_grant"
	flow := NewFlow(FlowOptions{HTTPClient: srv.Client()})

	_, err := flow.Refresh(context.Background(), domain.Credential{
		RefreshToken: "revoked",
		ClientID:     "cid",
		TokenURI:     srv.URL + "/token",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid_grant")
}

func TestFlow_Authorize(t *testing.T) {
	fake, srv := newTokenServer(t)
	secretPath := writeClientSecret(t, srv.URL+"/token")

	var authURL *url.URL
	browser := func(raw string) error {
		u, err := url.Parse(raw)
		if err != nil {
			return err
		}
		authURL = u
		q := u.Query()
		redirect := q.Get("redirect_uri") + "?" + url.Values{
			"code":  {"auth-code"},
			"state": {q.Get("state")},
		}.Encode()
		resp, err := http.Get(redirect)
		if err != nil {
			return err
		}
		return resp.Body.Close()
	}

	flow := NewFlow(FlowOptions{
		ClientSecretPath: secretPath,
		Timeout:          5 * time.Second,
		Out:              io.Discard,
		OpenBrowser:      browser,
		HTTPClient:       srv.Client(),
	})
	require.True(t, flow.CanAuthorize())

	cred, err := flow.Authorize(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "new-at", cred.AccessToken)
	assert.Equal(t, "new-rt", cred.RefreshToken)
	assert.Equal(t, "cid.apps.googleusercontent.com", cred.ClientID)
	assert.Equal(t, "csecret", cred.ClientSecret)
	assert.Equal(t, srv.URL+"/token", cred.TokenURI)
	assert.Equal(t, domain.WorkspaceScopes, cred.Scopes)
	assert.True(t, cred.CanRefresh())

	require.NotNil(t, authURL)
	q := authURL.Query()
	assert.Equal(t, "offline", q.Get("access_type"))
	assert.Equal(t, "S256", q.Get("code_challenge_method"))
	assert.NotEmpty(t, q.Get("code_challenge"))
	assert.Contains(t, q.Get("scope"), domain.ScopeCalendar)
	assert.Contains(t, q.Get("scope"), domain.ScopeGmailCompose)
	assert.Contains(t, q.Get("redirect_uri"), "http://127.0.0.1:")

	form := fake.lastForm()
	assert.Equal(t, "authorization_code", form.Get("grant_type"))
	assert.Equal(t, "auth-code", form.Get("code"))
	assert.NotEmpty(t, form.Get("code_verifier"))
}

func TestFlow_Authorize_MissingSecret(t *testing.T) {
	flow := NewFlow(FlowOptions{ClientSecretPath: filepath.Join(t.TempDir(), "absent.json")})

	assert.False(t, flow.CanAuthorize())
	_, err := flow.Authorize(context.Background())
	assert.ErrorIs(t, err, domain.ErrClientSecretMissing)

	assert.False(t, NewFlow(FlowOptions{}).CanAuthorize())
}

func TestFlow_Authorize_BadSecret(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"unknown": {}}`), 0600))
	flow := NewFlow(FlowOptions{ClientSecretPath: path})

	_, err := flow.Authorize(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse client secret")
}

func TestFlow_Authorize_Timeout(t *testing.T) {
	_, srv := newTokenServer(t)
	flow := NewFlow(FlowOptions{
		ClientSecretPath: writeClientSecret(t, srv.URL+"/token"),
		Timeout:          50 * time.Millisecond,
		Out:              io.Discard,
		OpenBrowser:      func(string) error { return nil },
	})

	_, err := flow.Authorize(context.Background())

	assert.ErrorIs(t, err, domain.ErrConsentTimeout)
}
