package oauth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/onboardai/onboard/internal/core/domain"
	"github.com/onboardai/onboard/internal/core/ports/driven"
	"github.com/onboardai/onboard/internal/logger"
)

// Ensure Flow implements the interface.
var _ driven.ConsentFlow = (*Flow)(nil)

// FlowOptions configures a Flow.
type FlowOptions struct {
	// ClientSecretPath is the OAuth client JSON file.
	ClientSecretPath string
	// Scopes requested during consent. Defaults to domain.WorkspaceScopes.
	Scopes []string
	// Timeout bounds the wait for the browser callback.
	Timeout time.Duration
	// Out receives the authorization URL. Defaults to os.Stderr.
	Out io.Writer
	// OpenBrowser launches the user's browser. Defaults to OpenBrowser.
	OpenBrowser func(url string) error
	// HTTPClient is used for token requests. Defaults to http.DefaultClient.
	HTTPClient *http.Client
}

// Flow obtains and refreshes Workspace credentials.
type Flow struct {
	opts FlowOptions
}

// NewFlow creates a consent flow.
func NewFlow(opts FlowOptions) *Flow {
	if len(opts.Scopes) == 0 {
		opts.Scopes = domain.WorkspaceScopes
	}
	if opts.Timeout <= 0 {
		opts.Timeout = domain.DefaultConsentTimeout * time.Second
	}
	if opts.Out == nil {
		opts.Out = os.Stderr
	}
	if opts.OpenBrowser == nil {
		opts.OpenBrowser = OpenBrowser
	}
	return &Flow{opts: opts}
}

// withClient installs the configured HTTP client for oauth2 token requests.
func (f *Flow) withClient(ctx context.Context) context.Context {
	if f.opts.HTTPClient == nil {
		return ctx
	}
	return context.WithValue(ctx, oauth2.HTTPClient, f.opts.HTTPClient)
}

// CanAuthorize reports whether the client-secret file exists.
func (f *Flow) CanAuthorize() bool {
	if f.opts.ClientSecretPath == "" {
		return false
	}
	_, err := os.Stat(f.opts.ClientSecretPath)
	return err == nil
}

// Refresh exchanges the refresh token of cred for a new access token.
// The client metadata stored with the credential is used, so the
// client-secret file is not needed.
func (f *Flow) Refresh(ctx context.Context, cred domain.Credential) (*domain.Credential, error) {
	if !cred.CanRefresh() {
		return nil, domain.ErrNotRefreshable
	}

	tokenURL := cred.TokenURI
	if tokenURL == "" {
		tokenURL = google.Endpoint.TokenURL
	}
	cfg := &oauth2.Config{
		ClientID:     cred.ClientID,
		ClientSecret: cred.ClientSecret,
		Endpoint:     oauth2.Endpoint{TokenURL: tokenURL, AuthStyle: oauth2.AuthStyleInParams},
		Scopes:       cred.Scopes,
	}

	// An already-expired token forces the source to refresh
	stale := &oauth2.Token{RefreshToken: cred.RefreshToken, Expiry: time.Unix(1, 0)}
	tok, err := cfg.TokenSource(f.withClient(ctx), stale).Token()
	if err != nil {
		return nil, fmt.Errorf("refresh token: %w", err)
	}

	refreshed := credentialFromToken(tok, cfg, cred.Scopes)
	if refreshed.RefreshToken == "" {
		refreshed.RefreshToken = cred.RefreshToken
	}
	return refreshed, nil
}

// Authorize runs browser consent and exchanges the returned code.
func (f *Flow) Authorize(ctx context.Context) (*domain.Credential, error) {
	cfg, err := f.loadConfig()
	if err != nil {
		return nil, err
	}

	state, err := randomState()
	if err != nil {
		return nil, fmt.Errorf("generate state: %w", err)
	}

	server := NewCallbackServer(0, state)
	if err := server.Start(); err != nil {
		return nil, err
	}
	defer func() { _ = server.Stop() }()
	cfg.RedirectURL = server.RedirectURI()

	verifier := oauth2.GenerateVerifier()
	authURL := cfg.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.S256ChallengeOption(verifier))

	fmt.Fprintf(f.opts.Out, "Please visit this URL to authorize OnboardAI:\n\n  %s\n\n", authURL)
	if err := f.opts.OpenBrowser(authURL); err != nil {
		logger.Debug("open browser: %v", err)
	}

	waitCtx, cancel := context.WithTimeout(ctx, f.opts.Timeout)
	defer cancel()
	code, err := server.WaitForCode(waitCtx)
	if err != nil {
		return nil, err
	}

	tok, err := cfg.Exchange(f.withClient(ctx), code, oauth2.VerifierOption(verifier))
	if err != nil {
		return nil, fmt.Errorf("exchange authorization code: %w", err)
	}
	return credentialFromToken(tok, cfg, cfg.Scopes), nil
}

// loadConfig reads the client-secret file.
func (f *Flow) loadConfig() (*oauth2.Config, error) {
	if f.opts.ClientSecretPath == "" {
		return nil, domain.ErrClientSecretMissing
	}
	data, err := os.ReadFile(f.opts.ClientSecretPath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, domain.ErrClientSecretMissing
	}
	if err != nil {
		return nil, fmt.Errorf("read client secret: %w", err)
	}
	cfg, err := google.ConfigFromJSON(data, f.opts.Scopes...)
	if err != nil {
		return nil, fmt.Errorf("parse client secret: %w", err)
	}
	return cfg, nil
}

func credentialFromToken(tok *oauth2.Token, cfg *oauth2.Config, scopes []string) *domain.Credential {
	tokenType := tok.TokenType
	if tokenType == "" {
		tokenType = "Bearer"
	}
	return &domain.Credential{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		TokenType:    tokenType,
		Expiry:       tok.Expiry,
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURI:     cfg.Endpoint.TokenURL,
		Scopes:       scopes,
	}
}

func randomState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
