package domain

import "time"

// Workspace OAuth scopes requested by the action client.
const (
	ScopeCalendar     = "https://www.googleapis.com/auth/calendar"
	ScopeGmailCompose = "https://www.googleapis.com/auth/gmail.compose"
)

// WorkspaceScopes are the scopes a Credential must carry for both onboarding steps.
var WorkspaceScopes = []string{ScopeCalendar, ScopeGmailCompose}

// Credential stores the OAuth token for the Workspace account together with
// the client metadata needed to refresh it without the client-secret file.
type Credential struct {
	// AccessToken is the bearer token for API access.
	AccessToken string
	// RefreshToken is used to obtain new access tokens.
	RefreshToken string
	// TokenType is typically "Bearer".
	TokenType string
	// Expiry is when the access token expires. Zero means no known expiry.
	Expiry time.Time

	// ClientID is the OAuth client the token was issued to.
	ClientID string
	// ClientSecret is the OAuth client secret (installed apps treat it as non-confidential).
	ClientSecret string
	// TokenURI is the token endpoint used for refresh.
	TokenURI string
	// Scopes are the scopes granted to the token.
	Scopes []string
}

// ExpiryDelta is how long before Expiry a token is treated as expired, so a
// token is never handed out with only seconds left.
const ExpiryDelta = time.Minute

// IsExpired returns true if the access token expires within ExpiryDelta.
func (c *Credential) IsExpired() bool {
	if c.Expiry.IsZero() {
		return false
	}
	return !time.Now().Add(ExpiryDelta).Before(c.Expiry)
}

// IsValid returns true if the credential holds an unexpired access token.
func (c *Credential) IsValid() bool {
	return c != nil && c.AccessToken != "" && !c.IsExpired()
}

// CanRefresh returns true if the credential carries a refresh capability.
func (c *Credential) CanRefresh() bool {
	return c != nil && c.RefreshToken != "" && c.ClientID != ""
}

// NeedsRefresh returns true if the token has expired but can be refreshed.
func (c *Credential) NeedsRefresh() bool {
	return c != nil && c.IsExpired() && c.CanRefresh()
}

// CredentialStatus describes the credential cache for display.
type CredentialStatus struct {
	// CachePath is where the credential is stored.
	CachePath string
	// Cached is true when a readable credential exists at CachePath.
	Cached bool
	// Valid is true when the cached access token is unexpired.
	Valid bool
	// Refreshable is true when the cached credential can be refreshed.
	Refreshable bool
	// Expiry of the cached access token.
	Expiry time.Time
	// Scopes granted to the cached credential.
	Scopes []string
	// ClientSecretAvailable is true when interactive consent can run.
	ClientSecretAvailable bool
}
