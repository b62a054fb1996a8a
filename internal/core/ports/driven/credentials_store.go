package driven

import (
	"context"

	"github.com/onboardai/onboard/internal/core/domain"
)

// CredentialStore persists the single OAuth credential of the process.
type CredentialStore interface {
	// Load reads the cached credential.
	// Returns domain.ErrCredentialNotCached if no cache exists.
	Load(ctx context.Context) (*domain.Credential, error)

	// Save writes the credential, replacing any cached one.
	Save(ctx context.Context, cred domain.Credential) error

	// Path returns the cache location.
	Path() string
}

// ConsentFlow obtains credentials from the authorization server.
type ConsentFlow interface {
	// Refresh exchanges the refresh token of cred for a new access token.
	// Returns domain.ErrNotRefreshable if cred carries no refresh token.
	Refresh(ctx context.Context, cred domain.Credential) (*domain.Credential, error)

	// Authorize runs interactive browser consent.
	// Returns domain.ErrClientSecretMissing when no client secret is available.
	Authorize(ctx context.Context) (*domain.Credential, error)

	// CanAuthorize reports whether interactive consent is possible.
	CanAuthorize() bool
}
