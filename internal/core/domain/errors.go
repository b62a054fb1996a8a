package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Credential Errors.

	// ErrNoCredential indicates no Workspace credential is held.
	ErrNoCredential = errors.New("no workspace credential")

	// ErrCredentialNotCached indicates the credential cache is absent or unreadable.
	ErrCredentialNotCached = errors.New("credential not cached")

	// ErrNotRefreshable indicates the credential carries no refresh capability.
	ErrNotRefreshable = errors.New("credential not refreshable")

	// ErrClientSecretMissing indicates the OAuth client-secret file is absent.
	// Interactive consent is skipped and the client holds no credential.
	ErrClientSecretMissing = errors.New("client secret configuration missing")

	// ErrConsentTimeout indicates the user did not complete interactive consent in time.
	ErrConsentTimeout = errors.New("timed out waiting for consent")

	// Completion Errors.

	// ErrAPIKeyMissing indicates no completion API key was supplied.
	ErrAPIKeyMissing = errors.New("API key missing")

	// ErrNoModelAvailable indicates every candidate model failed the probe.
	ErrNoModelAvailable = errors.New("no candidate model available")
)
