package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/onboardai/onboard/internal/core/domain"
	"github.com/onboardai/onboard/internal/core/ports/driven"
)

// Ensure CredentialStore implements the interface.
var _ driven.CredentialStore = (*CredentialStore)(nil)

// authorizedUser is the on-disk layout of the credential cache. It matches
// the "authorized user" JSON written by Google's client libraries.
type authorizedUser struct {
	Type         string   `json:"type,omitempty"`
	Token        string   `json:"token"`
	RefreshToken string   `json:"refresh_token,omitempty"`
	TokenURI     string   `json:"token_uri,omitempty"`
	ClientID     string   `json:"client_id,omitempty"`
	ClientSecret string   `json:"client_secret,omitempty"`
	Scopes       []string `json:"scopes,omitempty"`
	Expiry       string   `json:"expiry,omitempty"`
}

const authorizedUserType = "authorized_user"

// CredentialStore caches the Workspace credential in a single JSON file.
type CredentialStore struct {
	path string
}

// NewCredentialStore creates a store backed by path.
func NewCredentialStore(path string) *CredentialStore {
	return &CredentialStore{path: path}
}

// Path returns the cache file path.
func (s *CredentialStore) Path() string {
	return s.path
}

// Load reads the cached credential.
func (s *CredentialStore) Load(_ context.Context) (*domain.Credential, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, domain.ErrCredentialNotCached
	}
	if err != nil {
		return nil, fmt.Errorf("read credential cache: %w", err)
	}

	var raw authorizedUser
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %w", domain.ErrCredentialNotCached, s.path, err)
	}

	cred := &domain.Credential{
		AccessToken:  raw.Token,
		RefreshToken: raw.RefreshToken,
		TokenType:    "Bearer",
		ClientID:     raw.ClientID,
		ClientSecret: raw.ClientSecret,
		TokenURI:     raw.TokenURI,
		Scopes:       raw.Scopes,
	}
	if raw.Expiry != "" {
		// Python writers omit the zone offset and append "Z"; both parse as RFC 3339
		expiry, err := time.Parse(time.RFC3339, raw.Expiry)
		if err != nil {
			return nil, fmt.Errorf("%w: bad expiry %q", domain.ErrCredentialNotCached, raw.Expiry)
		}
		cred.Expiry = expiry
	}
	return cred, nil
}

// Save writes cred to the cache with owner-only permissions. The file is
// replaced atomically so readers never observe a partial write.
func (s *CredentialStore) Save(_ context.Context, cred domain.Credential) error {
	raw := authorizedUser{
		Type:         authorizedUserType,
		Token:        cred.AccessToken,
		RefreshToken: cred.RefreshToken,
		TokenURI:     cred.TokenURI,
		ClientID:     cred.ClientID,
		ClientSecret: cred.ClientSecret,
		Scopes:       cred.Scopes,
	}
	if !cred.Expiry.IsZero() {
		raw.Expiry = cred.Expiry.UTC().Format(time.RFC3339)
	}

	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return fmt.Errorf("encode credential: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("create credential directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".token-*.json")
	if err != nil {
		return fmt.Errorf("create temp credential file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write credential: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}
