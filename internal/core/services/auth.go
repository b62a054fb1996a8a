package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/onboardai/onboard/internal/core/domain"
	"github.com/onboardai/onboard/internal/core/ports/driven"
	"github.com/onboardai/onboard/internal/core/ports/driving"
	"github.com/onboardai/onboard/internal/logger"
)

// Ensure AuthService implements the interface.
var _ driving.AuthService = (*AuthService)(nil)

// AuthService runs consent and inspects the credential cache without
// constructing an action client.
type AuthService struct {
	store driven.CredentialStore
	flow  driven.ConsentFlow
}

// NewAuthService creates an auth service. flow may be nil.
func NewAuthService(store driven.CredentialStore, flow driven.ConsentFlow) *AuthService {
	return &AuthService{store: store, flow: flow}
}

// Login runs interactive consent and writes the credential to the cache.
func (s *AuthService) Login(ctx context.Context) error {
	if s.flow == nil || !s.flow.CanAuthorize() {
		return domain.ErrClientSecretMissing
	}

	cred, err := s.flow.Authorize(ctx)
	if err != nil {
		return fmt.Errorf("interactive consent: %w", err)
	}
	if err := s.store.Save(ctx, *cred); err != nil {
		return fmt.Errorf("persist credential: %w", err)
	}

	logger.Info("Credential saved to %s", s.store.Path())
	return nil
}

// Status reports what the credential cache holds. A missing cache is not an error.
func (s *AuthService) Status(ctx context.Context) (*domain.CredentialStatus, error) {
	status := &domain.CredentialStatus{
		CachePath:             s.store.Path(),
		ClientSecretAvailable: s.flow != nil && s.flow.CanAuthorize(),
	}

	cred, err := s.store.Load(ctx)
	if errors.Is(err, domain.ErrCredentialNotCached) {
		return status, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read credential cache: %w", err)
	}

	status.Cached = true
	status.Valid = cred.IsValid()
	status.Refreshable = cred.CanRefresh()
	status.Expiry = cred.Expiry
	status.Scopes = cred.Scopes
	return status, nil
}
