package driving

import (
	"context"

	"github.com/onboardai/onboard/internal/core/domain"
)

// AuthService manages the Workspace credential cache outside of onboarding.
type AuthService interface {
	// Login runs interactive consent and persists the credential.
	Login(ctx context.Context) error

	// Status reports the state of the credential cache.
	Status(ctx context.Context) (*domain.CredentialStatus, error)
}
