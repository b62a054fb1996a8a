package driven

import "github.com/onboardai/onboard/internal/core/domain"

// SessionStore holds UI sessions for the process lifetime.
type SessionStore interface {
	// GetOrCreate returns the session for id, creating it if absent.
	// The boolean is true when the session was created by this call.
	GetOrCreate(id string) (*domain.Session, bool)

	// Get returns the session for id, or false if none exists.
	Get(id string) (*domain.Session, bool)

	// Count returns the number of live sessions.
	Count() int
}
