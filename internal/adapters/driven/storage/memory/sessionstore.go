package memory

import (
	"sync"
	"time"

	"github.com/onboardai/onboard/internal/core/domain"
	"github.com/onboardai/onboard/internal/core/ports/driven"
)

// Ensure SessionStore implements the interface.
var _ driven.SessionStore = (*SessionStore)(nil)

// SessionStore keeps sessions in memory for the process lifetime.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*domain.Session
	now      func() time.Time
}

// NewSessionStore creates an empty session store.
// A nil clock defaults to time.Now.
func NewSessionStore(now func() time.Time) *SessionStore {
	if now == nil {
		now = time.Now
	}
	return &SessionStore{
		sessions: make(map[string]*domain.Session),
		now:      now,
	}
}

// GetOrCreate returns the session for id, creating it on first use.
func (s *SessionStore) GetOrCreate(id string) (*domain.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[id]; ok {
		return sess, false
	}
	sess := domain.NewSession(id, s.now)
	s.sessions[id] = sess
	return sess, true
}

// Get returns the session for id.
func (s *SessionStore) Get(id string) (*domain.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

// Count returns the number of sessions.
func (s *SessionStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
