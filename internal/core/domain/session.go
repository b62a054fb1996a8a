package domain

import (
	"fmt"
	"sync"
	"time"
)

// Session holds the UI-owned state of one user session: the trace log and
// the chat transcript. Both are append-only for the lifetime of the session.
type Session struct {
	// ID identifies the session (a UUID for web sessions).
	ID string
	// CreatedAt is when the session was initialised.
	CreatedAt time.Time

	mu    sync.Mutex
	now   func() time.Time
	trace []TraceEntry
	chat  []ChatTurn
}

// NewSession creates an empty session.
// A nil clock defaults to time.Now.
func NewSession(id string, now func() time.Time) *Session {
	if now == nil {
		now = time.Now
	}
	return &Session{
		ID:        id,
		CreatedAt: now(),
		now:       now,
	}
}

// Record appends a trace entry stamped with the session clock.
func (s *Session) Record(actor, action, detail string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trace = append(s.trace, TraceEntry{
		Timestamp: s.now(),
		Actor:     actor,
		Action:    action,
		Detail:    detail,
	})
}

// Scratch returns an empty session with the same ID and clock. Callers record
// one run into it, then hand its trace to Merge.
func (s *Session) Scratch() *Session {
	return NewSession(s.ID, s.now)
}

// Merge appends entries to the trace log as one contiguous block, keeping
// their timestamps.
func (s *Session) Merge(entries []TraceEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trace = append(s.trace, entries...)
}

// Trace returns a copy of the trace log in append order.
func (s *Session) Trace() []TraceEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]TraceEntry, len(s.trace))
	copy(out, s.trace)
	return out
}

// TraceNewestFirst returns a copy of the trace log in render order.
func (s *Session) TraceNewestFirst() []TraceEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]TraceEntry, len(s.trace))
	for i, e := range s.trace {
		out[len(s.trace)-1-i] = e
	}
	return out
}

// TraceLen returns the number of recorded entries.
func (s *Session) TraceLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.trace)
}

// AppendTurn appends a chat turn. Turns with an unknown role are rejected.
func (s *Session) AppendTurn(role Role, text string) error {
	if !role.IsValid() {
		return fmt.Errorf("%w: chat role %q", ErrInvalidInput, role)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chat = append(s.chat, ChatTurn{Role: role, Text: text})
	return nil
}

// Chat returns a copy of the chat transcript, oldest first.
func (s *Session) Chat() []ChatTurn {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ChatTurn, len(s.chat))
	copy(out, s.chat)
	return out
}

// Transcript is a point-in-time export of a session.
type Transcript struct {
	SessionID string       `json:"session_id" yaml:"session_id"`
	CreatedAt time.Time    `json:"created_at" yaml:"created_at"`
	Trace     []TraceEntry `json:"trace" yaml:"trace"`
	Chat      []ChatTurn   `json:"chat" yaml:"chat"`
}

// Snapshot exports the session. Trace is in append order.
func (s *Session) Snapshot() Transcript {
	return Transcript{
		SessionID: s.ID,
		CreatedAt: s.CreatedAt,
		Trace:     s.Trace(),
		Chat:      s.Chat(),
	}
}
