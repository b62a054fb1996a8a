// Package tui provides an interactive terminal user interface for onboarding.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/onboardai/onboard/internal/core/domain"
	"github.com/onboardai/onboard/internal/core/ports/driving"
)

// Ports aggregates what the TUI needs.
type Ports struct {
	// Pool hands out dispatchers per API key.
	Pool driving.DispatcherPool

	// Session holds the trace log and chat transcript for this terminal.
	Session *domain.Session

	// APIKey pre-fills the masked key input.
	APIKey string
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Pool == nil {
		return ErrMissingPool
	}
	if p.Session == nil {
		return ErrMissingSession
	}
	return nil
}
