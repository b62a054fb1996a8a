package mcp

import (
	"github.com/onboardai/onboard/internal/core/domain"
	"github.com/onboardai/onboard/internal/core/ports/driving"
)

// Ports aggregates what the MCP server needs.
type Ports struct {
	// Pool hands out dispatchers per API key.
	Pool driving.DispatcherPool

	// Session collects the trace of every tool call made through this server.
	Session *domain.Session

	// APIKey is used for policy questions.
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
