// Package mcp provides an MCP (Model Context Protocol) server adapter.
// It lets AI assistants run onboarding and ask HR policy questions.
package mcp

import "errors"

var (
	// ErrMissingPool is returned when the dispatcher pool is not provided.
	ErrMissingPool = errors.New("mcp: dispatcher pool is required")

	// ErrMissingSession is returned when the session is not provided.
	ErrMissingSession = errors.New("mcp: session is required")
)
