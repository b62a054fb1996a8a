package web

import "errors"

var (
	// ErrMissingPool is returned when no dispatcher pool is provided.
	ErrMissingPool = errors.New("web: dispatcher pool is required")

	// ErrMissingSessions is returned when no session store is provided.
	ErrMissingSessions = errors.New("web: session store is required")
)
