package tui

import "errors"

// ErrMissingPool is returned when the dispatcher pool is not provided.
var ErrMissingPool = errors.New("tui: dispatcher pool is required")

// ErrMissingSession is returned when no session is provided.
var ErrMissingSession = errors.New("tui: session is required")
