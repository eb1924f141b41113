package domain

import "errors"

// Sentinel errors used across all layers.
var (
	// ErrEmptyQuery is returned when the normalized input is blank.
	// Callers prompt for input instead of attempting a lookup.
	ErrEmptyQuery = errors.New("empty query")

	// ErrNotFound is returned when neither the remote API nor the
	// fallback catalog can supply a result.
	ErrNotFound = errors.New("not found")
)
