package usecase

import "errors"

// Services wrap these with %w; the HTTP layer maps them onto status codes.
var (
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound is reserved for lookups of a single named resource. Missing
	// rosters, scores or matchups are not errors and fall back to neutral values.
	ErrNotFound              = errors.New("resource not found")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
