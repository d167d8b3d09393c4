package sim

import "errors"

// Error taxonomy reported by the engine. Every error returned from a Run*
// function wraps exactly one of these, so callers can branch with errors.Is.
var (
	// ErrInvalidInput covers empty process lists, non-positive bursts, negative
	// arrivals, missing priorities, and missing or non-positive quanta.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedAlgorithm is returned by name-keyed dispatch for unknown algorithm names.
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")
)
