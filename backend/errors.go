package backend

import "errors"

// Sentinel errors returned by Backend implementations.
var (
	// ErrInvalidRectangle is returned by Insert when the rectangle fails
	// the closed-interval invariant (X1<=X2 and Y1<=Y2).
	ErrInvalidRectangle = errors.New("backend: invalid rectangle")

	// ErrCorruptState indicates an internal invariant of a backend's
	// storage was violated, e.g. an overlap survived decomposition. It
	// should never surface in practice; it exists to fail loudly instead
	// of silently returning wrong query results.
	ErrCorruptState = errors.New("backend: corrupt internal state")
)
