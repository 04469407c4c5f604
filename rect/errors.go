package rect

import "errors"

// Sentinel errors for rectangle construction and validation.
var (
	// ErrInvalidRectangle indicates x1 > x2 or y1 > y2 at the public boundary.
	ErrInvalidRectangle = errors.New("rect: invalid rectangle")
)
