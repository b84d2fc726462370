package signpad

import "errors"

// Sentinel errors for pad creation and export.
var (
	// ErrInvalidDimensions is returned when a pad is created with a
	// non-positive width or height.
	ErrInvalidDimensions = errors.New("signpad: width and height must be positive")

	// ErrInvalidScale is returned when a display scale is not a positive
	// finite number.
	ErrInvalidScale = errors.New("signpad: display scale must be positive and finite")

	// ErrNilImage is returned when encoding a nil image.
	ErrNilImage = errors.New("signpad: nil image")
)
