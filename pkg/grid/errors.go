package grid

import "errors"

// Sentinel errors returned by the grid constructors. Callers match them with
// errors.Is; the returned errors wrap them with the offending sizes.
var (
	// ErrInvalidDimensions reports a width that does not divide the buffer.
	ErrInvalidDimensions = errors.New("grid: invalid dimensions")

	// ErrRagged reports rows or lines of differing length.
	ErrRagged = errors.New("grid: ragged rows")

	// ErrEmpty reports input without any cells.
	ErrEmpty = errors.New("grid: empty input")
)
