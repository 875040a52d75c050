package gridpath

import "errors"

var (
	// ErrNonPositiveMaxRun indicates a strict search was asked for with MaxRun <= 0.
	ErrNonPositiveMaxRun = errors.New("gridpath: max run must be positive")
	// ErrNegativeCoordinate indicates a strict search was given a negative coordinate.
	ErrNegativeCoordinate = errors.New("gridpath: coordinates must be non-negative")
	// ErrBadSymbol indicates a path string contained a byte other than N, S, E or W.
	ErrBadSymbol = errors.New("gridpath: invalid direction symbol")
)
