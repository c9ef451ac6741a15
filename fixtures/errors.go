package fixtures

import "errors"

var (
	// ErrTooFewTiles is raised when Grid is asked for a non-positive
	// dimension.
	ErrTooFewTiles = errors.New("fixtures: grid dimensions must be positive")

	// ErrTooFewNets is raised when RandomNets is asked for a non-positive
	// net count.
	ErrTooFewNets = errors.New("fixtures: n must be positive")

	// ErrDegreeTooSmall is raised when RandomNets is asked for maxDeg < 2
	// (every net needs at least two pins).
	ErrDegreeTooSmall = errors.New("fixtures: maxDeg must be at least 2")
)
