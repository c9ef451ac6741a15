package congestion

import "errors"

var (
	// ErrNegativeUse marks used_net dropping below zero: an internal
	// invariant violation, never a user-facing routing failure.
	ErrNegativeUse = errors.New("congestion: used_net count went negative")

	// ErrNetNotPresent is returned by removeNet when the net is not
	// recorded as using the given edge.
	ErrNetNotPresent = errors.New("congestion: net not present on edge")
)
