package maze

import "errors"

var (
	// ErrNoSources is returned when Reroute is called with an empty
	// source set; multi-source search needs at least one starting tile.
	ErrNoSources = errors.New("maze: no source tiles")

	// ErrNoSinks is returned when Reroute is called with an empty sink
	// set.
	ErrNoSinks = errors.New("maze: no sink tiles")
)
