package router

import "errors"

var (
	// ErrNoNets is raised when Run is given zero nets.
	ErrNoNets = errors.New("router: no nets to route")

	// ErrNilOracle is raised when Run is given a nil RSMT oracle.
	ErrNilOracle = errors.New("router: nil RSMT oracle")

	// ErrNilRegion is raised when Run is given a nil routing region.
	ErrNilRegion = errors.New("router: nil routing region")
)
