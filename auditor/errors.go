package auditor

import "errors"

var (
	// ErrNoElements is raised when a net has no two-pin elements to audit.
	ErrNoElements = errors.New("auditor: net has no two-pin elements")

	// ErrPinUnreached is raised when a declared pin is not connected to the
	// rest of the net's committed route.
	ErrPinUnreached = errors.New("auditor: pin not reached by net's route")
)
