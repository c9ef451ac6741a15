package netlist

import "errors"

var (
	// ErrDegenerateNet is raised when a net has fewer than two pins.
	ErrDegenerateNet = errors.New("netlist: net has fewer than two pins")

	// ErrPinOutOfRange is raised when a pin falls outside [0,X)x[0,Y).
	ErrPinOutOfRange = errors.New("netlist: pin out of grid range")

	// ErrNegativeCapacity is raised when the capacity function returns a
	// negative value anywhere it is sampled during validation.
	ErrNegativeCapacity = errors.New("netlist: negative capacity")

	// ErrBadPath is raised by ValidatePath when a two-pin element's path
	// does not start/end at its declared pins or takes a non-unit step.
	ErrBadPath = errors.New("netlist: malformed two-pin path")
)
