package klat

import "errors"

var (
	// ErrEmptyTree is raised when Assign is given zero two-pin elements for
	// a net: layer assignment has nothing to lift into 3-D.
	ErrEmptyTree = errors.New("klat: net has no two-pin elements")

	// ErrDisconnectedTree is raised when the two-pin elements of a net do
	// not form a single connected tree, which should never happen for a
	// committed stage-2 route (testable property #3) and therefore
	// indicates an internal invariant violation rather than a routing
	// failure.
	ErrDisconnectedTree = errors.New("klat: two-pin elements do not form one connected tree")
)
