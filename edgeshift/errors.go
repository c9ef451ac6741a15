package edgeshift

import "errors"

var (
	// ErrInvalidHandle is raised when a caller references a tombstoned or
	// out-of-range handle.
	ErrInvalidHandle = errors.New("edgeshift: invalid vertex handle")

	// ErrAsymmetricNeighbors is raised when a neighbor link is found to be
	// one-directional: u lists v but v does not list u. The spec names this
	// as a concrete internal-invariant example.
	ErrAsymmetricNeighbors = errors.New("edgeshift: asymmetric neighbor list")

	// ErrNotAxisAligned is returned by safeShiftRange when the candidate
	// edge's endpoints share neither x nor y, so it has no well-defined
	// perpendicular shift direction.
	ErrNotAxisAligned = errors.New("edgeshift: edge is not axis-aligned")
)
