package steiner

import "errors"

var (
	// ErrTooFewPins is raised when Compute is called with fewer than two
	// pins; a Steiner tree is undefined below that.
	ErrTooFewPins = errors.New("steiner: fewer than two pins")

	// ErrBadBranchCount is raised by Validate when a tree's Branch slice
	// is shorter than Deg or longer than MaxNodes(Deg).
	ErrBadBranchCount = errors.New("steiner: branch count outside [deg, maxNodes(deg)]")

	// ErrBadParentIndex is raised when a branch's Parent falls outside
	// the tree's own index range.
	ErrBadParentIndex = errors.New("steiner: parent index out of range")

	// ErrNoRoot is raised when no branch is its own parent.
	ErrNoRoot = errors.New("steiner: no self-parenting root node")

	// ErrMultipleRoots is raised when more than one branch is its own
	// parent.
	ErrMultipleRoots = errors.New("steiner: more than one root node")

	// ErrNotATree is raised when the oracle's parent links contain a
	// cycle or leave the structure disconnected.
	ErrNotATree = errors.New("steiner: branch links do not form a tree")
)
