// Package steiner defines the RSMT (rectilinear Steiner minimum tree)
// oracle boundary: the spec treats the tree-construction primitive as an
// external, side-effect-free collaborator, specified only through its
// interface. This package holds that interface, the tree it returns, a
// validator for oracle output, and a default MST-based implementation
// grounded on prim_kruskal so the module is runnable without a real
// Steiner-tree solver plugged in.
package steiner

import "github.com/katalvlaran/groute/geom"

// Branch is one node of a SteinerTree: its coordinate and the index of its
// parent in the owning tree's Branch slice. The root's Parent equals its
// own index.
type Branch struct {
	Coordinate geom.Coordinate2D
	Parent     int
}

// Tree is the oracle's output: Deg pins plus zero or more Steiner points,
// stored as one flat Branch slice. Nodes [0,Deg) are the net's pins in the
// order the caller supplied them; nodes [Deg,len(Branch)) are Steiner
// points the oracle introduced. A tree with no Steiner points (e.g. an MST
// over the pins themselves) is a valid degenerate case.
type Tree struct {
	Deg    int
	Branch []Branch
}

// MaxNodes returns the largest Branch length a valid tree of this degree
// may have: deg pins plus at most deg-2 Steiner points.
func MaxNodes(deg int) int {
	if deg <= 2 {
		return deg
	}
	return 2*deg - 2
}

// Oracle maps a pin set to a SteinerTree. Implementations must be side-
// effect free: the spec treats the RSMT primitive as a read-only
// collaborator with no state shared with the routing engine.
type Oracle interface {
	Compute(pins []geom.Coordinate2D) (Tree, error)
}
