// Package decompose flattens a steiner.Tree into the ordered list of
// netlist.TwoPinElement2D segments stage 1 pattern-routes independently.
package decompose

import (
	"fmt"

	"github.com/katalvlaran/groute/netlist"
	"github.com/katalvlaran/groute/rerr"
	"github.com/katalvlaran/groute/steiner"
)

// TwoPinElements walks every branch (i, branch[i].Parent) of t and emits one
// TwoPinElement2D per edge with distinct endpoints, owned by netID.
// Degenerate zero-length edges (a branch whose coordinate equals its
// parent's) are dropped; the root's self-edge is always degenerate and is
// always dropped. Returned elements have a nil Path: decompose only
// determines which pairs of coordinates need a path, not what it is.
func TwoPinElements(netID string, t steiner.Tree) ([]netlist.TwoPinElement2D, error) {
	if err := steiner.Validate(t); err != nil {
		return nil, fmt.Errorf("decompose.TwoPinElements: %w", err)
	}

	elems := make([]netlist.TwoPinElement2D, 0, len(t.Branch))
	for i, b := range t.Branch {
		if b.Parent == i {
			continue // root's self-edge
		}
		parent := t.Branch[b.Parent]
		if parent.Coordinate == b.Coordinate {
			continue // degenerate zero-length edge
		}
		elems = append(elems, netlist.TwoPinElement2D{
			NetID: netID,
			Pin1:  parent.Coordinate,
			Pin2:  b.Coordinate,
		})
	}
	if len(elems) == 0 {
		return nil, rerr.New(rerr.CategoryInternalInvariant, "decompose.TwoPinElements",
			"tree decomposed into zero non-degenerate segments")
	}
	return elems, nil
}
