package auditor

import (
	"fmt"

	"github.com/katalvlaran/groute/geom"
	"github.com/katalvlaran/groute/netlist"
	"github.com/katalvlaran/groute/rerr"
	"github.com/katalvlaran/lvlath/bfs"
	"github.com/katalvlaran/lvlath/core"
)

func tileKey(c geom.Coordinate2D) string { return fmt.Sprintf("%d,%d", c.X, c.Y) }

// CheckNet builds an unweighted core.Graph from every tile elems' paths
// touch, runs bfs.BFS from net.Pins[0], and verifies every other declared
// pin was reached, per testable property #3.
func CheckNet(net netlist.Net, elems []netlist.TwoPinElement2D) error {
	if len(elems) == 0 {
		return rerr.Wrap(rerr.CategoryInternalInvariant, "auditor.CheckNet", ErrNoElements)
	}

	g := core.NewGraph(core.WithDirected(false))
	seen := make(map[string]bool)
	addVertex := func(c geom.Coordinate2D) {
		k := tileKey(c)
		if !seen[k] {
			seen[k] = true
			_ = g.AddVertex(k)
		}
	}
	for _, e := range elems {
		for _, c := range e.Path {
			addVertex(c)
		}
		for i := 0; i+1 < len(e.Path); i++ {
			a, b := tileKey(e.Path[i]), tileKey(e.Path[i+1])
			if _, err := g.AddEdge(a, b, 0); err != nil {
				return rerr.Wrap(rerr.CategoryInternalInvariant, "auditor.CheckNet", err)
			}
		}
	}

	if len(net.Pins) == 0 {
		return rerr.Wrap(rerr.CategoryInternalInvariant, "auditor.CheckNet", ErrNoElements)
	}
	root := tileKey(net.Pins[0])
	if !g.HasVertex(root) {
		return rerr.Wrap(rerr.CategoryInternalInvariant, "auditor.CheckNet", ErrPinUnreached)
	}

	result, err := bfs.BFS(g, root)
	if err != nil {
		return rerr.Wrap(rerr.CategoryInternalInvariant, "auditor.CheckNet", err)
	}

	for _, p := range net.Pins {
		k := tileKey(p)
		if k == root {
			continue
		}
		if _, ok := result.Depth[k]; !ok {
			return rerr.Wrap(rerr.CategoryInternalInvariant, "auditor.CheckNet", ErrPinUnreached)
		}
	}
	return nil
}
