package postprocess

import (
	"fmt"

	"github.com/katalvlaran/groute/congestion"
	"github.com/katalvlaran/groute/geom"
	"github.com/katalvlaran/groute/maze"
	"github.com/katalvlaran/groute/rerr"
	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/dijkstra"
)

// infWeight marks an edge impassable to dijkstra.WithInfEdgeThreshold: any
// edge still overflowed by some other net after rip-up, since a residual
// repair must not create a fresh violation elsewhere to fix this one.
const infWeight int64 = 1 << 30

func tileKey(c geom.Coordinate2D) string { return fmt.Sprintf("%d,%d", c.X, c.Y) }

// buildLocalGraph enumerates every tile in bounds as a vertex and every
// grid edge between adjacent tiles as a weighted edge: weight 1 normally,
// weight infWeight if the edge is overflowed and netID is not already using
// it (a net may always reuse its own edge for free, mirroring
// congestion.Map.Cost2D's self-use rule).
func buildLocalGraph(m *congestion.Map, bounds maze.Bounds, netID string) (*core.Graph, error) {
	g := core.NewGraph(core.WithDirected(false), core.WithWeighted())
	for x := bounds.MinX; x < bounds.MaxX; x++ {
		for y := bounds.MinY; y < bounds.MaxY; y++ {
			if err := g.AddVertex(tileKey(geom.Coordinate2D{X: x, Y: y})); err != nil {
				return nil, rerr.Wrap(rerr.CategoryInternalInvariant, "postprocess.buildLocalGraph", err)
			}
		}
	}
	addEdge := func(x, y int, dir geom.Direction) error {
		here := geom.Coordinate2D{X: x, Y: y}
		there, err := here.Step(dir)
		if err != nil || !bounds.Contains(there) {
			return nil
		}
		e, err := m.Edge(x, y, dir)
		if err != nil {
			return nil // boundary edge outside the congestion map's own grid
		}
		w := int64(1)
		if e.Overflow() > 0 && e.Uses(netID) == 0 {
			w = infWeight
		}
		if _, err := g.AddEdge(tileKey(here), tileKey(there), w); err != nil {
			return rerr.Wrap(rerr.CategoryInternalInvariant, "postprocess.buildLocalGraph", err)
		}
		return nil
	}
	for x := bounds.MinX; x < bounds.MaxX; x++ {
		for y := bounds.MinY; y < bounds.MaxY; y++ {
			if err := addEdge(x, y, geom.East); err != nil {
				return nil, err
			}
			if err := addEdge(x, y, geom.North); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

// repairExact rips up old, searches the window's local graph with an exact
// dijkstra pass treating overflowed edges as impassable, and commits the
// result; on any failure (unreachable sink, graph error) old is re-inserted
// unchanged so congestion never degrades across a failed attempt, mirroring
// maze.Reroute's discipline.
func repairExact(m *congestion.Map, netID string, old []geom.Coordinate2D, bounds maze.Bounds) (newPath []geom.Coordinate2D, repaired bool, err error) {
	if len(old) == 0 {
		return old, false, nil
	}
	src, sink := old[0], old[len(old)-1]
	if !bounds.Contains(src) || !bounds.Contains(sink) {
		return old, false, nil
	}

	if err := m.RemoveNet(old, netID); err != nil {
		return old, false, err
	}

	g, err := buildLocalGraph(m, bounds, netID)
	if err != nil {
		_ = m.InsertNet(old, netID)
		return old, false, err
	}

	dist, prev, derr := dijkstra.Dijkstra(g,
		dijkstra.Source(tileKey(src)),
		dijkstra.WithReturnPath(),
		dijkstra.WithInfEdgeThreshold(infWeight))
	if derr != nil {
		_ = m.InsertNet(old, netID)
		return old, false, derr
	}

	d, ok := dist[tileKey(sink)]
	if !ok || d >= infWeight {
		if rerr2 := m.InsertNet(old, netID); rerr2 != nil {
			return old, false, rerr2
		}
		return old, false, nil
	}

	path, perr := tracePath(prev, tileKey(src), tileKey(sink))
	if perr != nil {
		_ = m.InsertNet(old, netID)
		return old, false, perr
	}

	if err := m.InsertNet(path, netID); err != nil {
		return old, false, err
	}
	return path, true, nil
}

func tracePath(prev map[string]string, src, sink string) ([]geom.Coordinate2D, error) {
	rev := []string{sink}
	cur := sink
	for cur != src {
		p, ok := prev[cur]
		if !ok {
			return nil, rerr.Wrap(rerr.CategoryInternalInvariant, "postprocess.tracePath", ErrNoPath)
		}
		rev = append(rev, p)
		cur = p
	}
	path := make([]geom.Coordinate2D, len(rev))
	for i, k := range rev {
		var x, y int
		if _, err := fmt.Sscanf(k, "%d,%d", &x, &y); err != nil {
			return nil, rerr.Wrap(rerr.CategoryInternalInvariant, "postprocess.tracePath", err)
		}
		path[len(rev)-1-i] = geom.Coordinate2D{X: x, Y: y}
	}
	return path, nil
}
