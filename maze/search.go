package maze

import (
	"container/heap"

	"github.com/katalvlaran/groute/congestion"
	"github.com/katalvlaran/groute/geom"
	"github.com/katalvlaran/groute/rerr"
)

// Search performs a bounded multi-source/multi-sink best-first search from
// sources to the nearest sink, confined to bounds, scoring each edge via
// m.Cost2D for netID. It returns the path from whichever source was
// reached cheapest to whichever sink closed the search first, or found=false
// if no sink is reachable without leaving bounds.
//
// h is Manhattan distance to the nearest sink; the per-edge cache the spec
// calls for is simply this call's own gScore map, since it is rebuilt fresh
// every invocation and the congestion map is never mutated mid-search.
func Search(m *congestion.Map, bounds Bounds, sources, sinks []geom.Coordinate2D, netID string) (path []geom.Coordinate2D, found bool, err error) {
	if len(sources) == 0 {
		return nil, false, rerr.Wrap(rerr.CategoryInternalInvariant, "maze.Search", ErrNoSources)
	}
	if len(sinks) == 0 {
		return nil, false, rerr.Wrap(rerr.CategoryInternalInvariant, "maze.Search", ErrNoSinks)
	}

	sinkSet := make(map[geom.Coordinate2D]bool, len(sinks))
	for _, s := range sinks {
		sinkSet[s] = true
	}
	heuristic := func(c geom.Coordinate2D) float64 {
		best := -1
		for _, s := range sinks {
			d := geom.ManhattanDist2D(c, s)
			if best == -1 || d < best {
				best = d
			}
		}
		return float64(best)
	}

	gScore := make(map[geom.Coordinate2D]float64, 64)
	cameFrom := make(map[geom.Coordinate2D]geom.Coordinate2D)

	pq := make(itemPQ, 0, len(sources))
	heap.Init(&pq)
	for _, s := range sources {
		if !bounds.Contains(s) {
			continue
		}
		gScore[s] = 0
		heap.Push(&pq, &item{coord: s, g: 0, priority: heuristic(s)})
	}

	var goal geom.Coordinate2D
	closed := make(map[geom.Coordinate2D]bool)

	for pq.Len() > 0 {
		cur := heap.Pop(&pq).(*item)
		if closed[cur.coord] {
			continue
		}
		closed[cur.coord] = true

		if sinkSet[cur.coord] {
			goal = cur.coord
			found = true
			break
		}

		for _, dir := range []geom.Direction{geom.East, geom.West, geom.North, geom.South} {
			next, serr := cur.coord.Step(dir)
			if serr != nil || !bounds.Contains(next) || closed[next] {
				continue
			}
			cost, dist, cerr := m.Cost2D(cur.coord.X, cur.coord.Y, dir, netID)
			if cerr != nil {
				continue // boundary edge outside the congestion map's own grid
			}
			tentative := cur.g + cost + dist
			if best, ok := gScore[next]; ok && best <= tentative {
				continue
			}
			gScore[next] = tentative
			cameFrom[next] = cur.coord
			heap.Push(&pq, &item{coord: next, g: tentative, priority: tentative + heuristic(next)})
		}
	}

	if !found {
		return nil, false, nil
	}

	rev := []geom.Coordinate2D{goal}
	for {
		prev, ok := cameFrom[rev[len(rev)-1]]
		if !ok {
			break
		}
		rev = append(rev, prev)
	}
	path = make([]geom.Coordinate2D, len(rev))
	for i, c := range rev {
		path[len(rev)-1-i] = c
	}
	return path, true, nil
}

// Reroute implements the rip-up/search/commit-or-rollback discipline for a
// single two-pin element: oldPath is removed from m before the search
// starts; on success the new path is committed; on failure oldPath is
// re-inserted unchanged so overall congestion never degrades across a
// failed attempt.
func Reroute(m *congestion.Map, netID string, oldPath []geom.Coordinate2D, sources, sinks []geom.Coordinate2D, bounds Bounds) (newPath []geom.Coordinate2D, found bool, err error) {
	if len(oldPath) > 0 {
		if err := m.RemoveNet(oldPath, netID); err != nil {
			return nil, false, err
		}
	}

	path, found, err := Search(m, bounds, sources, sinks, netID)
	if err != nil {
		if len(oldPath) > 0 {
			_ = m.InsertNet(oldPath, netID)
		}
		return nil, false, err
	}
	if !found {
		if len(oldPath) > 0 {
			if rerr2 := m.InsertNet(oldPath, netID); rerr2 != nil {
				return nil, false, rerr2
			}
		}
		return oldPath, false, nil
	}

	if err := m.InsertNet(path, netID); err != nil {
		return nil, false, err
	}
	return path, true, nil
}
