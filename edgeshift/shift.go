package edgeshift

import (
	"fmt"

	"github.com/katalvlaran/groute/congestion"
	"github.com/katalvlaran/groute/geom"
	"github.com/katalvlaran/groute/rerr"
	"github.com/katalvlaran/groute/steiner"
)

// Bounds gives the safe-range walk the grid's extent so an edge with no
// obstructing neighbor on one side is bounded by the grid rather than left
// unconstrained.
type Bounds struct {
	MaxX, MaxY int
}

// safeShiftRange computes [low,high] for the edge (a,b), which must share
// either an x or a y coordinate. horizontal reports which axis the edge
// runs along (true: same y, shift perpendicular along y).
//
// The walk inspects only a's and b's immediate other neighbors (see
// sideBound): a neighbor straight across the edge's axis (same x for a
// horizontal edge, same y for a vertical one) narrows the range to that
// neighbor's coordinate; with no such neighbor the side is unbounded. The
// result is clamped to [0, MaxY-1] or [0, MaxX-1].
func safeShiftRange(v *VertexFlute, a, b Handle, bounds Bounds) (low, high int, horizontal bool, err error) {
	ca, cerr := v.Coord(a)
	if cerr != nil {
		return 0, 0, false, cerr
	}
	cb, cerr := v.Coord(b)
	if cerr != nil {
		return 0, 0, false, cerr
	}

	switch {
	case ca.Y == cb.Y:
		horizontal = true
		lowA, highA := sideBound(v, a, b, true)
		lowB, highB := sideBound(v, b, a, true)
		low = maxInt(lowA, lowB)
		high = minInt(highA, highB)
		if low < 0 {
			low = 0
		}
		if high > bounds.MaxY-1 {
			high = bounds.MaxY - 1
		}
		return low, high, true, nil
	case ca.X == cb.X:
		horizontal = false
		lowA, highA := sideBound(v, a, b, false)
		lowB, highB := sideBound(v, b, a, false)
		low = maxInt(lowA, lowB)
		high = minInt(highA, highB)
		if low < 0 {
			low = 0
		}
		if high > bounds.MaxX-1 {
			high = bounds.MaxX - 1
		}
		return low, high, false, nil
	default:
		return 0, 0, false, ErrNotAxisAligned
	}
}

// sideBound inspects self's neighbors other than other, looking for a
// same-axis continuation to extend the range. A same-axis neighbor narrows
// that side to its own coordinate; a neighbor on the other axis is a branch
// that will simply re-route around the new position and imposes no bound.
// With no same-axis neighbor at all, this side is unbounded (the caller
// clamps to the grid).
func sideBound(v *VertexFlute, self, other Handle, horizontalEdge bool) (low, high int) {
	c, err := v.Coord(self)
	if err != nil {
		return unboundedLow, unboundedHigh
	}
	low, high = unboundedLow, unboundedHigh

	neighbors, _ := v.Neighbors(self)
	for _, n := range neighbors {
		if n == other {
			continue
		}
		nc, err := v.Coord(n)
		if err != nil {
			continue
		}
		if horizontalEdge && nc.X == c.X {
			if low == unboundedLow || nc.Y < low {
				low = nc.Y
			}
			if high == unboundedHigh || nc.Y > high {
				high = nc.Y
			}
		}
		if !horizontalEdge && nc.Y == c.Y {
			if low == unboundedLow || nc.X < low {
				low = nc.X
			}
			if high == unboundedHigh || nc.X > high {
				high = nc.X
			}
		}
	}
	return low, high
}

const (
	unboundedLow  = -1 << 30
	unboundedHigh = 1 << 30
)

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// segmentCost sums the congestion map's cost2D over the straight path
// between two grid-adjacent-or-colinear coordinates, returning both the
// total and the peak (max-edge) cost. a and b must share exactly one axis.
func segmentCost(m *congestion.Map, netID string, a, b geom.Coordinate2D) (total, peak float64, err error) {
	cur := a
	for cur != b {
		var dir geom.Direction
		switch {
		case cur.X < b.X:
			dir = geom.East
		case cur.X > b.X:
			dir = geom.West
		case cur.Y < b.Y:
			dir = geom.North
		case cur.Y > b.Y:
			dir = geom.South
		default:
			return total, peak, nil
		}
		cost, _, cerr := m.Cost2D(cur.X, cur.Y, dir, netID)
		if cerr != nil {
			return 0, 0, fmt.Errorf("edgeshift.segmentCost: %w", cerr)
		}
		total += cost
		if cost > peak {
			peak = cost
		}
		next, serr := cur.Step(dir)
		if serr != nil {
			return 0, 0, rerr.Wrap(rerr.CategoryInternalInvariant, "edgeshift.segmentCost", serr)
		}
		cur = next
	}
	return total, peak, nil
}

// Pass runs one edge-shifting pass over the tree built from t: it
// constructs a VertexFlute, merges coincident vertices, walks every edge
// between two Steiner points of degree <= 3, shifts the ones with negative
// delta cost, compacts, and re-emits a steiner.Tree (pins first, then
// Steiner points in DFS order from pin 0).
//
// m is consulted read-only for cost, never mutated: edge shifting happens
// before the chosen path is committed to the congestion map.
func Pass(t steiner.Tree, m *congestion.Map, netID string, bounds Bounds) (steiner.Tree, error) {
	v, err := NewFromTree(t)
	if err != nil {
		return steiner.Tree{}, err
	}
	if err := v.MergeCoincident(); err != nil {
		return steiner.Tree{}, err
	}

	visited := make(map[Handle]bool)
	var walk func(h, parent Handle) error
	walk = func(h, parent Handle) error {
		visited[h] = true
		neighbors, err := v.Neighbors(h)
		if err != nil {
			return err
		}
		for _, n := range neighbors {
			if n == parent || visited[n] {
				continue
			}
			if err := tryShiftEdge(v, h, n, m, netID, bounds); err != nil {
				return err
			}
			if err := walk(n, h); err != nil {
				return err
			}
		}
		return nil
	}
	if len(v.arena) > 0 {
		if err := walk(0, InvalidHandle); err != nil {
			return steiner.Tree{}, err
		}
	}

	v.Compact()
	if err := v.CheckSymmetry(); err != nil {
		return steiner.Tree{}, err
	}
	return emit(v)
}

func tryShiftEdge(v *VertexFlute, a, b Handle, m *congestion.Map, netID string, bounds Bounds) error {
	ka, err := v.Kind(a)
	if err != nil {
		return err
	}
	kb, err := v.Kind(b)
	if err != nil {
		return err
	}
	if ka != SteinerPoint || kb != SteinerPoint {
		return nil
	}
	da, _ := v.Degree(a)
	db, _ := v.Degree(b)
	if da > 3 || db > 3 {
		return nil
	}

	low, high, horizontal, err := safeShiftRange(v, a, b, bounds)
	if err != nil {
		if err == ErrNotAxisAligned {
			return nil
		}
		return err
	}
	ca, _ := v.Coord(a)
	cb, _ := v.Coord(b)

	_, currentPeak, err := segmentCost(m, netID, ca, cb)
	if err != nil {
		return err
	}
	bestDelta := 0.0
	bestP := -1
	for p := low; p <= high; p++ {
		var pa, pb geom.Coordinate2D
		if horizontal {
			if p == ca.Y {
				continue
			}
			pa, pb = geom.Coordinate2D{X: ca.X, Y: p}, geom.Coordinate2D{X: cb.X, Y: p}
		} else {
			if p == ca.X {
				continue
			}
			pa, pb = geom.Coordinate2D{X: p, Y: ca.Y}, geom.Coordinate2D{X: p, Y: cb.Y}
		}
		_, newPeak, err := segmentCost(m, netID, pa, pb)
		if err != nil {
			return err
		}
		delta := -currentPeak + newPeak
		if delta < bestDelta {
			bestDelta = delta
			bestP = p
		}
	}
	if bestP == -1 {
		return nil
	}

	if horizontal {
		v.arena[a].coord = geom.Coordinate2D{X: ca.X, Y: bestP}
		v.arena[b].coord = geom.Coordinate2D{X: cb.X, Y: bestP}
	} else {
		v.arena[a].coord = geom.Coordinate2D{X: bestP, Y: ca.Y}
		v.arena[b].coord = geom.Coordinate2D{X: bestP, Y: cb.Y}
	}
	return v.MergeCoincident()
}

// emit walks v in DFS order from handle 0 and renumbers branches densely:
// pins first, in arena order, then Steiner points in DFS order.
func emit(v *VertexFlute) (steiner.Tree, error) {
	order := make([]Handle, 0, len(v.arena))
	visited := make(map[Handle]bool)
	var dfs func(h, parent Handle) error
	parentOf := make(map[Handle]Handle)
	dfs = func(h, parent Handle) error {
		visited[h] = true
		order = append(order, h)
		parentOf[h] = parent
		neighbors, err := v.Neighbors(h)
		if err != nil {
			return err
		}
		for _, n := range neighbors {
			if visited[n] {
				continue
			}
			if err := dfs(n, h); err != nil {
				return err
			}
		}
		return nil
	}
	if len(v.arena) > 0 {
		if err := dfs(0, InvalidHandle); err != nil {
			return steiner.Tree{}, err
		}
	}
	if len(order) != len(v.arena) {
		return steiner.Tree{}, rerr.New(rerr.CategoryInternalInvariant, "edgeshift.emit",
			"DFS did not reach every surviving vertex")
	}
	ranked := make([]Handle, 0, len(order))
	for i := range v.arena {
		if v.arena[i].kind == Pin {
			ranked = append(ranked, Handle(i))
		}
	}
	for _, h := range order {
		if v.arena[h].kind != Pin {
			ranked = append(ranked, h)
		}
	}
	order = ranked

	indexOf := make(map[Handle]int, len(order))
	for i, h := range order {
		indexOf[h] = i
	}

	deg := 0
	for _, h := range order {
		if v.arena[h].kind == Pin {
			deg++
		}
	}

	branch := make([]steiner.Branch, len(order))
	for i, h := range order {
		parentHandle := parentOf[h]
		parentIdx := i
		if parentHandle != InvalidHandle {
			parentIdx = indexOf[parentHandle]
		}
		branch[i] = steiner.Branch{Coordinate: v.arena[h].coord, Parent: parentIdx}
	}
	return steiner.Tree{Deg: deg, Branch: branch}, nil
}
