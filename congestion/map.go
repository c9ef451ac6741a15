package congestion

import (
	"fmt"

	"github.com/katalvlaran/groute/geom"
	"github.com/katalvlaran/groute/gridplane"
	"github.com/katalvlaran/groute/rerr"
)

// CapacityFunc supplies an edge's max_cap at construction time, e.g. from
// the sum of per-layer capacities for that (x,y,dir), halved under a
// wire-spacing technology flag. The map calls it exactly once per edge.
type CapacityFunc func(x, y int, dir geom.Direction) int

// Map is the per-edge capacity/usage/history congestion map described by
// the spec's CongestionEdge2D: edge(x,y,dir), insertNet, removeNet,
// cost2D, preEvaluate, and maxOverflow.
type Map struct {
	plane *gridplane.EdgePlane2D[Edge2D]
	cost  CostFunc
}

// NewMap allocates an X by Y congestion map, setting each edge's MaxCap via
// capFn and defaulting the active cost function to FastRouteCost (stage 1's
// variant; the stage-2 driver switches it to HistoryCost via SetCostFunc).
func NewMap(x, y int, capFn CapacityFunc) (*Map, error) {
	plane, err := gridplane.NewEdgePlane2D[Edge2D](x, y)
	if err != nil {
		return nil, rerr.Wrap(rerr.CategoryConfig, "congestion.NewMap", err)
	}
	m := &Map{plane: plane, cost: FastRouteCost{}}
	plane.ForEachHorizontal(func(ex, ey int, e *Edge2D) {
		e.MaxCap = capFn(ex, ey, geom.East)
		e.UsedNet = make(map[string]int)
	})
	plane.ForEachVertical(func(ex, ey int, e *Edge2D) {
		e.MaxCap = capFn(ex, ey, geom.North)
		e.UsedNet = make(map[string]int)
	})
	return m, nil
}

// SetCostFunc swaps the active cost function, e.g. from FastRouteCost to a
// HistoryCost with the current iteration's K as stage 2 begins.
func (m *Map) SetCostFunc(cf CostFunc) { m.cost = cf }

// Edge returns the congestion state for the edge at (x,y,dir).
func (m *Map) Edge(x, y int, dir geom.Direction) (*Edge2D, error) {
	e, err := m.plane.Edge(x, y, dir)
	if err != nil {
		return nil, fmt.Errorf("congestion.Edge: %w", err)
	}
	if e.UsedNet == nil {
		e.UsedNet = make(map[string]int)
	}
	return e, nil
}

// InsertNet walks path edge by edge, incrementing used_net[netID] on each;
// the first time an edge gains this net, cur_cap also increments and the
// edge's cached cost is invalidated. path must be a sequence of grid-adjacent
// coordinates (the committed L-shape or maze path of one two-pin element).
func (m *Map) InsertNet(path []geom.Coordinate2D, netID string) error {
	for i := 0; i+1 < len(path); i++ {
		dir, err := geom.DirectionBetween(path[i], path[i+1])
		if err != nil {
			return rerr.Wrap(rerr.CategoryInternalInvariant, "congestion.InsertNet", err)
		}
		e, err := m.Edge(path[i].X, path[i].Y, dir)
		if err != nil {
			return rerr.Wrap(rerr.CategoryInternalInvariant, "congestion.InsertNet", err)
		}
		before := e.UsedNet[netID]
		e.UsedNet[netID] = before + 1
		if before == 0 {
			e.CurCap++
		}
		e.preSet = false
	}
	return nil
}

// RemoveNet is the exact inverse of InsertNet: it decrements used_net[netID]
// on each edge of path, deleting the entry and decrementing cur_cap the
// instant the count reaches zero.
func (m *Map) RemoveNet(path []geom.Coordinate2D, netID string) error {
	for i := 0; i+1 < len(path); i++ {
		dir, err := geom.DirectionBetween(path[i], path[i+1])
		if err != nil {
			return rerr.Wrap(rerr.CategoryInternalInvariant, "congestion.RemoveNet", err)
		}
		e, err := m.Edge(path[i].X, path[i].Y, dir)
		if err != nil {
			return rerr.Wrap(rerr.CategoryInternalInvariant, "congestion.RemoveNet", err)
		}
		count, ok := e.UsedNet[netID]
		if !ok || count <= 0 {
			return rerr.Wrap(rerr.CategoryInternalInvariant, "congestion.RemoveNet", ErrNetNotPresent)
		}
		count--
		if count == 0 {
			delete(e.UsedNet, netID)
			e.CurCap--
		} else {
			e.UsedNet[netID] = count
		}
		if e.CurCap < 0 {
			return rerr.Wrap(rerr.CategoryInternalInvariant, "congestion.RemoveNet", ErrNegativeUse)
		}
		e.preSet = false
	}
	return nil
}

// Cost2D returns the routing cost and unit distance of crossing edge
// (x,y,dir) for netID. A net that already uses the edge pays nothing, since
// it does not compete with itself for capacity.
func (m *Map) Cost2D(x, y int, dir geom.Direction, netID string) (cost float64, unitDistance float64, err error) {
	e, err := m.Edge(x, y, dir)
	if err != nil {
		return 0, 0, fmt.Errorf("congestion.Cost2D: %w", err)
	}
	if e.UsedNet[netID] > 0 {
		return 0, 1, nil
	}
	cost, unitDistance = m.cost.Evaluate(e)
	return cost, unitDistance, nil
}

// PreEvaluate computes and caches the edge's cost under the active cost
// function without reference to any particular net, giving a net-agnostic
// cost estimate. The cached value is reused until InsertNet or RemoveNet
// touches the edge.
func (m *Map) PreEvaluate(x, y int, dir geom.Direction) (float64, error) {
	e, err := m.Edge(x, y, dir)
	if err != nil {
		return 0, fmt.Errorf("congestion.PreEvaluate: %w", err)
	}
	if !e.preSet {
		cost, _ := m.cost.Evaluate(e)
		e.preCost = cost
		e.preSet = true
	}
	return e.preCost, nil
}

// PreEvaluateAll runs PreEvaluate over every edge in the map, refreshing the
// cached cost for the stage about to run.
func (m *Map) PreEvaluateAll() {
	m.plane.ForEachHorizontal(func(x, y int, e *Edge2D) {
		cost, _ := m.cost.Evaluate(e)
		e.preCost = cost
		e.preSet = true
	})
	m.plane.ForEachVertical(func(x, y int, e *Edge2D) {
		cost, _ := m.cost.Evaluate(e)
		e.preCost = cost
		e.preSet = true
	})
}

// MaxOverflow returns the sum over every edge of max(0, cur_cap - max_cap)
// and, as a side effect, increments History on every overflowed edge. It is
// called at the end of every stage-1 pass and every stage-2 iteration.
func (m *Map) MaxOverflow() float64 {
	var total float64
	bump := func(_, _ int, e *Edge2D) {
		of := e.Overflow()
		total += of
		if of > 0 {
			e.History++
		}
	}
	m.plane.ForEachHorizontal(bump)
	m.plane.ForEachVertical(bump)
	return total
}

// SizeX and SizeY report the map's tile-grid dimensions.
func (m *Map) SizeX() int { return m.plane.SizeX() }
func (m *Map) SizeY() int { return m.plane.SizeY() }

// ForEachHorizontal calls fn once per canonical EAST edge.
func (m *Map) ForEachHorizontal(fn func(x, y int, e *Edge2D)) { m.plane.ForEachHorizontal(fn) }

// ForEachVertical calls fn once per canonical NORTH edge.
func (m *Map) ForEachVertical(fn func(x, y int, e *Edge2D)) { m.plane.ForEachVertical(fn) }
