// Package klat implements layer assignment: given a net's final 2-D tree
// and per-layer capacities, it chooses a layer for every tree edge and
// inserts a via wherever two adjacent edges land on different layers, via
// a tree dynamic program scored against a running 3-D occupation map.
package klat

import (
	"github.com/katalvlaran/groute/geom"
	"github.com/katalvlaran/groute/gridplane"
	"github.com/katalvlaran/groute/rerr"
)

// Edge3D is one in-plane or via slot's capacity/usage state in the 3-D
// occupation map, the layer-assignment analogue of congestion.Edge2D.
type Edge3D struct {
	MaxCap  int
	CurCap  int
	UsedNet map[string]int
}

// Map3D is `cur_map_3d`: the running record of which nets occupy which
// layer at which tile, committed to incrementally as nets are assigned so
// later nets in sort_net_order see earlier nets' occupation.
type Map3D struct {
	plane *gridplane.EdgePlane3D[Edge3D]
}

// LayerCapacityFunc supplies an in-plane edge's capacity on a given layer.
type LayerCapacityFunc func(layer, x, y int, dir geom.Direction) int

// ViaCapacityFunc supplies the via capacity between layer z and z+1 at (x,y).
type ViaCapacityFunc func(x, y, z int) int

// NewMap3D allocates an X by Y by L occupation map.
func NewMap3D(x, y, l int, layerCap LayerCapacityFunc, viaCap ViaCapacityFunc) (*Map3D, error) {
	plane, err := gridplane.NewEdgePlane3D[Edge3D](x, y, l)
	if err != nil {
		return nil, rerr.Wrap(rerr.CategoryConfig, "klat.NewMap3D", err)
	}
	for z := 0; z < l; z++ {
		layer, err := plane.Layer(z)
		if err != nil {
			return nil, err
		}
		zz := z
		layer.ForEachHorizontal(func(ex, ey int, e *Edge3D) {
			e.MaxCap = layerCap(zz, ex, ey, geom.East)
			e.UsedNet = make(map[string]int)
		})
		layer.ForEachVertical(func(ex, ey int, e *Edge3D) {
			e.MaxCap = layerCap(zz, ex, ey, geom.North)
			e.UsedNet = make(map[string]int)
		})
	}
	plane.ForEachVia(func(ex, ey, ez int, e *Edge3D) {
		e.MaxCap = viaCap(ex, ey, ez)
		e.UsedNet = make(map[string]int)
	})
	return &Map3D{plane: plane}, nil
}

// ViaWouldOverflow reports whether inserting one more via for netID at
// (x,y) between layers z and z+1 would push that via's usage past capacity;
// a net already using the via never overflows it further.
func (m *Map3D) ViaWouldOverflow(x, y, z int, netID string) (bool, error) {
	e, err := m.plane.Via(x, y, z)
	if err != nil {
		return false, err
	}
	if e.UsedNet[netID] > 0 {
		return false, nil
	}
	return e.CurCap+1 > e.MaxCap, nil
}

// ViasOverflowing counts, over the stack of vias needed to carry a net
// between layer lo and layer hi (lo < hi) at tile (x,y), how many would be
// pushed into overflow.
func (m *Map3D) ViasOverflowing(x, y, lo, hi int, netID string) (int, error) {
	if lo == hi {
		return 0, nil
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	count := 0
	for z := lo; z < hi; z++ {
		of, err := m.ViaWouldOverflow(x, y, z, netID)
		if err != nil {
			return 0, err
		}
		if of {
			count++
		}
	}
	return count, nil
}

// CommitVia inserts netID's usage on every via between layers lo and hi at
// (x,y).
func (m *Map3D) CommitVia(x, y, lo, hi int, netID string) error {
	if lo > hi {
		lo, hi = hi, lo
	}
	for z := lo; z < hi; z++ {
		e, err := m.plane.Via(x, y, z)
		if err != nil {
			return err
		}
		if e.UsedNet[netID] == 0 {
			e.CurCap++
		}
		e.UsedNet[netID]++
	}
	return nil
}

// CommitEdge inserts netID's usage on the in-plane edge (x,y,dir) on layer z.
func (m *Map3D) CommitEdge(x, y, z int, dir geom.Direction, netID string) error {
	e, err := m.plane.Edge(x, y, z, dir)
	if err != nil {
		return err
	}
	if e.UsedNet[netID] == 0 {
		e.CurCap++
	}
	e.UsedNet[netID]++
	return nil
}

// EdgeCost reports the marginal congestion cost of routing netID across the
// in-plane edge (x,y,dir) on layer z, mirroring congestion.Map.Cost2D's
// FASTROUTE_COST shape (cur_cap - max_cap + 1, clipped at 0) so KLAT's DP
// prefers layers with spare capacity without introducing a second cost
// vocabulary. A net already on the edge pays nothing.
func (m *Map3D) EdgeCost(x, y, z int, dir geom.Direction, netID string) (float64, error) {
	e, err := m.plane.Edge(x, y, z, dir)
	if err != nil {
		return 0, err
	}
	if e.UsedNet[netID] > 0 {
		return 0, nil
	}
	cost := float64(e.CurCap-e.MaxCap) + 1
	if cost < 0 {
		cost = 0
	}
	return cost, nil
}

// SizeX, SizeY, and SizeL report the volume's dimensions.
func (m *Map3D) SizeX() int { return m.plane.SizeX() }
func (m *Map3D) SizeY() int { return m.plane.SizeY() }
func (m *Map3D) SizeL() int { return m.plane.SizeL() }
