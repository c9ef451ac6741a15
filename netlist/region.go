package netlist

import (
	"fmt"

	"github.com/katalvlaran/groute/geom"
	"github.com/katalvlaran/groute/rerr"
)

// CapacityFunc3D returns the per-layer capacity of the edge between tile
// (x1,y1) and its unit neighbor (x2,y2) on the given layer. Called only
// with grid-adjacent coordinate pairs.
type CapacityFunc3D func(layer, x1, y1, x2, y2 int) int

// Region is the routing grid: dimensions (X,Y,L) plus the per-layer
// capacity function supplied by the caller. WireSpacing halves the summed
// 2-D capacity, mirroring a build-time technology flag in the original
// router.
type Region struct {
	X, Y, L     int
	Cap         CapacityFunc3D
	WireSpacing bool
}

// NewRegion validates the grid dimensions and that a capacity function is
// supplied, raising a rerr.CategoryConfig error on the first violation. It
// does not sample any edge's capacity (that cost is paid lazily, the first
// time congestion.NewMap's CapacityFunc asks for each edge); it only guards
// against a non-positive grid shape and a nil capacity function.
func NewRegion(x, y, l int, cap CapacityFunc3D, wireSpacing bool) (*Region, error) {
	if x <= 0 || y <= 0 || l <= 0 {
		return nil, rerr.New(rerr.CategoryConfig, "netlist.NewRegion",
			fmt.Sprintf("non-positive grid dimensions (%d,%d,%d)", x, y, l))
	}
	if cap == nil {
		return nil, rerr.New(rerr.CategoryConfig, "netlist.NewRegion", "nil capacity function")
	}
	return &Region{X: x, Y: y, L: l, Cap: cap, WireSpacing: wireSpacing}, nil
}

// InBounds reports whether (x,y) lies within [0,X)x[0,Y).
func (r *Region) InBounds(c geom.Coordinate2D) bool {
	return c.X >= 0 && c.X < r.X && c.Y >= 0 && c.Y < r.Y
}

// Capacity2D sums per-layer capacity for the edge at (x,y,dir) across all L
// layers, halving the result when WireSpacing is set. It validates
// non-negativity of every sampled layer and raises a config error on the
// first negative value it observes.
func (r *Region) Capacity2D(x, y int, dir geom.Direction) (int, error) {
	here := geom.Coordinate2D{X: x, Y: y}
	there, err := here.Step(dir)
	if err != nil {
		return 0, rerr.Wrap(rerr.CategoryInternalInvariant, "netlist.Capacity2D", err)
	}
	if !r.InBounds(here) || !r.InBounds(there) {
		return 0, rerr.Wrap(rerr.CategoryConfig, "netlist.Capacity2D", ErrPinOutOfRange)
	}
	total := 0
	for layer := 0; layer < r.L; layer++ {
		c := r.Cap(layer, here.X, here.Y, there.X, there.Y)
		if c < 0 {
			return 0, rerr.Wrap(rerr.CategoryConfig, "netlist.Capacity2D", ErrNegativeCapacity)
		}
		total += c
	}
	if r.WireSpacing {
		total /= 2
	}
	return total, nil
}

// ValidateNet checks a net's pin count and bounds, raising a config error
// before stage 1 runs.
func (r *Region) ValidateNet(n Net) error {
	if n.Degree() < 2 {
		return rerr.Wrap(rerr.CategoryConfig, "netlist.ValidateNet", ErrDegenerateNet)
	}
	for _, p := range n.Pins {
		if !r.InBounds(p) {
			return rerr.Wrap(rerr.CategoryConfig, "netlist.ValidateNet", ErrPinOutOfRange)
		}
	}
	return nil
}

// ValidatePath checks a two-pin element's path invariant: it starts and
// ends at the declared pins, and every step is a unit move on exactly one
// axis.
func ValidatePath(e TwoPinElement2D) error {
	if len(e.Path) == 0 {
		return rerr.Wrap(rerr.CategoryInternalInvariant, "netlist.ValidatePath", ErrBadPath)
	}
	if e.Path[0] != e.Pin1 || e.Path[len(e.Path)-1] != e.Pin2 {
		return rerr.Wrap(rerr.CategoryInternalInvariant, "netlist.ValidatePath", ErrBadPath)
	}
	for i := 0; i+1 < len(e.Path); i++ {
		if _, err := geom.DirectionBetween(e.Path[i], e.Path[i+1]); err != nil {
			return rerr.Wrap(rerr.CategoryInternalInvariant, "netlist.ValidatePath", ErrBadPath)
		}
	}
	return nil
}
