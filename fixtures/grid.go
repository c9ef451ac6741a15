package fixtures

import (
	"fmt"

	"github.com/katalvlaran/groute/netlist"
)

const minGridDim = 1

// DefaultCapacity is the per-layer, per-edge capacity Grid uses when the
// caller passes a nil capacity function, mirroring builder.DefaultWeightFn's
// constant-fallback convention.
const DefaultCapacity = 2

// ConstantCapacity returns a CapacityFunc3D that yields value for every
// layer and edge. Panics if value is negative.
func ConstantCapacity(value int) netlist.CapacityFunc3D {
	if value < 0 {
		panic(fmt.Sprintf("fixtures: ConstantCapacity value must be >= 0, got %d", value))
	}

	return func(_, _, _, _, _ int) int { return value }
}

// Grid builds an x*y, l-layer rectangular routing region. capacity may be
// nil, in which case every edge gets DefaultCapacity on every layer.
//
// Mirrors builder.Grid's fail-fast validation: x, y, and l must each be at
// least 1.
func Grid(x, y, l int, capacity netlist.CapacityFunc3D) (*netlist.Region, error) {
	if x < minGridDim || y < minGridDim || l < minGridDim {
		return nil, fmt.Errorf("fixtures.Grid: x=%d, y=%d, l=%d (each must be >= %d): %w",
			x, y, l, minGridDim, ErrTooFewTiles)
	}
	if capacity == nil {
		capacity = ConstantCapacity(DefaultCapacity)
	}
	return netlist.NewRegion(x, y, l, capacity, false)
}
