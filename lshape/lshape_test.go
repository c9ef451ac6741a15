package lshape_test

import (
	"testing"

	"github.com/katalvlaran/groute/congestion"
	"github.com/katalvlaran/groute/geom"
	"github.com/katalvlaran/groute/lshape"
	"github.com/katalvlaran/groute/netlist"
	"github.com/stretchr/testify/require"
)

func unitCap(x, y int, dir geom.Direction) int { return 1 }

// TestRouteStraightHorizontal mirrors scenario S1: a degenerate (shared
// row) segment takes the one monotone path and leaves cur_cap at 1 on each
// edge with zero overflow.
func TestRouteStraightHorizontal(t *testing.T) {
	t.Parallel()

	m, err := congestion.NewMap(4, 1, unitCap)
	require.NoError(t, err)

	elem := netlist.TwoPinElement2D{
		NetID: "n1",
		Pin1:  geom.Coordinate2D{X: 0, Y: 0},
		Pin2:  geom.Coordinate2D{X: 3, Y: 0},
	}
	routed, err := lshape.Route(m, elem)
	require.NoError(t, err)
	require.Equal(t, []geom.Coordinate2D{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0},
	}, routed.Path)
	require.Equal(t, 0.0, m.MaxOverflow())
}

// TestRouteAvoidsZeroCapacityEdge mirrors scenario S2: with the
// (0,0)-(1,0) edge at zero capacity, the L-router must pick
// vertical-then-horizontal.
func TestRouteAvoidsZeroCapacityEdge(t *testing.T) {
	t.Parallel()

	m, err := congestion.NewMap(3, 3, unitCap)
	require.NoError(t, err)

	// Force the (0,0)-(1,0) edge to zero capacity.
	e, err := m.Edge(0, 0, geom.East)
	require.NoError(t, err)
	e.MaxCap = 0

	elem := netlist.TwoPinElement2D{
		NetID: "n1",
		Pin1:  geom.Coordinate2D{X: 0, Y: 0},
		Pin2:  geom.Coordinate2D{X: 2, Y: 2},
	}
	routed, err := lshape.Route(m, elem)
	require.NoError(t, err)
	require.Equal(t, []geom.Coordinate2D{
		{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2},
	}, routed.Path)
	require.Equal(t, 0.0, m.MaxOverflow())
}

func TestRouteCommitsIntoCongestionMap(t *testing.T) {
	t.Parallel()

	m, err := congestion.NewMap(3, 3, unitCap)
	require.NoError(t, err)

	elem := netlist.TwoPinElement2D{
		NetID: "n1",
		Pin1:  geom.Coordinate2D{X: 0, Y: 0},
		Pin2:  geom.Coordinate2D{X: 2, Y: 2},
	}
	routed, err := lshape.Route(m, elem)
	require.NoError(t, err)

	for i := 0; i+1 < len(routed.Path); i++ {
		dir, err := geom.DirectionBetween(routed.Path[i], routed.Path[i+1])
		require.NoError(t, err)
		e, err := m.Edge(routed.Path[i].X, routed.Path[i].Y, dir)
		require.NoError(t, err)
		require.Equal(t, 1, e.Uses("n1"))
	}
}
