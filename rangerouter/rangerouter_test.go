package rangerouter_test

import (
	"testing"

	"github.com/katalvlaran/groute/congestion"
	"github.com/katalvlaran/groute/geom"
	"github.com/katalvlaran/groute/rangerouter"
	"github.com/stretchr/testify/require"
)

func unitCap(x, y int, dir geom.Direction) int { return 1 }

func TestPartitionDropsZeroOverflowWindows(t *testing.T) {
	t.Parallel()

	m, err := congestion.NewMap(6, 6, unitCap)
	require.NoError(t, err)

	windows := rangerouter.Partition(m, 2)
	require.Empty(t, windows)
}

func TestPartitionOrdersByDescendingOverflow(t *testing.T) {
	t.Parallel()

	m, err := congestion.NewMap(6, 6, unitCap)
	require.NoError(t, err)

	// Two nets on the same short horizontal edge near the origin: light
	// overflow (window at box (0,0)).
	require.NoError(t, m.InsertNet([]geom.Coordinate2D{{X: 0, Y: 0}, {X: 1, Y: 0}}, "a"))
	require.NoError(t, m.InsertNet([]geom.Coordinate2D{{X: 0, Y: 0}, {X: 1, Y: 0}}, "b"))

	// Three nets stacked near (4,4): heavier overflow there.
	require.NoError(t, m.InsertNet([]geom.Coordinate2D{{X: 4, Y: 4}, {X: 5, Y: 4}}, "c"))
	require.NoError(t, m.InsertNet([]geom.Coordinate2D{{X: 4, Y: 4}, {X: 5, Y: 4}}, "d"))
	require.NoError(t, m.InsertNet([]geom.Coordinate2D{{X: 4, Y: 4}, {X: 5, Y: 4}}, "e"))

	windows := rangerouter.Partition(m, 2)
	require.Len(t, windows, 2)
	require.Greater(t, windows[0].Overflow, windows[1].Overflow)
	require.True(t, windows[0].Contains(geom.Coordinate2D{X: 4, Y: 4}))
}

func TestWindowContainsRespectsExclusiveMax(t *testing.T) {
	t.Parallel()

	w := rangerouter.Window{MinX: 0, MinY: 0, MaxX: 2, MaxY: 2}
	require.True(t, w.Contains(geom.Coordinate2D{X: 1, Y: 1}))
	require.False(t, w.Contains(geom.Coordinate2D{X: 2, Y: 2}))
}
