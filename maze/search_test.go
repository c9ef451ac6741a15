package maze_test

import (
	"testing"

	"github.com/katalvlaran/groute/congestion"
	"github.com/katalvlaran/groute/geom"
	"github.com/katalvlaran/groute/maze"
	"github.com/stretchr/testify/require"
)

func unitCap(x, y int, dir geom.Direction) int { return 1 }

func TestSearchFindsDirectPathWhenClear(t *testing.T) {
	t.Parallel()

	m, err := congestion.NewMap(5, 5, unitCap)
	require.NoError(t, err)

	path, found, err := maze.Search(m, maze.Bounds{MinX: 0, MinY: 0, MaxX: 5, MaxY: 5},
		[]geom.Coordinate2D{{X: 0, Y: 0}}, []geom.Coordinate2D{{X: 3, Y: 0}}, "n1")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, geom.Coordinate2D{X: 0, Y: 0}, path[0])
	require.Equal(t, geom.Coordinate2D{X: 3, Y: 0}, path[len(path)-1])
}

func TestSearchFailsWhenBoundsExcludeSink(t *testing.T) {
	t.Parallel()

	m, err := congestion.NewMap(5, 5, unitCap)
	require.NoError(t, err)

	_, found, err := maze.Search(m, maze.Bounds{MinX: 0, MinY: 0, MaxX: 2, MaxY: 2},
		[]geom.Coordinate2D{{X: 0, Y: 0}}, []geom.Coordinate2D{{X: 4, Y: 4}}, "n1")
	require.NoError(t, err)
	require.False(t, found)
}

func TestRerouteRollsBackOnFailure(t *testing.T) {
	t.Parallel()

	m, err := congestion.NewMap(5, 5, unitCap)
	require.NoError(t, err)

	oldPath := []geom.Coordinate2D{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}
	require.NoError(t, m.InsertNet(oldPath, "n1"))

	newPath, found, err := maze.Reroute(m, "n1", oldPath,
		[]geom.Coordinate2D{{X: 0, Y: 0}}, []geom.Coordinate2D{{X: 9, Y: 9}},
		maze.Bounds{MinX: 0, MinY: 0, MaxX: 2, MaxY: 2})
	require.NoError(t, err)
	require.False(t, found)
	require.Equal(t, oldPath, newPath)

	e, err := m.Edge(0, 0, geom.East)
	require.NoError(t, err)
	require.Equal(t, 1, e.Uses("n1"), "rollback must restore the old path's usage")
}

func TestRerouteCommitsNewPathOnSuccess(t *testing.T) {
	t.Parallel()

	m, err := congestion.NewMap(5, 5, unitCap)
	require.NoError(t, err)

	oldPath := []geom.Coordinate2D{{X: 0, Y: 0}, {X: 1, Y: 0}}
	require.NoError(t, m.InsertNet(oldPath, "n1"))

	newPath, found, err := maze.Reroute(m, "n1", oldPath,
		[]geom.Coordinate2D{{X: 0, Y: 0}}, []geom.Coordinate2D{{X: 1, Y: 0}},
		maze.Bounds{MinX: 0, MinY: 0, MaxX: 5, MaxY: 5})
	require.NoError(t, err)
	require.True(t, found)
	require.NotEmpty(t, newPath)

	e, err := m.Edge(0, 0, geom.East)
	require.NoError(t, err)
	require.Equal(t, 1, e.Uses("n1"))
}
