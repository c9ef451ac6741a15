package gridplane_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/groute/geom"
	"github.com/katalvlaran/groute/gridplane"
	"github.com/stretchr/testify/require"
)

func TestEdgePlane2DCanonicalStorageIsShared(t *testing.T) {
	t.Parallel()

	p, err := gridplane.NewEdgePlane2D[int](4, 4)
	require.NoError(t, err)

	east, err := p.Edge(1, 1, geom.East)
	require.NoError(t, err)
	*east = 7

	west, err := p.Edge(2, 1, geom.West)
	require.NoError(t, err)
	require.Equal(t, 7, *west)

	north, err := p.Edge(1, 1, geom.North)
	require.NoError(t, err)
	*north = 9

	south, err := p.Edge(1, 2, geom.South)
	require.NoError(t, err)
	require.Equal(t, 9, *south)
}

func TestEdgePlane2DBoundaryQueriesError(t *testing.T) {
	t.Parallel()

	p, err := gridplane.NewEdgePlane2D[int](3, 3)
	require.NoError(t, err)

	_, err = p.Edge(0, 0, geom.West)
	require.Error(t, err)
	require.True(t, errors.Is(err, gridplane.ErrOutOfBounds))

	_, err = p.Edge(0, 0, geom.South)
	require.Error(t, err)
	require.True(t, errors.Is(err, gridplane.ErrOutOfBounds))

	_, err = p.Edge(2, 0, geom.East)
	require.Error(t, err)
	require.True(t, errors.Is(err, gridplane.ErrOutOfBounds))

	_, err = p.Edge(0, 2, geom.North)
	require.Error(t, err)
	require.True(t, errors.Is(err, gridplane.ErrOutOfBounds))
}

func TestEdgePlane2DOutOfGridCoordinate(t *testing.T) {
	t.Parallel()

	p, err := gridplane.NewEdgePlane2D[int](2, 2)
	require.NoError(t, err)

	_, err = p.Edge(5, 5, geom.East)
	require.Error(t, err)
	require.True(t, errors.Is(err, gridplane.ErrOutOfBounds))
}

func TestEdgePlane2DForEachCoversEveryCanonicalEdge(t *testing.T) {
	t.Parallel()

	p, err := gridplane.NewEdgePlane2D[int](3, 2)
	require.NoError(t, err)

	count := 0
	p.ForEachHorizontal(func(x, y int, edge *int) { count++ })
	require.Equal(t, 2*2, count) // (X-1)*Y horizontal edges

	count = 0
	p.ForEachVertical(func(x, y int, edge *int) { count++ })
	require.Equal(t, 3*1, count) // X*(Y-1) vertical edges
}

func TestEdgePlane3DPreservesZOnWestAndSouth(t *testing.T) {
	t.Parallel()

	p, err := gridplane.NewEdgePlane3D[int](4, 4, 3)
	require.NoError(t, err)

	east, err := p.Edge(1, 1, 2, geom.East)
	require.NoError(t, err)
	*east = 42

	west, err := p.Edge(2, 1, 2, geom.West)
	require.NoError(t, err)
	require.Equal(t, 42, *west, "WEST query must preserve the caller's layer index")
}

func TestEdgePlane3DViaIndexedByLowerEndpoint(t *testing.T) {
	t.Parallel()

	p, err := gridplane.NewEdgePlane3D[int](2, 2, 3)
	require.NoError(t, err)

	v, err := p.Via(0, 0, 0)
	require.NoError(t, err)
	*v = 5

	again, err := p.Via(0, 0, 0)
	require.NoError(t, err)
	require.Equal(t, 5, *again)

	_, err = p.Via(0, 0, 2) // top layer (L-1) has no outgoing via
	require.Error(t, err)
	require.True(t, errors.Is(err, gridplane.ErrNoSuchLayer))
}

func TestEdgePlane3DLayerOutOfRange(t *testing.T) {
	t.Parallel()

	p, err := gridplane.NewEdgePlane3D[int](2, 2, 2)
	require.NoError(t, err)

	_, err = p.Layer(5)
	require.Error(t, err)
	require.True(t, errors.Is(err, gridplane.ErrNoSuchLayer))
}

func TestEdgePlane3DResetClearsLayersAndVias(t *testing.T) {
	t.Parallel()

	p, err := gridplane.NewEdgePlane3D[int](2, 2, 2)
	require.NoError(t, err)

	e, err := p.Edge(0, 0, 0, geom.East)
	require.NoError(t, err)
	*e = 1

	v, err := p.Via(0, 0, 0)
	require.NoError(t, err)
	*v = 1

	p.Reset()

	e, err = p.Edge(0, 0, 0, geom.East)
	require.NoError(t, err)
	require.Equal(t, 0, *e)

	v, err = p.Via(0, 0, 0)
	require.NoError(t, err)
	require.Equal(t, 0, *v)
}
