package decompose_test

import (
	"testing"

	"github.com/katalvlaran/groute/decompose"
	"github.com/katalvlaran/groute/geom"
	"github.com/katalvlaran/groute/steiner"
	"github.com/stretchr/testify/require"
)

func TestTwoPinElementsDropsRootSelfEdge(t *testing.T) {
	t.Parallel()

	tree := steiner.Tree{
		Deg: 2,
		Branch: []steiner.Branch{
			{Coordinate: geom.Coordinate2D{X: 0, Y: 0}, Parent: 0},
			{Coordinate: geom.Coordinate2D{X: 3, Y: 0}, Parent: 0},
		},
	}

	elems, err := decompose.TwoPinElements("n1", tree)
	require.NoError(t, err)
	require.Len(t, elems, 1)
	require.Equal(t, "n1", elems[0].NetID)
	require.Equal(t, geom.Coordinate2D{X: 0, Y: 0}, elems[0].Pin1)
	require.Equal(t, geom.Coordinate2D{X: 3, Y: 0}, elems[0].Pin2)
}

func TestTwoPinElementsDropsDegenerateEdges(t *testing.T) {
	t.Parallel()

	tree := steiner.Tree{
		Deg: 3,
		Branch: []steiner.Branch{
			{Coordinate: geom.Coordinate2D{X: 0, Y: 0}, Parent: 0},
			{Coordinate: geom.Coordinate2D{X: 3, Y: 0}, Parent: 3},
			{Coordinate: geom.Coordinate2D{X: 5, Y: 5}, Parent: 3},
			{Coordinate: geom.Coordinate2D{X: 3, Y: 0}, Parent: 0}, // Steiner point coincides with pin[1]
		},
	}

	elems, err := decompose.TwoPinElements("n2", tree)
	require.NoError(t, err)
	require.Len(t, elems, 2) // pin1-steiner dropped (coincident), pin0-steiner and pin2-steiner kept
}

func TestTwoPinElementsRejectsInvalidTree(t *testing.T) {
	t.Parallel()

	_, err := decompose.TwoPinElements("n1", steiner.Tree{Deg: 1})
	require.Error(t, err)
}
