package edgeshift_test

import (
	"testing"

	"github.com/katalvlaran/groute/edgeshift"
	"github.com/katalvlaran/groute/geom"
	"github.com/katalvlaran/groute/steiner"
	"github.com/stretchr/testify/require"
)

func threePinTree() steiner.Tree {
	return steiner.Tree{
		Deg: 3,
		Branch: []steiner.Branch{
			{Coordinate: geom.Coordinate2D{X: 0, Y: 0}, Parent: 3},
			{Coordinate: geom.Coordinate2D{X: 4, Y: 0}, Parent: 3},
			{Coordinate: geom.Coordinate2D{X: 2, Y: 3}, Parent: 3},
			{Coordinate: geom.Coordinate2D{X: 2, Y: 0}, Parent: 3}, // root steiner point
		},
	}
}

func TestNewFromTreeLinksAreSymmetric(t *testing.T) {
	t.Parallel()

	v, err := edgeshift.NewFromTree(threePinTree())
	require.NoError(t, err)
	require.NoError(t, v.CheckSymmetry())

	deg, err := v.Degree(3)
	require.NoError(t, err)
	require.Equal(t, 3, deg)
}

func TestMergeCoincidentTombstonesDuplicateSteinerPoint(t *testing.T) {
	t.Parallel()

	// A fifth node coincides with node 3's coordinate and is linked to
	// node 0 instead; merging must fold it into node 3 and rewire node 0.
	tree := threePinTree()
	tree.Branch = append(tree.Branch, steiner.Branch{Coordinate: geom.Coordinate2D{X: 2, Y: 0}, Parent: 0})

	v, err := edgeshift.NewFromTree(tree)
	require.NoError(t, err)

	require.NoError(t, v.MergeCoincident())
	require.NoError(t, v.CheckSymmetry())
	require.False(t, v.Active(4), "the coincident duplicate must be tombstoned")

	neighbors, err := v.Neighbors(3)
	require.NoError(t, err)
	require.Contains(t, neighbors, edgeshift.Handle(0))
}

func TestMergeVertexRefusesToMergeAwayAPin(t *testing.T) {
	t.Parallel()

	v, err := edgeshift.NewFromTree(threePinTree())
	require.NoError(t, err)

	err = v.MergeVertex(3, 0) // 0 is a pin
	require.Error(t, err)
}

func TestCompactRenumbersDenselyAfterMerge(t *testing.T) {
	t.Parallel()

	tree := threePinTree()
	tree.Branch = append(tree.Branch, steiner.Branch{Coordinate: geom.Coordinate2D{X: 2, Y: 0}, Parent: 0})

	v, err := edgeshift.NewFromTree(tree)
	require.NoError(t, err)
	require.NoError(t, v.MergeCoincident())

	remap := v.Compact()
	require.Len(t, remap, 5)
	require.Equal(t, edgeshift.InvalidHandle, remap[4])
	require.NoError(t, v.CheckSymmetry())
}
