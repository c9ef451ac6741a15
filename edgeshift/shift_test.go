package edgeshift_test

import (
	"testing"

	"github.com/katalvlaran/groute/congestion"
	"github.com/katalvlaran/groute/edgeshift"
	"github.com/katalvlaran/groute/geom"
	"github.com/katalvlaran/groute/steiner"
	"github.com/stretchr/testify/require"
)

func unitCap(x, y int, dir geom.Direction) int { return 1 }

// TestPassShiftsSharedEdgeOffACongestedRow mirrors scenario S4: a 4-pin
// net's Steiner edge straddles a row that a competing net has already
// saturated, so shifting it by one unit strictly lowers peak cost.
func TestPassShiftsSharedEdgeOffACongestedRow(t *testing.T) {
	t.Parallel()

	m, err := congestion.NewMap(6, 6, unitCap)
	require.NoError(t, err)

	// Saturate every horizontal edge on row y=0 with a foreign net, so
	// that the shared Steiner-to-Steiner edge sitting on y=0 is expensive
	// to keep.
	foreign := []geom.Coordinate2D{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}}
	require.NoError(t, m.InsertNet(foreign, "foreign"))

	// pin0=(0,0) and pin2=(2,3) hang off steiner node 4=(1,0); pin1=(4,0)
	// and pin3=(4,3) hang off steiner node 5=(3,0); the 4-5 edge straddles
	// the congested row and is the one eligible for shifting.
	tree := steiner.Tree{
		Deg: 4,
		Branch: []steiner.Branch{
			{Coordinate: geom.Coordinate2D{X: 0, Y: 0}, Parent: 4},
			{Coordinate: geom.Coordinate2D{X: 4, Y: 0}, Parent: 5},
			{Coordinate: geom.Coordinate2D{X: 2, Y: 3}, Parent: 4},
			{Coordinate: geom.Coordinate2D{X: 4, Y: 3}, Parent: 5},
			{Coordinate: geom.Coordinate2D{X: 1, Y: 0}, Parent: 5},
			{Coordinate: geom.Coordinate2D{X: 3, Y: 0}, Parent: 5},
		},
	}

	shifted, err := edgeshift.Pass(tree, m, "n1", edgeshift.Bounds{MaxX: 6, MaxY: 6})
	require.NoError(t, err)
	require.NoError(t, steiner.Validate(shifted))

	// Any surviving node on row y=0 must be one of the two fixed pins;
	// the Steiner points must have moved off the congested row.
	for _, b := range shifted.Branch {
		if b.Coordinate.Y == 0 {
			require.Contains(t,
				[]geom.Coordinate2D{{X: 0, Y: 0}, {X: 4, Y: 0}},
				b.Coordinate)
		}
	}
}

func TestPassIsANoOpWhenNoSteinerEdgeQualifies(t *testing.T) {
	t.Parallel()

	m, err := congestion.NewMap(4, 4, unitCap)
	require.NoError(t, err)

	tree := steiner.Tree{
		Deg: 2,
		Branch: []steiner.Branch{
			{Coordinate: geom.Coordinate2D{X: 0, Y: 0}, Parent: 0},
			{Coordinate: geom.Coordinate2D{X: 3, Y: 0}, Parent: 0},
		},
	}

	out, err := edgeshift.Pass(tree, m, "n1", edgeshift.Bounds{MaxX: 4, MaxY: 4})
	require.NoError(t, err)
	require.Equal(t, 2, out.Deg)
}
