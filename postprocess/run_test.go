package postprocess_test

import (
	"testing"

	"github.com/katalvlaran/groute/congestion"
	"github.com/katalvlaran/groute/geom"
	"github.com/katalvlaran/groute/netlist"
	"github.com/katalvlaran/groute/postprocess"
	"github.com/stretchr/testify/require"
)

func unitCap(_, _ int, _ geom.Direction) int { return 1 }

// rowConstrainedCap gives row y=1's horizontal edges capacity 1 and
// everything else capacity 10, so three nets sharing the row cannot all fit
// but rows 0 and 2 have room to detour into.
func rowConstrainedCap(_, y int, dir geom.Direction) int {
	if dir == geom.East && y == 1 {
		return 1
	}
	return 10
}

func TestRunDetoursOneNetOffAnOversaturatedRow(t *testing.T) {
	t.Parallel()

	m, err := congestion.NewMap(5, 3, rowConstrainedCap)
	require.NoError(t, err)

	straight := []geom.Coordinate2D{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}, {X: 4, Y: 1}}
	elems := make([]*netlist.TwoPinElement2D, 0, 3)
	for _, id := range []string{"n1", "n2", "n3"} {
		require.NoError(t, m.InsertNet(straight, id))
		elems = append(elems, &netlist.TwoPinElement2D{
			NetID: id, Pin1: straight[0], Pin2: straight[len(straight)-1],
			Path: append([]geom.Coordinate2D{}, straight...),
		})
	}

	initial := m.MaxOverflow()
	require.Greater(t, initial, 0.0)

	params := postprocess.DefaultParams()
	params.SmallComponentMaxTiles = 1 << 20 // force the exact-dijkstra path
	of, log := postprocess.Run(m, elems, params)

	require.NotEmpty(t, log)
	require.Less(t, of, initial)
}

func TestRunStopsEarlyOnZeroOverflow(t *testing.T) {
	t.Parallel()

	m, err := congestion.NewMap(3, 3, unitCap)
	require.NoError(t, err)

	_, log := postprocess.Run(m, nil, postprocess.DefaultParams())
	require.Len(t, log, 1)
	require.Equal(t, 0.0, log[0].Overflow)
}
