package auditor_test

import (
	"testing"

	"github.com/katalvlaran/groute/auditor"
	"github.com/katalvlaran/groute/geom"
	"github.com/katalvlaran/groute/netlist"
	"github.com/stretchr/testify/require"
)

func TestCheckNetAcceptsConnectedRoute(t *testing.T) {
	t.Parallel()

	net := netlist.Net{ID: "n1", Pins: []geom.Coordinate2D{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}}}
	elems := []netlist.TwoPinElement2D{
		{NetID: "n1", Pin1: net.Pins[0], Pin2: net.Pins[1], Path: []geom.Coordinate2D{
			{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0},
		}},
		{NetID: "n1", Pin1: net.Pins[1], Pin2: net.Pins[2], Path: []geom.Coordinate2D{
			{X: 2, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 2},
		}},
	}

	require.NoError(t, auditor.CheckNet(net, elems))
}

func TestCheckNetRejectsDisconnectedRoute(t *testing.T) {
	t.Parallel()

	net := netlist.Net{ID: "n1", Pins: []geom.Coordinate2D{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 5, Y: 5}}}
	elems := []netlist.TwoPinElement2D{
		{NetID: "n1", Pin1: net.Pins[0], Pin2: net.Pins[1], Path: []geom.Coordinate2D{
			{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0},
		}},
		// no element connects (5,5) to the rest of the net
	}

	require.Error(t, auditor.CheckNet(net, elems))
}

func TestCheckNetRejectsEmptyElements(t *testing.T) {
	t.Parallel()

	net := netlist.Net{ID: "n1", Pins: []geom.Coordinate2D{{X: 0, Y: 0}, {X: 1, Y: 0}}}
	require.Error(t, auditor.CheckNet(net, nil))
}
