// Package lshape implements stage 1's L-shape pattern router: for a
// two-pin segment with distinct x and y, it evaluates the two monotone
// L-paths (vertical-then-horizontal, horizontal-then-vertical) against the
// congestion map's FASTROUTE_COST and commits the cheaper one.
package lshape

import (
	"fmt"

	"github.com/katalvlaran/groute/congestion"
	"github.com/katalvlaran/groute/geom"
	"github.com/katalvlaran/groute/netlist"
	"github.com/katalvlaran/groute/rerr"
)

// Route picks the better of the two monotone L-paths between elem.Pin1 and
// elem.Pin2, inserts the winner into m under elem.NetID, and returns the
// element with Path populated.
//
// Tie-break order: lower peak (max-edge) cost first, then lower total cost,
// then lower via count. A segment sharing a row or column has exactly one
// monotone path, which is used directly with no comparison.
func Route(m *congestion.Map, elem netlist.TwoPinElement2D) (netlist.TwoPinElement2D, error) {
	if elem.Pin1.X == elem.Pin2.X || elem.Pin1.Y == elem.Pin2.Y {
		path := straightPath(elem.Pin1, elem.Pin2)
		elem.Path = path
		if err := commit(m, elem.NetID, path); err != nil {
			return elem, err
		}
		return elem, nil
	}

	vh := verticalThenHorizontal(elem.Pin1, elem.Pin2)
	hv := horizontalThenVertical(elem.Pin1, elem.Pin2)

	vhPeak, vhTotal, vhVias, err := evaluate(m, elem.NetID, vh)
	if err != nil {
		return elem, err
	}
	hvPeak, hvTotal, hvVias, err := evaluate(m, elem.NetID, hv)
	if err != nil {
		return elem, err
	}

	winner := vh
	switch {
	case vhPeak < hvPeak:
		winner = vh
	case hvPeak < vhPeak:
		winner = hv
	case vhTotal < hvTotal:
		winner = vh
	case hvTotal < vhTotal:
		winner = hv
	case vhVias <= hvVias:
		winner = vh
	default:
		winner = hv
	}

	elem.Path = winner
	if err := commit(m, elem.NetID, winner); err != nil {
		return elem, err
	}
	return elem, nil
}

func straightPath(a, b geom.Coordinate2D) []geom.Coordinate2D {
	path := []geom.Coordinate2D{a}
	cur := a
	for cur != b {
		cur = stepToward(cur, b)
		path = append(path, cur)
	}
	return path
}

func stepToward(cur, target geom.Coordinate2D) geom.Coordinate2D {
	switch {
	case cur.X < target.X:
		return geom.Coordinate2D{X: cur.X + 1, Y: cur.Y}
	case cur.X > target.X:
		return geom.Coordinate2D{X: cur.X - 1, Y: cur.Y}
	case cur.Y < target.Y:
		return geom.Coordinate2D{X: cur.X, Y: cur.Y + 1}
	case cur.Y > target.Y:
		return geom.Coordinate2D{X: cur.X, Y: cur.Y - 1}
	default:
		return cur
	}
}

// verticalThenHorizontal moves along y first, then x: the corner is (a.X, b.Y).
func verticalThenHorizontal(a, b geom.Coordinate2D) []geom.Coordinate2D {
	corner := geom.Coordinate2D{X: a.X, Y: b.Y}
	return append(straightPath(a, corner), straightPath(corner, b)[1:]...)
}

// horizontalThenVertical moves along x first, then y: the corner is (b.X, a.Y).
func horizontalThenVertical(a, b geom.Coordinate2D) []geom.Coordinate2D {
	corner := geom.Coordinate2D{X: b.X, Y: a.Y}
	return append(straightPath(a, corner), straightPath(corner, b)[1:]...)
}

// evaluate sums cost2D over every edge of path, returning the peak
// (max-edge) cost, the total cost, and the via count (always 0 on a purely
// 2-D path; kept for the tie-break rule and for callers that extend this
// once layer assignment is in play).
func evaluate(m *congestion.Map, netID string, path []geom.Coordinate2D) (peak, total float64, vias int, err error) {
	for i := 0; i+1 < len(path); i++ {
		dir, derr := geom.DirectionBetween(path[i], path[i+1])
		if derr != nil {
			return 0, 0, 0, rerr.Wrap(rerr.CategoryInternalInvariant, "lshape.evaluate", derr)
		}
		cost, _, cerr := m.Cost2D(path[i].X, path[i].Y, dir, netID)
		if cerr != nil {
			return 0, 0, 0, fmt.Errorf("lshape.evaluate: %w", cerr)
		}
		if cost > peak {
			peak = cost
		}
		total += cost
	}
	return peak, total, 0, nil
}

func commit(m *congestion.Map, netID string, path []geom.Coordinate2D) error {
	if err := m.InsertNet(path, netID); err != nil {
		return fmt.Errorf("lshape.commit: %w", err)
	}
	return nil
}
