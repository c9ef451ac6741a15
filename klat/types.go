package klat

import "github.com/katalvlaran/groute/geom"

// Params configures one net's layer assignment. ViaCostWeight is the d
// term's multiplier in viaPenalty(d) = d*ViaCostWeight + viasOverflowing;
// it rises across the stage-2 cooling schedule in the original design, but
// KLAT itself treats it as a plain input, per the spec's DP combination
// rule.
type Params struct {
	ViaCostWeight float64
}

// DefaultParams picks a modest via weight: vias are discouraged but never
// categorically forbidden, matching the spec's "minimizing via count and
// overflow" framing rather than a hard via budget.
func DefaultParams() Params {
	return Params{ViaCostWeight: 1}
}

// PlaneSegment is one planar run of a net's 3-D route: the tile-to-tile
// path it occupies, all on layer Z.
type PlaneSegment struct {
	Z    int
	Path []geom.Coordinate2D
}

// ViaStack is a vertical connection at (X,Y) spanning every layer in
// [ZMin,ZMax].
type ViaStack struct {
	X, Y       int
	ZMin, ZMax int
}

// Route is one net's assigned 3-D route: a set of planar segments (each
// the full run between two adjacent tree nodes, committed to a single
// layer) plus the via stacks connecting segments that landed on different
// layers at a shared node.
type Route struct {
	NetID    string
	Segments []PlaneSegment
	Vias     []ViaStack
}
