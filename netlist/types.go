// Package netlist defines the input vocabulary of the router: the routing
// region (grid dimensions and per-layer capacity function), nets as ordered
// pin lists, and the two-pin elements stage 1 decomposes them into.
//
// Validation happens once, at construction, and raises a rerr.CategoryConfig
// error before stage 1 ever runs — per the boundary contract, every
// downstream package may assume pins and capacities are already sane.
package netlist

import "github.com/katalvlaran/groute/geom"

// Net is one multi-pin net: an ordered pin list plus the bookkeeping the
// range router and KLAT ordering need (bounding-box size, pin count).
type Net struct {
	ID   string
	Pins []geom.Coordinate2D
}

// Degree returns the net's pin count.
func (n Net) Degree() int { return len(n.Pins) }

// BoundingBox returns the Manhattan bounding-box size (width, height) over
// the net's declared pins.
func (n Net) BoundingBox() (width, height int) {
	if len(n.Pins) == 0 {
		return 0, 0
	}
	minX, maxX := n.Pins[0].X, n.Pins[0].X
	minY, maxY := n.Pins[0].Y, n.Pins[0].Y
	for _, p := range n.Pins[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return maxX - minX, maxY - minY
}

// TwoPinElement2D is one two-pin (or Steiner-to-Steiner) segment a net
// decomposes into at stage 1. Path is the ordered sequence of tile
// coordinates the segment currently occupies on the 2-D congestion map;
// it is replaced wholesale during rip-up/reroute, never mutated in place.
//
// Invariant: Path[0] == Pin1, Path[len-1] == Pin2, and consecutive entries
// differ by exactly one unit on exactly one axis (enforced by
// ValidatePath).
type TwoPinElement2D struct {
	NetID string
	Pin1  geom.Coordinate2D
	Pin2  geom.Coordinate2D
	Path  []geom.Coordinate2D
}
