// Package rangerouter partitions a congestion map's overflowed edges into
// axis-aligned rectangular windows for stage 2's outer rip-up/reroute loop,
// and orders them by descending overflow so the densest regions are
// rerouted first.
//
// The grid-traversal idiom (scan every tile, accumulate into its owning
// box) is grounded on the same cell-by-cell sweep the teacher pack's
// gridgraph package uses to classify land/water cells, though windows here
// are a literal fixed-size tiling rather than a flood-fill over connected
// components: the routing spec fixes window size as BOXSIZE_INC + iteration
// tiles per side, not a shape discovered by clustering.
package rangerouter

import (
	"sort"

	"github.com/katalvlaran/groute/congestion"
	"github.com/katalvlaran/groute/geom"
)

// Window is one axis-aligned box of tiles, plus the total overflow summed
// over every edge whose anchor tile falls inside it.
type Window struct {
	MinX, MinY int
	MaxX, MaxY int // exclusive
	Overflow   float64
}

// Contains reports whether c falls inside the window.
func (w Window) Contains(c geom.Coordinate2D) bool {
	return c.X >= w.MinX && c.X < w.MaxX && c.Y >= w.MinY && c.Y < w.MaxY
}

// Partition tiles m's grid into boxSize-by-boxSize windows (the last row
// and column of windows may be smaller, clipped to the grid), sums each
// edge's overflow into its anchor tile's window, drops windows with zero
// overflow, and returns the rest ordered by descending overflow, ties
// broken by ascending MinY and then ascending MinX.
func Partition(m *congestion.Map, boxSize int) []Window {
	if boxSize < 1 {
		boxSize = 1
	}
	x, y := m.SizeX(), m.SizeY()

	index := make(map[[2]int]*Window)
	get := func(bx, by int) *Window {
		key := [2]int{bx, by}
		w, ok := index[key]
		if !ok {
			minX, minY := bx*boxSize, by*boxSize
			maxX, maxY := minX+boxSize, minY+boxSize
			if maxX > x {
				maxX = x
			}
			if maxY > y {
				maxY = y
			}
			w = &Window{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
			index[key] = w
		}
		return w
	}

	accumulate := func(ex, ey int, e *congestion.Edge2D) {
		of := e.Overflow()
		if of <= 0 {
			return
		}
		w := get(ex/boxSize, ey/boxSize)
		w.Overflow += of
	}
	m.ForEachHorizontal(accumulate)
	m.ForEachVertical(accumulate)

	out := make([]Window, 0, len(index))
	for _, w := range index {
		if w.Overflow > 0 {
			out = append(out, *w)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Overflow != out[j].Overflow {
			return out[i].Overflow > out[j].Overflow
		}
		if out[i].MinY != out[j].MinY {
			return out[i].MinY < out[j].MinY
		}
		return out[i].MinX < out[j].MinX
	})
	return out
}
