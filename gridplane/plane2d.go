// Package gridplane implements EdgePlane2D and EdgePlane3D: dense,
// canonical storage for values indexed by (tile, direction).
//
// The layout is the row-major flat-slice idiom used throughout this
// codebase's dense structures (compare the teacher library's matrix.Dense):
// one contiguous slice per orientation class, bounds-checked index
// functions, and a sentinel error rather than a panic or a silent wraparound
// on out-of-range access.
//
// Canonicalization: the horizontal edge between (x,y) and (x+1,y) is stored
// exactly once, in the EAST slot of (x,y); the vertical edge between (x,y)
// and (x,y+1) is stored exactly once, in the NORTH slot of (x,y). A WEST or
// SOUTH query is translated to its canonical EAST/NORTH slot on the
// neighboring tile. Querying WEST at x==0 or SOUTH at y==0 returns
// ErrOutOfBounds rather than wrapping around the grid.
package gridplane

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/groute/geom"
)

// ErrOutOfBounds is returned when (x,y) falls outside [0,X)x[0,Y).
var ErrOutOfBounds = errors.New("gridplane: coordinate out of bounds")

// EdgePlane2D stores one T per canonical 2-D edge: X*Y horizontal slots
// (EAST edges) plus X*Y vertical slots (NORTH edges). The last column has no
// outgoing EAST edge and the last row has no outgoing NORTH edge; those
// slots are allocated but never legally addressed (an EAST query with
// x==X-1 is a bounds error, by the same rule as a WEST query at x==0).
type EdgePlane2D[T any] struct {
	x, y       int
	horizontal []T // EAST edges, row-major: index = y*x + ex
	vertical   []T // NORTH edges, row-major: index = y*x + ex
}

// NewEdgePlane2D allocates an X by Y plane with zero-valued edges.
// Complexity: O(X*Y).
func NewEdgePlane2D[T any](x, y int) (*EdgePlane2D[T], error) {
	if x <= 0 || y <= 0 {
		return nil, fmt.Errorf("gridplane: NewEdgePlane2D(%d,%d): %w", x, y, ErrOutOfBounds)
	}
	return &EdgePlane2D[T]{
		x:          x,
		y:          y,
		horizontal: make([]T, x*y),
		vertical:   make([]T, x*y),
	}, nil
}

// SizeX and SizeY report the plane's tile-grid dimensions.
func (p *EdgePlane2D[T]) SizeX() int { return p.x }
func (p *EdgePlane2D[T]) SizeY() int { return p.y }

func (p *EdgePlane2D[T]) inBounds(x, y int) bool {
	return x >= 0 && x < p.x && y >= 0 && y < p.y
}

// canon translates (x,y,dir) to a canonical (cx,cy,horizontal) slot,
// rejecting boundary-crossing queries outright instead of wrapping.
func (p *EdgePlane2D[T]) canon(x, y int, dir geom.Direction) (cx, cy int, horiz bool, err error) {
	if !p.inBounds(x, y) {
		return 0, 0, false, fmt.Errorf("gridplane: (%d,%d): %w", x, y, ErrOutOfBounds)
	}
	switch dir {
	case geom.East:
		if x == p.x-1 {
			return 0, 0, false, fmt.Errorf("gridplane: EAST at x=%d (max): %w", x, ErrOutOfBounds)
		}
		return x, y, true, nil
	case geom.West:
		if x == 0 {
			return 0, 0, false, fmt.Errorf("gridplane: WEST at x=0: %w", ErrOutOfBounds)
		}
		return x - 1, y, true, nil
	case geom.North:
		if y == p.y-1 {
			return 0, 0, false, fmt.Errorf("gridplane: NORTH at y=%d (max): %w", y, ErrOutOfBounds)
		}
		return x, y, false, nil
	case geom.South:
		if y == 0 {
			return 0, 0, false, fmt.Errorf("gridplane: SOUTH at y=0: %w", ErrOutOfBounds)
		}
		return x, y - 1, false, nil
	default:
		return 0, 0, false, geom.ErrInvalidDirection
	}
}

func (p *EdgePlane2D[T]) index(cx, cy int) int {
	return cy*p.x + cx
}

// Edge returns a pointer to the canonical edge slot for (x,y,dir), so
// callers can read or mutate in place. Complexity: O(1).
func (p *EdgePlane2D[T]) Edge(x, y int, dir geom.Direction) (*T, error) {
	cx, cy, horiz, err := p.canon(x, y, dir)
	if err != nil {
		return nil, err
	}
	idx := p.index(cx, cy)
	if horiz {
		return &p.horizontal[idx], nil
	}
	return &p.vertical[idx], nil
}

// Reset overwrites every slot with the zero value of T.
func (p *EdgePlane2D[T]) Reset() {
	var zero T
	for i := range p.horizontal {
		p.horizontal[i] = zero
	}
	for i := range p.vertical {
		p.vertical[i] = zero
	}
}

// ForEachHorizontal calls fn once per canonical EAST edge, with the anchor
// tile coordinates and a pointer into backing storage.
func (p *EdgePlane2D[T]) ForEachHorizontal(fn func(x, y int, edge *T)) {
	for y := 0; y < p.y; y++ {
		for x := 0; x < p.x-1; x++ {
			fn(x, y, &p.horizontal[p.index(x, y)])
		}
	}
}

// ForEachVertical calls fn once per canonical NORTH edge.
func (p *EdgePlane2D[T]) ForEachVertical(fn func(x, y int, edge *T)) {
	for y := 0; y < p.y-1; y++ {
		for x := 0; x < p.x; x++ {
			fn(x, y, &p.vertical[p.index(x, y)])
		}
	}
}
