package gridplane

import (
	"fmt"

	"github.com/katalvlaran/groute/geom"
)

// EdgePlane3D stores one EdgePlane2D per metal layer, plus one implicit via
// slot per (x,y,z) for the via connecting layer z to layer z+1. A via is
// indexed by its lower endpoint: Via(x,y,z) reaches the z<->z+1 connection,
// and is undefined at z == L-1.
//
// This intentionally departs from the original router's EdgePlane3d in two
// ways the spec calls out as bugs to not repeat: a WEST query here keeps the
// caller's z index (the original's operator[] silently reset z to 0 on
// DIR_WEST), and there is exactly one edge() implementation per
// const/non-const pair rather than a non-const method that calls its own
// const overload and recurses forever.
type EdgePlane3D[T any] struct {
	layers  []*EdgePlane2D[T]
	vias    []T // index = z*x*y + y*x + x, one slot per (x,y,z) with z<L-1
	x, y, l int
}

// NewEdgePlane3D allocates an X by Y by L volume.
// Complexity: O(X*Y*L).
func NewEdgePlane3D[T any](x, y, l int) (*EdgePlane3D[T], error) {
	if l <= 0 {
		return nil, fmt.Errorf("gridplane: NewEdgePlane3D: l=%d: %w", l, ErrNoSuchLayer)
	}
	layers := make([]*EdgePlane2D[T], l)
	for z := 0; z < l; z++ {
		plane, err := NewEdgePlane2D[T](x, y)
		if err != nil {
			return nil, fmt.Errorf("gridplane: NewEdgePlane3D: layer %d: %w", z, err)
		}
		layers[z] = plane
	}
	return &EdgePlane3D[T]{
		layers: layers,
		vias:   make([]T, x*y*l),
		x:      x,
		y:      y,
		l:      l,
	}, nil
}

// SizeX, SizeY, and SizeL report the volume's dimensions.
func (p *EdgePlane3D[T]) SizeX() int { return p.x }
func (p *EdgePlane3D[T]) SizeY() int { return p.y }
func (p *EdgePlane3D[T]) SizeL() int { return p.l }

func (p *EdgePlane3D[T]) validLayer(z int) error {
	if z < 0 || z >= p.l {
		return fmt.Errorf("gridplane: z=%d: %w", z, ErrNoSuchLayer)
	}
	return nil
}

// Layer returns the EdgePlane2D for metal layer z, so in-plane edges on that
// layer can be read or mutated directly via its Edge method.
func (p *EdgePlane3D[T]) Layer(z int) (*EdgePlane2D[T], error) {
	if err := p.validLayer(z); err != nil {
		return nil, err
	}
	return p.layers[z], nil
}

// Edge returns the in-plane edge at (x,y,z) in direction dir. z is preserved
// verbatim for every direction, including WEST and SOUTH.
func (p *EdgePlane3D[T]) Edge(x, y, z int, dir geom.Direction) (*T, error) {
	plane, err := p.Layer(z)
	if err != nil {
		return nil, err
	}
	return plane.Edge(x, y, dir)
}

func (p *EdgePlane3D[T]) viaIndex(x, y, z int) int {
	return z*p.x*p.y + y*p.x + x
}

// Via returns a pointer to the via slot connecting layer z to layer z+1 at
// (x,y). It is an error to query z == L-1, the topmost layer, since no via
// originates there.
func (p *EdgePlane3D[T]) Via(x, y, z int) (*T, error) {
	if !(x >= 0 && x < p.x && y >= 0 && y < p.y) {
		return nil, fmt.Errorf("gridplane: via (%d,%d): %w", x, y, ErrOutOfBounds)
	}
	if z < 0 || z >= p.l-1 {
		return nil, fmt.Errorf("gridplane: via at z=%d (top layer has none): %w", z, ErrNoSuchLayer)
	}
	return &p.vias[p.viaIndex(x, y, z)], nil
}

// Reset overwrites every in-plane edge and via with the zero value of T.
func (p *EdgePlane3D[T]) Reset() {
	for _, plane := range p.layers {
		plane.Reset()
	}
	var zero T
	for i := range p.vias {
		p.vias[i] = zero
	}
}

// ForEachVia calls fn once per legal via slot, in ascending (z,y,x) order.
func (p *EdgePlane3D[T]) ForEachVia(fn func(x, y, z int, via *T)) {
	for z := 0; z < p.l-1; z++ {
		for y := 0; y < p.y; y++ {
			for x := 0; x < p.x; x++ {
				fn(x, y, z, &p.vias[p.viaIndex(x, y, z)])
			}
		}
	}
}
