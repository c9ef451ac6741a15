// Package maze implements stage 2's bounded best-first (A*) search: given a
// window and a net's current source/sink tiles, it finds a path that stays
// inside the window, following the rip-up-before-search,
// commit-or-rollback discipline the spec requires so the congestion map is
// always consistent between invocations.
//
// The priority queue is grounded on the same container/heap idiom the
// teacher pack uses for Prim's MST (prim_kruskal's edgePQ): a slice-backed
// heap.Interface implementation with an explicit Push/Pop pair, rather than
// a generic heap wrapper.
package maze

import "github.com/katalvlaran/groute/geom"

// Bounds is the axis-aligned window a single search is confined to.
type Bounds struct {
	MinX, MinY int
	MaxX, MaxY int // exclusive
}

// Contains reports whether c lies inside the bounds.
func (b Bounds) Contains(c geom.Coordinate2D) bool {
	return c.X >= b.MinX && c.X < b.MaxX && c.Y >= b.MinY && c.Y < b.MaxY
}

// item is one entry in the search frontier: a tile, its best-known g-score,
// and the priority (g+h) the heap orders by.
type item struct {
	coord    geom.Coordinate2D
	g        float64
	priority float64
	index    int
}

// itemPQ is a min-heap of *item ordered by priority, mirroring
// prim_kruskal's edgePQ shape.
type itemPQ []*item

func (pq itemPQ) Len() int            { return len(pq) }
func (pq itemPQ) Less(i, j int) bool  { return pq[i].priority < pq[j].priority }
func (pq itemPQ) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *itemPQ) Push(x any) {
	it := x.(*item)
	it.index = len(*pq)
	*pq = append(*pq, it)
}

func (pq *itemPQ) Pop() any {
	old := *pq
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return it
}
