// Package edgeshift implements stage 1's edge-shifting pass: it builds a
// VertexFlute graph from a steiner.Tree, merges coincident vertices, then
// walks every edge whose endpoints are both Steiner points of degree <= 3,
// computing a safe perpendicular shift range and committing the shift that
// most reduces local L-pattern cost.
//
// VertexFlute is a dense arena (integer handles into a flat slice, a
// tombstone flag per slot, compaction deferred to the end of a pass) rather
// than a pointer-linked graph, following the same dense-storage discipline
// the module uses for congestion edges and grid planes: handles stay stable
// across a pass even as vertices are merged away, and a single Compact call
// reclaims the tombstoned slots once the DFS is done.
package edgeshift

import "github.com/katalvlaran/groute/geom"

// Kind classifies a VertexFlute node as a net pin (fixed, never shifted) or
// a Steiner point (eligible for shifting and merging).
type Kind int

const (
	Pin Kind = iota
	SteinerPoint
)

// Handle is a stable index into a VertexFlute's arena. InvalidHandle marks
// the absence of a vertex, e.g. the parent of the DFS root in emit.
type Handle int

const InvalidHandle Handle = -1

type vertex struct {
	coord     geom.Coordinate2D
	kind      Kind
	neighbors []Handle
	tomb      bool
}

// VertexFlute is the dense-arena graph edge shifting operates on.
type VertexFlute struct {
	arena []vertex
	free  []Handle
}
