package edgeshift

import (
	"fmt"

	"github.com/katalvlaran/groute/geom"
	"github.com/katalvlaran/groute/rerr"
	"github.com/katalvlaran/groute/steiner"
)

// NewFromTree builds a VertexFlute with one vertex per branch of t: nodes
// [0,Deg) become Pin, the rest SteinerPoint. Parent links become undirected
// neighbor edges; the root's self-edge is skipped.
func NewFromTree(t steiner.Tree) (*VertexFlute, error) {
	v := &VertexFlute{arena: make([]vertex, len(t.Branch))}
	for i, b := range t.Branch {
		kind := SteinerPoint
		if i < t.Deg {
			kind = Pin
		}
		v.arena[i] = vertex{coord: b.Coordinate, kind: kind}
	}
	for i, b := range t.Branch {
		if b.Parent == i {
			continue
		}
		v.link(Handle(i), Handle(b.Parent))
	}
	return v, nil
}

func (v *VertexFlute) link(a, b Handle) {
	v.arena[a].neighbors = appendUnique(v.arena[a].neighbors, b)
	v.arena[b].neighbors = appendUnique(v.arena[b].neighbors, a)
}

func (v *VertexFlute) unlink(a, b Handle) {
	v.arena[a].neighbors = removeHandle(v.arena[a].neighbors, b)
	v.arena[b].neighbors = removeHandle(v.arena[b].neighbors, a)
}

func appendUnique(list []Handle, h Handle) []Handle {
	for _, x := range list {
		if x == h {
			return list
		}
	}
	return append(list, h)
}

func removeHandle(list []Handle, h Handle) []Handle {
	out := list[:0]
	for _, x := range list {
		if x != h {
			out = append(out, x)
		}
	}
	return out
}

// Active reports whether h names a live (non-tombstoned) vertex.
func (v *VertexFlute) Active(h Handle) bool {
	return h >= 0 && int(h) < len(v.arena) && !v.arena[h].tomb
}

// Coord returns h's current coordinate.
func (v *VertexFlute) Coord(h Handle) (geom.Coordinate2D, error) {
	if !v.Active(h) {
		return geom.Coordinate2D{}, ErrInvalidHandle
	}
	return v.arena[h].coord, nil
}

// Kind returns h's node kind.
func (v *VertexFlute) Kind(h Handle) (Kind, error) {
	if !v.Active(h) {
		return 0, ErrInvalidHandle
	}
	return v.arena[h].kind, nil
}

// Neighbors returns a copy of h's current neighbor list.
func (v *VertexFlute) Neighbors(h Handle) ([]Handle, error) {
	if !v.Active(h) {
		return nil, ErrInvalidHandle
	}
	out := make([]Handle, len(v.arena[h].neighbors))
	copy(out, v.arena[h].neighbors)
	return out, nil
}

// Degree returns len(Neighbors(h)).
func (v *VertexFlute) Degree(h Handle) (int, error) {
	n, err := v.Neighbors(h)
	return len(n), err
}

// CheckSymmetry verifies every neighbor link is mutual, the invariant the
// spec names explicitly as a fatal internal-invariant example.
func (v *VertexFlute) CheckSymmetry() error {
	for i := range v.arena {
		if v.arena[i].tomb {
			continue
		}
		for _, n := range v.arena[i].neighbors {
			if !v.Active(n) {
				return rerr.Wrap(rerr.CategoryInternalInvariant, "edgeshift.CheckSymmetry", ErrInvalidHandle)
			}
			found := false
			for _, back := range v.arena[n].neighbors {
				if back == Handle(i) {
					found = true
					break
				}
			}
			if !found {
				return rerr.Wrap(rerr.CategoryInternalInvariant, "edgeshift.CheckSymmetry", ErrAsymmetricNeighbors)
			}
		}
	}
	return nil
}

// MergeVertex merges loser into survivor: survivor's neighbor list absorbs
// loser's (excluding the survivor itself), every third-party reference to
// loser is rewired to survivor, and loser is tombstoned. The survivor's
// identity (coordinate, kind) is preserved; loser's kind must not be Pin,
// since the spec's shifting pass only ever merges Steiner points.
func (v *VertexFlute) MergeVertex(survivor, loser Handle) error {
	if !v.Active(survivor) || !v.Active(loser) {
		return rerr.Wrap(rerr.CategoryInternalInvariant, "edgeshift.MergeVertex", ErrInvalidHandle)
	}
	if survivor == loser {
		return nil
	}
	if v.arena[loser].kind == Pin {
		return rerr.New(rerr.CategoryInternalInvariant, "edgeshift.MergeVertex", "refusing to merge away a pin")
	}

	for _, n := range v.arena[loser].neighbors {
		if n == survivor {
			v.unlink(loser, survivor)
			continue
		}
		v.unlink(loser, n)
		v.link(survivor, n)
	}
	v.arena[loser].neighbors = nil
	v.arena[loser].tomb = true
	v.free = append(v.free, loser)
	return nil
}

// MergeCoincident scans every active pair of vertices sharing a coordinate
// and merges the higher handle into the lower, preferring to keep a Pin as
// survivor when one side of the collision is a pin.
func (v *VertexFlute) MergeCoincident() error {
	byCoord := make(map[geom.Coordinate2D][]Handle)
	for i := range v.arena {
		if v.arena[i].tomb {
			continue
		}
		c := v.arena[i].coord
		byCoord[c] = append(byCoord[c], Handle(i))
	}
	for _, group := range byCoord {
		if len(group) < 2 {
			continue
		}
		survivor := group[0]
		for _, h := range group {
			if v.arena[h].kind == Pin {
				survivor = h
				break
			}
		}
		for _, h := range group {
			if h == survivor || v.arena[h].tomb {
				continue
			}
			if v.arena[h].kind == Pin {
				// Two distinct pins cannot legally occupy the same tile;
				// that is a malformed tree, not a mergeable collision.
				return rerr.New(rerr.CategoryInternalInvariant, "edgeshift.MergeCoincident",
					fmt.Sprintf("two pins coincide at %+v", v.arena[h].coord))
			}
			if err := v.MergeVertex(survivor, h); err != nil {
				return err
			}
		}
	}
	return nil
}

// Compact drops every tombstoned slot and renumbers the remaining vertices
// densely from 0, remapping every neighbor reference. It returns the new
// handle for each surviving old handle, in old-handle order, with
// InvalidHandle for slots that were tombstoned.
func (v *VertexFlute) Compact() []Handle {
	remap := make([]Handle, len(v.arena))
	newArena := make([]vertex, 0, len(v.arena))
	for i := range v.arena {
		if v.arena[i].tomb {
			remap[i] = InvalidHandle
			continue
		}
		remap[i] = Handle(len(newArena))
		newArena = append(newArena, v.arena[i])
	}
	for i := range newArena {
		remapped := make([]Handle, 0, len(newArena[i].neighbors))
		for _, n := range newArena[i].neighbors {
			if remap[n] != InvalidHandle {
				remapped = append(remapped, remap[n])
			}
		}
		newArena[i].neighbors = remapped
	}
	v.arena = newArena
	v.free = nil
	return remap
}
