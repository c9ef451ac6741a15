package steiner

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/groute/rerr"
	"github.com/katalvlaran/lvlath/bfs"
	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/dfs"
)

// Validate checks an oracle's output against the structural contract: a
// sane branch count, in-range parent indices, exactly one self-parenting
// root, and parent links that form a single connected, cycle-free tree. Any
// violation is wrapped as a rerr.CategoryOracle error, since a malformed
// Steiner tree always traces back to the external oracle, never to this
// module's own state.
func Validate(t Tree) error {
	if t.Deg < 2 {
		return rerr.Wrap(rerr.CategoryOracle, "steiner.Validate", ErrTooFewPins)
	}
	n := len(t.Branch)
	if n < t.Deg || n > MaxNodes(t.Deg) {
		return rerr.Wrap(rerr.CategoryOracle, "steiner.Validate", ErrBadBranchCount)
	}

	g := core.NewGraph(core.WithDirected(false))
	for i := 0; i < n; i++ {
		if err := g.AddVertex(strconv.Itoa(i)); err != nil {
			return rerr.Wrap(rerr.CategoryInternalInvariant, "steiner.Validate", err)
		}
	}

	root := -1
	for i, b := range t.Branch {
		if b.Parent < 0 || b.Parent >= n {
			return rerr.Wrap(rerr.CategoryOracle, "steiner.Validate", ErrBadParentIndex)
		}
		if b.Parent == i {
			if root != -1 {
				return rerr.Wrap(rerr.CategoryOracle, "steiner.Validate", ErrMultipleRoots)
			}
			root = i
			continue
		}
		if _, err := g.AddEdge(strconv.Itoa(i), strconv.Itoa(b.Parent), 0); err != nil {
			return rerr.Wrap(rerr.CategoryInternalInvariant, "steiner.Validate", err)
		}
	}
	if root == -1 {
		return rerr.Wrap(rerr.CategoryOracle, "steiner.Validate", ErrNoRoot)
	}

	hasCycle, _, err := dfs.DetectCycles(g)
	if err != nil {
		return rerr.Wrap(rerr.CategoryInternalInvariant, "steiner.Validate", err)
	}
	if hasCycle {
		return rerr.Wrap(rerr.CategoryOracle, "steiner.Validate", ErrNotATree)
	}

	result, err := bfs.BFS(g, strconv.Itoa(root))
	if err != nil {
		return rerr.Wrap(rerr.CategoryInternalInvariant, "steiner.Validate", err)
	}
	if len(result.Order) != n {
		return rerr.Wrap(rerr.CategoryOracle, "steiner.Validate",
			fmt.Errorf("%w: reached %d of %d nodes", ErrNotATree, len(result.Order), n))
	}
	return nil
}
