package steiner

import (
	"strconv"

	"github.com/katalvlaran/groute/geom"
	"github.com/katalvlaran/groute/rerr"
	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/prim_kruskal"
)

// MSTOracle is the default Oracle: a 2-approximation of the rectilinear
// Steiner minimum tree built by running a minimum spanning tree over the
// complete graph on the pins, weighted by Manhattan distance. It introduces
// no Steiner points; its output tree has exactly Deg nodes, one per pin,
// which is a legal degenerate case of Tree.
//
// Any real RSMT solver can replace this by implementing Oracle; MSTOracle
// exists so the rest of the pipeline is exercisable without one.
type MSTOracle struct {
	// Method selects prim_kruskal's algorithm; the zero value defaults to
	// Kruskal, which needs no root vertex.
	Method string
}

// Compute builds the complete graph on pins and returns its MST as a
// degenerate Tree (pins only, no Steiner points).
func (o MSTOracle) Compute(pins []geom.Coordinate2D) (Tree, error) {
	if len(pins) < 2 {
		return Tree{}, rerr.Wrap(rerr.CategoryOracle, "steiner.MSTOracle.Compute", ErrTooFewPins)
	}

	g := core.NewGraph(core.WithDirected(false), core.WithWeighted())
	for i := range pins {
		if err := g.AddVertex(strconv.Itoa(i)); err != nil {
			return Tree{}, rerr.Wrap(rerr.CategoryInternalInvariant, "steiner.MSTOracle.Compute", err)
		}
	}
	for i := 0; i < len(pins); i++ {
		for j := i + 1; j < len(pins); j++ {
			w := int64(geom.ManhattanDist2D(pins[i], pins[j]))
			if _, err := g.AddEdge(strconv.Itoa(i), strconv.Itoa(j), w); err != nil {
				return Tree{}, rerr.Wrap(rerr.CategoryInternalInvariant, "steiner.MSTOracle.Compute", err)
			}
		}
	}

	method := o.Method
	if method == "" {
		method = prim_kruskal.MethodKruskal
	}
	mst, _, err := prim_kruskal.Compute(g, prim_kruskal.MSTOptions{Method: method, Root: "0"})
	if err != nil {
		return Tree{}, rerr.Wrap(rerr.CategoryOracle, "steiner.MSTOracle.Compute", err)
	}

	parent := make([]int, len(pins))
	for i := range parent {
		parent[i] = -1
	}
	children := make(map[int][]int, len(pins))
	for _, e := range mst {
		u, errU := strconv.Atoi(e.From)
		v, errV := strconv.Atoi(e.To)
		if errU != nil || errV != nil {
			return Tree{}, rerr.Wrap(rerr.CategoryInternalInvariant, "steiner.MSTOracle.Compute", errU)
		}
		children[u] = append(children[u], v)
		children[v] = append(children[v], u)
	}

	// Root the tree at pin 0 and orient parent links outward via BFS over
	// the adjacency built from MST edges.
	parent[0] = 0
	queue := []int{0}
	seen := make([]bool, len(pins))
	seen[0] = true
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range children[u] {
			if seen[v] {
				continue
			}
			seen[v] = true
			parent[v] = u
			queue = append(queue, v)
		}
	}

	branch := make([]Branch, len(pins))
	for i, p := range pins {
		branch[i] = Branch{Coordinate: p, Parent: parent[i]}
	}
	return Tree{Deg: len(pins), Branch: branch}, nil
}
