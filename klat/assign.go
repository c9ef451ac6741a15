package klat

import (
	"fmt"
	"math"

	"github.com/katalvlaran/groute/geom"
	"github.com/katalvlaran/groute/netlist"
	"github.com/katalvlaran/groute/rerr"
	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/dfs"
)

// Assign lifts one net's final 2-D tree (its committed two-pin elements)
// into a 3-D route, choosing a layer per tree edge and a via stack wherever
// two edges meeting at a node land on different layers. It is a tree DP,
// §4.8: the tree is rooted arbitrarily, walked in post order (built on
// dfs.DFS exactly as steiner.Validate already uses dfs/bfs to check oracle
// output), and each node combines its children's best layer choices against
// the candidate layer of its own edge to its parent via viaPenalty. Results
// are committed into m3d so later nets in sort order see this net's
// occupation.
func Assign(net netlist.Net, elems []netlist.TwoPinElement2D, m3d *Map3D, params Params) (Route, error) {
	if len(elems) == 0 {
		return Route{}, rerr.Wrap(rerr.CategoryInternalInvariant, "klat.Assign", ErrEmptyTree)
	}

	g, coordOf, pathOf, rootKey, err := buildTree(elems)
	if err != nil {
		return Route{}, err
	}

	result, err := dfs.DFS(g, rootKey)
	if err != nil {
		return Route{}, rerr.Wrap(rerr.CategoryInternalInvariant, "klat.Assign", err)
	}
	if len(result.Order) != len(g.Vertices()) {
		return Route{}, rerr.Wrap(rerr.CategoryInternalInvariant, "klat.Assign", ErrDisconnectedTree)
	}

	children := make(map[string][]string, len(result.Order))
	for _, v := range result.Order {
		if p, ok := result.Parent[v]; ok {
			children[p] = append(children[p], v)
		}
	}

	L := m3d.SizeL()
	val := make(map[string][]float64, len(result.Order))
	choice := make(map[string][][]int, len(result.Order)) // choice[node][z_p][childIdx] = zc

	edgeCostCache := make(map[string][]float64, len(result.Order))
	edgeCost := func(node string) ([]float64, error) {
		if c, ok := edgeCostCache[node]; ok {
			return c, nil
		}
		path := pathOf[edgeKey(node, result.Parent[node])]
		costs := make([]float64, L)
		for z := 0; z < L; z++ {
			total, err := sumEdgeCost(m3d, path, z, net.ID)
			if err != nil {
				return nil, err
			}
			costs[z] = total
		}
		edgeCostCache[node] = costs
		return costs, nil
	}

	// result.Order is post-order: every child appears before its parent.
	for _, node := range result.Order {
		kids := children[node]
		hasParent := node != rootKey

		nodeVal := make([]float64, L)
		nodeChoice := make([][]int, L)

		for zp := 0; zp < L; zp++ {
			var sum float64
			choices := make([]int, len(kids))
			for ci, c := range kids {
				best := math.Inf(1)
				bestZc := 0
				for zc := 0; zc < L; zc++ {
					viaPen, err := viaPenalty(m3d, coordOf[node], zp, zc, net.ID, params.ViaCostWeight)
					if err != nil {
						return Route{}, err
					}
					cand := val[c][zc] + viaPen
					if cand < best {
						best = cand
						bestZc = zc
					}
				}
				sum += best
				choices[ci] = bestZc
			}
			if hasParent {
				own, err := edgeCost(node)
				if err != nil {
					return Route{}, err
				}
				sum += own[zp]
			}
			nodeVal[zp] = sum
			nodeChoice[zp] = choices
		}
		val[node] = nodeVal
		choice[node] = nodeChoice
	}

	bestRootZ, bestRootVal := 0, math.Inf(1)
	for z, v := range val[rootKey] {
		if v < bestRootVal {
			bestRootVal = v
			bestRootZ = z
		}
	}

	route := Route{NetID: net.ID}
	var walk func(node string, z int) error
	walk = func(node string, z int) error {
		kids := children[node]
		for ci, c := range kids {
			zc := choice[node][z][ci]
			path := pathOf[edgeKey(node, c)]
			if err := commitSegment(m3d, path, zc, net.ID); err != nil {
				return err
			}
			route.Segments = append(route.Segments, PlaneSegment{Z: zc, Path: path})
			if zc != z {
				lo, hi := z, zc
				if lo > hi {
					lo, hi = hi, lo
				}
				if err := m3d.CommitVia(coordOf[node].X, coordOf[node].Y, lo, hi, net.ID); err != nil {
					return err
				}
				route.Vias = append(route.Vias, ViaStack{X: coordOf[node].X, Y: coordOf[node].Y, ZMin: lo, ZMax: hi})
			}
			if err := walk(c, zc); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(rootKey, bestRootZ); err != nil {
		return Route{}, err
	}
	return route, nil
}

// buildTree builds the graph of distinct coordinates touched by elems,
// one vertex per coordinate and one edge per two-pin element, so the DP can
// walk it with dfs.DFS on the same core.Graph representation that
// steiner.Validate builds for oracle output.
func buildTree(elems []netlist.TwoPinElement2D) (g *core.Graph, coordOf map[string]geom.Coordinate2D, pathOf map[[2]string][]geom.Coordinate2D, root string, err error) {
	g = core.NewGraph(core.WithDirected(false))
	coordOf = make(map[string]geom.Coordinate2D, len(elems)*2)
	pathOf = make(map[[2]string][]geom.Coordinate2D, len(elems))

	key := func(c geom.Coordinate2D) string { return fmt.Sprintf("%d,%d", c.X, c.Y) }

	addVertex := func(c geom.Coordinate2D) string {
		k := key(c)
		if _, ok := coordOf[k]; !ok {
			coordOf[k] = c
			_ = g.AddVertex(k)
		}
		return k
	}

	for _, e := range elems {
		a := addVertex(e.Pin1)
		b := addVertex(e.Pin2)
		if _, err := g.AddEdge(a, b, 0); err != nil {
			return nil, nil, nil, "", rerr.Wrap(rerr.CategoryInternalInvariant, "klat.buildTree", err)
		}
		path := e.Path
		if len(path) == 0 {
			path = []geom.Coordinate2D{e.Pin1, e.Pin2}
		}
		pathOf[edgeKey(a, b)] = path
		pathOf[edgeKey(b, a)] = reversePath(path)
	}
	root = key(elems[0].Pin1)
	return g, coordOf, pathOf, root, nil
}

func edgeKey(a, b string) [2]string { return [2]string{a, b} }

func reversePath(p []geom.Coordinate2D) []geom.Coordinate2D {
	out := make([]geom.Coordinate2D, len(p))
	for i, c := range p {
		out[len(p)-1-i] = c
	}
	return out
}

// sumEdgeCost sums the marginal congestion cost of routing netID along path
// entirely on layer z.
func sumEdgeCost(m3d *Map3D, path []geom.Coordinate2D, z int, netID string) (float64, error) {
	var total float64
	for i := 0; i+1 < len(path); i++ {
		dir, err := geom.DirectionBetween(path[i], path[i+1])
		if err != nil {
			return 0, rerr.Wrap(rerr.CategoryInternalInvariant, "klat.sumEdgeCost", err)
		}
		c, err := m3d.EdgeCost(path[i].X, path[i].Y, z, dir, netID)
		if err != nil {
			return 0, err
		}
		total += c
	}
	return total, nil
}

func commitSegment(m3d *Map3D, path []geom.Coordinate2D, z int, netID string) error {
	for i := 0; i+1 < len(path); i++ {
		dir, err := geom.DirectionBetween(path[i], path[i+1])
		if err != nil {
			return rerr.Wrap(rerr.CategoryInternalInvariant, "klat.commitSegment", err)
		}
		if err := m3d.CommitEdge(path[i].X, path[i].Y, z, dir, netID); err != nil {
			return err
		}
	}
	return nil
}

// viaPenalty is viaPenalty(d) = d*via_cost_weight + viasOverflowing(path
// from z1 to z2 at (x,y)), the spec's combination-rule term for switching
// layers at a shared tree node.
func viaPenalty(m3d *Map3D, at geom.Coordinate2D, z1, z2 int, netID string, weight float64) (float64, error) {
	if z1 == z2 {
		return 0, nil
	}
	d := z1 - z2
	if d < 0 {
		d = -d
	}
	overflowing, err := m3d.ViasOverflowing(at.X, at.Y, z1, z2, netID)
	if err != nil {
		return 0, err
	}
	return float64(d)*weight + float64(overflowing), nil
}
