package klat

import (
	"sort"

	"github.com/katalvlaran/groute/netlist"
)

// SortNetOrder orders nets for layer assignment: higher-degree nets first
// (more branch points to lock in good via choices for), then larger
// bounding box, then higher overflow contribution, so the nets most likely
// to need scarce layer capacity are committed to Map3D before smaller nets
// that can more easily yield. overflowByNet may be nil or incomplete;
// missing entries sort as zero.
func SortNetOrder(nets []netlist.Net, overflowByNet map[string]float64) []netlist.Net {
	out := make([]netlist.Net, len(nets))
	copy(out, nets)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Degree() != b.Degree() {
			return a.Degree() > b.Degree()
		}
		aw, ah := a.BoundingBox()
		bw, bh := b.BoundingBox()
		if (aw + ah) != (bw + bh) {
			return (aw + ah) > (bw + bh)
		}
		if overflowByNet[a.ID] != overflowByNet[b.ID] {
			return overflowByNet[a.ID] > overflowByNet[b.ID]
		}
		return a.ID < b.ID
	})
	return out
}
