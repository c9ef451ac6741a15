package fixtures

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/groute/geom"
	"github.com/katalvlaran/groute/netlist"
)

const minNetDegree = 2

// netIDFmt mirrors builder's DefaultIDFn decimal scheme, prefixed so net IDs
// never collide with a caller's own naming.
const netIDFmt = "net%d"

// RandomNets scatters n nets of degree uniform in [2,maxDeg] across region,
// each pin drawn independently and uniformly from the region's tiles.
// Mirrors builder.RandomSparse's Bernoulli-trial idiom: a single seeded
// *rand.Rand drives every draw in a fixed, deterministic trial order, so the
// same (region, n, maxDeg, seed) always yields the same nets.
//
// Degenerate draws are possible and intentional: two pins may coincide. A
// net whose pins all coincide has no non-degenerate segment, and
// decompose.TwoPinElements returns an error for it. Callers that need
// non-degenerate nets should filter the result.
func RandomNets(region *netlist.Region, n, maxDeg int, seed int64) ([]netlist.Net, error) {
	if n < 1 {
		return nil, fmt.Errorf("fixtures.RandomNets: n=%d: %w", n, ErrTooFewNets)
	}
	if maxDeg < minNetDegree {
		return nil, fmt.Errorf("fixtures.RandomNets: maxDeg=%d: %w", maxDeg, ErrDegreeTooSmall)
	}

	rng := rand.New(rand.NewSource(seed))
	nets := make([]netlist.Net, n)
	for i := 0; i < n; i++ {
		deg := minNetDegree
		if maxDeg > minNetDegree {
			deg += rng.Intn(maxDeg - minNetDegree + 1)
		}
		pins := make([]geom.Coordinate2D, deg)
		for j := 0; j < deg; j++ {
			pins[j] = geom.Coordinate2D{X: rng.Intn(region.X), Y: rng.Intn(region.Y)}
		}
		nets[i] = netlist.Net{ID: fmt.Sprintf(netIDFmt, i), Pins: pins}
	}
	return nets, nil
}
