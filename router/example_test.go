package router_test

import (
	"fmt"

	"github.com/katalvlaran/groute/fixtures"
	"github.com/katalvlaran/groute/router"
	"github.com/katalvlaran/groute/steiner"
)

// Example routes a small fixture netlist end to end: an 8x8, two-layer
// region, three random nets, the default MST-based oracle, and the full
// stage-1/stage-2/post-process/KLAT pipeline. Every net in the input
// produces a route regardless of whether residual overflow remains, so the
// reported count always matches the netlist size.
func Example() {
	region, err := fixtures.Grid(8, 8, 2, fixtures.ConstantCapacity(4))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	nets, err := fixtures.RandomNets(region, 3, 3, 7)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	result, err := router.Run(region, nets, steiner.MSTOracle{}, router.WithIterationP2(20))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("routed nets:", len(result.Routes))
	// Output: routed nets: 3
}
