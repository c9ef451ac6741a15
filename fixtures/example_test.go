package fixtures_test

import (
	"fmt"

	"github.com/katalvlaran/groute/fixtures"
)

// ExampleGrid builds a small routing region and reports its dimensions and
// the per-edge capacity fixtures.Grid falls back to when none is supplied.
func ExampleGrid() {
	region, err := fixtures.Grid(4, 3, 2, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("X=%d Y=%d L=%d cap=%d\n", region.X, region.Y, region.L, region.Cap(0, 0, 0, 1, 0))
	// Output: X=4 Y=3 L=2 cap=2
}
