// Package stage2 drives the outer rip-up/reroute loop: each iteration
// raises the congestion map's history weight, widens the range router's
// window size, reroutes every overflowed window's elements through the
// maze router, and stops once overflow reaches zero or the configured
// threshold, or the iteration cap is hit.
package stage2

import "math"

// Params configures one stage-2 run. MaxIter, OverflowThreshold, and
// BoxSizeIncP2 are caller-supplied inputs per the spec; InitialBoxSize
// seeds BOXSIZE_INC before the first iteration's growth.
type Params struct {
	MaxIter           int
	OverflowThreshold float64
	InitialBoxSize    int
	BoxSizeIncP2      int
}

// DefaultParams mirrors the schedule's own suggested shape: a generous
// iteration cap, zero-tolerance overflow threshold, and a modest starting
// window that grows by one tile per side every iteration.
func DefaultParams() Params {
	return Params{
		MaxIter:           50,
		OverflowThreshold: 0,
		InitialBoxSize:    4,
		BoxSizeIncP2:      1,
	}
}

// IterationLog records one iteration's cooling-schedule values and the
// resulting overflow, for callers that want to inspect convergence.
type IterationLog struct {
	Iteration int
	Factor    float64
	WLCost    float64
	ViaCost   int
	Adjust    float64
	BoxSize   int
	Overflow  float64
}

// cooling computes the schedule's four derived quantities for a given
// iteration number, exactly as specified: factor decays from ~1 toward 0 as
// iter grows, wl_cost mirrors it directly, via_cost is its floor-scaled
// integer form, and adjust grows roughly linearly with iter.
func cooling(iter int) (factor, wlCost float64, viaCost int, adjust float64) {
	factor = 1 - math.Exp(-5*math.Exp(-0.1*float64(iter)))
	wlCost = factor
	viaCost = int(math.Floor(4 * factor))
	adjust = float64(iter) * (1.25 + 3*factor)
	return
}
