package congestion

import "math"

// CostFunc is the capability the spec calls for in place of a switch on a
// used_cost_flag: one operation, polymorphic over the stage-1 and stage-2
// variants, so the L-pattern router and the maze router depend on the
// interface rather than on which stage is currently running.
type CostFunc interface {
	// Evaluate returns the marginal routing cost of one more net crossing
	// edge e, plus the unit distance contribution (always 1 for a single
	// grid edge; callers sum these across a path).
	Evaluate(e *Edge2D) (cost float64, unitDistance float64)
}

// FastRouteCost implements FASTROUTE_COST: cost = cur_cap - max_cap + 1,
// clipped at 0 below. It is a convex penalty that turns positive only once
// an edge is at or past capacity, used during stage 1's L-pattern pass.
type FastRouteCost struct{}

func (FastRouteCost) Evaluate(e *Edge2D) (float64, float64) {
	cost := e.CurCap - float64(e.MaxCap) + 1
	if cost < 0 {
		cost = 0
	}
	return cost, 1
}

// HistoryCost implements HISTORY_COST: cost = (cur_cap/max_cap + 1)^K *
// history. K rises across stage-2 iterations per the cooling schedule,
// making history increasingly dominant as rip-up/reroute progresses.
type HistoryCost struct {
	K float64
}

func (h HistoryCost) Evaluate(e *Edge2D) (float64, float64) {
	if e.MaxCap == 0 {
		return math.Inf(1), 1
	}
	base := e.CurCap/float64(e.MaxCap) + 1
	cost := math.Pow(base, h.K) * float64(e.History)
	return cost, 1
}
