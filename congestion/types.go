// Package congestion implements the per-edge capacity/usage/history map and
// its two cost functions (FASTROUTE_COST for stage 1, HISTORY_COST for
// stage 2), stored on the same dense-plane idiom as gridplane.
//
// insertNet and removeNet are declared the only legal mutators of cur_cap;
// every other accessor is read-only, which keeps the invariant
// cur_cap == len(used_net) (one unit per distinct net) mechanically
// checkable in tests.
package congestion

// Edge2D is one routing edge's capacity, usage, and history state.
//
// Invariants (see spec's testable properties): CurCap equals the number of
// entries in UsedNet (distinct nets on the edge); an entry is deleted
// from UsedNet the instant it reaches zero; History never decreases.
type Edge2D struct {
	MaxCap  int
	CurCap  float64
	History int
	UsedNet map[string]int

	// preCost caches the last cost computed for this edge by PreEvaluate or
	// PreEvaluateAll. Only PreEvaluate reads it; Cost2D evaluates the active
	// cost function afresh on every call.
	preCost float64
	preSet  bool
}

// Overflow reports max(0, CurCap - MaxCap), the unsigned demand surplus.
func (e *Edge2D) Overflow() float64 {
	of := e.CurCap - float64(e.MaxCap)
	if of < 0 {
		return 0
	}
	return of
}

// Uses returns how many of net's sub-paths currently cross this edge.
func (e *Edge2D) Uses(netID string) int {
	if e.UsedNet == nil {
		return 0
	}
	return e.UsedNet[netID]
}
