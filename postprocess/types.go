package postprocess

// Params configures the post-processing passes.
type Params struct {
	// Passes is the maximum number of additional passes to run.
	Passes int

	// BoxSizeStart and BoxSizeGrow size each pass's windows, per side,
	// widening further than stage 2 ever reached.
	BoxSizeStart int
	BoxSizeGrow  int

	// HistoryCapK is the history-cost exponent used for every pass,
	// deliberately capped below where stage 2's cooling schedule could
	// drive it, so a bad local decision doesn't become unrecoverable.
	HistoryCapK float64

	// SmallComponentMaxTiles is the window tile-count threshold below
	// which a window is solved exactly via dijkstra instead of the maze
	// router.
	SmallComponentMaxTiles int
}

// DefaultParams picks a schedule that starts where stage 2 left off and
// widens aggressively, since post-processing only runs at all when stage 2
// has already given up.
func DefaultParams() Params {
	return Params{
		Passes:                 4,
		BoxSizeStart:           8,
		BoxSizeGrow:            4,
		HistoryCapK:            2,
		SmallComponentMaxTiles: 64,
	}
}

// PassLog records one pass's resulting overflow, for callers inspecting
// convergence.
type PassLog struct {
	Pass     int
	BoxSize  int
	Overflow float64
}
