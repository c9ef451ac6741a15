// Package router wires the engine's components end to end: RSMT oracle,
// two-pin decomposition, L-shape pattern routing, edge shifting, the
// stage-2 rip-up/reroute loop, post-processing, and KLAT layer assignment,
// behind a single Run entry point. Configuration follows the
// functional-options idiom dijkstra.Option/bfs.Option/dfs.Option already
// use in this module: option constructors panic on a structurally invalid
// value (e.g. a negative iteration cap), while a value that is only
// invalid in combination with another option is caught once, by
// NewParams, and returned as a config error.
package router

import (
	"github.com/katalvlaran/groute/klat"
	"github.com/katalvlaran/groute/postprocess"
	"github.com/katalvlaran/groute/rerr"
	"github.com/katalvlaran/groute/stage2"
)

// Params configures one Run. It mirrors the external-interface routing
// parameters: iteration_p2, init_box_size_p2, box_size_inc_p2,
// overflow_threshold, monotonic_en, and the IBM_CASE build flag.
type Params struct {
	// IterationP2 is stage 2's maximum outer-iteration count.
	IterationP2 int

	// InitBoxSizeP2 and BoxSizeIncP2 seed and grow stage 2's window size,
	// per side, every iteration.
	InitBoxSizeP2 int
	BoxSizeIncP2  int

	// OverflowThreshold lets stage 2 stop once overflow falls to or below
	// this value, rather than insisting on exactly zero.
	OverflowThreshold float64

	// MonotonicEnabled, when true, skips the edge-shifting pass and routes
	// every two-pin element with a single monotone L-shape directly off
	// the RSMT oracle's tree; when false (the default), edge shifting runs
	// first to locally relax congestion before L-shape commits a path.
	MonotonicEnabled bool

	// IBMCase disables wire-spacing capacity halving regardless of the
	// routing region's own WireSpacing flag, mirroring the original
	// build-time IBM_CASE switch (full capacity, no halving).
	IBMCase bool

	// RunPostProcess gates whether Run invokes postprocess.Run after stage
	// 2 terminates with residual overflow. Default true.
	RunPostProcess bool

	// RunAudit gates whether Run calls auditor.CheckNet on every net's
	// final 2-D route before layer assignment. Default true; callers
	// racing against a very large netlist may disable it.
	RunAudit bool

	postprocessParams postprocess.Params
	klatParams        klat.Params
}

// Option configures a Params value.
type Option func(*Params)

// WithIterationP2 sets stage 2's iteration cap. Panics if n is not
// positive.
func WithIterationP2(n int) Option {
	if n <= 0 {
		panic("router: IterationP2 must be positive")
	}
	return func(p *Params) { p.IterationP2 = n }
}

// WithInitBoxSizeP2 sets stage 2's starting window size, per side. Panics
// if n is not positive.
func WithInitBoxSizeP2(n int) Option {
	if n <= 0 {
		panic("router: InitBoxSizeP2 must be positive")
	}
	return func(p *Params) { p.InitBoxSizeP2 = n }
}

// WithBoxSizeIncP2 sets stage 2's per-iteration window growth. Panics if n
// is negative.
func WithBoxSizeIncP2(n int) Option {
	if n < 0 {
		panic("router: BoxSizeIncP2 must be non-negative")
	}
	return func(p *Params) { p.BoxSizeIncP2 = n }
}

// WithOverflowThreshold sets the overflow value at or below which stage 2
// may stop early. Panics if negative.
func WithOverflowThreshold(v float64) Option {
	if v < 0 {
		panic("router: OverflowThreshold must be non-negative")
	}
	return func(p *Params) { p.OverflowThreshold = v }
}

// WithMonotonicEnabled toggles the edge-shifting pass.
func WithMonotonicEnabled(enabled bool) Option {
	return func(p *Params) { p.MonotonicEnabled = enabled }
}

// WithIBMCase toggles the no-wire-spacing build flag.
func WithIBMCase(enabled bool) Option {
	return func(p *Params) { p.IBMCase = enabled }
}

// WithPostProcess toggles the post-processing pass.
func WithPostProcess(enabled bool) Option {
	return func(p *Params) { p.RunPostProcess = enabled }
}

// WithAudit toggles the per-net connectivity audit.
func WithAudit(enabled bool) Option {
	return func(p *Params) { p.RunAudit = enabled }
}

// defaultParams mirrors stage2.DefaultParams and postprocess.DefaultParams,
// scaled to the external-interface names.
func defaultParams() Params {
	sp := stage2.DefaultParams()
	return Params{
		IterationP2:       sp.MaxIter,
		InitBoxSizeP2:     sp.InitialBoxSize,
		BoxSizeIncP2:      sp.BoxSizeIncP2,
		OverflowThreshold: sp.OverflowThreshold,
		MonotonicEnabled:  false,
		IBMCase:           false,
		RunPostProcess:    true,
		RunAudit:          true,
		postprocessParams: postprocess.DefaultParams(),
		klatParams:        klat.DefaultParams(),
	}
}

// NewParams builds a validated Params from the defaults plus opts,
// returning a CategoryConfig error for any cross-field invalidity: currently
// a positive OverflowThreshold combined with IterationP2 <= 0.
func NewParams(opts ...Option) (Params, error) {
	p := defaultParams()
	for _, opt := range opts {
		opt(&p)
	}
	if p.OverflowThreshold > 0 && p.IterationP2 <= 0 {
		return Params{}, rerr.New(rerr.CategoryConfig, "router.NewParams",
			"OverflowThreshold set without any stage-2 iterations to reach it")
	}
	return p, nil
}

// Result is Run's output envelope: the 3-D route per net, the final
// overflow count, the number of stage-2 iterations actually run, and a
// RoutingFailure flag set when overflow remains after post-processing.
type Result struct {
	Routes         map[string]klat.Route
	FinalOverflow  float64
	IterationsRun  int
	RoutingFailure bool
	Stage2Log      []stage2.IterationLog
	PostProcessLog []postprocess.PassLog
}
