package router

import (
	"github.com/katalvlaran/groute/auditor"
	"github.com/katalvlaran/groute/congestion"
	"github.com/katalvlaran/groute/decompose"
	"github.com/katalvlaran/groute/edgeshift"
	"github.com/katalvlaran/groute/geom"
	"github.com/katalvlaran/groute/klat"
	"github.com/katalvlaran/groute/lshape"
	"github.com/katalvlaran/groute/netlist"
	"github.com/katalvlaran/groute/postprocess"
	"github.com/katalvlaran/groute/rerr"
	"github.com/katalvlaran/groute/stage2"
	"github.com/katalvlaran/groute/steiner"
)

// Run drives the full pipeline over region and nets using oracle as the
// RSMT primitive: stage 1 (oracle → edge shift → decomposition → L-shape)
// builds the initial 2-D solution, stage 2 rips up and reroutes overflowed
// windows, post-processing attacks any residual overflow, the connectivity
// auditor checks every net's final route, and KLAT lifts the result to a
// 3-D route per net.
func Run(region *netlist.Region, nets []netlist.Net, oracle steiner.Oracle, opts ...Option) (*Result, error) {
	if region == nil {
		return nil, rerr.Wrap(rerr.CategoryConfig, "router.Run", ErrNilRegion)
	}
	if oracle == nil {
		return nil, rerr.Wrap(rerr.CategoryConfig, "router.Run", ErrNilOracle)
	}
	if len(nets) == 0 {
		return nil, rerr.Wrap(rerr.CategoryConfig, "router.Run", ErrNoNets)
	}
	for _, n := range nets {
		if err := region.ValidateNet(n); err != nil {
			return nil, err
		}
	}

	params, err := NewParams(opts...)
	if err != nil {
		return nil, err
	}

	m, err := congestion.NewMap(region.X, region.Y, regionCapFn2D(region, params.IBMCase))
	if err != nil {
		return nil, err
	}

	var allElems []netlist.TwoPinElement2D
	netSpan := make(map[string][2]int, len(nets))
	shiftBounds := edgeshift.Bounds{MaxX: region.X, MaxY: region.Y}

	for _, net := range nets {
		tree, err := oracle.Compute(net.Pins)
		if err != nil {
			return nil, rerr.Wrap(rerr.CategoryOracle, "router.Run", err)
		}
		if !params.MonotonicEnabled {
			tree, err = edgeshift.Pass(tree, m, net.ID, shiftBounds)
			if err != nil {
				return nil, err
			}
		}
		elems, err := decompose.TwoPinElements(net.ID, tree)
		if err != nil {
			return nil, err
		}
		for i := range elems {
			elems[i], err = lshape.Route(m, elems[i])
			if err != nil {
				return nil, err
			}
		}
		start := len(allElems)
		allElems = append(allElems, elems...)
		netSpan[net.ID] = [2]int{start, len(allElems)}
	}
	// End of stage 1: record history on every edge stage 1 left overflowed.
	m.MaxOverflow()

	ptrs := make([]*netlist.TwoPinElement2D, len(allElems))
	for i := range allElems {
		ptrs[i] = &allElems[i]
	}

	stage2Params := stage2.Params{
		MaxIter:           params.IterationP2,
		OverflowThreshold: params.OverflowThreshold,
		InitialBoxSize:    params.InitBoxSizeP2,
		BoxSizeIncP2:      params.BoxSizeIncP2,
	}
	finalOverflow, stage2Log := stage2.Run(m, ptrs, stage2Params)

	var ppLog []postprocess.PassLog
	if params.RunPostProcess && finalOverflow > 0 {
		finalOverflow, ppLog = postprocess.Run(m, ptrs, params.postprocessParams)
	}

	overflowByNet := make(map[string]float64, len(nets))
	for _, net := range nets {
		span := netSpan[net.ID]
		overflowByNet[net.ID] = netOverflow(m, allElems[span[0]:span[1]])
	}

	if params.RunAudit {
		for _, net := range nets {
			span := netSpan[net.ID]
			if err := auditor.CheckNet(net, allElems[span[0]:span[1]]); err != nil {
				return nil, err
			}
		}
	}

	m3d, err := klat.NewMap3D(region.X, region.Y, region.L,
		regionLayerCapFn(region), constantViaCapFn(defaultViaCapacity))
	if err != nil {
		return nil, err
	}

	routes := make(map[string]klat.Route, len(nets))
	for _, net := range klat.SortNetOrder(nets, overflowByNet) {
		span := netSpan[net.ID]
		route, err := klat.Assign(net, allElems[span[0]:span[1]], m3d, params.klatParams)
		if err != nil {
			return nil, err
		}
		routes[net.ID] = route
	}

	return &Result{
		Routes:         routes,
		FinalOverflow:  finalOverflow,
		IterationsRun:  len(stage2Log),
		RoutingFailure: finalOverflow > 0,
		Stage2Log:      stage2Log,
		PostProcessLog: ppLog,
	}, nil
}

// defaultViaCapacity bounds how many nets may share a single via slot when
// the caller supplies no region-specific via capacity; it is generous
// enough that via placement is driven by viaPenalty's cost term rather
// than by artificial scarcity.
const defaultViaCapacity = 4

func constantViaCapFn(cap int) klat.ViaCapacityFunc {
	return func(_, _, _ int) int { return cap }
}

// regionLayerCapFn adapts a Region's per-layer capacity function to KLAT's
// LayerCapacityFunc shape, which asks for one layer at a time rather than
// the 2-D map's layer-summed total.
func regionLayerCapFn(region *netlist.Region) klat.LayerCapacityFunc {
	return func(layer, x, y int, dir geom.Direction) int {
		here := geom.Coordinate2D{X: x, Y: y}
		there, err := here.Step(dir)
		if err != nil {
			return 0
		}
		return region.Cap(layer, here.X, here.Y, there.X, there.Y)
	}
}

// regionCapFn2D sums a Region's per-layer capacity into the single
// congestion.CapacityFunc the 2-D map needs, honoring IBMCase's override of
// the region's own WireSpacing flag.
func regionCapFn2D(region *netlist.Region, ibmCase bool) congestion.CapacityFunc {
	return func(x, y int, dir geom.Direction) int {
		here := geom.Coordinate2D{X: x, Y: y}
		there, err := here.Step(dir)
		if err != nil {
			return 0
		}
		total := 0
		for layer := 0; layer < region.L; layer++ {
			total += region.Cap(layer, here.X, here.Y, there.X, there.Y)
		}
		if region.WireSpacing && !ibmCase {
			total /= 2
		}
		return total
	}
}

// netOverflow sums Overflow() over every edge a net's committed two-pin
// paths cross, for klat.SortNetOrder's tie-break.
func netOverflow(m *congestion.Map, elems []netlist.TwoPinElement2D) float64 {
	var total float64
	for _, e := range elems {
		for i := 0; i+1 < len(e.Path); i++ {
			dir, err := geom.DirectionBetween(e.Path[i], e.Path[i+1])
			if err != nil {
				continue
			}
			edge, err := m.Edge(e.Path[i].X, e.Path[i].Y, dir)
			if err != nil {
				continue
			}
			total += edge.Overflow()
		}
	}
	return total
}
