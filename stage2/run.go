package stage2

import (
	"sort"

	"github.com/katalvlaran/groute/congestion"
	"github.com/katalvlaran/groute/geom"
	"github.com/katalvlaran/groute/maze"
	"github.com/katalvlaran/groute/netlist"
	"github.com/katalvlaran/groute/rangerouter"
)

func bbox(e *netlist.TwoPinElement2D) (minX, minY, maxX, maxY int) {
	minX, maxX = e.Pin1.X, e.Pin1.X
	minY, maxY = e.Pin1.Y, e.Pin1.Y
	if e.Pin2.X < minX {
		minX = e.Pin2.X
	}
	if e.Pin2.X > maxX {
		maxX = e.Pin2.X
	}
	if e.Pin2.Y < minY {
		minY = e.Pin2.Y
	}
	if e.Pin2.Y > maxY {
		maxY = e.Pin2.Y
	}
	return
}

func bboxSize(e *netlist.TwoPinElement2D) int {
	minX, minY, maxX, maxY := bbox(e)
	return (maxX - minX) + (maxY - minY)
}

func intersectsWindow(e *netlist.TwoPinElement2D, w rangerouter.Window) bool {
	minX, minY, maxX, maxY := bbox(e)
	return minX < w.MaxX && maxX >= w.MinX && minY < w.MaxY && maxY >= w.MinY
}

// runOneIteration partitions m into windows sized boxSize per side and
// reroutes, in strictly sequential descending-overflow window order, every
// element whose bounding box intersects the window; within a window,
// elements are attempted smallest bounding box first.
func runOneIteration(m *congestion.Map, elems []*netlist.TwoPinElement2D, boxSize int) {
	windows := rangerouter.Partition(m, boxSize)
	for _, w := range windows {
		var inWindow []*netlist.TwoPinElement2D
		for _, e := range elems {
			if intersectsWindow(e, w) {
				inWindow = append(inWindow, e)
			}
		}
		sort.SliceStable(inWindow, func(i, j int) bool {
			return bboxSize(inWindow[i]) < bboxSize(inWindow[j])
		})

		bounds := maze.Bounds{MinX: w.MinX, MinY: w.MinY, MaxX: w.MaxX, MaxY: w.MaxY}
		for _, e := range inWindow {
			newPath, found, err := maze.Reroute(m, e.NetID, e.Path,
				[]geom.Coordinate2D{e.Pin1}, []geom.Coordinate2D{e.Pin2}, bounds)
			if err != nil || !found {
				continue
			}
			e.Path = newPath
		}
	}
}

// Run drives the outer iteration loop described by the cooling schedule
// until overflow reaches zero, falls to or below params.OverflowThreshold,
// or params.MaxIter is exhausted. It returns the final overflow value and a
// log entry per iteration actually run.
func Run(m *congestion.Map, elems []*netlist.TwoPinElement2D, params Params) (finalOverflow float64, log []IterationLog) {
	boxSize := params.InitialBoxSize
	if boxSize < 1 {
		boxSize = 1
	}

	for iter := 1; iter <= params.MaxIter; iter++ {
		factor, wlCost, viaCost, adjust := cooling(iter)
		m.SetCostFunc(congestion.HistoryCost{K: 1 + adjust})
		m.PreEvaluateAll()

		runOneIteration(m, elems, boxSize)

		of := m.MaxOverflow()
		log = append(log, IterationLog{
			Iteration: iter,
			Factor:    factor,
			WLCost:    wlCost,
			ViaCost:   viaCost,
			Adjust:    adjust,
			BoxSize:   boxSize,
			Overflow:  of,
		})
		finalOverflow = of

		if of == 0 || of <= params.OverflowThreshold {
			break
		}
		boxSize += params.BoxSizeIncP2
	}
	return finalOverflow, log
}
