package postprocess

import (
	"sort"

	"github.com/katalvlaran/groute/congestion"
	"github.com/katalvlaran/groute/geom"
	"github.com/katalvlaran/groute/maze"
	"github.com/katalvlaran/groute/netlist"
	"github.com/katalvlaran/groute/rangerouter"
)

func bbox(e *netlist.TwoPinElement2D) (minX, minY, maxX, maxY int) {
	minX, maxX = e.Pin1.X, e.Pin2.X
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY, maxY = e.Pin1.Y, e.Pin2.Y
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	return
}

func intersects(e *netlist.TwoPinElement2D, w rangerouter.Window) bool {
	minX, minY, maxX, maxY := bbox(e)
	return minX < w.MaxX && maxX >= w.MinX && minY < w.MaxY && maxY >= w.MinY
}

func tileCount(w rangerouter.Window) int {
	return (w.MaxX - w.MinX) * (w.MaxY - w.MinY)
}

// Run drives the post-processing passes described by §4.9. It returns the
// final overflow and a log entry per pass, stopping early once overflow
// reaches zero.
func Run(m *congestion.Map, elems []*netlist.TwoPinElement2D, params Params) (finalOverflow float64, log []PassLog) {
	boxSize := params.BoxSizeStart
	if boxSize < 1 {
		boxSize = 1
	}

	for pass := 1; pass <= params.Passes; pass++ {
		m.SetCostFunc(congestion.HistoryCost{K: params.HistoryCapK})
		m.PreEvaluateAll()

		windows := rangerouter.Partition(m, boxSize)
		for _, w := range windows {
			var inWindow []*netlist.TwoPinElement2D
			for _, e := range elems {
				if intersects(e, w) {
					inWindow = append(inWindow, e)
				}
			}
			sort.SliceStable(inWindow, func(i, j int) bool {
				return len(inWindow[i].Path) < len(inWindow[j].Path)
			})

			bounds := maze.Bounds{MinX: w.MinX, MinY: w.MinY, MaxX: w.MaxX, MaxY: w.MaxY}
			if tileCount(w) <= params.SmallComponentMaxTiles {
				for _, e := range inWindow {
					if newPath, repaired, err := repairExact(m, e.NetID, e.Path, bounds); err == nil && repaired {
						e.Path = newPath
					}
				}
				continue
			}
			for _, e := range inWindow {
				newPath, found, err := maze.Reroute(m, e.NetID, e.Path,
					[]geom.Coordinate2D{e.Pin1}, []geom.Coordinate2D{e.Pin2}, bounds)
				if err == nil && found {
					e.Path = newPath
				}
			}
		}

		of := m.MaxOverflow()
		log = append(log, PassLog{Pass: pass, BoxSize: boxSize, Overflow: of})
		finalOverflow = of
		if of == 0 {
			break
		}
		boxSize += params.BoxSizeGrow
	}
	return finalOverflow, log
}
