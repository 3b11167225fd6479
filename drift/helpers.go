package drift

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/gazefix/geom"
)

// clonePoints copies the working coordinate array so strategies never
// mutate the caller's slice.
func clonePoints(xy []geom.Point) []geom.Point {
	return append([]geom.Point(nil), xy...)
}

// meanY returns the mean y-value of the points.
//
// Contract: len(xy) ≥ 1.
func meanY(xy []geom.Point) float64 {
	ys := make([]float64, len(xy))
	for i, p := range xy {
		ys[i] = p.Y
	}

	return stat.Mean(ys, nil)
}

// nearestLine returns the index of the line y-position closest to y,
// lowest index on ties.
//
// Complexity: O(m).
func nearestLine(y float64, lineY []float64) int {
	best, bestDist := 0, math.Inf(1)
	for i, ly := range lineY {
		if d := math.Abs(ly - y); d < bestDist {
			best, bestDist = i, d
		}
	}

	return best
}

// xDiffs returns the successive horizontal displacements Δx[i] =
// x[i+1] − x[i]. Large negative values are return-sweep candidates.
func xDiffs(xy []geom.Point) []float64 {
	if len(xy) < 2 {
		return nil
	}
	diffs := make([]float64, len(xy)-1)
	for i := 1; i < len(xy); i++ {
		diffs[i-1] = xy[i].X - xy[i-1].X
	}

	return diffs
}

// ascendingOrder returns the permutation that sorts vals ascending,
// stable in the original index order so ties break deterministically.
func ascendingOrder(vals []float64) []int {
	order := make([]int, len(vals))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return vals[order[i]] < vals[order[j]]
	})

	return order
}
