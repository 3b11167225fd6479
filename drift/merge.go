package drift

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/gazefix/geom"
)

// mergePhases are the relaxation stages of the merge method: minimum run
// sizes for the left/right merge candidate, and whether the gradient and
// fit-error constraints are lifted. Later phases admit ever smaller runs;
// the final phase merges unconditionally until m runs remain.
var mergePhases = [4]struct {
	minI, minJ int
	free       bool
}{
	{3, 3, false},
	{1, 3, false},
	{1, 1, false},
	{1, 1, true},
}

// mergeRuns forms progressive same-line candidate runs (broken wherever
// Δx < 0 or |Δy| > YThresh), then repeatedly merges the pair of runs with
// the lowest least-squares fit error until exactly m runs remain. Merged
// runs are assigned to text lines in ascending mean-y order.
//
// A merge in a constrained phase is admitted only if the combined run's
// fitted line has |gradient| < GThresh and RMS error < EThresh.
//
// Contracts:
//   - len(xy) ≥ 1; m = len(lineY) ≥ 1.
//   - Output has the same length and order as xy; only y changes.
//
// Failure policy: should more than m runs survive every phase (degenerate
// fits only), surplus runs are clamped onto the bottom line; fewer than m
// runs simply leave some lines unused. Either way each fixation receives
// exactly one deterministic y.
//
// Complexity: O(r³·n) time worst case for r initial runs, O(n) space.
func mergeRuns(xy []geom.Point, lineY []float64, o Options) []geom.Point {
	out := clonePoints(xy)
	n, m := len(out), len(lineY)

	// Initial progressive runs: rightward, vertically stable stretches.
	var runs [][]int
	start := 0
	for i := 1; i <= n; i++ {
		if i < n {
			dx := out[i].X - out[i-1].X
			dy := math.Abs(out[i].Y - out[i-1].Y)
			if dx >= 0 && dy <= o.YThresh {
				continue
			}
		}
		run := make([]int, 0, i-start)
		for k := start; k < i; k++ {
			run = append(run, k)
		}
		runs = append(runs, run)
		start = i
	}

	for _, ph := range mergePhases {
		for len(runs) > m {
			bestI, bestJ := -1, -1
			bestErr := math.Inf(1)
			for i := 0; i < len(runs)-1; i++ {
				if len(runs[i]) < ph.minI {
					continue
				}
				for j := i + 1; j < len(runs); j++ {
					if len(runs[j]) < ph.minJ {
						continue
					}
					g, e := fitRuns(out, runs[i], runs[j])
					if !ph.free && (math.Abs(g) >= o.GThresh || e >= o.EThresh) {
						continue
					}
					if e < bestErr {
						bestErr, bestI, bestJ = e, i, j
					}
				}
			}
			if bestI < 0 {
				break // nothing mergeable under this phase's constraints
			}
			runs[bestI] = append(runs[bestI], runs[bestJ]...)
			runs = append(runs[:bestJ], runs[bestJ+1:]...)
		}
	}

	// Assign runs to lines in ascending mean-y order.
	means := make([]float64, len(runs))
	for i, run := range runs {
		var sum float64
		for _, k := range run {
			sum += out[k].Y
		}
		means[i] = sum / float64(len(run))
	}
	for rank, ri := range ascendingOrder(means) {
		line := rank
		if line > m-1 {
			line = m - 1
		}
		for _, k := range runs[ri] {
			out[k].Y = lineY[line]
		}
	}

	return out
}

// fitRuns fits a least-squares line through the union of two runs and
// returns its gradient plus the RMS residual. Degenerate unions (all x
// identical) yield NaN and are rejected by every caller comparison.
func fitRuns(xy []geom.Point, a, b []int) (gradient, rmsErr float64) {
	xs := make([]float64, 0, len(a)+len(b))
	ys := make([]float64, 0, len(a)+len(b))
	for _, k := range a {
		xs = append(xs, xy[k].X)
		ys = append(ys, xy[k].Y)
	}
	for _, k := range b {
		xs = append(xs, xy[k].X)
		ys = append(ys, xy[k].Y)
	}

	alpha, beta := stat.LinearRegression(xs, ys, nil, false)

	var ss float64
	for i := range xs {
		r := ys[i] - (alpha + beta*xs[i])
		ss += r * r
	}

	return beta, math.Sqrt(ss / float64(len(xs)))
}
