package drift

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/gazefix/geom"
)

// split separates the saccade lengths (Δx values) into two populations
// with a deterministic 2-means: ordinary rightward saccades and large
// leftward return sweeps. The sequence is cut after every sweep and each
// resulting subsequence is assigned to the line nearest its mean y-value.
//
// Unlike segment, split does not force exactly m pieces — every plausible
// sweep produces a cut, and assignment is spatial rather than
// chronological, so re-reading an earlier line is representable.
//
// Contracts:
//   - len(xy) ≥ 1; len(lineY) ≥ 1.
//   - Output has the same length and order as xy; only y changes.
//
// Complexity: O(iter·n + s·m) time, O(n) space.
func split(xy []geom.Point, lineY []float64) []geom.Point {
	out := clonePoints(xy)
	n := len(out)

	ends := make([]int, 0, 8)
	for _, i := range sweepIndices(xDiffs(out)) {
		ends = append(ends, i+1)
	}
	ends = append(ends, n)

	start := 0
	for _, end := range ends {
		if end <= start {
			continue
		}
		y := lineY[nearestLine(meanY(out[start:end]), lineY)]
		for i := start; i < end; i++ {
			out[i].Y = y
		}
		start = end
	}

	return out
}

// sweepIndices classifies saccade lengths into two clusters (Lloyd
// 2-means seeded at the extremes, ties toward the lower cluster) and
// returns the indices belonging to the cluster with the smaller mean —
// the return-sweep population.
//
// Fewer than two saccades, or saccades of one identical length, admit no
// separable sweep population and yield no cuts.
func sweepIndices(diffs []float64) []int {
	if len(diffs) < 2 {
		return nil
	}
	lo, hi := floats.Min(diffs), floats.Max(diffs)
	if lo == hi {
		return nil
	}

	c := [2]float64{lo, hi}
	labels := make([]int, len(diffs))
	for iter := 0; iter < 300; iter++ {
		changed := false
		for i, d := range diffs {
			lab := 0
			if math.Abs(d-c[1]) < math.Abs(d-c[0]) {
				lab = 1
			}
			if lab != labels[i] {
				labels[i] = lab
				changed = true
			}
		}
		if !changed && iter > 0 {
			break
		}
		var sum [2]float64
		var cnt [2]int
		for i, d := range diffs {
			sum[labels[i]] += d
			cnt[labels[i]]++
		}
		for j := 0; j < 2; j++ {
			if cnt[j] > 0 {
				c[j] = sum[j] / float64(cnt[j])
			}
		}
	}

	sweep := 0
	if c[1] < c[0] {
		sweep = 1
	}
	var idx []int
	for i, lab := range labels {
		if lab == sweep {
			idx = append(idx, i)
		}
	}

	return idx
}
