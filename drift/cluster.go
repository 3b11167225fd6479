package drift

import (
	"math"
	"sort"

	"github.com/katalvlaran/gazefix/geom"
)

// cluster partitions the fixations into m clusters by y-value with a
// deterministic 1-D k-means, then assigns clusters to text lines in
// ascending centroid order: the topmost cluster gets the topmost line.
//
// Contracts:
//   - len(xy) ≥ 1; m = len(lineY) ≥ 1.
//   - Output has the same length and order as xy; only y changes.
//
// Failure policy: with fewer distinct y-values than lines some clusters
// stay empty; they still occupy a rank in the centroid ordering, so every
// fixation receives exactly one line deterministically.
//
// Complexity: O(iter·n·m) time, O(n + m) space.
func cluster(xy []geom.Point, lineY []float64) []geom.Point {
	out := clonePoints(xy)
	m := len(lineY)

	ys := make([]float64, len(out))
	for i, p := range out {
		ys[i] = p.Y
	}

	labels, centroids := kmeansLine(ys, m)

	// Rank clusters by centroid: rank[c] = positional order of cluster c.
	order := ascendingOrder(centroids)
	rank := make([]int, m)
	for r, ci := range order {
		rank[ci] = r
	}

	for i := range out {
		out[i].Y = lineY[rank[labels[i]]]
	}

	return out
}

// kmeansLine is a deterministic 1-D Lloyd k-means: initial centroids are
// spread over the quantiles of the sorted values, assignment breaks ties
// toward the lowest cluster index, and empty clusters keep their previous
// centroid. Capped at 300 iterations (always converges far earlier in
// one dimension).
func kmeansLine(vals []float64, k int) (labels []int, centroids []float64) {
	sorted := append([]float64(nil), vals...)
	sort.Float64s(sorted)

	centroids = make([]float64, k)
	if k == 1 {
		centroids[0] = sorted[(len(sorted)-1)/2]
	} else {
		for j := 0; j < k; j++ {
			centroids[j] = sorted[j*(len(sorted)-1)/(k-1)]
		}
	}

	labels = make([]int, len(vals))
	sums := make([]float64, k)
	counts := make([]int, k)

	for iter := 0; iter < 300; iter++ {
		changed := false
		for i, v := range vals {
			best, bestDist := 0, math.Inf(1)
			for j, c := range centroids {
				if d := math.Abs(v - c); d < bestDist {
					best, bestDist = j, d
				}
			}
			if best != labels[i] {
				labels[i] = best
				changed = true
			}
		}
		if !changed && iter > 0 {
			break
		}

		for j := 0; j < k; j++ {
			sums[j], counts[j] = 0, 0
		}
		for i, v := range vals {
			sums[labels[i]] += v
			counts[labels[i]]++
		}
		for j := 0; j < k; j++ {
			if counts[j] > 0 {
				centroids[j] = sums[j] / float64(counts[j])
			}
		}
	}

	return labels, centroids
}
