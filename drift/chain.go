package drift

import (
	"math"

	"github.com/katalvlaran/gazefix/geom"
)

// chain merges consecutive fixations into chains while both |Δx| ≤ XThresh
// and |Δy| ≤ YThresh, then assigns every chain to the line nearest its
// mean y-value.
//
// A chain breaks exactly where either displacement exceeds its threshold,
// so a long leftward return sweep or a big vertical hop always starts a
// new chain.
//
// Contracts:
//   - len(xy) ≥ 1; len(lineY) ≥ 1.
//   - Output has the same length and order as xy; only y changes.
//
// Complexity: O(n·m) time, O(n) space.
func chain(xy []geom.Point, lineY []float64, o Options) []geom.Point {
	out := clonePoints(xy)
	n := len(out)

	start := 0
	for end := 1; end <= n; end++ {
		if end < n {
			dx := math.Abs(out[end].X - out[end-1].X)
			dy := math.Abs(out[end].Y - out[end-1].Y)
			if dx <= o.XThresh && dy <= o.YThresh {
				continue // still the same chain
			}
		}
		y := lineY[nearestLine(meanY(out[start:end]), lineY)]
		for i := start; i < end; i++ {
			out[i].Y = y
		}
		start = end
	}

	return out
}
