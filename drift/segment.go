package drift

import "github.com/katalvlaran/gazefix/geom"

// segment cuts the chronological sequence at the m−1 most probable return
// sweeps — the m−1 most negative horizontal displacements, ties broken
// toward the earlier saccade — and assigns the resulting subsequences to
// the text lines in chronological order: first piece to the first line,
// last piece to the last line.
//
// Contracts:
//   - len(xy) ≥ 1; m = len(lineY) ≥ 1.
//   - Output has the same length and order as xy; only y changes.
//
// Failure policy: with fewer than m−1 saccades every available cut is
// used and the trailing lines stay unused; the line index never exceeds
// m−1 regardless of cut count.
//
// Complexity: O(n log n) time, O(n) space.
func segment(xy []geom.Point, lineY []float64) []geom.Point {
	out := clonePoints(xy)
	n, m := len(out), len(lineY)

	diffs := xDiffs(out)
	order := ascendingOrder(diffs)
	limit := m - 1
	if limit > len(order) {
		limit = len(order)
	}
	cuts := make(map[int]bool, limit)
	for _, i := range order[:limit] {
		cuts[i] = true
	}

	line := 0
	for i := 0; i < n; i++ {
		out[i].Y = lineY[line]
		if cuts[i] && line < m-1 {
			line++
		}
	}

	return out
}
