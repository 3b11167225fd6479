package drift

import (
	"github.com/katalvlaran/gazefix/dtw"
	"github.com/katalvlaran/gazefix/geom"
)

// warpAlign finds the monotonically non-decreasing correspondence between
// fixations (chronological order) and word centers (reading order) with
// minimal DTW cost, then overwrites each fixation's y-coordinate with the
// modal y among its matched word centers (smallest y on ties).
//
// Because the warping path never moves backward in either sequence, the
// induced line assignment is non-decreasing over the fixation index: the
// sequence is effectively partitioned into contiguous chronological runs,
// one per text line, and a later fixation can never land on an earlier
// word than an earlier fixation did.
//
// Contracts:
//   - len(xy) ≥ 1; len(wordXY) ≥ 1, otherwise ErrNoWords.
//   - Output has the same length and order as xy; only y changes.
//   - Never invoked for single-row layouts (the orchestrator
//     short-circuits those before dispatch).
//
// Complexity: O(n·w) time and memory for n fixations and w words.
func warpAlign(xy, wordXY []geom.Point) ([]geom.Point, error) {
	if len(wordXY) == 0 {
		return nil, ErrNoWords
	}

	o := dtw.DefaultOptions()
	o.ReturnPath = true
	_, path, err := dtw.DTW(xy, wordXY, &o)
	if err != nil {
		return nil, err
	}

	// Every fixation appears on the path at least once, so each candidate
	// list is non-empty.
	candidates := make([][]float64, len(xy))
	for _, c := range path {
		candidates[c.I] = append(candidates[c.I], wordXY[c.J].Y)
	}

	out := clonePoints(xy)
	for i, ys := range candidates {
		out[i].Y = modal(ys)
	}

	return out, nil
}

// modal returns the most frequent value in ys, smallest value on ties.
//
// Contract: len(ys) ≥ 1.
func modal(ys []float64) float64 {
	counts := make(map[float64]int, len(ys))
	for _, y := range ys {
		counts[y]++
	}

	// Scan the slice, not the map: map order is not deterministic.
	best, bestCount := ys[0], 0
	for _, y := range ys {
		c := counts[y]
		if c > bestCount || (c == bestCount && y < best) {
			best, bestCount = y, c
		}
	}

	return best
}
