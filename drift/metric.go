package drift

import (
	"github.com/katalvlaran/gazefix/dtw"
	"github.com/katalvlaran/gazefix/gaze"
)

// SequenceDistance returns the Dynamic Time Warping distance between two
// fixation sequences — a symmetric, non-negative similarity measure that
// is zero exactly when the sequences visit identical points in identical
// order. Discarded fixations are included.
//
// Typical use: validating a drift correction by comparing the corrected
// sequence against a hand-corrected gold standard.
//
// Errors: ErrNilSequence on a nil argument; dtw.ErrEmptyInput surfaces
// when either sequence is empty.
//
// Complexity: O(n·m) time, O(m) memory (two-row DTW; no path needed).
func SequenceDistance(a, b *gaze.FixationSequence) (float64, error) {
	if a == nil || b == nil {
		return 0, ErrNilSequence
	}

	o := dtw.DefaultOptions()
	o.MemoryMode = dtw.TwoRows
	dist, _, err := dtw.DTW(a.XYArray(true), b.XYArray(true), &o)
	if err != nil {
		return 0, err
	}

	return dist, nil
}
