// Package drift assigns noisy eye-tracking fixations to the lines of text
// a reader was looking at, correcting the vertical drift that accumulates
// during a recording.
//
// 🚀 What is drift correction?
//
//	Eye trackers report fixation positions with a vertical error that
//	grows over time, so fixations recorded on one line of text end up
//	between lines or on a neighbour. Drift correction snaps each
//	fixation's y-coordinate back onto a known text line.
//
// Seven interchangeable strategies are provided behind one contract
// (fixation coordinates + line geometry + options → corrected coordinates):
//
//   - Chain   — chain consecutive fixations that are close on both axes;
//     assign each chain to its nearest line.
//   - Cluster — partition fixations into m clusters by y-value; assign
//     clusters to lines in ascending centroid order.
//   - Merge   — build progressive same-line candidate runs, repeatedly
//     merge the best-fitting pair until m runs remain.
//   - Regress — fit m sloped, offset regression lines to the fixation
//     cloud via a bounded gradient-free search; assign by best fit.
//   - Segment — cut the sequence at the m−1 most probable return sweeps;
//     assign subsequences to lines chronologically.
//   - Split   — detect all plausible return sweeps; assign each resulting
//     subsequence to its spatially closest line.
//   - Warp    — monotone DTW alignment of fixations onto word centers;
//     each fixation inherits the line of its matched words.
//
// Entry points:
//
//   - SnapToLines         — validate, dispatch to a strategy, rebuild a
//     brand-new corrected sequence (input untouched).
//   - DiscardOutOfBounds  — flag fixations too far from any character
//     center as discarded, in place.
//   - SequenceDistance    — DTW similarity between two fixation sequences.
//
// Every strategy is deterministic: identical input and options always
// produce identical output, with lowest-index (or lowest-value)
// tie-breaking throughout. No logging, no panics on user input — only
// sentinel errors from types.go.
//
// The method family and default parameters follow Carr, Pescuma,
// Furlan, Ktori & Crepaldi (2022), "Algorithms for the automated
// correction of vertical drift in eye-tracking data".
package drift
