// Package gazefix corrects vertical drift in eye-tracking reading data —
// assigning noisy fixation measurements to the lines of text a reader
// was actually looking at.
//
// 🚀 What is gazefix?
//
//	A deterministic, in-memory drift-correction engine that brings together:
//		• Data contracts: fixation sequences & text-block geometry
//		• Sequence alignment: Dynamic Time Warping over 2-D point series
//		• Seven interchangeable line-assignment strategies:
//		  chain, cluster, merge, regress, segment, split, warp
//		• A correction orchestrator and an out-of-bounds fixation filter
//
// ✨ Why choose gazefix?
//
//   - Deterministic – identical input and options always yield identical output
//   - Rock-solid guarantees – sentinel errors, no panics on user input
//   - Pure computation – no I/O, no logging, no hidden global state
//   - Extensible – strategy family behind one closed Method enumeration
//
// Everything is organized under four subpackages:
//
//	geom/  — planar point primitive & Euclidean distance
//	gaze/  — Fixation, FixationSequence and TextBlock containers
//	dtw/   — Dynamic Time Warping over ordered 2-D point sequences
//	drift/ — line-assignment strategies, orchestrator & bounds filter
//
// Quick ASCII example (three text lines, drifting fixations):
//
//	y=100 ──●──●────────────  ← fixations at y≈102, 101
//	y=200 ────────●──●──────  ← fixations at y≈199, 200
//	y=300 ──────────────────
//
//	drift.SnapToLines(seq, text, drift.Warp)  →  y = [100, 100, 200, 200]
//
// See each subpackage's doc.go for algorithms, contracts and complexity.
package gazefix
