// Package dtw computes Dynamic Time Warping (DTW) distances between
// ordered sequences of 2-D points, with optional alignment path recovery
// and a reduced-memory mode.
//
// 🚀 What is DTW?
//
//	DTW finds the best match between two ordered sequences by warping the
//	sequence axis to minimize cumulative point-to-point distance. Within
//	gazefix it serves two roles:
//	  • the alignment core of the warp drift-correction strategy
//	  • a standalone similarity metric between fixation sequences
//
// ✨ Key features:
//   - full-matrix mode: exact O(N·M) time & memory, optimal path recovery
//   - two-rows mode: O(M) memory when only the distance is needed
//   - Euclidean local cost (geom.Distance) over 2-D points
//   - monotone alignment: the path only moves forward (or stays) in each
//     sequence, never backward — order is always preserved
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/gazefix/dtw"
//
//	opts := dtw.DefaultOptions()
//	opts.ReturnPath = true
//
//	dist, path, err := dtw.DTW(a, b, &opts)
//
// Performance:
//
//   - Time:   O(N·M)
//   - Memory: O(N·M) (FullMatrix) or O(M) (TwoRows)
//
// Errors:
//   - ErrEmptyInput      — if either input sequence is empty.
//   - ErrPathNeedsMatrix — if ReturnPath=true with MemoryMode=TwoRows.
package dtw
