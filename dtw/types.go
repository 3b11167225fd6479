package dtw

import "errors"

// Sentinel errors returned by DTW.
var (
	// ErrEmptyInput indicates one or both input sequences are empty.
	ErrEmptyInput = errors.New("dtw: input sequences must be non-empty")

	// ErrPathNeedsMatrix indicates that path recovery requires FullMatrix mode.
	ErrPathNeedsMatrix = errors.New("dtw: ReturnPath requires MemoryMode=FullMatrix")
)

// MemoryMode controls how DTW stores its DP matrix.
//
//   - FullMatrix — keep the entire (n+1)×(m+1) matrix in memory.
//     Allows distance + full backtrace of the optimal warping path.
//     Memory: O(n·m).
//
//   - TwoRows — only keep the current and previous rows.
//     Reduces memory to O(m), but cannot recover the path.
//     Use when you only need the distance.
type MemoryMode int

const (
	// FullMatrix mode: store all rows, support path recovery.
	FullMatrix MemoryMode = iota

	// TwoRows mode: keep only two rows, no path recovery.
	TwoRows
)

// Coord is one step of a warping path: a pairing of index I in the first
// sequence with index J in the second.
type Coord struct {
	I int
	J int
}

// Options configures Dynamic Time Warping.
//
// ReturnPath — if true, DTW backtracks and returns the optimal warping
// path. Requires MemoryMode=FullMatrix.
//
// MemoryMode — FullMatrix or TwoRows storage (see MemoryMode).
type Options struct {
	ReturnPath bool
	MemoryMode MemoryMode
}

// DefaultOptions returns Options with sensible defaults:
//   - ReturnPath: false (distance only).
//   - MemoryMode: FullMatrix.
func DefaultOptions() Options {
	return Options{
		ReturnPath: false,
		MemoryMode: FullMatrix,
	}
}
