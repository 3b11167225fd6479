package dtw

import (
	"math"

	"github.com/katalvlaran/gazefix/geom"
)

// DTW computes the Dynamic Time Warping distance between the ordered point
// sequences a and b. Returns (distance, path, error).
//
// Algorithm Outline (Full-Matrix):
//  1. Let n = len(a), m = len(b). Allocate an (n+1)×(m+1) DP matrix D.
//  2. Initialize:
//     D[0][0] = 0
//     D[i][0] = +∞ for i=1..n
//     D[0][j] = +∞ for j=1..m
//  3. For i = 1..n, j = 1..m:
//     cost    = geom.Distance(a[i-1], b[j-1])
//     D[i][j] = cost + min(D[i-1][j-1], D[i-1][j], D[i][j-1])
//  4. distance = D[n][m].
//  5. If opts.ReturnPath, backtrack from (n,m) to (1,1) following the
//     minimal predecessor (diagonal preferred on ties, then up, then
//     left — a fixed, deterministic order).
//
// A length-1 sequence degenerates naturally: the DP sums the distances
// from the single point to every point of the other sequence.
//
// Contracts:
//   - len(a) ≥ 1 and len(b) ≥ 1, otherwise ErrEmptyInput.
//   - opts.ReturnPath requires opts.MemoryMode == FullMatrix,
//     otherwise ErrPathNeedsMatrix.
//   - opts == nil selects DefaultOptions().
//
// Complexity: O(n·m) time; O(n·m) memory (FullMatrix) or O(m) (TwoRows).
func DTW(a, b []geom.Point, opts *Options) (distance float64, path []Coord, err error) {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return 0, nil, ErrEmptyInput
	}

	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.ReturnPath && o.MemoryMode != FullMatrix {
		return 0, nil, ErrPathNeedsMatrix
	}

	if o.MemoryMode == TwoRows {
		return distanceTwoRows(a, b), nil, nil
	}

	dp := costMatrix(a, b)
	distance = dp[n][m]

	if o.ReturnPath {
		path = backtrack(dp, n, m)
	}

	return distance, path, nil
}

// costMatrix fills the full (n+1)×(m+1) cumulative-cost matrix.
func costMatrix(a, b []geom.Point) [][]float64 {
	n, m := len(a), len(b)
	inf := math.Inf(1)

	dp := make([][]float64, n+1)
	for i := range dp {
		dp[i] = make([]float64, m+1)
	}
	for i := 1; i <= n; i++ {
		dp[i][0] = inf
	}
	for j := 1; j <= m; j++ {
		dp[0][j] = inf
	}

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			cost := geom.Distance(a[i-1], b[j-1])
			dp[i][j] = cost + min3(dp[i-1][j-1], dp[i-1][j], dp[i][j-1])
		}
	}

	return dp
}

// distanceTwoRows computes the final distance keeping only two DP rows.
func distanceTwoRows(a, b []geom.Point) float64 {
	n, m := len(a), len(b)
	inf := math.Inf(1)

	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		prev[j] = inf
	}

	for i := 1; i <= n; i++ {
		curr[0] = inf
		for j := 1; j <= m; j++ {
			cost := geom.Distance(a[i-1], b[j-1])
			curr[j] = cost + min3(prev[j-1], prev[j], curr[j-1])
		}
		prev, curr = curr, prev
	}

	return prev[m]
}

// backtrack recovers the optimal warping path from the filled matrix.
// Coordinates are emitted in forward order, from {0,0} to {n-1,m-1}.
//
// Tie-breaking is fixed: diagonal, then up (advance in a), then left
// (advance in b). This makes the recovered path deterministic.
func backtrack(dp [][]float64, n, m int) []Coord {
	path := make([]Coord, 0, n+m)
	i, j := n, m
	path = append(path, Coord{I: i - 1, J: j - 1})

	for i > 1 || j > 1 {
		switch {
		case i == 1:
			j--
		case j == 1:
			i--
		default:
			diag, up, left := dp[i-1][j-1], dp[i-1][j], dp[i][j-1]
			if diag <= up && diag <= left {
				i--
				j--
			} else if up <= left {
				i--
			} else {
				j--
			}
		}
		path = append(path, Coord{I: i - 1, J: j - 1})
	}

	// Reverse in place: the walk above runs end → start.
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path
}

// min3 returns the minimum of three float64 values.
func min3(a, b, c float64) float64 {
	if a < b {
		if a < c {
			return a
		}

		return c
	}
	if b < c {
		return b
	}

	return c
}
