package dtw_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gazefix/dtw"
	"github.com/katalvlaran/gazefix/geom"
)

func pts(coords ...float64) []geom.Point {
	out := make([]geom.Point, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		out = append(out, geom.Point{X: coords[i], Y: coords[i+1]})
	}

	return out
}

// TestDTW_EmptyInput verifies that DTW returns ErrEmptyInput when either
// input sequence is empty.
func TestDTW_EmptyInput(t *testing.T) {
	opts := dtw.DefaultOptions()

	_, _, err := dtw.DTW(nil, pts(1, 1), &opts)
	assert.ErrorIs(t, err, dtw.ErrEmptyInput, "empty first sequence should error")

	_, _, err = dtw.DTW(pts(1, 1), nil, &opts)
	assert.ErrorIs(t, err, dtw.ErrEmptyInput, "empty second sequence should error")
}

// TestDTW_PathNeedsMatrix ensures ReturnPath=true with TwoRows mode errors.
func TestDTW_PathNeedsMatrix(t *testing.T) {
	opts := dtw.DefaultOptions()
	opts.ReturnPath = true
	opts.MemoryMode = dtw.TwoRows

	_, _, err := dtw.DTW(pts(1, 1), pts(1, 1), &opts)
	assert.ErrorIs(t, err, dtw.ErrPathNeedsMatrix, "ReturnPath without FullMatrix must error")
}

// TestDTW_ZeroIffIdentical verifies that the distance is zero exactly for
// identical sequences of identical points.
func TestDTW_ZeroIffIdentical(t *testing.T) {
	a := pts(0, 0, 1, 2, 3, 1)

	dist, path, err := dtw.DTW(a, a, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, dist, "identical sequences must have zero distance")
	assert.Nil(t, path, "default ReturnPath=false should yield nil path")

	b := pts(0, 0, 1, 2, 3, 2)
	dist, _, err = dtw.DTW(a, b, nil)
	require.NoError(t, err)
	assert.Positive(t, dist, "differing sequences must have positive distance")
}

// TestDTW_Symmetric verifies distance(A, B) == distance(B, A).
func TestDTW_Symmetric(t *testing.T) {
	a := pts(0, 0, 10, 5, 20, 3, 30, 8)
	b := pts(1, 1, 12, 4, 28, 9)

	ab, _, err := dtw.DTW(a, b, nil)
	require.NoError(t, err)
	ba, _, err := dtw.DTW(b, a, nil)
	require.NoError(t, err)

	assert.InDelta(t, ab, ba, 1e-9, "DTW distance must be symmetric")
}

// TestDTW_StretchedSelfAlignment verifies the no-shortcut property:
// repeating every point of a sequence in place (a time-stretched
// rendition) aligns against the original at the same cost as the original
// against itself — zero.
func TestDTW_StretchedSelfAlignment(t *testing.T) {
	a := pts(0, 0, 5, 5, 10, 0)
	stretched := make([]geom.Point, 0, 2*len(a))
	for _, p := range a {
		stretched = append(stretched, p, p)
	}

	dist, _, err := dtw.DTW(stretched, a, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, dist, "a stretched rendition must align at zero cost")
}

// TestDTW_KnownDistance checks a small hand-computed alignment.
func TestDTW_KnownDistance(t *testing.T) {
	a := pts(0, 0, 1, 0)
	b := pts(0, 0, 2, 0)

	dist, _, err := dtw.DTW(a, b, nil)
	require.NoError(t, err)
	assert.Equal(t, 1.0, dist, "only the second pairing carries cost 1")
}

// TestDTW_SinglePointDegenerates verifies that a length-1 sequence sums
// the distances from its single point to every point of the other side.
func TestDTW_SinglePointDegenerates(t *testing.T) {
	single := pts(0, 0)
	other := pts(3, 4, 0, 5, 6, 8)

	dist, _, err := dtw.DTW(single, other, nil)
	require.NoError(t, err)
	assert.Equal(t, 20.0, dist, "5 + 5 + 10 summed against the single point")
}

// TestDTW_PathEndpoints verifies the recovered path spans the full
// alignment and moves monotonically.
func TestDTW_PathEndpoints(t *testing.T) {
	a := pts(0, 0, 1, 0, 2, 0)
	b := pts(0, 0, 1, 0, 1, 0, 2, 0)
	opts := dtw.DefaultOptions()
	opts.ReturnPath = true

	dist, path, err := dtw.DTW(a, b, &opts)
	require.NoError(t, err)
	assert.Equal(t, 0.0, dist, "perfect subsequence match yields zero cost")
	require.NotEmpty(t, path)
	assert.Equal(t, dtw.Coord{I: 0, J: 0}, path[0], "path must start at the origin pairing")
	assert.Equal(t, dtw.Coord{I: 2, J: 3}, path[len(path)-1], "path must end at the final pairing")

	for i := 1; i < len(path); i++ {
		assert.GreaterOrEqual(t, path[i].I, path[i-1].I, "path must never move backward in a")
		assert.GreaterOrEqual(t, path[i].J, path[i-1].J, "path must never move backward in b")
	}
}

// TestDTW_TwoRowsMatchesFullMatrix confirms the reduced-memory mode
// computes the same distance and returns no path.
func TestDTW_TwoRowsMatchesFullMatrix(t *testing.T) {
	a := pts(0, 0, 10, 2, 20, 1, 30, 4, 40, 2)
	b := pts(0, 1, 12, 2, 24, 3, 40, 1)

	full := dtw.DefaultOptions()
	refDist, _, err := dtw.DTW(a, b, &full)
	require.NoError(t, err)

	reduced := dtw.DefaultOptions()
	reduced.MemoryMode = dtw.TwoRows
	dist, path, err := dtw.DTW(a, b, &reduced)
	require.NoError(t, err)
	assert.Equal(t, refDist, dist, "TwoRows must match FullMatrix distance")
	assert.Nil(t, path, "TwoRows cannot return a path")
}
