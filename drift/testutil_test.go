package drift_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gazefix/gaze"
	"github.com/katalvlaran/gazefix/geom"
)

// sequence builds a fixation sequence from (x, y) pairs with synthetic
// 100 ms durations.
func sequence(coords ...float64) *gaze.FixationSequence {
	fs := make([]*gaze.Fixation, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		fs = append(fs, &gaze.Fixation{X: coords[i], Y: coords[i+1], Duration: 100})
	}

	return gaze.NewFixationSequence(fs...)
}

// ys collects the y-coordinates of a sequence in chronological order.
func ys(seq *gaze.FixationSequence) []float64 {
	out := make([]float64, seq.Len())
	for i := 0; i < seq.Len(); i++ {
		out[i] = seq.At(i).Y
	}

	return out
}

// textBlock builds a layout whose characters coincide with its words.
func textBlock(t *testing.T, lineYs []float64, words [][]geom.Point) *gaze.TextBlock {
	t.Helper()
	tb, err := gaze.NewTextBlock(lineYs, words, words)
	require.NoError(t, err, "test layout must be valid")

	return tb
}

// twoLineText is a minimal two-row layout with words at x=10 and x=60.
func twoLineText(t *testing.T) *gaze.TextBlock {
	t.Helper()

	return textBlock(t, []float64{100, 200}, [][]geom.Point{
		{{X: 10, Y: 100}, {X: 60, Y: 100}},
		{{X: 10, Y: 200}, {X: 60, Y: 200}},
	})
}

// threeLineText matches the worked warp scenario: two words on each of
// the first two rows, one on the third.
func threeLineText(t *testing.T) *gaze.TextBlock {
	t.Helper()

	return textBlock(t, []float64{100, 200, 300}, [][]geom.Point{
		{{X: 50, Y: 100}, {X: 80, Y: 100}},
		{{X: 400, Y: 200}, {X: 420, Y: 200}},
		{{X: 240, Y: 300}},
	})
}

// singleLineText is a one-row layout at y=50.
func singleLineText(t *testing.T) *gaze.TextBlock {
	t.Helper()

	return textBlock(t, []float64{50}, [][]geom.Point{
		{{X: 10, Y: 50}, {X: 60, Y: 50}},
	})
}

// allMethods enumerates the full strategy family.
func allMethods() []string {
	return []string{"chain", "cluster", "merge", "regress", "segment", "split", "warp"}
}
