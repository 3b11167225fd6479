package gaze_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gazefix/gaze"
	"github.com/katalvlaran/gazefix/geom"
)

// TestNewTextBlock_Validation exercises the construction sentinels.
func TestNewTextBlock_Validation(t *testing.T) {
	words := [][]geom.Point{{{X: 10, Y: 100}}}
	chars := [][]geom.Point{{{X: 10, Y: 100}}}

	_, err := gaze.NewTextBlock(nil, nil, nil)
	assert.ErrorIs(t, err, gaze.ErrNoLines, "zero rows must error")

	_, err = gaze.NewTextBlock([]float64{100, 100}, make([][]geom.Point, 2), make([][]geom.Point, 2))
	assert.ErrorIs(t, err, gaze.ErrLineOrder, "equal line positions must error")

	_, err = gaze.NewTextBlock([]float64{200, 100}, make([][]geom.Point, 2), make([][]geom.Point, 2))
	assert.ErrorIs(t, err, gaze.ErrLineOrder, "descending line positions must error")

	_, err = gaze.NewTextBlock([]float64{100, 200}, words, chars)
	assert.ErrorIs(t, err, gaze.ErrGroupMismatch, "one group for two rows must error")

	tb, err := gaze.NewTextBlock([]float64{100}, words, chars)
	require.NoError(t, err, "valid single-row layout must build")
	assert.Equal(t, 1, tb.Rows())
}

// TestTextBlock_AccessorsCopy verifies that accessors return fresh slices:
// mutating a returned slice must not corrupt the layout.
func TestTextBlock_AccessorsCopy(t *testing.T) {
	words := [][]geom.Point{{{X: 10, Y: 100}, {X: 40, Y: 100}}, {{X: 10, Y: 200}}}
	chars := [][]geom.Point{{{X: 10, Y: 100}}, {{X: 10, Y: 200}}}
	tb, err := gaze.NewTextBlock([]float64{100, 200}, words, chars)
	require.NoError(t, err)

	lines := tb.LinePositions()
	lines[0] = -1
	assert.Equal(t, []float64{100, 200}, tb.LinePositions(), "line positions must be copied out")

	wc := tb.WordCenters()
	require.Len(t, wc, 3, "word centers flatten in reading order")
	wc[0].X = -1
	assert.Equal(t, 10.0, tb.WordCenters()[0].X, "word centers must be copied out")

	assert.Equal(t, []geom.Point{{X: 10, Y: 200}}, tb.WordCentersOnLine(1))
	assert.Len(t, tb.CharCenters(), 2)
}

// TestFixationSequence_XYArray verifies coordinate extraction with and
// without discarded fixations.
func TestFixationSequence_XYArray(t *testing.T) {
	seq := gaze.NewFixationSequence(
		&gaze.Fixation{X: 1, Y: 2, Duration: 100},
		&gaze.Fixation{X: 3, Y: 4, Duration: 120, Discarded: true},
		&gaze.Fixation{X: 5, Y: 6, Duration: 80},
	)

	assert.Equal(t, 3, seq.Len())
	assert.Equal(t, []geom.Point{{X: 1, Y: 2}, {X: 3, Y: 4}, {X: 5, Y: 6}}, seq.XYArray(true),
		"includeDiscarded=true yields every fixation in order")
	assert.Equal(t, []geom.Point{{X: 1, Y: 2}, {X: 5, Y: 6}}, seq.XYArray(false),
		"includeDiscarded=false skips flagged fixations")
}

// TestFixationSequence_TotalDuration verifies that discarded fixations do
// not contribute to the total.
func TestFixationSequence_TotalDuration(t *testing.T) {
	seq := gaze.NewFixationSequence(
		&gaze.Fixation{Duration: 100},
		&gaze.Fixation{Duration: 250, Discarded: true},
		&gaze.Fixation{Duration: 50},
	)

	assert.Equal(t, 150, seq.TotalDuration())
}
