package gaze

import (
	"errors"

	"github.com/katalvlaran/gazefix/geom"
)

// Sentinel errors returned by TextBlock construction.
var (
	// ErrNoLines indicates that a TextBlock was built with zero rows.
	ErrNoLines = errors.New("gaze: text block must have at least one line")

	// ErrLineOrder indicates that line y-positions are not strictly
	// increasing in top-to-bottom reading order.
	ErrLineOrder = errors.New("gaze: line y-positions must be strictly increasing")

	// ErrGroupMismatch indicates that the per-line word or character
	// groups do not match the number of rows.
	ErrGroupMismatch = errors.New("gaze: word/character groups must match the row count")
)

// TextBlock is a fixed geometric description of a block of on-screen text:
// one y-position per line, plus the centers of its words and characters
// grouped by line in reading order.
//
// A TextBlock is immutable after construction; all accessors return copies.
type TextBlock struct {
	lineYs      []float64
	wordCenters [][]geom.Point
	charCenters [][]geom.Point
}

// NewTextBlock validates and assembles a text-block layout.
//
// Contracts:
//   - len(lineYs) ≥ 1, strictly increasing.
//   - wordCenters and charCenters each hold exactly one group per line,
//     in reading order (a group may be empty).
//
// Errors: ErrNoLines, ErrLineOrder, ErrGroupMismatch.
//
// Complexity: O(rows + words + chars) for the defensive copy.
func NewTextBlock(lineYs []float64, wordCenters, charCenters [][]geom.Point) (*TextBlock, error) {
	rows := len(lineYs)
	if rows == 0 {
		return nil, ErrNoLines
	}
	for i := 1; i < rows; i++ {
		if lineYs[i] <= lineYs[i-1] {
			return nil, ErrLineOrder
		}
	}
	if len(wordCenters) != rows || len(charCenters) != rows {
		return nil, ErrGroupMismatch
	}

	tb := &TextBlock{
		lineYs:      append([]float64(nil), lineYs...),
		wordCenters: make([][]geom.Point, rows),
		charCenters: make([][]geom.Point, rows),
	}
	for i := 0; i < rows; i++ {
		tb.wordCenters[i] = append([]geom.Point(nil), wordCenters[i]...)
		tb.charCenters[i] = append([]geom.Point(nil), charCenters[i]...)
	}

	return tb, nil
}

// Rows reports the number of text lines.
func (tb *TextBlock) Rows() int {
	return len(tb.lineYs)
}

// LinePositions returns a copy of the line y-positions, top to bottom.
func (tb *TextBlock) LinePositions() []float64 {
	return append([]float64(nil), tb.lineYs...)
}

// WordCenters returns the word centers of the whole block in reading
// order — line by line, left to right — as a fresh slice.
func (tb *TextBlock) WordCenters() []geom.Point {
	return flatten(tb.wordCenters)
}

// WordCentersOnLine returns a copy of the word centers on line i.
//
// Contract: 0 ≤ i < Rows().
func (tb *TextBlock) WordCentersOnLine(i int) []geom.Point {
	return append([]geom.Point(nil), tb.wordCenters[i]...)
}

// CharCenters returns the character centers of the whole block in reading
// order as a fresh slice.
func (tb *TextBlock) CharCenters() []geom.Point {
	return flatten(tb.charCenters)
}

// flatten concatenates per-line groups into a single reading-order slice.
func flatten(groups [][]geom.Point) []geom.Point {
	var total int
	for _, g := range groups {
		total += len(g)
	}
	out := make([]geom.Point, 0, total)
	for _, g := range groups {
		out = append(out, g...)
	}

	return out
}
