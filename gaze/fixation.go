package gaze

import "github.com/katalvlaran/gazefix/geom"

// Fixation is a single recorded gaze event: a 2-D position on the screen
// plane, a duration in milliseconds, and a soft-delete flag.
//
// Discarded marks the fixation as out of bounds without removing it from
// its sequence; chronological order is preserved for later analysis.
type Fixation struct {
	X         float64
	Y         float64
	Duration  int
	Discarded bool
}

// XY returns the fixation position as a geom.Point.
func (f *Fixation) XY() geom.Point {
	return geom.Point{X: f.X, Y: f.Y}
}

// FixationSequence is an ordered, chronological collection of fixations.
//
// Order is semantically meaningful: the drift-correction strategies depend
// on the sequence of eye movements, not just the unordered point cloud.
type FixationSequence struct {
	fixations []*Fixation
}

// NewFixationSequence builds a sequence from fixations in chronological
// order. The sequence takes ownership of the provided pointers.
func NewFixationSequence(fixations ...*Fixation) *FixationSequence {
	return &FixationSequence{fixations: fixations}
}

// Len reports the number of fixations, discarded ones included.
func (s *FixationSequence) Len() int {
	return len(s.fixations)
}

// At returns the i-th fixation. The pointer is shared with the sequence,
// so flag mutation through it is visible to all holders.
//
// Contract: 0 ≤ i < Len(); out-of-range access panics as with any slice.
func (s *FixationSequence) At(i int) *Fixation {
	return s.fixations[i]
}

// XYArray extracts the fixation coordinates in chronological order.
// When includeDiscarded is false, discarded fixations are skipped.
//
// The returned slice is freshly allocated; callers may mutate it freely.
//
// Complexity: O(n) time and space.
func (s *FixationSequence) XYArray(includeDiscarded bool) []geom.Point {
	out := make([]geom.Point, 0, len(s.fixations))
	for _, f := range s.fixations {
		if f.Discarded && !includeDiscarded {
			continue
		}
		out = append(out, f.XY())
	}

	return out
}

// TotalDuration sums the durations of all non-discarded fixations,
// in milliseconds.
//
// Complexity: O(n).
func (s *FixationSequence) TotalDuration() int {
	var total int
	for _, f := range s.fixations {
		if f.Discarded {
			continue
		}
		total += f.Duration
	}

	return total
}
