// Package drift - unified dispatcher for the line-assignment strategies.
//
// SnapToLines is the canonical entry point: validate collaborators, the
// method and the options, extract the working coordinate array, route to
// the requested strategy, and rebuild a fresh corrected sequence.
//
// Design principles:
//   - Deterministic: no randomness anywhere; fixed tie-breaking.
//   - Strict sentinels: only errors from types.go.
//   - Copy-on-correct: the input sequence is never mutated; correction is
//     a value-producing transformation (contrast DiscardOutOfBounds,
//     which is a lightweight in-place annotation pass).
package drift

import (
	"github.com/katalvlaran/gazefix/gaze"
	"github.com/katalvlaran/gazefix/geom"
)

// SnapToLines snaps each fixation of seq onto the text line it most
// likely belongs to, eliminating vertical drift, and returns the
// corrected copy.
//
// Discarded fixations are excluded from correction; in the returned
// sequence they keep their original coordinates and their flag. Every
// other fixation keeps its duration and chronological position exactly —
// only its spatial position changes.
//
// Single-row layouts bypass all strategies: every y is forced onto the
// sole line position.
//
// Errors: ErrNilSequence / ErrNilText (wrong collaborators),
// ErrUnknownMethod (before any fixation data is touched),
// ErrBadThreshold / ErrBadBounds (option validation), ErrEmptySequence
// (nothing left to correct), ErrNoWords (warp on a wordless block).
//
// Complexity: per strategy; validation and reassembly are O(n).
func SnapToLines(seq *gaze.FixationSequence, text *gaze.TextBlock, method Method, opts ...Option) (*gaze.FixationSequence, error) {
	if err := validateInputs(seq, text); err != nil {
		return nil, err
	}
	if err := validateMethod(method); err != nil {
		return nil, err
	}
	o := applyOptions(opts)
	if err := validateOptions(o); err != nil {
		return nil, err
	}

	xy := seq.XYArray(false)
	if len(xy) == 0 {
		return nil, ErrEmptySequence
	}

	var (
		corrected []geom.Point
		err       error
	)
	if text.Rows() == 1 {
		// Single line: nothing to disambiguate.
		corrected = clonePoints(xy)
		y := text.LinePositions()[0]
		for i := range corrected {
			corrected[i].Y = y
		}
	} else {
		switch method {
		case Chain:
			corrected = chain(xy, text.LinePositions(), o)
		case Cluster:
			corrected = cluster(xy, text.LinePositions())
		case Merge:
			corrected = mergeRuns(xy, text.LinePositions(), o)
		case Regress:
			corrected = regress(xy, text.LinePositions(), o)
		case Segment:
			corrected = segment(xy, text.LinePositions())
		case Split:
			corrected = split(xy, text.LinePositions())
		case Warp:
			corrected, err = warpAlign(xy, text.WordCenters())
		}
		if err != nil {
			return nil, err
		}
	}

	// Zip corrected coordinates back with the original durations, in the
	// original chronological order.
	out := make([]*gaze.Fixation, seq.Len())
	next := 0
	for i := 0; i < seq.Len(); i++ {
		f := seq.At(i)
		if f.Discarded {
			out[i] = &gaze.Fixation{X: f.X, Y: f.Y, Duration: f.Duration, Discarded: true}

			continue
		}
		p := corrected[next]
		next++
		out[i] = &gaze.Fixation{X: p.X, Y: p.Y, Duration: f.Duration}
	}

	return gaze.NewFixationSequence(out...), nil
}
