package drift

import (
	"math"

	"github.com/katalvlaran/gazefix/gaze"
	"github.com/katalvlaran/gazefix/geom"
)

// DiscardOutOfBounds flags every fixation whose distance to the nearest
// character center exceeds the threshold (default 128, override with
// WithThreshold) as discarded. It operates in place on seq and returns no
// copy.
//
// The pass is idempotent and monotonic: re-running it re-sets the same
// flags, and a flag once set is never cleared here. A text block without
// any character centers discards every fixation (nothing is in bounds).
//
// Callers must not run this concurrently over the same sequence without
// external synchronization.
//
// Errors: ErrNilSequence, ErrNilText, ErrBadThreshold.
//
// Complexity: O(n·c) time for n fixations and c characters.
func DiscardOutOfBounds(seq *gaze.FixationSequence, text *gaze.TextBlock, opts ...Option) error {
	if err := validateInputs(seq, text); err != nil {
		return err
	}
	o := applyOptions(opts)
	if err := validateOptions(o); err != nil {
		return err
	}

	chars := text.CharCenters()
	for i := 0; i < seq.Len(); i++ {
		f := seq.At(i)
		nearest := math.Inf(1)
		for _, c := range chars {
			if d := geom.Distance(f.XY(), c); d < nearest {
				nearest = d
			}
		}
		if nearest > o.Threshold {
			f.Discarded = true
		}
	}

	return nil
}
