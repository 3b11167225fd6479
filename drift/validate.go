// Package drift - validation helpers shared by the entry points.
//
// Deterministic, side-effect free, sentinel errors only. All validation
// completes before any computation on fixation data begins.
package drift

import "github.com/katalvlaran/gazefix/gaze"

// validateInputs rejects nil collaborators.
//
// Complexity: O(1).
func validateInputs(seq *gaze.FixationSequence, text *gaze.TextBlock) error {
	if seq == nil {
		return ErrNilSequence
	}
	if text == nil {
		return ErrNilText
	}

	return nil
}

// validateMethod rejects values outside the closed Method enumeration.
//
// Complexity: O(1).
func validateMethod(m Method) error {
	if m < Chain || m > Warp {
		return ErrUnknownMethod
	}

	return nil
}

// validateOptions checks threshold positivity and bound ordering.
//
// Complexity: O(1).
func validateOptions(o Options) error {
	if o.XThresh <= 0 || o.YThresh <= 0 || o.GThresh <= 0 || o.EThresh <= 0 || o.Threshold <= 0 {
		return ErrBadThreshold
	}
	bounds := [3][2]float64{o.KBounds, o.OBounds, o.SBounds}
	for _, b := range bounds {
		if b[0] >= b[1] {
			return ErrBadBounds
		}
	}

	return nil
}

// applyOptions folds functional overrides over the defaults.
func applyOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
