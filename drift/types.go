package drift

import "errors"

// Sentinel errors returned by the drift-correction entry points.
var (
	// ErrNilSequence indicates that a nil *gaze.FixationSequence was passed.
	ErrNilSequence = errors.New("drift: fixation sequence is nil")

	// ErrNilText indicates that a nil *gaze.TextBlock was passed.
	ErrNilText = errors.New("drift: text block is nil")

	// ErrUnknownMethod indicates a method outside the supported set.
	ErrUnknownMethod = errors.New(`drift: supported methods are "chain", "cluster", "merge", "regress", "segment", "split" and "warp"`)

	// ErrEmptySequence indicates that no fixations remain to correct
	// (the sequence is empty or fully discarded).
	ErrEmptySequence = errors.New("drift: no fixations to correct")

	// ErrNoWords indicates that the warp method was requested for a text
	// block without any word centers.
	ErrNoWords = errors.New("drift: text block has no word centers")

	// ErrBadThreshold indicates a non-positive threshold option.
	ErrBadThreshold = errors.New("drift: thresholds must be positive")

	// ErrBadBounds indicates regress search bounds with lo ≥ hi.
	ErrBadBounds = errors.New("drift: parameter bounds must satisfy lo < hi")
)

// Method selects one of the seven line-assignment strategies.
// The set is closed: SnapToLines rejects values outside it with
// ErrUnknownMethod before touching any fixation data.
type Method int

const (
	// Chain merges temporally/spatially adjacent fixations into chains and
	// assigns each chain to its nearest line by vertical proximity.
	Chain Method = iota

	// Cluster partitions fixations into m clusters by y-value and assigns
	// clusters to lines in ascending centroid order.
	Cluster

	// Merge builds progressive same-line runs and merges them down to m.
	Merge

	// Regress fits m regression lines over a bounded parameter search and
	// assigns each fixation to its best-fitting line.
	Regress

	// Segment cuts the sequence at the m−1 most probable return sweeps.
	Segment

	// Split cuts the sequence at every plausible return sweep and assigns
	// each piece to its spatially closest line.
	Split

	// Warp aligns fixations onto word centers with Dynamic Time Warping.
	Warp
)

// methodNames is the canonical Method → name mapping, in enum order.
var methodNames = [...]string{"chain", "cluster", "merge", "regress", "segment", "split", "warp"}

// String returns the lower-case method name, or "unknown" for values
// outside the enumeration.
func (m Method) String() string {
	if m < Chain || m > Warp {
		return "unknown"
	}

	return methodNames[m]
}

// ParseMethod resolves a method name to its Method value.
// Unrecognized names yield ErrUnknownMethod.
func ParseMethod(name string) (Method, error) {
	for i, n := range methodNames {
		if n == name {
			return Method(i), nil
		}
	}

	return 0, ErrUnknownMethod
}

// Options carries the tuning parameters of all strategies plus the bounds
// filter. Zero values are never used directly: DefaultOptions() supplies
// the documented defaults and functional Option setters override them.
//
// Chain:   XThresh, YThresh — maximum |Δx| / |Δy| between chained fixations.
// Merge:   YThresh — same-run vertical tolerance; GThresh — maximum
// absolute gradient of a merged run's fitted line; EThresh — maximum RMS
// fit error of a merged run.
// Regress: KBounds/OBounds/SBounds — search bounds for the common slope,
// the vertical offset and the fit standard deviation.
// Filter:  Threshold — maximum distance from the nearest character center
// before a fixation is discarded.
type Options struct {
	XThresh   float64
	YThresh   float64
	GThresh   float64
	EThresh   float64
	KBounds   [2]float64
	OBounds   [2]float64
	SBounds   [2]float64
	Threshold float64
}

// Option is a functional option for SnapToLines and DiscardOutOfBounds.
type Option func(*Options)

// WithXThresh overrides the chain method's horizontal threshold.
func WithXThresh(x float64) Option {
	return func(o *Options) { o.XThresh = x }
}

// WithYThresh overrides the vertical threshold shared by chain and merge.
func WithYThresh(y float64) Option {
	return func(o *Options) { o.YThresh = y }
}

// WithGThresh overrides the merge method's gradient threshold.
func WithGThresh(g float64) Option {
	return func(o *Options) { o.GThresh = g }
}

// WithEThresh overrides the merge method's fit-error threshold.
func WithEThresh(e float64) Option {
	return func(o *Options) { o.EThresh = e }
}

// WithKBounds overrides the regress method's slope search bounds.
func WithKBounds(lo, hi float64) Option {
	return func(o *Options) { o.KBounds = [2]float64{lo, hi} }
}

// WithOBounds overrides the regress method's offset search bounds.
func WithOBounds(lo, hi float64) Option {
	return func(o *Options) { o.OBounds = [2]float64{lo, hi} }
}

// WithSBounds overrides the regress method's standard-deviation bounds.
func WithSBounds(lo, hi float64) Option {
	return func(o *Options) { o.SBounds = [2]float64{lo, hi} }
}

// WithThreshold overrides the bounds filter's discard distance.
func WithThreshold(t float64) Option {
	return func(o *Options) { o.Threshold = t }
}

// DefaultOptions returns the documented defaults for every parameter:
//
//	XThresh: 192    YThresh: 32
//	GThresh: 0.1    EThresh: 20
//	KBounds: (-0.1, 0.1)
//	OBounds: (-50, 50)
//	SBounds: (1, 20)
//	Threshold: 128
func DefaultOptions() Options {
	return Options{
		XThresh:   192,
		YThresh:   32,
		GThresh:   0.1,
		EThresh:   20,
		KBounds:   [2]float64{-0.1, 0.1},
		OBounds:   [2]float64{-50, 50},
		SBounds:   [2]float64{1, 20},
		Threshold: 128,
	}
}
