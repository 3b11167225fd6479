package drift

import (
	"math"

	"gonum.org/v1/gonum/optimize"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/gazefix/geom"
)

// stdNormal squashes unbounded search parameters into their bounds via
// the standard normal CDF (0 maps to the midpoint of each interval).
var stdNormal = distuv.Normal{Mu: 0, Sigma: 1}

// regress fits m candidate regression lines — one per text line, all
// sharing a slope k, a vertical offset o and a residual standard
// deviation s — to the fixation cloud, then assigns each fixation to the
// line under which its y-value is most likely.
//
// The (k, o, s) triple is found by minimizing the negative summed
// log-likelihood of the best-line assignment with a gradient-free
// Nelder–Mead search, started from the bound midpoints. Each raw search
// parameter is squashed into its configured interval (KBounds, OBounds,
// SBounds) through the standard normal CDF, so the optimizer itself runs
// unconstrained. The search is deterministic: fixed start, no randomized
// restarts.
//
// Contracts:
//   - len(xy) ≥ 1; m = len(lineY) ≥ 1.
//   - Output has the same length and order as xy; only y changes.
//
// Failure policy: if the optimizer reports an error the start parameters
// are used as-is, which degrades to nearest-line assignment under the
// midpoint model — still one deterministic y per fixation.
//
// Complexity: O(eval·n·m) time where eval is the number of objective
// evaluations, O(n) space.
func regress(xy []geom.Point, lineY []float64, o Options) []geom.Point {
	out := clonePoints(xy)

	objective := func(params []float64) float64 {
		nll, _ := fitLines(out, lineY, o, params)

		return nll
	}

	start := []float64{0, 0, 0}
	best := start
	problem := optimize.Problem{Func: objective}
	if res, err := optimize.Minimize(problem, start, nil, &optimize.NelderMead{}); err == nil && res != nil {
		best = res.X
	}

	_, assign := fitLines(out, lineY, o, best)
	for i, line := range assign {
		out[i].Y = lineY[line]
	}

	return out
}

// fitLines scores one (k, o, s) parameter triple: for every fixation it
// evaluates the Gaussian log-density of its y-value around each candidate
// line k·x + lineY + o with standard deviation s, keeps the best line
// (lowest index on ties), and sums the densities. Returns the negated sum
// (the minimization objective) and the per-fixation line assignment.
func fitLines(xy []geom.Point, lineY []float64, o Options, params []float64) (negLogLik float64, assign []int) {
	k := squash(o.KBounds, params[0])
	off := squash(o.OBounds, params[1])
	sd := squash(o.SBounds, params[2])

	assign = make([]int, len(xy))
	var total float64
	for i, p := range xy {
		bestDensity := math.Inf(-1)
		bestLine := 0
		for j, ly := range lineY {
			fit := distuv.Normal{Mu: k*p.X + ly + off, Sigma: sd}
			if d := fit.LogProb(p.Y); d > bestDensity {
				bestDensity, bestLine = d, j
			}
		}
		total += bestDensity
		assign[i] = bestLine
	}

	return -total, assign
}

// squash maps an unbounded parameter into [bounds[0], bounds[1]].
func squash(bounds [2]float64, v float64) float64 {
	return bounds[0] + (bounds[1]-bounds[0])*stdNormal.CDF(v)
}
