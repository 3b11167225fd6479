// Package geom provides the planar primitives shared by the drift-correction
// engine: a 2-D point and the Euclidean metric.
//
// The metric is used both as the local cost of Dynamic Time Warping and for
// out-of-bounds fixation filtering.
package geom

import "math"

// Point is a position on the screen plane, in pixel units.
// X grows rightward, Y grows downward (raster convention).
type Point struct {
	X float64
	Y float64
}

// Distance returns the Euclidean distance between p and q.
//
// Pure function; no error conditions.
//
// Complexity: O(1).
func Distance(p, q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}
