package distance

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Func is a function type for distance calculation between two points.
//
// The clustering engine's pruning logic assumes the function is symmetric
// and satisfies the triangle inequality; neither is enforced.
type Func func(a, b []float64) float64

// SquaredEuclidean calculates the squared L2 (Euclidean) distance between
// two points. It is monotone in the true Euclidean distance and cheaper to
// compare, so nearest-centroid decisions are identical.
func SquaredEuclidean(a, b []float64) float64 {
	d := floats.Distance(a, b, 2)
	return d * d
}

// Euclidean calculates the L2 distance between two points.
func Euclidean(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}

// Manhattan calculates the L1 distance between two points.
func Manhattan(a, b []float64) float64 {
	return floats.Distance(a, b, 1)
}

// Chebyshev calculates the L-infinity distance between two points.
func Chebyshev(a, b []float64) float64 {
	return floats.Distance(a, b, math.Inf(1))
}
