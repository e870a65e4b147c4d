// Package distance provides distance functions for float64 points.
//
// All functions assume both arguments have the same length (caller's
// responsibility) and return a non-negative value.
//
// # Supported Metrics
//
//   - SquaredEuclidean: squared L2 distance (default for clustering)
//   - Euclidean: L2 distance
//   - Manhattan: L1 distance
//   - Chebyshev: L-infinity distance
//
// # Usage
//
//	d := distance.SquaredEuclidean(a, b)
//	km, _ := kmeans.New(points, 3, kmeans.WithDistance(distance.Manhattan))
package distance
