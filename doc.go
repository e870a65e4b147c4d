// Package kmeans partitions fixed-dimension float64 points into k clusters
// using a pruned variant of Lloyd's algorithm.
//
// Instead of comparing every point against all k centroids on every
// iteration, the engine keeps two distance bounds per point and a neighbor
// graph over clusters. A point is re-examined only when its own centroid
// moved strictly closer since the previous pass, and then only against the
// clusters that recently competed for the points its cluster owns. This
// trades exhaustive reassignment for speed: the result quality depends on
// how well the neighbor graph tracks true proximity.
//
// # Quick Start
//
//	km, err := kmeans.New(points, 3)
//	if err != nil {
//		log.Fatal(err)
//	}
//	clusters := km.Run()
//	for _, cluster := range clusters {
//		fmt.Println(cluster) // indices into points
//	}
//
// # Configuration
//
//	km, err := kmeans.New(points, 3,
//		kmeans.WithDistance(distance.Euclidean),
//		kmeans.WithRand(rand.New(rand.NewSource(42))), // reproducible runs
//		kmeans.WithMaxIterations(50),
//	)
//
// All validation happens in New; Run never fails. A KMeans instance owns its
// state exclusively and must not be used from multiple goroutines.
package kmeans
