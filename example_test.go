package kmeans_test

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/hupe1980/kmeans"
	"github.com/hupe1980/kmeans/distance"
)

// Example demonstrates collapsing a dataset into a single cluster whose
// centroid is the mean of all points.
func Example() {
	points := [][]float64{
		{2, 4}, {4, 6}, {6, 14}, {8, 0},
	}

	km, err := kmeans.New(points, 1)
	if err != nil {
		log.Fatal(err)
	}

	clusters := km.Run()

	fmt.Println(clusters)
	// Output: [[0 1 2 3]]
}

// Example_options demonstrates configuring the metric, the random source
// and the iteration cap.
func Example_options() {
	points := [][]float64{
		{0, 0}, {0, 1}, {1, 0},
		{10, 10}, {10, 11}, {11, 10},
	}

	km, err := kmeans.New(points, 2,
		kmeans.WithDistance(distance.Euclidean),
		kmeans.WithRand(rand.New(rand.NewSource(42))), // reproducible seeding
		kmeans.WithMaxIterations(50),
	)
	if err != nil {
		log.Fatal(err)
	}

	clusters := km.Run()

	total := 0
	for _, cluster := range clusters {
		total += len(cluster)
	}

	fmt.Printf("%d points partitioned\n", total)
	// Output: 6 points partitioned
}
