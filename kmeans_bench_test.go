package kmeans

import (
	"math/rand"
	"testing"
)

func BenchmarkRun(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	points := uniformDataset(rng, 2000, 8, 100)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		km, err := New(points, 16, WithRand(rand.New(rand.NewSource(42))))
		if err != nil {
			b.Fatal(err)
		}
		km.Run()
	}
}
