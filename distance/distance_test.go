package distance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquaredEuclidean(t *testing.T) {
	a := []float64{1, 2}
	b := []float64{4, 6}

	assert.InDelta(t, 25.0, SquaredEuclidean(a, b), 1e-12)
	assert.InDelta(t, 0.0, SquaredEuclidean(a, a), 1e-12)
}

func TestEuclidean(t *testing.T) {
	a := []float64{1, 2}
	b := []float64{4, 6}

	assert.InDelta(t, 5.0, Euclidean(a, b), 1e-12)
}

func TestManhattan(t *testing.T) {
	a := []float64{1, 2}
	b := []float64{4, 6}

	assert.InDelta(t, 7.0, Manhattan(a, b), 1e-12)
	assert.InDelta(t, 7.0, Manhattan(b, a), 1e-12)
}

func TestChebyshev(t *testing.T) {
	a := []float64{1, 2}
	b := []float64{4, 6}

	assert.InDelta(t, 4.0, Chebyshev(a, b), 1e-12)
}
