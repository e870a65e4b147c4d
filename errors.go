package kmeans

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidK is returned when k is not positive.
	ErrInvalidK = errors.New("k must be positive")

	// ErrEmptyDataset is returned when the dataset contains no points.
	ErrEmptyDataset = errors.New("dataset must not be empty")

	// ErrInsufficientDistinctPoints is returned when the dataset holds fewer
	// than k distinct points, so k distinct centroids can never be sampled.
	ErrInsufficientDistinctPoints = errors.New("dataset must contain at least k distinct points")
)

// ErrDimensionMismatch indicates a point whose dimension differs from the
// first point in the dataset.
type ErrDimensionMismatch struct {
	Index    int
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch at point %d: expected %d, got %d", e.Index, e.Expected, e.Actual)
}
