package median

import (
	"errors"
	"fmt"
	"slices"
)

// ErrEmpty is returned when a median is requested over no values.
var ErrEmpty = errors.New("median of empty set")

// DimensionError reports a vector whose length differs from the first vector's.
type DimensionError struct {
	Index    int // position of the offending vector
	Expected int
	Actual   int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("vector %d: dimension mismatch: expected %d, got %d", e.Index, e.Expected, e.Actual)
}

// Of returns the median of values. values is sorted in place.
// Panics if values is empty.
func Of(values []float64) float64 {
	slices.Sort(values)

	n := len(values)
	if n%2 == 0 {
		return (values[n/2-1] + values[n/2]) / 2
	}

	return values[n/2]
}

// Coordinatewise returns the vector whose d-th element is the median of the
// d-th elements of all vectors. The dimensionality is taken from vectors[0];
// every other vector must match it.
func Coordinatewise(vectors [][]float64) ([]float64, error) {
	if len(vectors) == 0 {
		return nil, ErrEmpty
	}

	dim := len(vectors[0])
	for i, v := range vectors[1:] {
		if len(v) != dim {
			return nil, &DimensionError{Index: i + 1, Expected: dim, Actual: len(v)}
		}
	}

	result := make([]float64, dim)
	column := make([]float64, len(vectors))

	for d := 0; d < dim; d++ {
		for i, v := range vectors {
			column[i] = v[d]
		}
		result[d] = Of(column)
	}

	return result, nil
}
