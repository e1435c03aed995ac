package kmedians

import (
	"errors"
	"fmt"

	"github.com/hupe1980/kmedians/internal/median"
)

var (
	// ErrEmptyCluster is returned when the centroid is recomputed for a cluster
	// without members. The centroid keeps its previous value.
	ErrEmptyCluster = errors.New("cluster has no points")

	// ErrUnknownPoint is returned when removing a point that is not a member.
	ErrUnknownPoint = errors.New("point does not belong to cluster")

	// ErrNilPoint is returned when a cluster is created without a seed point.
	ErrNilPoint = errors.New("point must not be nil")
)

// ErrDimensionMismatch indicates a member whose coordinate vector length
// differs from the rest of the cluster.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrDimensionMismatch struct {
	Point    string
	Expected int
	Actual   int
	cause    error
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch for point %q: expected %d, got %d", e.Point, e.Expected, e.Actual)
}

func (e *ErrDimensionMismatch) Unwrap() error { return e.cause }

func (c *Cluster[ID]) translateError(err error) error {
	if err == nil {
		return nil
	}

	var de *median.DimensionError
	if errors.As(err, &de) {
		return &ErrDimensionMismatch{
			Point:    c.points[de.Index].Name(),
			Expected: de.Expected,
			Actual:   de.Actual,
			cause:    err,
		}
	}

	return err
}

// isDiagnostic reports whether err is a recoverable condition that leaves the
// cluster unchanged.
func isDiagnostic(err error) bool {
	return errors.Is(err, ErrEmptyCluster) || errors.Is(err, ErrUnknownPoint)
}
