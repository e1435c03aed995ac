// Package kmedians maintains a single cluster for k-medians style partitional
// clustering.
//
// A Cluster owns a centroid and a list of member points. The centroid is the
// coordinate-wise median of the members, recomputed only when Recompute is
// called. An outer assignment loop typically:
//
//  1. moves points between clusters with AddPoint, RemovePoint and Clear,
//  2. calls Recompute on every cluster and keeps iterating while any reports a change,
//  3. compares clusters with Loss and SSE.
//
// # Diagnostics
//
// Recomputing an empty cluster returns ErrEmptyCluster and removing a
// non-member returns ErrUnknownPoint. Both leave the cluster unchanged and are
// logged at WARN. Members with differing dimensionality return
// *ErrDimensionMismatch, which indicates caller misuse.
//
// # Usage
//
//	a := model.NewPoint("a", 1, 2)
//	b := model.NewPoint("b", 3, 4)
//
//	c, _ := kmedians.New(0, a, kmedians.WithLogger(kmedians.NewTextLogger(slog.LevelWarn)))
//	c.AddPoint(b)
//	changed, _ := c.Recompute() // centroid [2 3]
//	loss, _ := c.Loss()         // 2*sqrt(2)
package kmedians
