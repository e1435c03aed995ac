package kmedians

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting cluster metrics.
// See package promcollector for a Prometheus implementation.
type MetricsCollector interface {
	// RecordRecompute is called after each centroid recomputation.
	// changed reports whether the centroid moved, err is nil if successful.
	RecordRecompute(duration time.Duration, changed bool, err error)

	// RecordAdd is called after each point is added.
	RecordAdd()

	// RecordRemove is called after each removal attempt.
	RecordRemove(err error)

	// RecordClear is called after a cluster is cleared.
	// removed is the number of members dropped.
	RecordClear(removed int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordRecompute(time.Duration, bool, error) {}
func (NoopMetricsCollector) RecordAdd()                                 {}
func (NoopMetricsCollector) RecordRemove(error)                         {}
func (NoopMetricsCollector) RecordClear(int)                            {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	RecomputeCount      atomic.Int64
	RecomputeChanged    atomic.Int64
	RecomputeErrors     atomic.Int64
	RecomputeTotalNanos atomic.Int64
	AddCount            atomic.Int64
	RemoveCount         atomic.Int64
	RemoveErrors        atomic.Int64
	ClearCount          atomic.Int64
	ClearedPoints       atomic.Int64
}

// RecordRecompute implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRecompute(duration time.Duration, changed bool, err error) {
	b.RecomputeCount.Add(1)
	b.RecomputeTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.RecomputeErrors.Add(1)
	}
	if changed {
		b.RecomputeChanged.Add(1)
	}
}

// RecordAdd implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAdd() {
	b.AddCount.Add(1)
}

// RecordRemove implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRemove(err error) {
	b.RemoveCount.Add(1)
	if err != nil {
		b.RemoveErrors.Add(1)
	}
}

// RecordClear implements MetricsCollector.
func (b *BasicMetricsCollector) RecordClear(removed int) {
	b.ClearCount.Add(1)
	b.ClearedPoints.Add(int64(removed))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		RecomputeCount:    b.RecomputeCount.Load(),
		RecomputeChanged:  b.RecomputeChanged.Load(),
		RecomputeErrors:   b.RecomputeErrors.Load(),
		RecomputeAvgNanos: b.getAvgRecomputeNanos(),
		AddCount:          b.AddCount.Load(),
		RemoveCount:       b.RemoveCount.Load(),
		RemoveErrors:      b.RemoveErrors.Load(),
		ClearCount:        b.ClearCount.Load(),
		ClearedPoints:     b.ClearedPoints.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgRecomputeNanos() int64 {
	count := b.RecomputeCount.Load()
	if count == 0 {
		return 0
	}
	return b.RecomputeTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	RecomputeCount    int64
	RecomputeChanged  int64
	RecomputeErrors   int64
	RecomputeAvgNanos int64
	AddCount          int64
	RemoveCount       int64
	RemoveErrors      int64
	ClearCount        int64
	ClearedPoints     int64
}
