package kmedians

import (
	"testing"

	"github.com/hupe1980/kmedians/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicMetricsCollector(t *testing.T) {
	metrics := &BasicMetricsCollector{}

	a := model.NewPoint("a", 1, 2)
	b := model.NewPoint("b", 3, 4)

	c, err := New("c0", a, WithMetricsCollector(metrics))
	require.NoError(t, err)

	c.AddPoint(b)
	_, err = c.Recompute()
	require.NoError(t, err)
	_, err = c.Recompute()
	require.NoError(t, err)

	c.AddPoint(b)
	require.NoError(t, c.RemovePoint(b))
	require.NoError(t, c.RemovePoint(b))
	require.Error(t, c.RemovePoint(b))

	c.Clear()
	_, err = c.Recompute()
	require.ErrorIs(t, err, ErrEmptyCluster)

	stats := metrics.GetStats()
	assert.Equal(t, int64(4), stats.RecomputeCount)
	assert.Equal(t, int64(2), stats.RecomputeChanged)
	assert.Equal(t, int64(1), stats.RecomputeErrors)
	assert.GreaterOrEqual(t, stats.RecomputeAvgNanos, int64(0))
	assert.Equal(t, int64(2), stats.AddCount)
	assert.Equal(t, int64(3), stats.RemoveCount)
	assert.Equal(t, int64(1), stats.RemoveErrors)
	assert.Equal(t, int64(1), stats.ClearCount)
	assert.Equal(t, int64(1), stats.ClearedPoints)
}

func TestBasicMetricsCollector_Empty(t *testing.T) {
	var metrics BasicMetricsCollector
	assert.Zero(t, metrics.GetStats())
}
