package kmedians

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/hupe1980/kmedians/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(buf *bytes.Buffer, level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: level}))
}

func TestLogger_Diagnostics(t *testing.T) {
	var buf bytes.Buffer

	a := model.NewPoint("a", 1, 2)
	c, err := New("c0", a, WithLogger(newBufferLogger(&buf, slog.LevelWarn)))
	require.NoError(t, err)
	assert.Empty(t, buf.String())

	_ = c.RemovePoint(model.NewPoint("stranger", 0, 0))
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), `msg="point not removed"`)
	assert.Contains(t, buf.String(), "cluster=c0")
	assert.Contains(t, buf.String(), "point=stranger")

	buf.Reset()
	c.Clear()
	_, _ = c.Recompute()
	assert.Contains(t, buf.String(), `msg="centroid not recomputed"`)
	assert.Contains(t, buf.String(), "level=WARN")
}

func TestLogger_DimensionMismatchIsError(t *testing.T) {
	var buf bytes.Buffer

	c, err := New("c0", model.NewPoint("a", 1, 2), WithLogger(newBufferLogger(&buf, slog.LevelWarn)))
	require.NoError(t, err)
	c.AddPoint(model.NewPoint("b", 1))

	_, _ = c.Recompute()
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), `msg="centroid recompute failed"`)
}

func TestLogger_Debug(t *testing.T) {
	var buf bytes.Buffer

	a := model.NewPoint("a", 1, 2)
	c, err := New("c0", a, WithLogger(newBufferLogger(&buf, slog.LevelDebug)))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `msg="centroid recomputed"`)
	assert.Contains(t, buf.String(), "changed=true")

	buf.Reset()
	require.NoError(t, c.RemovePoint(a))
	assert.Contains(t, buf.String(), `msg="point removed"`)
	assert.Contains(t, buf.String(), "points=0")
}

func TestNoopLogger(t *testing.T) {
	l := NoopLogger()
	assert.False(t, l.Enabled(t.Context(), slog.LevelError))
}

func TestWithLogger_Nil(t *testing.T) {
	c, err := New("c0", model.NewPoint("a", 1), WithLogger(nil), WithMetricsCollector(nil))
	require.NoError(t, err)
	assert.ErrorIs(t, c.RemovePoint(nil), ErrUnknownPoint)
}
