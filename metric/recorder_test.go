package metric

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_Record(t *testing.T) {
	rec := NewRecorder()

	rec.Record("sort", 10*time.Millisecond)
	rec.Record("sort", 30*time.Millisecond)
	rec.Record("search", 5*time.Millisecond)

	snap := rec.Snapshot()
	require.Len(t, snap, 2)

	s := snap["sort"]
	assert.Equal(t, uint64(2), s.Count)
	assert.Equal(t, 40*time.Millisecond, s.Total)
	assert.Equal(t, 10*time.Millisecond, s.Min)
	assert.Equal(t, 30*time.Millisecond, s.Max)
	assert.Equal(t, 20*time.Millisecond, s.Avg())
}

func TestRecorder_StartAndMeasure(t *testing.T) {
	rec := NewRecorder()

	stop := rec.Start("op")
	stop()

	rec.Measure("op", func() {})

	s := rec.Snapshot()["op"]
	assert.Equal(t, uint64(2), s.Count)
}

func TestRecorder_Reset(t *testing.T) {
	rec := NewRecorder()
	rec.Record("op", time.Millisecond)

	rec.Reset()
	assert.Empty(t, rec.Snapshot())
}

func TestRecorder_SnapshotIsolation(t *testing.T) {
	rec := NewRecorder()
	rec.Record("op", time.Millisecond)

	snap := rec.Snapshot()
	snap["op"] = OpStats{Count: 99}

	assert.Equal(t, uint64(1), rec.Snapshot()["op"].Count,
		"mutating a snapshot must not affect the recorder")
}

func TestRecorder_IndependentInstances(t *testing.T) {
	// Caller-owned recorders must never share state.
	a := NewRecorder()
	b := NewRecorder()

	a.Record("op", time.Millisecond)
	assert.Empty(t, b.Snapshot())
}

func TestOpStats_AvgEmpty(t *testing.T) {
	assert.Zero(t, OpStats{}.Avg())
}

func TestRuntimeAccountant(t *testing.T) {
	bytes, ok := RuntimeAccountant{}.Usage()
	require.True(t, ok)
	assert.Positive(t, bytes)
}

func TestCollector_Gather(t *testing.T) {
	rec := NewRecorder()
	rec.Record("trie.insert", 2*time.Millisecond)

	reg := prometheus.NewRegistry()
	require.NoError(t, reg.Register(NewCollector(rec)))

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "algokit_operation_count")
	assert.Contains(t, names, "algokit_operation_duration_seconds_total")
	assert.Contains(t, names, "algokit_operation_duration_seconds_max")
}
