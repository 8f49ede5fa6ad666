// Package metric provides caller-owned instrumentation for the toolkit:
// an operation-timing recorder, optional memory accounting and a
// Prometheus bridge.
//
// The recorder is an explicit, injectable context rather than a
// process-wide singleton, so separate tests and threads never contaminate
// each other's measurements.
package metric

import (
	"sync"
	"time"

	"github.com/hupe1980/algokit"
)

// OpStats aggregates the recorded durations of one operation.
type OpStats struct {
	Count uint64
	Total time.Duration
	Min   time.Duration
	Max   time.Duration
}

// Avg returns the mean duration, zero when nothing was recorded.
func (s OpStats) Avg() time.Duration {
	if s.Count == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Count)
}

// Recorder accumulates operation timings. The zero value is not usable;
// create one with NewRecorder.
//
// Safe for concurrent use.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]OpStats

	logger        *algokit.Logger
	slowThreshold time.Duration
}

// RecorderOption configures a Recorder.
type RecorderOption func(*Recorder)

// WithLogger makes the recorder log operations slower than threshold at
// warn level.
func WithLogger(logger *algokit.Logger, threshold time.Duration) RecorderOption {
	return func(r *Recorder) {
		r.logger = logger
		r.slowThreshold = threshold
	}
}

// NewRecorder creates an empty Recorder.
func NewRecorder(opts ...RecorderOption) *Recorder {
	r := &Recorder{stats: make(map[string]OpStats)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Record adds one observation of op.
func (r *Recorder) Record(op string, d time.Duration) {
	r.mu.Lock()
	s := r.stats[op]
	s.Count++
	s.Total += d
	if s.Count == 1 || d < s.Min {
		s.Min = d
	}
	if d > s.Max {
		s.Max = d
	}
	r.stats[op] = s
	r.mu.Unlock()

	if r.logger != nil && d >= r.slowThreshold {
		r.logger.Warn("slow operation", "op", op, "duration", d)
	}
}

// Start returns a stop function that records the elapsed time for op.
//
//	defer rec.Start("trie.insert")()
func (r *Recorder) Start(op string) func() {
	begin := time.Now()
	return func() {
		r.Record(op, time.Since(begin))
	}
}

// Measure runs fn and records its duration under op.
func (r *Recorder) Measure(op string, fn func()) {
	defer r.Start(op)()
	fn()
}

// Snapshot returns a copy of the accumulated stats keyed by operation.
func (r *Recorder) Snapshot() map[string]OpStats {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]OpStats, len(r.stats))
	for op, s := range r.stats {
		out[op] = s
	}
	return out
}

// Reset drops all accumulated stats.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stats = make(map[string]OpStats)
}
