package batch

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestChunks(t *testing.T) {
	assert.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, Chunks([]int{1, 2, 3, 4, 5}, 2))
	assert.Equal(t, [][]int{{1, 2, 3}}, Chunks([]int{1, 2, 3}, 10))
	assert.Nil(t, Chunks([]int{}, 2))
	assert.Nil(t, Chunks([]int{1}, 0))
}

func double(_ context.Context, chunk []int) ([]int, error) {
	out := make([]int, len(chunk))
	for i, v := range chunk {
		out[i] = v * 2
	}
	return out, nil
}

func TestProcess_Validation(t *testing.T) {
	ctx := context.Background()

	_, err := Process(ctx, []int{1}, double, Options{ChunkSize: 0})
	require.ErrorIs(t, err, ErrInvalidChunkSize)

	_, err = Process[int, int](ctx, []int{1}, nil, Options{ChunkSize: 1})
	require.ErrorIs(t, err, ErrNilFunc)
}

func TestProcess_Sequential(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	got, err := Process(context.Background(), items, double, Options{ChunkSize: 3})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4, 6, 8, 10, 12, 14}, got)
}

func TestProcess_EmptyInput(t *testing.T) {
	got, err := Process(context.Background(), nil, double, Options{ChunkSize: 3})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestProcess_PropagatesError(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	fn := func(_ context.Context, chunk []int) ([]int, error) {
		calls++
		if calls == 2 {
			return nil, boom
		}
		return chunk, nil
	}

	_, err := Process(context.Background(), []int{1, 2, 3, 4}, fn, Options{ChunkSize: 2})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 2, calls, "processing stops at the failing chunk")
}

func TestProcess_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	fn := func(_ context.Context, chunk []int) ([]int, error) {
		calls++
		cancel() // cancel during the first chunk
		return chunk, nil
	}

	_, err := Process(ctx, []int{1, 2, 3, 4}, fn, Options{ChunkSize: 1})
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls, "no further chunks after cancellation")
}

func TestProcess_Parallel(t *testing.T) {
	items := make([]int, 100)
	for i := range items {
		items[i] = i
	}

	var inFlight, peak atomic.Int32
	fn := func(_ context.Context, chunk []int) ([]int, error) {
		cur := inFlight.Add(1)
		defer inFlight.Add(-1)
		for {
			p := peak.Load()
			if cur <= p || peak.CompareAndSwap(p, cur) {
				break
			}
		}
		out := make([]int, len(chunk))
		for i, v := range chunk {
			out[i] = v * 2
		}
		return out, nil
	}

	got, err := Process(context.Background(), items, fn, Options{ChunkSize: 5, Parallelism: 4})
	require.NoError(t, err)

	require.Len(t, got, 100)
	for i, v := range got {
		assert.Equal(t, i*2, v, "results keep input order")
	}
	assert.LessOrEqual(t, peak.Load(), int32(4), "parallelism is bounded")
}

func TestProcess_ParallelLimiterStopsAfterFailure(t *testing.T) {
	// One burst token and an hour per refill: with a live group context
	// the second Wait unblocks as soon as the first chunk fails, instead
	// of pacing out the remaining submissions.
	limiter := rate.NewLimiter(rate.Every(time.Hour), 1)
	boom := errors.New("boom")
	fn := func(_ context.Context, _ []int) ([]int, error) {
		return nil, boom
	}

	start := time.Now()
	_, err := Process(context.Background(), []int{1, 2, 3, 4}, fn,
		Options{ChunkSize: 1, Parallelism: 2, Limiter: limiter})
	require.ErrorIs(t, err, boom)
	assert.Less(t, time.Since(start), 10*time.Second)
}

func TestProcess_WithLimiter(t *testing.T) {
	// A generous limiter only proves the pacing path runs, not timing.
	limiter := rate.NewLimiter(rate.Inf, 1)

	got, err := Process(context.Background(), []int{1, 2, 3}, double,
		Options{ChunkSize: 1, Limiter: limiter})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4, 6}, got)
}
