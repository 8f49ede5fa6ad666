// Package batch provides a chunked batch processor: it splits a large
// collection into fixed-size chunks, applies a transform per chunk and
// yields between chunks so a single-threaded host stays responsive.
//
// Processing honors context cancellation between chunks and can
// optionally be paced with a rate limiter or fanned out over a bounded
// number of goroutines.
package batch

import (
	"context"
	"errors"
	"runtime"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/hupe1980/algokit"
)

var (
	// ErrInvalidChunkSize is returned when the chunk size is not positive.
	ErrInvalidChunkSize = errors.New("batch: chunk size must be positive")
	// ErrNilFunc is returned when no transform is supplied.
	ErrNilFunc = errors.New("batch: transform must not be nil")
)

// Options configures Process.
type Options struct {
	// ChunkSize is the number of items per chunk. Required.
	ChunkSize int

	// Parallelism is the number of chunks processed concurrently.
	// Values below 2 select the sequential path.
	Parallelism int

	// Limiter, if set, paces chunk starts (one token per chunk).
	Limiter *rate.Limiter

	// Logger, if set, logs chunk progress at debug level.
	Logger *algokit.Logger
}

// Chunks splits items into consecutive chunks of at most size elements.
// The chunks alias the input slice. A non-positive size yields nil.
func Chunks[T any](items []T, size int) [][]T {
	if size <= 0 || len(items) == 0 {
		return nil
	}
	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		chunks = append(chunks, items[start:end])
	}
	return chunks
}

// Process applies fn to consecutive chunks of items and concatenates the
// results in input order. Between chunks it checks ctx and yields the
// processor, so a cooperative host scheduler can interleave other work.
func Process[T, R any](ctx context.Context, items []T, fn func(ctx context.Context, chunk []T) ([]R, error), opts Options) ([]R, error) {
	if opts.ChunkSize <= 0 {
		return nil, ErrInvalidChunkSize
	}
	if fn == nil {
		return nil, ErrNilFunc
	}

	logger := opts.Logger
	if logger == nil {
		logger = algokit.NoopLogger()
	}

	chunks := Chunks(items, opts.ChunkSize)
	if len(chunks) == 0 {
		return nil, ctx.Err()
	}

	if opts.Parallelism > 1 {
		return processParallel(ctx, chunks, fn, opts, logger)
	}

	results := make([]R, 0, len(items))
	for i, chunk := range chunks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if opts.Limiter != nil {
			if err := opts.Limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}

		out, err := fn(ctx, chunk)
		if err != nil {
			return nil, err
		}
		results = append(results, out...)

		logger.DebugContext(ctx, "chunk processed", "chunk", i, "size", len(chunk))
		runtime.Gosched()
	}
	return results, nil
}

func processParallel[T, R any](ctx context.Context, chunks [][]T, fn func(ctx context.Context, chunk []T) ([]R, error), opts Options, logger *algokit.Logger) ([]R, error) {
	perChunk := make([][]R, len(chunks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Parallelism)

	for i, chunk := range chunks {
		i, chunk := i, chunk
		if opts.Limiter != nil {
			// Waiting on gctx stops the submission loop as soon as a
			// chunk fails or the caller cancels.
			if err := opts.Limiter.Wait(gctx); err != nil {
				if werr := g.Wait(); werr != nil {
					return nil, werr
				}
				return nil, err
			}
		}
		g.Go(func() error {
			out, err := fn(gctx, chunk)
			if err != nil {
				return err
			}
			perChunk[i] = out
			logger.DebugContext(gctx, "chunk processed", "chunk", i, "size", len(chunk))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var results []R
	for _, out := range perChunk {
		results = append(results, out...)
	}
	return results, nil
}
