// Package pool provides a bounded object pool for recycling expensive
// allocations, plus a resettable lazily-evaluated value.
//
// Unlike sync.Pool, the pool has a hard size cap and guarantees every
// reused object was passed through the reset function; sync.Pool offers
// neither (entries may vanish on GC and carry no reset hook).
package pool

import (
	"errors"
	"sync"
)

var (
	// ErrNilFactory is returned when no factory function is supplied.
	ErrNilFactory = errors.New("pool: factory must not be nil")
	// ErrInvalidMaxSize is returned when the pool size cap is not positive.
	ErrInvalidMaxSize = errors.New("pool: max size must be positive")
)

// Pool recycles objects of type T through an acquire/release cycle.
//
// Safe for concurrent use.
type Pool[T any] struct {
	mu      sync.Mutex
	free    []T
	factory func() T
	reset   func(T)
	maxSize int
}

// New creates a Pool. factory builds fresh objects; reset (optional)
// restores a released object before reuse; maxSize caps the free list.
func New[T any](factory func() T, reset func(T), maxSize int) (*Pool[T], error) {
	if factory == nil {
		return nil, ErrNilFactory
	}
	if maxSize <= 0 {
		return nil, ErrInvalidMaxSize
	}
	return &Pool[T]{
		free:    make([]T, 0, maxSize),
		factory: factory,
		reset:   reset,
		maxSize: maxSize,
	}, nil
}

// Acquire returns a pooled object or builds a fresh one. Pooled objects
// were reset when released.
func (p *Pool[T]) Acquire() T {
	p.mu.Lock()
	if n := len(p.free); n > 0 {
		obj := p.free[n-1]
		var zero T
		p.free[n-1] = zero
		p.free = p.free[:n-1]
		p.mu.Unlock()
		return obj
	}
	p.mu.Unlock()
	return p.factory()
}

// Release resets obj and returns it to the pool. When the pool is at
// capacity the object is silently discarded.
func (p *Pool[T]) Release(obj T) {
	if p.reset != nil {
		p.reset(obj)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.free) < p.maxSize {
		p.free = append(p.free, obj)
	}
}

// Len returns the number of pooled (idle) objects.
func (p *Pool[T]) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.free)
}

// Clear drops all pooled objects.
func (p *Pool[T]) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.free = make([]T, 0, p.maxSize)
}
