package pool

// Lazy defers a computation until its first use and memoizes the result.
//
// Not safe for concurrent use; wrap with sync.Once semantics externally
// if shared.
type Lazy[T any] struct {
	compute  func() T
	value    T
	computed bool
}

// NewLazy creates a Lazy around compute. compute runs at most once until
// Reset.
func NewLazy[T any](compute func() T) *Lazy[T] {
	return &Lazy[T]{compute: compute}
}

// Get returns the memoized value, computing it on first call.
func (l *Lazy[T]) Get() T {
	if !l.computed {
		l.value = l.compute()
		l.computed = true
	}
	return l.value
}

// Computed reports whether the value has been materialized.
func (l *Lazy[T]) Computed() bool {
	return l.computed
}

// Reset clears the memoized value; the next Get recomputes.
func (l *Lazy[T]) Reset() {
	var zero T
	l.value = zero
	l.computed = false
}
