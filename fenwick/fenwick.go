// Package fenwick provides a Fenwick tree (binary indexed tree) for
// prefix sums with point updates, both in O(log n).
package fenwick

import (
	"errors"

	"golang.org/x/exp/constraints"
)

var (
	// ErrInvalidSize is returned when the tree size is not positive.
	ErrInvalidSize = errors.New("fenwick: size must be positive")
	// ErrIndexOutOfBounds is returned for indices outside [0, n).
	ErrIndexOutOfBounds = errors.New("fenwick: index out of bounds")
)

// Number constrains the summable element types.
type Number interface {
	constraints.Integer | constraints.Float
}

// Tree is a Fenwick tree over n elements, all initially zero.
// Internally 1-based: nodes[i] covers the lowbit(i) elements ending at i.
//
// Not safe for concurrent use.
type Tree[T Number] struct {
	n     int
	nodes []T
}

// New creates a Tree over n zero elements.
func New[T Number](n int) (*Tree[T], error) {
	if n <= 0 {
		return nil, ErrInvalidSize
	}
	return &Tree[T]{n: n, nodes: make([]T, n+1)}, nil
}

// FromSlice creates a Tree initialized with items.
func FromSlice[T Number](items []T) (*Tree[T], error) {
	t, err := New[T](len(items))
	if err != nil {
		return nil, err
	}
	for i, v := range items {
		if err := t.Update(i, v); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Len returns the number of elements.
func (t *Tree[T]) Len() int {
	return t.n
}

// Update adds delta to the element at index.
func (t *Tree[T]) Update(index int, delta T) error {
	if index < 0 || index >= t.n {
		return ErrIndexOutOfBounds
	}
	for i := index + 1; i <= t.n; i += i & (-i) {
		t.nodes[i] += delta
	}
	return nil
}

// Query returns the prefix sum over [0, index].
func (t *Tree[T]) Query(index int) (T, error) {
	if index < 0 || index >= t.n {
		var zero T
		return zero, ErrIndexOutOfBounds
	}
	var sum T
	for i := index + 1; i > 0; i -= i & (-i) {
		sum += t.nodes[i]
	}
	return sum, nil
}

// RangeQuery returns the sum over the closed range [l, r].
func (t *Tree[T]) RangeQuery(l, r int) (T, error) {
	if l < 0 || r >= t.n || l > r {
		var zero T
		return zero, ErrIndexOutOfBounds
	}
	hi, err := t.Query(r)
	if err != nil {
		return hi, err
	}
	if l == 0 {
		return hi, nil
	}
	lo, err := t.Query(l - 1)
	if err != nil {
		return lo, err
	}
	return hi - lo, nil
}
