// Package segtree provides a segment tree for associative range folds
// with point updates.
//
// The tree is built once from an input slice; Query folds an arbitrary
// associative operator over a closed index range in O(log n) and Update
// rewrites a single leaf plus its ancestors in O(log n).
package segtree

import "errors"

var (
	// ErrEmptyInput is returned when the tree is built from an empty slice.
	ErrEmptyInput = errors.New("segtree: input must not be empty")
	// ErrRangeOutOfBounds is returned for query/update indices outside [0, n).
	ErrRangeOutOfBounds = errors.New("segtree: index out of bounds")
)

// Tree is a segment tree over elements of type T.
//
// Not safe for concurrent use.
type Tree[T any] struct {
	n        int
	nodes    []T
	op       func(a, b T) T
	identity T
}

// New builds a Tree from items using the associative operator op.
// identity must satisfy op(identity, x) == op(x, identity) == x.
func New[T any](items []T, op func(a, b T) T, identity T) (*Tree[T], error) {
	if len(items) == 0 {
		return nil, ErrEmptyInput
	}

	t := &Tree[T]{
		n:        len(items),
		nodes:    make([]T, 4*len(items)),
		op:       op,
		identity: identity,
	}
	t.build(items, 1, 0, t.n-1)
	return t, nil
}

// Len returns the length of the underlying array.
func (t *Tree[T]) Len() int {
	return t.n
}

// Query folds the operator over the closed range [l, r].
func (t *Tree[T]) Query(l, r int) (T, error) {
	if l < 0 || r >= t.n || l > r {
		var zero T
		return zero, ErrRangeOutOfBounds
	}
	return t.query(1, 0, t.n-1, l, r), nil
}

// Update replaces the element at index with value and rebuilds the path
// to the root.
func (t *Tree[T]) Update(index int, value T) error {
	if index < 0 || index >= t.n {
		return ErrRangeOutOfBounds
	}
	t.update(1, 0, t.n-1, index, value)
	return nil
}

func (t *Tree[T]) build(items []T, node, lo, hi int) {
	if lo == hi {
		t.nodes[node] = items[lo]
		return
	}
	mid := (lo + hi) / 2
	t.build(items, 2*node, lo, mid)
	t.build(items, 2*node+1, mid+1, hi)
	t.nodes[node] = t.op(t.nodes[2*node], t.nodes[2*node+1])
}

func (t *Tree[T]) query(node, lo, hi, l, r int) T {
	if r < lo || hi < l {
		return t.identity // fully disjoint
	}
	if l <= lo && hi <= r {
		return t.nodes[node] // fully contained
	}
	mid := (lo + hi) / 2
	return t.op(
		t.query(2*node, lo, mid, l, r),
		t.query(2*node+1, mid+1, hi, l, r),
	)
}

func (t *Tree[T]) update(node, lo, hi, index int, value T) {
	if lo == hi {
		t.nodes[node] = value
		return
	}
	mid := (lo + hi) / 2
	if index <= mid {
		t.update(2*node, lo, mid, index, value)
	} else {
		t.update(2*node+1, mid+1, hi, index, value)
	}
	t.nodes[node] = t.op(t.nodes[2*node], t.nodes[2*node+1])
}
