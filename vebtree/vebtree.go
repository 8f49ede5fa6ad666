// Package vebtree provides a van Emde Boas tree: an integer ordered set
// over a bounded universe U with O(log log U) membership, successor and
// predecessor queries.
//
// The universe is recursively partitioned into upper-sqrt(U) clusters of
// lower-sqrt(U) values each, tracked by a summary tree. Clusters are
// allocated lazily on first insert.
package vebtree

import (
	"errors"
	"math/bits"
)

var (
	// ErrInvalidUniverse is returned when the universe size is below 2.
	ErrInvalidUniverse = errors.New("vebtree: universe must be at least 2")
	// ErrValueOutOfUniverse is returned when a value falls outside [0, U).
	ErrValueOutOfUniverse = errors.New("vebtree: value out of universe")
)

const none = -1

// Tree is a van Emde Boas tree over the universe [0, Universe()).
//
// Not safe for concurrent use.
type Tree struct {
	universe int
	lowBits  int // log2(lower sqrt)
	min, max int // none when empty
	summary  *Tree
	clusters []*Tree
	size     int // tracked at the root only
}

// New creates a Tree over the universe [0, universe). The universe is
// rounded up to the next power of two.
func New(universe int) (*Tree, error) {
	if universe < 2 {
		return nil, ErrInvalidUniverse
	}
	if universe&(universe-1) != 0 {
		universe = 1 << bits.Len(uint(universe))
	}
	return newTree(universe), nil
}

func newTree(universe int) *Tree {
	t := &Tree{universe: universe, min: none, max: none}
	if universe > 2 {
		logU := bits.TrailingZeros(uint(universe))
		t.lowBits = logU / 2
		t.clusters = make([]*Tree, universe>>t.lowBits)
	}
	return t
}

// Universe returns the (rounded) universe size.
func (t *Tree) Universe() int {
	return t.universe
}

// Len returns the number of stored values.
func (t *Tree) Len() int {
	return t.size
}

// Min returns the smallest stored value.
func (t *Tree) Min() (int, bool) {
	if t.min == none {
		return 0, false
	}
	return t.min, true
}

// Max returns the largest stored value.
func (t *Tree) Max() (int, bool) {
	if t.max == none {
		return 0, false
	}
	return t.max, true
}

// Insert adds x to the set. Duplicate inserts are no-ops.
func (t *Tree) Insert(x int) error {
	if x < 0 || x >= t.universe {
		return ErrValueOutOfUniverse
	}
	if !t.contains(x) {
		t.insert(x)
		t.size++
	}
	return nil
}

// Contains reports whether x is stored. Values outside the universe are
// never stored.
func (t *Tree) Contains(x int) bool {
	if x < 0 || x >= t.universe {
		return false
	}
	return t.contains(x)
}

// Successor returns the smallest stored value strictly greater than x.
func (t *Tree) Successor(x int) (int, bool) {
	if t.min == none {
		return 0, false
	}
	if x < t.min {
		return t.min, true
	}
	if x >= t.max {
		return 0, false
	}
	v := t.successor(x)
	return v, v != none
}

// Predecessor returns the largest stored value strictly less than x.
func (t *Tree) Predecessor(x int) (int, bool) {
	if t.max == none {
		return 0, false
	}
	if x > t.max {
		return t.max, true
	}
	if x <= t.min {
		return 0, false
	}
	v := t.predecessor(x)
	return v, v != none
}

func (t *Tree) high(x int) int  { return x >> t.lowBits }
func (t *Tree) low(x int) int   { return x & ((1 << t.lowBits) - 1) }
func (t *Tree) idx(h, l int) int { return h<<t.lowBits | l }

func (t *Tree) cluster(h int) *Tree {
	if t.clusters[h] == nil {
		t.clusters[h] = newTree(1 << t.lowBits)
	}
	return t.clusters[h]
}

func (t *Tree) summaryTree() *Tree {
	if t.summary == nil {
		t.summary = newTree(len(t.clusters))
	}
	return t.summary
}

func (t *Tree) contains(x int) bool {
	if x == t.min || x == t.max {
		return true
	}
	if t.universe <= 2 {
		return false
	}
	cl := t.clusters[t.high(x)]
	return cl != nil && cl.contains(t.low(x))
}

func (t *Tree) insert(x int) {
	if t.min == none {
		t.min, t.max = x, x
		return
	}
	if x == t.min || x == t.max {
		return
	}
	if x < t.min {
		// The minimum is not stored recursively; swap and push the old
		// minimum down instead.
		x, t.min = t.min, x
	}
	if t.universe > 2 {
		h, l := t.high(x), t.low(x)
		cl := t.cluster(h)
		if cl.min == none {
			t.summaryTree().insert(h)
		}
		cl.insert(l)
	}
	if x > t.max {
		t.max = x
	}
}

func (t *Tree) successor(x int) int {
	if t.universe == 2 {
		if x == 0 && t.max == 1 {
			return 1
		}
		return none
	}
	if t.min != none && x < t.min {
		return t.min
	}

	h, l := t.high(x), t.low(x)
	if cl := t.clusters[h]; cl != nil && cl.max != none && l < cl.max {
		return t.idx(h, cl.successor(l))
	}

	if t.summary == nil {
		return none
	}
	next := t.summary.successor(h)
	if next == none {
		return none
	}
	return t.idx(next, t.clusters[next].min)
}

func (t *Tree) predecessor(x int) int {
	if t.universe == 2 {
		if x == 1 && t.min == 0 {
			return 0
		}
		return none
	}
	if t.max != none && x > t.max {
		return t.max
	}

	h, l := t.high(x), t.low(x)
	if cl := t.clusters[h]; cl != nil && cl.min != none && l > cl.min {
		return t.idx(h, cl.predecessor(l))
	}

	prev := none
	if t.summary != nil {
		prev = t.summary.predecessor(h)
	}
	if prev == none {
		// Only the unstored minimum can precede x.
		if t.min != none && x > t.min {
			return t.min
		}
		return none
	}
	return t.idx(prev, t.clusters[prev].max)
}
