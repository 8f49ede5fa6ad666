// Package skiplist provides a comparator-ordered set with probabilistic
// balancing. Expected O(log n) insert/delete/search, worst case O(n).
package skiplist

import "math/rand"

const (
	// DefaultMaxLevel caps node tower heights; sufficient for ~2^20 elements
	// at the default probability.
	DefaultMaxLevel = 20

	// DefaultProbability is the chance of promoting a node one level up.
	DefaultProbability = 0.5
)

type node[T any] struct {
	value   T
	forward []*node[T]
}

// SkipList is an ordered set over elements of type T.
//
// Not safe for concurrent use.
type SkipList[T any] struct {
	compare     func(a, b T) int
	head        *node[T]
	level       int
	size        int
	maxLevel    int
	probability float64
	rand        *rand.Rand
}

// Option configures a SkipList.
type Option[T any] func(*SkipList[T])

// WithSeed fixes the level-choice RNG seed, making the structure
// deterministic across runs.
func WithSeed[T any](seed int64) Option[T] {
	return func(s *SkipList[T]) {
		s.rand = rand.New(rand.NewSource(seed)) // nolint gosec
	}
}

// WithMaxLevel overrides the level cap.
func WithMaxLevel[T any](maxLevel int) Option[T] {
	return func(s *SkipList[T]) {
		if maxLevel > 0 {
			s.maxLevel = maxLevel
		}
	}
}

// WithProbability overrides the promotion probability. Values outside
// (0, 1) are ignored.
func WithProbability[T any](p float64) Option[T] {
	return func(s *SkipList[T]) {
		if p > 0 && p < 1 {
			s.probability = p
		}
	}
}

// New creates an empty SkipList ordered by compare.
func New[T any](compare func(a, b T) int, opts ...Option[T]) *SkipList[T] {
	s := &SkipList[T]{
		compare:     compare,
		level:       1,
		maxLevel:    DefaultMaxLevel,
		probability: DefaultProbability,
		rand:        rand.New(rand.NewSource(rand.Int63())), // nolint gosec
	}
	for _, opt := range opts {
		opt(s)
	}
	s.head = &node[T]{forward: make([]*node[T], s.maxLevel)}
	return s
}

// Len returns the number of stored elements.
func (s *SkipList[T]) Len() int {
	return s.size
}

// Contains reports whether value is stored.
func (s *SkipList[T]) Contains(value T) bool {
	current := s.head
	for i := s.level - 1; i >= 0; i-- {
		for current.forward[i] != nil && s.compare(current.forward[i].value, value) < 0 {
			current = current.forward[i]
		}
	}
	current = current.forward[0]
	return current != nil && s.compare(current.value, value) == 0
}

// Insert adds value to the set. Inserting an existing value is a no-op;
// reports whether the set grew.
func (s *SkipList[T]) Insert(value T) bool {
	update := make([]*node[T], s.maxLevel)
	current := s.head
	for i := s.level - 1; i >= 0; i-- {
		for current.forward[i] != nil && s.compare(current.forward[i].value, value) < 0 {
			current = current.forward[i]
		}
		update[i] = current
	}

	if next := current.forward[0]; next != nil && s.compare(next.value, value) == 0 {
		return false
	}

	level := s.randomLevel()
	if level > s.level {
		for i := s.level; i < level; i++ {
			update[i] = s.head
		}
		s.level = level
	}

	n := &node[T]{value: value, forward: make([]*node[T], level)}
	for i := 0; i < level; i++ {
		n.forward[i] = update[i].forward[i]
		update[i].forward[i] = n
	}
	s.size++
	return true
}

// Delete removes value from the set. Reports whether it was present.
func (s *SkipList[T]) Delete(value T) bool {
	update := make([]*node[T], s.maxLevel)
	current := s.head
	for i := s.level - 1; i >= 0; i-- {
		for current.forward[i] != nil && s.compare(current.forward[i].value, value) < 0 {
			current = current.forward[i]
		}
		update[i] = current
	}

	target := current.forward[0]
	if target == nil || s.compare(target.value, value) != 0 {
		return false
	}

	for i := 0; i < s.level; i++ {
		if update[i].forward[i] != target {
			break
		}
		update[i].forward[i] = target.forward[i]
	}

	for s.level > 1 && s.head.forward[s.level-1] == nil {
		s.level--
	}
	s.size--
	return true
}

// Min returns the smallest stored element.
func (s *SkipList[T]) Min() (T, bool) {
	if s.head.forward[0] == nil {
		var zero T
		return zero, false
	}
	return s.head.forward[0].value, true
}

// Max returns the largest stored element. O(log n) via the top-level chain.
func (s *SkipList[T]) Max() (T, bool) {
	if s.size == 0 {
		var zero T
		return zero, false
	}
	current := s.head
	for i := s.level - 1; i >= 0; i-- {
		for current.forward[i] != nil {
			current = current.forward[i]
		}
	}
	return current.value, true
}

// All returns the stored elements in ascending order.
func (s *SkipList[T]) All() []T {
	out := make([]T, 0, s.size)
	for n := s.head.forward[0]; n != nil; n = n.forward[0] {
		out = append(out, n.value)
	}
	return out
}

// randomLevel chooses a tower height by repeated coin flips, capped at
// maxLevel.
func (s *SkipList[T]) randomLevel() int {
	level := 1
	for level < s.maxLevel && s.rand.Float64() < s.probability {
		level++
	}
	return level
}
