package cache

import (
	"container/list"
	"errors"
)

// ErrInvalidCapacity is returned when the configured capacity is not positive.
// A zero-capacity cache is rejected rather than degrading to a no-op; a
// silent no-op hides configuration bugs.
var ErrInvalidCapacity = errors.New("cache: capacity must be positive")

// LRU is a capacity-bounded least-recently-used cache.
//
// It is not safe for concurrent use; callers must synchronize externally.
type LRU[K comparable, V any] struct {
	capacity  int
	items     map[K]*list.Element
	evictList *list.List

	hits   uint64
	misses uint64
}

type entry[K comparable, V any] struct {
	key   K
	value V
}

// New creates an LRU cache holding at most capacity entries.
func New[K comparable, V any](capacity int) (*LRU[K, V], error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	return &LRU[K, V]{
		capacity:  capacity,
		items:     make(map[K]*list.Element, capacity),
		evictList: list.New(),
	}, nil
}

// Get returns the value stored for key and promotes the entry to
// most-recently-used. ok is false on a miss.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	if ent, ok := c.items[key]; ok {
		c.hits++
		c.evictList.MoveToFront(ent)
		return ent.Value.(*entry[K, V]).value, true
	}
	c.misses++
	var zero V
	return zero, false
}

// Peek returns the value stored for key without updating access order.
func (c *LRU[K, V]) Peek(key K) (V, bool) {
	if ent, ok := c.items[key]; ok {
		return ent.Value.(*entry[K, V]).value, true
	}
	var zero V
	return zero, false
}

// Put inserts or updates the value for key and promotes the entry to
// most-recently-used. If the insert pushes the cache past capacity, the
// least-recently-used entry is evicted. Reports whether an eviction
// occurred.
func (c *LRU[K, V]) Put(key K, value V) bool {
	if ent, ok := c.items[key]; ok {
		c.evictList.MoveToFront(ent)
		ent.Value.(*entry[K, V]).value = value
		return false
	}

	element := c.evictList.PushFront(&entry[K, V]{key: key, value: value})
	c.items[key] = element

	if c.evictList.Len() > c.capacity {
		c.removeOldest()
		return true
	}
	return false
}

// Remove drops the entry for key. Reports whether an entry was removed.
func (c *LRU[K, V]) Remove(key K) bool {
	ent, ok := c.items[key]
	if !ok {
		return false
	}
	c.removeElement(ent)
	return true
}

// Contains reports whether key is cached, without updating access order.
func (c *LRU[K, V]) Contains(key K) bool {
	_, ok := c.items[key]
	return ok
}

// Len returns the number of cached entries.
func (c *LRU[K, V]) Len() int {
	return c.evictList.Len()
}

// Cap returns the configured capacity.
func (c *LRU[K, V]) Cap() int {
	return c.capacity
}

// Keys returns the cached keys from most- to least-recently-used.
func (c *LRU[K, V]) Keys() []K {
	keys := make([]K, 0, c.evictList.Len())
	for e := c.evictList.Front(); e != nil; e = e.Next() {
		keys = append(keys, e.Value.(*entry[K, V]).key)
	}
	return keys
}

// Clear drops all entries and resets the access order. Hit/miss counters
// are preserved.
func (c *LRU[K, V]) Clear() {
	c.items = make(map[K]*list.Element, c.capacity)
	c.evictList.Init()
}

// Stats returns the accumulated hit and miss counts.
func (c *LRU[K, V]) Stats() (hits, misses uint64) {
	return c.hits, c.misses
}

func (c *LRU[K, V]) removeOldest() {
	if ent := c.evictList.Back(); ent != nil {
		c.removeElement(ent)
	}
}

func (c *LRU[K, V]) removeElement(e *list.Element) {
	c.evictList.Remove(e)
	delete(c.items, e.Value.(*entry[K, V]).key)
}
