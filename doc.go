// Package algokit provides a generic in-memory data-structure and
// algorithm toolkit for Go.
//
// The toolkit covers the containers and algorithms commonly needed to back
// search, sorting, caching and list-virtualization features:
//
//   - cache: capacity-bounded LRU cache
//   - queue: comparator-ordered priority queue
//   - trie: prefix index over strings
//   - segtree, fenwick: range folds and prefix sums with point updates
//   - skiplist: probabilistically balanced ordered set
//   - vebtree: integer successor/predecessor over a bounded universe
//   - unionfind: disjoint-set connectivity
//   - suffix: suffix array + LCP substring index
//   - bloom, sketch: probabilistic membership and frequency estimation
//   - graph: Dijkstra shortest paths and cycle detection
//   - sorting, search: adaptive sorting and string/array search
//   - pool, batch, window, metric: recycling, chunked processing,
//     virtualization math and caller-owned instrumentation
//
// All structures are designed for single-threaded, synchronous use and
// perform no internal locking unless documented otherwise. Construction
// parameters are validated eagerly; absence (cache miss, not-found index,
// unreachable target) is reported through sentinel results rather than
// errors.
package algokit
