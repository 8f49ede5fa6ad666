// Package cache provides a capacity-bounded least-recently-used cache.
//
// The cache tracks access order with an intrusive doubly-linked list
// (container/list) and a key→element map, giving O(1) expected Get/Put.
// Capacity is counted in entries; inserting past capacity evicts the
// least-recently-used entry.
package cache
