// Package unionfind provides a disjoint-set structure with path
// compression and union by rank, giving near-O(1) amortized operations.
package unionfind

import "errors"

var (
	// ErrInvalidSize is returned when the element count is not positive.
	ErrInvalidSize = errors.New("unionfind: size must be positive")
	// ErrIndexOutOfBounds is returned for elements outside [0, n).
	ErrIndexOutOfBounds = errors.New("unionfind: element out of bounds")
)

// UnionFind tracks connected components over the elements [0, n).
//
// Not safe for concurrent use.
type UnionFind struct {
	parent []int
	rank   []int
	count  int
}

// New creates a UnionFind over n singleton elements.
func New(n int) (*UnionFind, error) {
	if n <= 0 {
		return nil, ErrInvalidSize
	}
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	return &UnionFind{
		parent: parent,
		rank:   make([]int, n),
		count:  n,
	}, nil
}

// Len returns the number of elements.
func (u *UnionFind) Len() int {
	return len(u.parent)
}

// Count returns the number of live components.
func (u *UnionFind) Count() int {
	return u.count
}

// Find returns the canonical root of x's component, compressing the path
// so every visited element points directly at the root.
func (u *UnionFind) Find(x int) (int, error) {
	if x < 0 || x >= len(u.parent) {
		return 0, ErrIndexOutOfBounds
	}
	return u.find(x), nil
}

func (u *UnionFind) find(x int) int {
	if u.parent[x] != x {
		u.parent[x] = u.find(u.parent[x])
	}
	return u.parent[x]
}

// Union merges the components of x and y by rank. Reports whether a merge
// happened (false if they were already connected).
func (u *UnionFind) Union(x, y int) (bool, error) {
	rootX, err := u.Find(x)
	if err != nil {
		return false, err
	}
	rootY, err := u.Find(y)
	if err != nil {
		return false, err
	}
	if rootX == rootY {
		return false, nil
	}

	switch {
	case u.rank[rootX] < u.rank[rootY]:
		u.parent[rootX] = rootY
	case u.rank[rootX] > u.rank[rootY]:
		u.parent[rootY] = rootX
	default:
		u.parent[rootY] = rootX
		u.rank[rootX]++
	}
	u.count--
	return true, nil
}

// Connected reports whether x and y share a component.
func (u *UnionFind) Connected(x, y int) (bool, error) {
	rootX, err := u.Find(x)
	if err != nil {
		return false, err
	}
	rootY, err := u.Find(y)
	if err != nil {
		return false, err
	}
	return rootX == rootY, nil
}
