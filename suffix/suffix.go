// Package suffix provides a suffix array with a Kasai LCP array, enabling
// fast substring lookup over an immutable text.
//
// Construction sorts all suffixes by prefix doubling, with a comparison
// sort per doubling round, in O(n log² n) time overall; the LCP array is
// derived in O(n). Lookup locates the
// contiguous run of matching suffixes with two binary searches, each
// O(|pattern| · log n).
package suffix

import (
	"sort"
)

// Index is an immutable substring index over a text.
type Index struct {
	text string
	sa   []int
	lcp  []int
}

// New builds the Index for text.
func New(text string) *Index {
	n := len(text)
	idx := &Index{
		text: text,
		sa:   make([]int, n),
		lcp:  make([]int, n),
	}
	if n == 0 {
		return idx
	}
	if n == 1 {
		return idx // sa = [0], lcp = [0]
	}

	rank := make([]int, n)
	next := make([]int, n)
	for i := 0; i < n; i++ {
		idx.sa[i] = i
		rank[i] = int(text[i])
	}

	// Prefix doubling: at gap k, rank pairs (rank[i], rank[i+k]) order
	// suffixes by their first 2k characters.
	for k := 1; n > 1; k *= 2 {
		less := func(i, j int) bool {
			if rank[i] != rank[j] {
				return rank[i] < rank[j]
			}
			ri, rj := -1, -1
			if i+k < n {
				ri = rank[i+k]
			}
			if j+k < n {
				rj = rank[j+k]
			}
			return ri < rj
		}

		sort.Slice(idx.sa, func(a, b int) bool { return less(idx.sa[a], idx.sa[b]) })

		next[idx.sa[0]] = 0
		for i := 1; i < n; i++ {
			next[idx.sa[i]] = next[idx.sa[i-1]]
			if less(idx.sa[i-1], idx.sa[i]) {
				next[idx.sa[i]]++
			}
		}
		copy(rank, next)

		if rank[idx.sa[n-1]] == n-1 {
			break // all ranks distinct, fully sorted
		}
	}

	idx.buildLCP(rank)
	return idx
}

// buildLCP fills lcp via Kasai's algorithm. rank must be the inverse
// suffix-array mapping (rank[i] = position of suffix i in sa).
func (idx *Index) buildLCP(rank []int) {
	n := len(idx.text)
	h := 0
	for i := 0; i < n; i++ {
		if rank[i] == 0 {
			h = 0
			continue
		}
		j := idx.sa[rank[i]-1]
		for i+h < n && j+h < n && idx.text[i+h] == idx.text[j+h] {
			h++
		}
		idx.lcp[rank[i]] = h
		if h > 0 {
			h--
		}
	}
}

// Text returns the indexed text.
func (idx *Index) Text() string {
	return idx.text
}

// SuffixArray returns the suffix array: the start offsets of all suffixes
// in lexicographic order. The returned slice must not be modified.
func (idx *Index) SuffixArray() []int {
	return idx.sa
}

// LCP returns the LCP array: LCP[i] is the length of the shared prefix of
// the suffixes at sa[i-1] and sa[i] (LCP[0] is 0). The returned slice must
// not be modified.
func (idx *Index) LCP() []int {
	return idx.lcp
}

// Lookup returns the start offsets of every occurrence of pattern, sorted
// ascending. The empty pattern matches at every offset.
func (idx *Index) Lookup(pattern string) []int {
	n := len(idx.sa)
	if n == 0 {
		return nil
	}

	// First suffix >= pattern.
	lo := sort.Search(n, func(i int) bool {
		return idx.text[idx.sa[i]:] >= pattern
	})
	// First suffix whose pattern-length prefix is > pattern.
	hi := sort.Search(n, func(i int) bool {
		suf := idx.text[idx.sa[i]:]
		if len(suf) > len(pattern) {
			suf = suf[:len(pattern)]
		}
		return suf > pattern
	})
	if lo >= hi {
		return nil
	}

	offsets := make([]int, hi-lo)
	copy(offsets, idx.sa[lo:hi])
	sort.Ints(offsets)
	return offsets
}

// Contains reports whether pattern occurs in the text.
func (idx *Index) Contains(pattern string) bool {
	if pattern == "" {
		return true
	}
	return len(idx.Lookup(pattern)) > 0
}
