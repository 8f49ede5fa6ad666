package suffix

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/algokit/testutil"
)

func naiveOffsets(text, pattern string) []int {
	if pattern == "" {
		out := make([]int, len(text))
		for i := range out {
			out[i] = i
		}
		return out
	}
	var out []int
	for i := 0; i+len(pattern) <= len(text); i++ {
		if text[i:i+len(pattern)] == pattern {
			out = append(out, i)
		}
	}
	return out
}

func TestIndex_Banana(t *testing.T) {
	idx := New("banana")

	assert.Equal(t, []int{5, 3, 1, 0, 4, 2}, idx.SuffixArray())
	assert.Equal(t, []int{0, 1, 3, 0, 0, 2}, idx.LCP())

	assert.Equal(t, []int{1, 3}, idx.Lookup("ana"))
	assert.Equal(t, []int{0}, idx.Lookup("banana"))
	assert.Equal(t, []int{1, 3, 5}, idx.Lookup("a"))
	assert.Nil(t, idx.Lookup("x"))
	assert.Nil(t, idx.Lookup("bananas"))
}

func TestIndex_Contains(t *testing.T) {
	idx := New("mississippi")

	assert.True(t, idx.Contains("issi"))
	assert.True(t, idx.Contains("mississippi"))
	assert.True(t, idx.Contains(""))
	assert.False(t, idx.Contains("missing"))
}

func TestIndex_EmptyAndSingle(t *testing.T) {
	idx := New("")
	assert.Empty(t, idx.SuffixArray())
	assert.Nil(t, idx.Lookup("a"))

	idx = New("z")
	assert.Equal(t, []int{0}, idx.SuffixArray())
	assert.Equal(t, []int{0}, idx.Lookup("z"))
	assert.Nil(t, idx.Lookup("a"))
}

func TestIndex_SuffixArrayIsSortedPermutation(t *testing.T) {
	text := "abracadabra"
	idx := New(text)

	sa := idx.SuffixArray()
	require.Len(t, sa, len(text))

	seen := make(map[int]bool)
	for _, off := range sa {
		seen[off] = true
	}
	assert.Len(t, seen, len(text), "suffix array is a permutation of [0, n)")

	sorted := sort.SliceIsSorted(sa, func(i, j int) bool {
		return text[sa[i]:] < text[sa[j]:]
	})
	assert.True(t, sorted, "suffix array orders suffixes lexicographically")
}

func TestIndex_LCPMatchesDefinition(t *testing.T) {
	text := "abcabxabcd"
	idx := New(text)

	sa := idx.SuffixArray()
	lcp := idx.LCP()
	for i := 1; i < len(sa); i++ {
		a, b := text[sa[i-1]:], text[sa[i]:]
		want := 0
		for want < len(a) && want < len(b) && a[want] == b[want] {
			want++
		}
		assert.Equal(t, want, lcp[i], "lcp[%d]", i)
	}
}

func TestIndex_LookupMatchesNaiveScan(t *testing.T) {
	rng := testutil.NewRNG(23)

	// Small alphabet to force plenty of repeats and overlaps.
	b := make([]byte, 200)
	for i := range b {
		b[i] = byte('a' + rng.Intn(3))
	}
	text := string(b)
	idx := New(text)

	for plen := 1; plen <= len(text); plen++ {
		for trial := 0; trial < 4; trial++ {
			start := rng.Intn(len(text) - plen + 1)
			pattern := text[start : start+plen]
			assert.Equal(t, naiveOffsets(text, pattern), idx.Lookup(pattern),
				"pattern %q", pattern)
		}
	}

	// Patterns not taken from the text.
	for trial := 0; trial < 50; trial++ {
		pattern := strings.Repeat("ab", 1+rng.Intn(4)) + "z"
		got := idx.Lookup(pattern)
		want := naiveOffsets(text, pattern)
		assert.Equal(t, want, got, "pattern %q", pattern)
	}
}
