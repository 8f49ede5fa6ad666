// Package search provides array and string search algorithms: binary
// search, Boyer-Moore substring search and Jaro-Winkler fuzzy matching.
package search

import "sort"

// NotFound is the sentinel index returned when a target is absent.
const NotFound = -1

// Binary returns the index of target in items, which must be ordered by
// compare. Returns NotFound when absent; with duplicates, any matching
// index may be returned. O(log n).
func Binary[T any](items []T, target T, compare func(a, b T) int) int {
	lo, hi := 0, len(items)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		switch c := compare(items[mid], target); {
		case c == 0:
			return mid
		case c < 0:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return NotFound
}

// BoyerMoore returns the start offsets of every occurrence of pattern in
// text, ascending, using the bad-character rule. Average sub-linear; the
// empty pattern matches nothing.
func BoyerMoore(text, pattern string) []int {
	n, m := len(text), len(pattern)
	if m == 0 || m > n {
		return nil
	}

	// last[c] is the rightmost index of byte c in pattern.
	var last [256]int
	for i := range last {
		last[i] = -1
	}
	for i := 0; i < m; i++ {
		last[pattern[i]] = i
	}

	var matches []int
	shift := 0
	for shift <= n-m {
		j := m - 1
		for j >= 0 && pattern[j] == text[shift+j] {
			j--
		}
		if j < 0 {
			matches = append(matches, shift)
			shift++
			continue
		}
		// Align the mismatched text byte with its last occurrence in the
		// pattern; bytes absent from the pattern skip past entirely.
		skip := j - last[text[shift+j]]
		if skip < 1 {
			skip = 1
		}
		shift += skip
	}
	return matches
}

// Match is a fuzzy-search candidate that met the threshold.
type Match struct {
	Value string
	Score float64
}

// Fuzzy scores every candidate against query with Jaro-Winkler
// similarity, keeps those meeting threshold and returns them sorted by
// descending score. Ties keep candidate order.
func Fuzzy(query string, candidates []string, threshold float64) []Match {
	var matches []Match
	for _, c := range candidates {
		if score := JaroWinkler(query, c); score >= threshold {
			matches = append(matches, Match{Value: c, Score: score})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	return matches
}

// JaroWinkler returns the Jaro-Winkler similarity of a and b in [0, 1]:
// the Jaro character-match density boosted by a common-prefix bonus of up
// to four characters.
func JaroWinkler(a, b string) float64 {
	jaro := jaroSimilarity(a, b)

	const (
		prefixScale = 0.1
		maxPrefix   = 4
	)
	prefix := 0
	for prefix < len(a) && prefix < len(b) && prefix < maxPrefix && a[prefix] == b[prefix] {
		prefix++
	}
	return jaro + float64(prefix)*prefixScale*(1-jaro)
}

func jaroSimilarity(a, b string) float64 {
	if a == b {
		return 1
	}
	la, lb := len(a), len(b)
	if la == 0 || lb == 0 {
		return 0
	}

	window := max(la, lb)/2 - 1
	if window < 0 {
		window = 0
	}

	matchedA := make([]bool, la)
	matchedB := make([]bool, lb)

	matches := 0
	for i := 0; i < la; i++ {
		lo := max(0, i-window)
		hi := min(lb-1, i+window)
		for j := lo; j <= hi; j++ {
			if !matchedB[j] && a[i] == b[j] {
				matchedA[i] = true
				matchedB[j] = true
				matches++
				break
			}
		}
	}
	if matches == 0 {
		return 0
	}

	// Transpositions: matched characters out of order, halved.
	transpositions := 0
	j := 0
	for i := 0; i < la; i++ {
		if !matchedA[i] {
			continue
		}
		for !matchedB[j] {
			j++
		}
		if a[i] != b[j] {
			transpositions++
		}
		j++
	}

	m := float64(matches)
	t := float64(transpositions) / 2
	return (m/float64(la) + m/float64(lb) + (m-t)/m) / 3
}
