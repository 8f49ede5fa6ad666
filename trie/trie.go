// Package trie provides a prefix index over strings.
//
// Words are lower-cased on every operation, so lookups are
// case-insensitive. Nodes own their children via rune maps; deletion
// prunes branches that become childless and non-terminal.
package trie

import (
	"sort"
	"strings"
)

type node struct {
	children map[rune]*node
	terminal bool
}

func newNode() *node {
	return &node{children: make(map[rune]*node)}
}

// Trie is an insert/search/prefix-enumerate/delete index over strings.
//
// Not safe for concurrent use.
type Trie struct {
	root *node
	size int
}

// New creates an empty Trie.
func New() *Trie {
	return &Trie{root: newNode()}
}

// Len returns the number of distinct words stored.
func (t *Trie) Len() int {
	return t.size
}

// Insert adds word to the index. Inserting an existing word is a no-op.
// O(len(word)).
func (t *Trie) Insert(word string) {
	current := t.root
	for _, r := range strings.ToLower(word) {
		next, ok := current.children[r]
		if !ok {
			next = newNode()
			current.children[r] = next
		}
		current = next
	}
	if !current.terminal {
		current.terminal = true
		t.size++
	}
}

// Contains reports whether word was inserted. O(len(word)).
func (t *Trie) Contains(word string) bool {
	n := t.walk(strings.ToLower(word))
	return n != nil && n.terminal
}

// StartsWith reports whether any stored word begins with prefix.
// O(len(prefix)).
func (t *Trie) StartsWith(prefix string) bool {
	return t.walk(strings.ToLower(prefix)) != nil
}

// WordsWithPrefix returns every stored word beginning with prefix, in
// lexicographic order. O(len(prefix) + matches).
func (t *Trie) WordsWithPrefix(prefix string) []string {
	prefix = strings.ToLower(prefix)
	start := t.walk(prefix)
	if start == nil {
		return nil
	}

	var words []string
	collect(start, prefix, &words)
	return words
}

// Delete removes word from the index, pruning nodes that become childless
// and non-terminal. Reports whether the word was present.
func (t *Trie) Delete(word string) bool {
	runes := []rune(strings.ToLower(word))
	removed := false

	// prune reports whether the link to n should be removed by its parent.
	var prune func(n *node, depth int) bool
	prune = func(n *node, depth int) bool {
		if depth == len(runes) {
			if !n.terminal {
				return false
			}
			n.terminal = false
			t.size--
			removed = true
			return len(n.children) == 0
		}

		child, ok := n.children[runes[depth]]
		if !ok {
			return false
		}
		if prune(child, depth+1) {
			delete(n.children, runes[depth])
			return !n.terminal && len(n.children) == 0
		}
		return false
	}

	prune(t.root, 0)
	return removed
}

func (t *Trie) walk(s string) *node {
	current := t.root
	for _, r := range s {
		next, ok := current.children[r]
		if !ok {
			return nil
		}
		current = next
	}
	return current
}

func collect(n *node, prefix string, out *[]string) {
	if n.terminal {
		*out = append(*out, prefix)
	}
	runes := make([]rune, 0, len(n.children))
	for r := range n.children {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
	for _, r := range runes {
		collect(n.children[r], prefix+string(r), out)
	}
}

