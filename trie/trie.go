// Package trie provides a prefix tree over normalized words.
//
// It is the prefix index of the catalog engine: every inserted word is
// stored as one node per character of its case-folded form, and a prefix
// search collects the payloads of every terminal node under the prefix.
// Unlike the ordered index, duplicate insertions of the same word accumulate
// payloads instead of overwriting. Deletion removes one payload occurrence
// and prunes every character node left empty and non-terminal, so the tree
// never keeps dangling single-use branches.
package trie

import (
	"iter"
	"slices"

	"github.com/karupanerura/catalog-index/internal/keynorm"
)

type node[V comparable] struct {
	children map[rune]*node[V]
	terminal bool
	payloads []V
}

func newNode[V comparable]() *node[V] {
	return &node[V]{children: map[rune]*node[V]{}}
}

// Trie is a prefix tree mapping words to payload lists. Not safe for
// concurrent use; callers serialize access.
type Trie[V comparable] struct {
	root *node[V]
	size int
}

// New creates an empty Trie.
func New[V comparable]() *Trie[V] {
	return &Trie[V]{root: newNode[V]()}
}

// Len returns the number of stored payloads.
func (t *Trie[V]) Len() int {
	return t.size
}

// Insert stores value under the normalized form of word, creating one child
// node per character along the path and marking the final node terminal.
// Inserting the same word twice keeps both payloads.
func (t *Trie[V]) Insert(word string, value V) {
	n := t.root
	for _, r := range keynorm.Key(word) {
		child, ok := n.children[r]
		if !ok {
			child = newNode[V]()
			n.children[r] = child
		}
		n = child
	}
	n.terminal = true
	n.payloads = append(n.payloads, value)
	t.size++
}

// SearchPrefix returns an iterator over the payloads of every word starting
// with the normalized form of prefix. The empty prefix yields every stored
// payload. Order is deterministic for a fixed structure: pre-order, children
// visited in ascending rune order.
func (t *Trie[V]) SearchPrefix(prefix string) iter.Seq[V] {
	n := t.root
	for _, r := range keynorm.Key(prefix) {
		child, ok := n.children[r]
		if !ok {
			return func(yield func(V) bool) {}
		}
		n = child
	}
	return func(yield func(V) bool) {
		collect(n, yield)
	}
}

func collect[V comparable](n *node[V], yield func(V) bool) bool {
	if n.terminal {
		for _, v := range n.payloads {
			if !yield(v) {
				return false
			}
		}
	}
	runes := make([]rune, 0, len(n.children))
	for r := range n.children {
		runes = append(runes, r)
	}
	slices.Sort(runes)
	for _, r := range runes {
		if !collect(n.children[r], yield) {
			return false
		}
	}
	return true
}

// Delete removes one occurrence of value stored under the normalized form of
// word. If the word's payload list becomes empty, its terminal flag is
// cleared, and every node on the path left without children and non-terminal
// is pruned on the way back up. It reports whether an occurrence was removed.
func (t *Trie[V]) Delete(word string, value V) bool {
	return t.delete(t.root, []rune(keynorm.Key(word)), value)
}

func (t *Trie[V]) delete(n *node[V], word []rune, value V) bool {
	if len(word) == 0 {
		if !n.terminal {
			return false
		}
		i := slices.Index(n.payloads, value)
		if i < 0 {
			return false
		}
		n.payloads = slices.Delete(n.payloads, i, i+1)
		if len(n.payloads) == 0 {
			n.payloads = nil
			n.terminal = false
		}
		t.size--
		return true
	}

	child, ok := n.children[word[0]]
	if !ok {
		return false
	}
	deleted := t.delete(child, word[1:], value)
	if deleted && len(child.children) == 0 && !child.terminal {
		delete(n.children, word[0])
	}
	return deleted
}
