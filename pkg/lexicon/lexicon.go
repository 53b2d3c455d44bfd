// Package lexicon implements the length- and pattern-indexed word store
// (spec §4.1): a length-binned trie answering words(length, pattern) and
// is_word queries, adapted from pkg/wordlist/trie.go's Trie and from
// original_source/lib-python/littleboxes/dictionary.py's Dictionary/Trie
// pair (the length-binning and iterative pattern traversal come from the
// latter; the dense-array trie node comes from spec.md §9's design note).
package lexicon

import (
	"sort"
	"strings"
)

// Lexicon is a read-only-after-loading collection of words, binned by
// length. It is safe for concurrent reads once loading has completed
// (spec §5): nothing in this package mutates a Lexicon after Add stops
// being called.
type Lexicon struct {
	byLength map[int]*trie
	lengths  []int // kept sorted for deterministic ascending iteration
	size     int
}

// New creates an empty Lexicon.
func New() *Lexicon {
	return &Lexicon{byLength: make(map[int]*trie)}
}

// Add normalizes word to uppercase and inserts it into the bucket for its
// length. Add is idempotent.
func (l *Lexicon) Add(word string) {
	word = normalize(word)
	if word == "" {
		return
	}

	length := len(word)
	t, ok := l.byLength[length]
	if !ok {
		t = newTrie()
		l.byLength[length] = t
		l.lengths = insertSorted(l.lengths, length)
	}

	before := t.size
	t.insert(word)
	if t.size != before {
		l.size++
	}
}

// Size returns the total number of distinct words stored.
func (l *Lexicon) Size() int {
	return l.size
}

// IsWord reports exact membership.
func (l *Lexicon) IsWord(word string) bool {
	word = normalize(word)
	t, ok := l.byLength[len(word)]
	if !ok {
		return false
	}
	return t.isWord(word)
}

// Words yields every stored word satisfying both length and pattern
// constraints. length == 0 means unconstrained length. pattern maps a
// 0-based index to a required letter; a nil or empty pattern matches
// everything. Output order is by length ascending, then lexicographic
// within length. Querying an unknown length returns an empty slice, never
// an error.
func (l *Lexicon) Words(length int, pattern map[int]byte) []string {
	var result []string

	if length != 0 {
		t, ok := l.byLength[length]
		if !ok {
			return nil
		}
		return t.words(pattern)
	}

	for _, ln := range l.lengths {
		t := l.byLength[ln]
		result = append(result, t.words(pattern)...)
	}
	return result
}

// Iterate returns every word in the Lexicon, by length ascending then
// lexicographic within length -- equivalent to Words(0, nil).
func (l *Lexicon) Iterate() []string {
	return l.Words(0, nil)
}

func normalize(word string) string {
	return strings.ToUpper(strings.TrimSpace(word))
}

func insertSorted(lengths []int, n int) []int {
	i := sort.SearchInts(lengths, n)
	lengths = append(lengths, 0)
	copy(lengths[i+1:], lengths[i:])
	lengths[i] = n
	return lengths
}
