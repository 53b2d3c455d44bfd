// Package phrase sketches the future-extension contract spec.md §9 calls
// for: the original solver referenced a PhraseDictionary
// (original_source/.../solve_xword.py imports `PhraseDictionary`) that was
// never actually present in the corpus. Nothing in pkg/solver depends on
// this package yet; it exists so a future multi-word-fill implementation
// has the same shape as pkg/lexicon.Lexicon to slot into.
package phrase

// Lexicon is the phrase-support analogue of lexicon.Lexicon: instead of
// single words it would yield tuples of words whose concatenation (minus
// spaces) satisfies a length/pattern constraint, for slots intended to
// hold multi-word answers.
type Lexicon interface {
	// Words returns every stored phrase, as an ordered tuple of its
	// constituent words, satisfying length and pattern exactly as
	// lexicon.Lexicon.Words does for single words.
	Words(length int, pattern map[int]byte) [][]string

	// IsPhrase reports exact membership of a tuple of words.
	IsPhrase(words []string) bool
}
