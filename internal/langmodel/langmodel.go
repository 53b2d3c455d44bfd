// Package langmodel captures the interface of the bigram letter language
// model spec.md §1 names as out of scope ("its interface is given but its
// training is incidental"). The original's NgramSolver
// (original_source/lib-python/littleboxes/solver/ngram_solver.py) never
// got past `yield (xword, 1.0)` -- a stub -- and its companion NgramModel
// (original_source/.../ngram_model.py) trains frequencies over a word list
// but was never wired into a real solver. Nothing in pkg/solver depends on
// Model; it is here purely as the documented extension point.
package langmodel

// Model predicts the next letter given a fixed-length prefix of already
// placed letters, the way original_source/.../ngram_model.py's
// NgramModel.p and most_likely do.
type Model interface {
	// NextLetterProbs returns a probability distribution over 'A'-'Z' for
	// the letter following prefix.
	NextLetterProbs(prefix []byte) map[byte]float64
}
