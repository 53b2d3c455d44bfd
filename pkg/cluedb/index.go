// Package cluedb implements the historical clue/answer index: exact
// clue lookup, fuzzy clue search by n-gram similarity, and per-length
// answer sets, grounded on
// original_source/lib-python/littleboxes/cluedb.py's ClueDB.
package cluedb

import (
	"fmt"
	"strings"

	"github.com/crossplay/solver/pkg/xwerrors"
)

const defaultShingleSize = 3

// Record is one historical clue/answer pair, as parsed from an archive
// line or added programmatically.
type Record struct {
	Answer string
	Clue   string
	Year   int
	Source string
}

// HistoricalIndex is the historical clue/answer index described by
// spec.md's HistoricalIndex component: a clue-to-answers map plus a
// fuzzy clue index keyed on the same normalized clue strings.
type HistoricalIndex struct {
	shingleSize int

	clueToAnswers map[string]map[string]bool
	answersByLen  map[int]map[string]bool
	fuzzy         *ngramIndex

	// clue text recorded for each normalized key. Add stores the
	// normalized form itself, and Search does not read this map: search
	// results carry the normalized clue.
	display map[string]string

	cache *SearchCache
}

// New builds an empty HistoricalIndex using the default shingle size (3).
func New() *HistoricalIndex {
	return NewWithShingleSize(defaultShingleSize)
}

// NewWithShingleSize builds an empty HistoricalIndex with a custom n-gram
// shingle length.
func NewWithShingleSize(n int) *HistoricalIndex {
	return &HistoricalIndex{
		shingleSize:   n,
		clueToAnswers: make(map[string]map[string]bool),
		answersByLen:  make(map[int]map[string]bool),
		fuzzy:         newNgramIndex(n),
		display:       make(map[string]string),
	}
}

// normalizeClue mirrors ClueDB._normalize_clue: lowercase and collapse
// surrounding whitespace, so "Feline pet" and "feline pet " index
// identically.
func normalizeClue(clue string) string {
	return strings.ToLower(strings.TrimSpace(clue))
}

// normalizeAnswer mirrors ClueDB._normalize_answer: uppercase, letters
// only (puzzle answers never contain punctuation or spaces once filled).
func normalizeAnswer(answer string) string {
	var b strings.Builder
	for _, r := range answer {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r - ('a' - 'A'))
		} else if r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Add records one clue/answer pair. Adding the same pair twice is a
// no-op; adding a new answer for an already-seen clue unions it in.
func (idx *HistoricalIndex) Add(clue, answer string) {
	nClue := normalizeClue(clue)
	nAnswer := normalizeAnswer(answer)
	if nClue == "" || nAnswer == "" {
		return
	}

	answers, ok := idx.clueToAnswers[nClue]
	if !ok {
		answers = make(map[string]bool)
		idx.clueToAnswers[nClue] = answers
		idx.display[nClue] = nClue
		idx.fuzzy.add(nClue)
	}
	answers[nAnswer] = true

	byLen, ok := idx.answersByLen[len(nAnswer)]
	if !ok {
		byLen = make(map[string]bool)
		idx.answersByLen[len(nAnswer)] = byLen
	}
	byLen[nAnswer] = true
}

// AddRecord is a convenience wrapper for Add over a parsed Record.
func (idx *HistoricalIndex) AddRecord(r Record) {
	idx.Add(r.Clue, r.Answer)
}

// Answers returns every distinct answer ever recorded for clue, exactly
// as written (normalized to the index's internal casing). If length is
// non-zero, results are filtered to that length. It returns
// xwerrors.ErrNotFound if the clue was never added -- mirroring the
// Python direct-index KeyError from ClueDB.answers's
// self._clue_to_answers[clue] lookup.
func (idx *HistoricalIndex) Answers(clue string, length ...int) ([]string, error) {
	nClue := normalizeClue(clue)
	answers, ok := idx.clueToAnswers[nClue]
	if !ok {
		return nil, fmt.Errorf("clue %q: %w", clue, xwerrors.ErrNotFound)
	}

	want := 0
	if len(length) > 0 {
		want = length[0]
	}

	out := make([]string, 0, len(answers))
	for a := range answers {
		if want != 0 && len(a) != want {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

// AnswersByLength returns every distinct answer of the given length seen
// across the whole index, regardless of which clue it came from. Useful
// for seeding a solver's candidate pool straight from history.
func (idx *HistoricalIndex) AnswersByLength(length int) []string {
	byLen, ok := idx.answersByLen[length]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(byLen))
	for a := range byLen {
		out = append(out, a)
	}
	return out
}

// SetSearchCache attaches a SearchCache that Search consults before
// scanning the n-gram index and populates after. Passing nil detaches
// any cache currently attached.
func (idx *HistoricalIndex) SetSearchCache(c *SearchCache) {
	idx.cache = c
}

// Search looks up clue in the index. At threshold 1.0 it takes the fast
// exact-match path (a single-key map lookup) instead of scanning the
// n-gram index; below 1.0 it first consults the attached SearchCache (if
// any) and, on a miss, falls through to fuzzy n-gram search over every
// previously indexed clue, populating the cache with the result.
func (idx *HistoricalIndex) Search(clue string, threshold float64) []SearchMatch {
	nClue := normalizeClue(clue)

	if threshold >= 1.0 {
		if _, ok := idx.clueToAnswers[nClue]; ok {
			return []SearchMatch{{Clue: nClue, Similarity: 1.0}}
		}
		return nil
	}

	if idx.cache != nil {
		if cached, ok := idx.cache.lookup(nClue, threshold); ok {
			return cached
		}
	}

	matches := idx.fuzzy.search(nClue, threshold)

	if idx.cache != nil {
		_ = idx.cache.store(nClue, threshold, matches)
	}

	return matches
}

// Len reports how many distinct clues the index holds.
func (idx *HistoricalIndex) Len() int {
	return len(idx.clueToAnswers)
}

// ShingleSize reports the n-gram length the index was built with.
func (idx *HistoricalIndex) ShingleSize() int {
	return idx.shingleSize
}
