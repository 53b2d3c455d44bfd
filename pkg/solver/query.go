package solver

import (
	"github.com/crossplay/solver/pkg/cluedb"
	"github.com/crossplay/solver/pkg/lexicon"
	"github.com/crossplay/solver/pkg/puzzle"
)

// LexiconQueryAnswers builds a QueryAnswers that, for every slot with
// at least one empty cell, looks up every lexicon word matching the
// slot's current partial pattern -- the Go analogue of
// DictionarySolverBase.query_answers.
func LexiconQueryAnswers(lex *lexicon.Lexicon) QueryAnswers {
	return func(p *puzzle.Puzzle) (map[puzzle.SlotId][]string, error) {
		answers := make(map[puzzle.SlotId][]string)
		for _, s := range p.Slots {
			fill := p.GetFill(s)
			if !containsEmpty(fill) {
				continue
			}
			pattern := patternFromFill(fill)
			words := lex.Words(s.Length(), pattern)
			if len(words) > 0 {
				answers[s.Id] = words
			}
		}
		return answers, nil
	}
}

// HistoricalQueryAnswers builds a QueryAnswers that, for every slot,
// fuzzy-searches the historical index by clue text at the given
// similarity threshold and unions every length-matched answer across
// all matching historical clues -- the Go analogue of
// ClueDBCliqueSolver.query_answers.
func HistoricalQueryAnswers(idx *cluedb.HistoricalIndex, threshold float64) QueryAnswers {
	return func(p *puzzle.Puzzle) (map[puzzle.SlotId][]string, error) {
		answers := make(map[puzzle.SlotId][]string)
		for _, s := range p.Slots {
			matches := idx.Search(s.Clue, threshold)
			if len(matches) == 0 {
				continue
			}
			seen := make(map[string]bool)
			var words []string
			for _, m := range matches {
				found, err := idx.Answers(m.Clue, s.Length())
				if err != nil {
					continue
				}
				for _, w := range found {
					if !seen[w] {
						seen[w] = true
						words = append(words, w)
					}
				}
			}
			if len(words) > 0 {
				answers[s.Id] = words
			}
		}
		return answers, nil
	}
}

func containsEmpty(fill string) bool {
	for i := 0; i < len(fill); i++ {
		if fill[i] == '.' {
			return true
		}
	}
	return false
}

func patternFromFill(fill string) map[int]byte {
	pattern := make(map[int]byte)
	for i := 0; i < len(fill); i++ {
		if fill[i] != '.' {
			pattern[i] = fill[i]
		}
	}
	return pattern
}
