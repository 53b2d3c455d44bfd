// Package solver implements the four Solver families spec.md §4.5
// describes, all sharing a common lazy (score, Puzzle) stream
// contract, grounded on
// original_source/lib-python/littleboxes/solver/*.py.
package solver

import (
	"context"

	"github.com/crossplay/solver/pkg/puzzle"
	"github.com/crossplay/solver/pkg/ranking"
)

// Solver produces a lazy stream of scored candidate solutions by
// repeatedly calling emit. emit returns false to stop the stream early
// (the caller is satisfied, e.g. a bounded ranking.TopN consumer), in
// which case Solve should stop producing further candidates as soon as
// practical and return nil.
type Solver interface {
	Solve(ctx context.Context, p *puzzle.Puzzle, emit func(ranking.Scored) bool) error
}

// QueryAnswers maps every slot worth filling to its candidate answer
// words, the abstract step spec.md §4.5's CliqueSolver template method
// calls out (and that GreedyMinimumEntropySolver and
// MonteCarloAnnealer's assign move reuse).
type QueryAnswers func(p *puzzle.Puzzle) (map[puzzle.SlotId][]string, error)

// RNG is the explicit injected randomness source every randomized
// solver takes instead of reaching for the process-global math/rand
// functions, per spec.md §9's "do not rely on a process-global PRNG"
// and §5's determinism-given-a-seed requirement.
type RNG interface {
	Intn(n int) int
	Float64() float64
}

// slotByID finds the Slot with the given identity in p. Candidate maps
// are keyed by SlotId rather than Slot, so solvers look the full Slot
// back up before calling SetFill/GetFill.
func slotByID(p *puzzle.Puzzle, id puzzle.SlotId) (puzzle.Slot, bool) {
	for _, s := range p.Slots {
		if s.Id == id {
			return s, true
		}
	}
	return puzzle.Slot{}, false
}

// lessSlotId orders SlotIds the way spec.md's "smallest SlotId"
// tie-break requires: by printed number, then Across before Down.
func lessSlotId(a, b puzzle.SlotId) bool {
	if a.Number != b.Number {
		return a.Number < b.Number
	}
	return a.Direction == puzzle.Across && b.Direction == puzzle.Down
}
