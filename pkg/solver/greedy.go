package solver

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/crossplay/solver/internal/logging"
	"github.com/crossplay/solver/pkg/puzzle"
	"github.com/crossplay/solver/pkg/ranking"
	"github.com/crossplay/solver/pkg/xwerrors"
)

// GreedyMinimumEntropySolver repeatedly fills the slot with the fewest
// candidate answers, choosing one candidate uniformly at random, until
// no slot has any candidates left. Grounded on
// original_source/.../solver/dictionary_solver.py's
// DictionaryGuessSolver.solve.
type GreedyMinimumEntropySolver struct {
	QueryAnswers QueryAnswers
	RNG          RNG
	Logger       *logging.Logger
}

func (s *GreedyMinimumEntropySolver) logger() *logging.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return logging.Default()
}

// Solve implements Solver.
func (s *GreedyMinimumEntropySolver) Solve(ctx context.Context, p *puzzle.Puzzle, emit func(ranking.Scored) bool) error {
	if s.RNG == nil {
		return fmt.Errorf("GreedyMinimumEntropySolver requires an RNG: %w", xwerrors.ErrConfiguration)
	}

	id := uuid.New()
	logger := s.logger()
	logger.Infof("[%s] greedy minimum-entropy solve starting", id)

	working := p.Copy()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		candidates, err := s.QueryAnswers(working)
		if err != nil {
			return fmt.Errorf("greedy solve %s: querying answers: %w", id, err)
		}
		if len(candidates) == 0 {
			break
		}
		logger.Debugf("[%s] %d clues with potential answers", id, len(candidates))

		slotID := minEntropySlot(candidates)
		words := candidates[slotID]
		choice := words[s.RNG.Intn(len(words))]
		logger.Debugf("[%s] filling %v with %q (one of %d candidates)", id, slotID, choice, len(words))

		slot, ok := slotByID(working, slotID)
		if !ok {
			break
		}
		if err := working.SetFill(slot, choice); err != nil {
			// The candidate came from querying this exact puzzle state, so
			// a conflict here would indicate a query/fill state mismatch
			// bug; stop rather than loop forever.
			logger.Warningf("[%s] unexpected conflict filling %v: %v", id, slotID, err)
			break
		}
	}

	logger.Infof("[%s] greedy solve finished, n_set=%d", id, working.NSet())
	emit(ranking.Scored{Score: float64(working.NSet()), Puzzle: working})
	return nil
}

// minEntropySlot picks the slot id with the fewest candidates, ties
// broken by smallest SlotId, mirroring Python's
// `min(potential_answers, key=lambda clue: len(...))` which (being a
// stable min over dict iteration) effectively ties on insertion order;
// smallest SlotId is the closest deterministic Go analogue.
func minEntropySlot(candidates map[puzzle.SlotId][]string) puzzle.SlotId {
	ids := make([]puzzle.SlotId, 0, len(candidates))
	for id := range candidates {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return lessSlotId(ids[i], ids[j]) })

	best := ids[0]
	bestCount := len(candidates[best])
	for _, id := range ids[1:] {
		if c := len(candidates[id]); c < bestCount {
			best, bestCount = id, c
		}
	}
	return best
}
