package solver

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/google/uuid"

	"github.com/crossplay/solver/internal/logging"
	"github.com/crossplay/solver/pkg/puzzle"
	"github.com/crossplay/solver/pkg/ranking"
	"github.com/crossplay/solver/pkg/xwerrors"
)

// MonteCarloAnnealer performs a Metropolis-Hastings simulated-annealing
// search over Puzzle fill states, grounded on
// original_source/.../solver/anneal_solver.py's
// XWordMonteCarloSimulator/SimulatedAnnealingSolver. The energy
// function is the negated filled-cell count (spec.md §4.5: "lower
// energy = better; implementations may negate filled-cell count"), so
// moves that fill in more cells are always favorably weighted.
type MonteCarloAnnealer struct {
	QueryAnswers QueryAnswers
	RNG          RNG
	// T0 and Alpha parameterize the exponential schedule T_i = T0 *
	// exp(-Alpha*i). Steps is the schedule length K.
	T0, Alpha float64
	Steps     int
	Logger    *logging.Logger
}

func (s *MonteCarloAnnealer) logger() *logging.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return logging.Default()
}

func energy(p *puzzle.Puzzle) float64 {
	return -float64(p.NSet())
}

// Solve implements Solver.
func (s *MonteCarloAnnealer) Solve(ctx context.Context, p *puzzle.Puzzle, emit func(ranking.Scored) bool) error {
	if s.RNG == nil {
		return fmt.Errorf("MonteCarloAnnealer requires an RNG: %w", xwerrors.ErrConfiguration)
	}

	id := uuid.New()
	logger := s.logger()
	logger.Infof("[%s] annealing solve starting (T0=%.3f, alpha=%.4f, steps=%d)", id, s.T0, s.Alpha, s.Steps)

	working := p.Copy()
	E := energy(working)
	moves := []func(*puzzle.Puzzle) error{s.assignRandomSlot, s.eraseRandomSlot}

	cont := true
	for i := 0; i < s.Steps && cont; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		T := s.T0 * math.Exp(-s.Alpha*float64(i))

		candidate := working.Copy()
		move := moves[s.RNG.Intn(len(moves))]
		if err := move(candidate); err != nil {
			logger.Debugf("[%s] move %d was a no-op: %v", id, i, err)
		}

		EPrime := energy(candidate)
		deltaE := EPrime - E
		acceptProb := acceptanceProbability(deltaE, T)
		logger.Debugf("[%s] step %d: T=%.4f E=%.1f E'=%.1f p=%.4f", id, i, T, E, EPrime, acceptProb)

		if s.RNG.Float64() < acceptProb {
			working = candidate
			E = EPrime
		}

		cont = emit(ranking.Scored{Score: float64(working.NSet()), Puzzle: working})
	}

	if cont {
		emit(ranking.Scored{Score: float64(working.NSet()), Puzzle: working})
	}
	logger.Infof("[%s] annealing solve finished, n_set=%d", id, working.NSet())
	return nil
}

func acceptanceProbability(deltaE, temperature float64) float64 {
	if temperature <= 0 {
		if deltaE <= 0 {
			return 1
		}
		return 0
	}
	p := math.Exp(-deltaE / temperature)
	if p > 1 {
		return 1
	}
	return p
}

// assignRandomSlot is the "assign-random-slot" default move: pick a
// random slot with at least one candidate answer and play one,
// overwriting any conflicting letters by erasing first (spec.md §4.5).
func (s *MonteCarloAnnealer) assignRandomSlot(p *puzzle.Puzzle) error {
	candidates, err := s.QueryAnswers(p)
	if err != nil {
		return err
	}
	if len(candidates) == 0 {
		return fmt.Errorf("no slot has a candidate answer")
	}

	ids := make([]puzzle.SlotId, 0, len(candidates))
	for id := range candidates {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return lessSlotId(ids[i], ids[j]) })

	slotID := ids[s.RNG.Intn(len(ids))]
	words := candidates[slotID]
	word := words[s.RNG.Intn(len(words))]

	slot, ok := slotByID(p, slotID)
	if !ok {
		return fmt.Errorf("slot %v not found", slotID)
	}

	p.EraseFill(slot)
	return p.SetFill(slot, word)
}

// eraseRandomSlot is the "erase-random-slot" default move: clear a
// uniformly random slot, whether or not it currently holds a fill.
func (s *MonteCarloAnnealer) eraseRandomSlot(p *puzzle.Puzzle) error {
	if len(p.Slots) == 0 {
		return fmt.Errorf("puzzle has no slots")
	}
	slot := p.Slots[s.RNG.Intn(len(p.Slots))]
	p.EraseFill(slot)
	return nil
}
