package solver

import (
	"context"
	"fmt"

	"github.com/crossplay/solver/pkg/puzzle"
	"github.com/crossplay/solver/pkg/ranking"
	"github.com/crossplay/solver/pkg/xwerrors"
)

// MultiStageSolver strings a sequence of solvers together as a
// left-to-right depth-first cartesian product: for each result of
// stage i, every result stage i+1 produces from it is emitted with
// their scores multiplied, per spec.md §4.5. A stage erroring out on a
// given partial puzzle just means that branch yields no results (the
// error is not propagated further); sibling branches still run.
// Grounded on original_source/.../solver/solver.py's MultiStageSolver,
// generalized from its single deepcopy-then-chain (which only ever
// kept the last stage's output) to the full product the spec calls
// for.
type MultiStageSolver struct {
	Stages []Solver
}

// Solve implements Solver.
func (m *MultiStageSolver) Solve(ctx context.Context, p *puzzle.Puzzle, emit func(ranking.Scored) bool) error {
	if len(m.Stages) == 0 {
		return fmt.Errorf("MultiStageSolver has no stages: %w", xwerrors.ErrConfiguration)
	}

	var run func(stageIdx int, input *puzzle.Puzzle, product float64) bool
	run = func(stageIdx int, input *puzzle.Puzzle, product float64) bool {
		if stageIdx == len(m.Stages) {
			return emit(ranking.Scored{Score: product, Puzzle: input})
		}

		cont := true
		_ = m.Stages[stageIdx].Solve(ctx, input, func(s ranking.Scored) bool {
			if !cont {
				return false
			}
			cont = run(stageIdx+1, s.Puzzle, product*s.Score)
			return cont
		})
		return cont
	}

	run(0, p, 1.0)
	return nil
}
