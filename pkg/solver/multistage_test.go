package solver

import (
	"context"
	"errors"
	"testing"

	"github.com/crossplay/solver/pkg/puzzle"
	"github.com/crossplay/solver/pkg/ranking"
	"github.com/crossplay/solver/pkg/xwerrors"
)

// constSolver emits a fixed list of scored puzzles and ignores its
// input entirely, a minimal test double for exercising MultiStageSolver
// composition in isolation from any real solving logic.
type constSolver struct {
	results []ranking.Scored
	err     error
}

func (c *constSolver) Solve(ctx context.Context, p *puzzle.Puzzle, emit func(ranking.Scored) bool) error {
	if c.err != nil {
		return c.err
	}
	for _, r := range c.results {
		if !emit(r) {
			return nil
		}
	}
	return nil
}

func TestMultiStageSolver_ProductsScoresAcrossStages(t *testing.T) {
	p := buildCrossPuzzleForSolver(t)
	stage1 := &constSolver{results: []ranking.Scored{{Score: 2, Puzzle: p}, {Score: 3, Puzzle: p}}}
	stage2 := &constSolver{results: []ranking.Scored{{Score: 5, Puzzle: p}, {Score: 7, Puzzle: p}}}

	m := &MultiStageSolver{Stages: []Solver{stage1, stage2}}

	var scores []float64
	err := m.Solve(context.Background(), p, func(r ranking.Scored) bool {
		scores = append(scores, r.Score)
		return true
	})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	want := map[float64]bool{10: true, 14: true, 15: true, 21: true}
	if len(scores) != len(want) {
		t.Fatalf("got %d results, want %d: %v", len(scores), len(want), scores)
	}
	for _, s := range scores {
		if !want[s] {
			t.Errorf("unexpected product score %v in %v", s, scores)
		}
	}
}

func TestMultiStageSolver_EmptyStageListIsConfigurationError(t *testing.T) {
	p := buildCrossPuzzleForSolver(t)
	m := &MultiStageSolver{}

	err := m.Solve(context.Background(), p, func(ranking.Scored) bool { return true })
	if !errors.Is(err, xwerrors.ErrConfiguration) {
		t.Errorf("expected ErrConfiguration, got %v", err)
	}
}

func TestMultiStageSolver_FailingStageYieldsNoResultsForThatBranch(t *testing.T) {
	p := buildCrossPuzzleForSolver(t)
	stage1 := &constSolver{results: []ranking.Scored{{Score: 2, Puzzle: p}}}
	stage2 := &constSolver{err: errors.New("boom")}

	m := &MultiStageSolver{Stages: []Solver{stage1, stage2}}

	var count int
	err := m.Solve(context.Background(), p, func(ranking.Scored) bool {
		count++
		return true
	})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if count != 0 {
		t.Errorf("expected no results when the only branch's stage errors, got %d", count)
	}
}

func TestMultiStageSolver_StopsEarlyWhenEmitReturnsFalse(t *testing.T) {
	p := buildCrossPuzzleForSolver(t)
	stage1 := &constSolver{results: []ranking.Scored{{Score: 2, Puzzle: p}, {Score: 3, Puzzle: p}}}
	stage2 := &constSolver{results: []ranking.Scored{{Score: 5, Puzzle: p}, {Score: 7, Puzzle: p}}}

	m := &MultiStageSolver{Stages: []Solver{stage1, stage2}}

	var count int
	err := m.Solve(context.Background(), p, func(ranking.Scored) bool {
		count++
		return false
	})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if count != 1 {
		t.Errorf("expected exactly one emission before stopping, got %d", count)
	}
}

func TestMultiStageSolver_SingleStagePassesThroughUnchanged(t *testing.T) {
	p := buildCrossPuzzleForSolver(t)
	stage1 := &constSolver{results: []ranking.Scored{{Score: 9, Puzzle: p}}}
	m := &MultiStageSolver{Stages: []Solver{stage1}}

	var got []ranking.Scored
	err := m.Solve(context.Background(), p, func(r ranking.Scored) bool {
		got = append(got, r)
		return true
	})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if len(got) != 1 || got[0].Score != 9 {
		t.Errorf("got %v, want a single Score=9 result", got)
	}
}
