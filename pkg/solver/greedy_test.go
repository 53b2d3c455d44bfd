package solver

import (
	"context"
	"errors"
	"testing"

	"github.com/crossplay/solver/pkg/puzzle"
	"github.com/crossplay/solver/pkg/ranking"
	"github.com/crossplay/solver/pkg/xwerrors"
)

func TestGreedyMinimumEntropySolver_FillsDeterministicallyGivenSeed(t *testing.T) {
	p := buildCrossPuzzleForSolver(t)
	acrossID := puzzle.SlotId{Number: 3, Direction: puzzle.Across}
	down1ID := puzzle.SlotId{Number: 1, Direction: puzzle.Down}
	down2ID := puzzle.SlotId{Number: 2, Direction: puzzle.Down}

	// down1 starts with a single candidate, so it is always the
	// minimum-entropy slot on the first iteration regardless of RNG
	// behavior; once it's filled, its crossing letter prunes across to
	// CAT, and across's crossing letter then prunes down2 to ATE.
	candidates := map[puzzle.SlotId][]string{
		acrossID: {"CAT", "DOG"},
		down1ID:  {"ACE"},
		down2ID:  {"ATE", "RUG"},
	}

	s := &GreedyMinimumEntropySolver{
		QueryAnswers: staticQueryAnswers(candidates),
		RNG:          alwaysAcceptRNG(),
	}

	var results []ranking.Scored
	err := s.Solve(context.Background(), p, func(r ranking.Scored) bool {
		results = append(results, r)
		return true
	})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected exactly one final emission, got %d", len(results))
	}

	final := results[0].Puzzle
	if got := final.GetFill(mustSlot(t, final, acrossID)); got != "CAT" {
		t.Errorf("across fill = %q, want CAT", got)
	}
	if got := final.GetFill(mustSlot(t, final, down1ID)); got != "ACE" {
		t.Errorf("down1 fill = %q, want ACE", got)
	}
	if got := final.GetFill(mustSlot(t, final, down2ID)); got != "ATE" {
		t.Errorf("down2 fill = %q, want ATE", got)
	}
	if final.NSet() != 7 {
		t.Errorf("NSet() = %d, want 7 (every white cell filled)", final.NSet())
	}
}

func TestGreedyMinimumEntropySolver_RequiresRNG(t *testing.T) {
	p := buildCrossPuzzleForSolver(t)
	s := &GreedyMinimumEntropySolver{QueryAnswers: staticQueryAnswers(nil)}

	err := s.Solve(context.Background(), p, func(ranking.Scored) bool { return true })
	if !errors.Is(err, xwerrors.ErrConfiguration) {
		t.Errorf("expected ErrConfiguration, got %v", err)
	}
}

func TestGreedyMinimumEntropySolver_StopsWhenNoCandidatesRemain(t *testing.T) {
	p := buildCrossPuzzleForSolver(t)
	s := &GreedyMinimumEntropySolver{
		QueryAnswers: staticQueryAnswers(nil),
		RNG:          alwaysAcceptRNG(),
	}

	var count int
	err := s.Solve(context.Background(), p, func(r ranking.Scored) bool {
		count++
		if r.Puzzle.NSet() != 0 {
			t.Errorf("expected an unfilled puzzle back, n_set = %d", r.Puzzle.NSet())
		}
		return true
	})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if count != 1 {
		t.Errorf("expected exactly one emission, got %d", count)
	}
}
