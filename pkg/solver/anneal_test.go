package solver

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/crossplay/solver/pkg/puzzle"
	"github.com/crossplay/solver/pkg/ranking"
	"github.com/crossplay/solver/pkg/xwerrors"
)

func TestAcceptanceProbability_AlwaysAcceptsImprovingMoves(t *testing.T) {
	// deltaE <= 0 (an improving or neutral move) must have acceptance
	// probability exactly 1 regardless of temperature.
	for _, T := range []float64{0.01, 1, 100} {
		if p := acceptanceProbability(-1, T); p != 1 {
			t.Errorf("acceptanceProbability(-1, %v) = %v, want 1", T, p)
		}
		if p := acceptanceProbability(0, T); p != 1 {
			t.Errorf("acceptanceProbability(0, %v) = %v, want 1", T, p)
		}
	}
}

func TestAcceptanceProbability_WorseningMoveDecaysWithTemperature(t *testing.T) {
	hot := acceptanceProbability(1, 10)
	cold := acceptanceProbability(1, 0.1)
	if !(hot > cold) {
		t.Errorf("expected higher acceptance at higher temperature: hot=%v cold=%v", hot, cold)
	}
	want := math.Exp(-1.0 / 10.0)
	if math.Abs(hot-want) > 1e-9 {
		t.Errorf("acceptanceProbability(1, 10) = %v, want %v", hot, want)
	}
}

func TestAcceptanceProbability_ZeroTemperatureIsGreedy(t *testing.T) {
	if p := acceptanceProbability(1, 0); p != 0 {
		t.Errorf("acceptanceProbability(1, 0) = %v, want 0 (worsening move rejected at T=0)", p)
	}
	if p := acceptanceProbability(-1, 0); p != 1 {
		t.Errorf("acceptanceProbability(-1, 0) = %v, want 1 (improving move always accepted)", p)
	}
}

func TestMonteCarloAnnealer_AlwaysAcceptWithFixedMoveFillsASlot(t *testing.T) {
	p := buildCrossPuzzleForSolver(t)
	acrossID := puzzle.SlotId{Number: 3, Direction: puzzle.Across}
	down1ID := puzzle.SlotId{Number: 1, Direction: puzzle.Down}

	candidates := map[puzzle.SlotId][]string{
		acrossID: {"CAT"},
		down1ID:  {"ACE"},
	}

	s := &MonteCarloAnnealer{
		QueryAnswers: staticQueryAnswers(candidates),
		RNG:          alwaysAcceptRNG(),
		T0:           1.0,
		Alpha:        0.1,
		Steps:        5,
	}

	var results []ranking.Scored
	err := s.Solve(context.Background(), p, func(r ranking.Scored) bool {
		results = append(results, r)
		return true
	})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if len(results) == 0 {
		t.Fatal("expected at least one emission")
	}

	last := results[len(results)-1]
	// RNG always selects move index 0 (assign) and index 0 among the
	// sorted slots and their candidates, so each step assigns the
	// lowest-numbered slot that still has an empty cell (down1 ACE, then
	// across CAT); once no slot has an empty cell the move is a no-op.
	// The puzzle should never lose filled cells along the way.
	prevNSet := -1
	for _, r := range results {
		if prevNSet >= 0 && r.Puzzle.NSet() < prevNSet {
			t.Errorf("NSet decreased across an always-accepted assign-only run: %d -> %d", prevNSet, r.Puzzle.NSet())
		}
		prevNSet = r.Puzzle.NSet()
	}
	if last.Puzzle.NSet() == 0 {
		t.Error("expected at least one cell filled after annealing with always-accepted assigns")
	}
}

func TestMonteCarloAnnealer_RequiresRNG(t *testing.T) {
	p := buildCrossPuzzleForSolver(t)
	s := &MonteCarloAnnealer{QueryAnswers: staticQueryAnswers(nil), T0: 1, Alpha: 0.1, Steps: 3}

	err := s.Solve(context.Background(), p, func(ranking.Scored) bool { return true })
	if !errors.Is(err, xwerrors.ErrConfiguration) {
		t.Errorf("expected ErrConfiguration, got %v", err)
	}
}

func TestMonteCarloAnnealer_RespectsContextCancellation(t *testing.T) {
	p := buildCrossPuzzleForSolver(t)
	s := &MonteCarloAnnealer{
		QueryAnswers: staticQueryAnswers(nil),
		RNG:          alwaysAcceptRNG(),
		T0:           1,
		Alpha:        0.1,
		Steps:        1000,
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Solve(ctx, p, func(ranking.Scored) bool { return true })
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
