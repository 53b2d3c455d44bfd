// Package benchmark scores a solved Puzzle against a golden (known
// correct) solution, the Go translation of
// original_source/benchmark_solvers.py's score_solution: lower is
// better, and every non-black cell contributes emptyPenalty if still
// unset or incorrectPenalty if set but wrong.
package benchmark

import (
	"fmt"

	"github.com/crossplay/solver/pkg/puzzle"
)

// Score compares solved against golden cell by cell. Both must share
// the same dimensions -- golden is the puzzle as read with its embedded
// solution, solved is a candidate fill for the same grid.
func Score(solved, golden *puzzle.Puzzle, emptyPenalty, incorrectPenalty int) (int, error) {
	if solved.Width != golden.Width || solved.Height != golden.Height {
		return 0, fmt.Errorf("solved puzzle is %dx%d, golden is %dx%d", solved.Width, solved.Height, golden.Width, golden.Height)
	}

	score := 0
	n := solved.Width * solved.Height
	for i := 0; i < n; i++ {
		if golden.IsBlack(i) {
			continue
		}
		guess := solved.Letter(i)
		actual := golden.Letter(i)
		switch {
		case guess == 0:
			score += emptyPenalty
		case guess != actual:
			score += incorrectPenalty
		}
	}
	return score, nil
}
