package solver

import (
	"testing"

	"github.com/crossplay/solver/pkg/puzzle"
)

// seqRNG is a deterministic RNG double for tests: Intn cycles through a
// fixed sequence of pre-chosen indices (wrapping modulo n so it never
// goes out of range), and Float64 cycles through a fixed sequence of
// floats. This keeps randomized solvers' test behavior fully
// reproducible without depending on any particular real PRNG's output.
type seqRNG struct {
	ints    []int
	floats  []float64
	intPos  int
	fltPos  int
}

func newSeqRNG(ints []int, floats []float64) *seqRNG {
	return &seqRNG{ints: ints, floats: floats}
}

func (r *seqRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	v := r.ints[r.intPos%len(r.ints)]
	r.intPos++
	return v % n
}

func (r *seqRNG) Float64() float64 {
	v := r.floats[r.fltPos%len(r.floats)]
	r.fltPos++
	return v
}

// alwaysAcceptRNG always picks index 0 and always reports Float64() as
// 0, so it accepts any Metropolis-Hastings move whose acceptance
// probability is > 0.
func alwaysAcceptRNG() *seqRNG {
	return newSeqRNG([]int{0}, []float64{0})
}

func buildCrossPuzzleForSolver(t *testing.T) *puzzle.Puzzle {
	t.Helper()
	width, height := 3, 3
	black := []bool{
		false, true, false,
		false, false, false,
		false, true, false,
	}
	p, err := puzzle.New(width, height, black, map[puzzle.SlotId]string{
		{Number: 3, Direction: puzzle.Across}: "Feline pet",
		{Number: 1, Direction: puzzle.Down}:    "Not level",
		{Number: 2, Direction: puzzle.Down}:    "Golf score standard",
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return p
}

func staticQueryAnswers(answers map[puzzle.SlotId][]string) QueryAnswers {
	return func(p *puzzle.Puzzle) (map[puzzle.SlotId][]string, error) {
		out := make(map[puzzle.SlotId][]string)
		for id, words := range answers {
			slot, ok := slotByID(p, id)
			if !ok || !containsEmpty(p.GetFill(slot)) {
				continue
			}
			var remaining []string
			for _, w := range words {
				if !p.WouldConflict(slot, w) {
					remaining = append(remaining, w)
				}
			}
			if len(remaining) > 0 {
				out[id] = remaining
			}
		}
		return out, nil
	}
}
