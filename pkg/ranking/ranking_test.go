package ranking

import (
	"testing"

	"github.com/crossplay/solver/pkg/puzzle"
)

func TestTopN_BoundedEviction(t *testing.T) {
	top := NewTopN(2)
	top.Add(Scored{Score: 1})
	top.Add(Scored{Score: 5})
	top.Add(Scored{Score: 3})

	if top.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", top.Len())
	}

	results := top.Results()
	if len(results) != 2 {
		t.Fatalf("Results() len = %d, want 2", len(results))
	}
	if results[0].Score != 5 || results[1].Score != 3 {
		t.Errorf("Results() = %v, want [5, 3]", results)
	}
}

func TestTopN_WorseThanWorstIsDropped(t *testing.T) {
	top := NewTopN(1)
	top.Add(Scored{Score: 10})
	top.Add(Scored{Score: 1})

	results := top.Results()
	if len(results) != 1 || results[0].Score != 10 {
		t.Errorf("Results() = %v, want [10]", results)
	}
}

func TestTopN_Unbounded(t *testing.T) {
	top := NewTopN(0)
	for _, s := range []float64{3, 1, 4, 1, 5} {
		top.Add(Scored{Score: s})
	}
	if top.Len() != 5 {
		t.Errorf("Len() = %d, want 5 (unbounded)", top.Len())
	}
	results := top.Results()
	if results[0].Score != 5 {
		t.Errorf("best score = %v, want 5", results[0].Score)
	}
}

func TestTopN_TiesBrokenByInsertionOrder(t *testing.T) {
	top := NewTopN(0)
	// Distinct Puzzle pointers make each entry distinguishable, so the
	// comparison below detects any reordering.
	first := Scored{Score: 2, Puzzle: &puzzle.Puzzle{Width: 1}}
	second := Scored{Score: 2, Puzzle: &puzzle.Puzzle{Width: 2}}
	third := Scored{Score: 2, Puzzle: &puzzle.Puzzle{Width: 3}}
	top.Add(first)
	top.Add(second)
	top.Add(third)

	results := top.Results()
	if len(results) != 3 {
		t.Fatalf("Results() len = %d, want 3", len(results))
	}
	// All three tie on score; Results must preserve the order they were
	// added in, not heap-internal order.
	for i, want := range []Scored{first, second, third} {
		if results[i] != want {
			t.Errorf("Results()[%d] = %v, want %v (insertion order)", i, results[i], want)
		}
	}
}

func TestTopN_MaxExaminedStopsAfterLimit(t *testing.T) {
	top := NewTopNWithLimit(10, 3)
	var cont []bool
	for _, s := range []float64{1, 2, 3, 4, 5} {
		cont = append(cont, top.Add(Scored{Score: s}))
	}

	if top.Examined() != 5 {
		t.Errorf("Examined() = %d, want 5 (Add still counts calls past the limit)", top.Examined())
	}
	if !cont[0] || !cont[1] {
		t.Errorf("Add should return true before the limit is reached, got %v", cont[:2])
	}
	if cont[2] || cont[3] || cont[4] {
		t.Errorf("Add should return false once examined >= maxExamined, got %v", cont[2:])
	}
	if !top.Exhausted() {
		t.Error("Exhausted() = false, want true after reaching max_examined")
	}
}

func TestTopN_NoExamineCapNeverExhausted(t *testing.T) {
	top := NewTopN(5)
	for i := 0; i < 100; i++ {
		if !top.Add(Scored{Score: float64(i)}) {
			t.Fatalf("Add returned false at i=%d with no examination cap", i)
		}
	}
	if top.Exhausted() {
		t.Error("Exhausted() = true, want false with no max_examined set")
	}
}
