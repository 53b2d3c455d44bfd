package compatgraph

import (
	"testing"

	"github.com/crossplay/solver/pkg/puzzle"
)

// buildCrossPuzzle constructs the same cross-shaped 3x3 puzzle
// pkg/puzzle's own tests use: an Across slot and a Down slot sharing
// cell (0,0).
func buildCrossPuzzle(t *testing.T) (*puzzle.Puzzle, puzzle.Slot, puzzle.Slot) {
	t.Helper()
	black := []bool{
		false, false, false,
		false, true, true,
		false, true, true,
	}
	p, err := puzzle.New(3, 3, black, nil)
	if err != nil {
		t.Fatalf("puzzle.New: %v", err)
	}
	var across, down puzzle.Slot
	for _, s := range p.Slots {
		if s.Id.Direction == puzzle.Across {
			across = s
		} else {
			down = s
		}
	}
	return p, across, down
}

func TestBuild_SameSlotNodesConflict(t *testing.T) {
	p, across, down := buildCrossPuzzle(t)
	candidates := map[puzzle.SlotId][]string{
		across.Id: {"CAT", "CAR"},
		down.Id:   {"CAB"},
	}
	g, err := Build(p, candidates, 0)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if g.N() != 3 {
		t.Fatalf("N() = %d, want 3", g.N())
	}

	// Find the indices of CAT and CAR.
	var catIdx, carIdx int = -1, -1
	for i, n := range g.Nodes {
		if n.Slot.Id == across.Id && n.Word == "CAT" {
			catIdx = i
		}
		if n.Slot.Id == across.Id && n.Word == "CAR" {
			carIdx = i
		}
	}
	if catIdx < 0 || carIdx < 0 {
		t.Fatal("expected to find CAT and CAR nodes")
	}
	if !g.Conflicts(catIdx, carIdx) {
		t.Error("CAT and CAR (same slot) should conflict")
	}
}

func TestBuild_CrossingConflictsOnMismatchedLetter(t *testing.T) {
	p, across, down := buildCrossPuzzle(t)
	// across starts with C (CAT), down must also start with C to be
	// compatible (CAB starts with C, DOT does not start with the down
	// slot's shared letter once played against a word starting with D).
	candidates := map[puzzle.SlotId][]string{
		across.Id: {"CAT"},
		down.Id:   {"CAB", "DOT"},
	}
	g, err := Build(p, candidates, 0)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	var catIdx, cabIdx, dotIdx int = -1, -1, -1
	for i, n := range g.Nodes {
		switch n.Word {
		case "CAT":
			catIdx = i
		case "CAB":
			cabIdx = i
		case "DOT":
			dotIdx = i
		}
	}
	if catIdx < 0 || cabIdx < 0 || dotIdx < 0 {
		t.Fatal("expected to find CAT, CAB, and DOT nodes")
	}

	if g.Conflicts(catIdx, cabIdx) {
		t.Error("CAT/CAB share a leading C, should not conflict")
	}
	if !g.Conflicts(catIdx, dotIdx) {
		t.Error("CAT/DOT disagree at the shared cell, should conflict")
	}
}

func TestBuild_NeighborsExcludesConflicts(t *testing.T) {
	p, across, down := buildCrossPuzzle(t)
	candidates := map[puzzle.SlotId][]string{
		across.Id: {"CAT"},
		down.Id:   {"CAB", "DOT"},
	}
	g, err := Build(p, candidates, 0)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	var catIdx int = -1
	for i, n := range g.Nodes {
		if n.Word == "CAT" {
			catIdx = i
		}
	}
	neighbors := g.Neighbors(catIdx)
	foundCab, foundDot := false, false
	for _, n := range neighbors {
		if g.Nodes[n].Word == "CAB" {
			foundCab = true
		}
		if g.Nodes[n].Word == "DOT" {
			foundDot = true
		}
	}
	if !foundCab {
		t.Error("expected CAB in CAT's neighbors")
	}
	if foundDot {
		t.Error("did not expect DOT in CAT's neighbors")
	}
}

func TestBuild_CapacityExceeded(t *testing.T) {
	p, across, _ := buildCrossPuzzle(t)
	candidates := map[puzzle.SlotId][]string{
		across.Id: {"CAT", "CAR", "CAB"},
	}
	_, err := Build(p, candidates, 2)
	if err == nil {
		t.Error("expected capacity exceeded error")
	}
}

func TestBuild_ExistingFillDropsConflictingCandidates(t *testing.T) {
	p, across, down := buildCrossPuzzle(t)
	if err := p.SetFill(across, "CAT"); err != nil {
		t.Fatalf("SetFill: %v", err)
	}
	candidates := map[puzzle.SlotId][]string{
		across.Id: {"CAT", "DOG"},
		down.Id:   {"CAB"},
	}
	g, err := Build(p, candidates, 0)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for _, n := range g.Nodes {
		if n.Word == "DOG" {
			t.Error("DOG conflicts with the already-set CAT, should be dropped")
		}
	}
}
