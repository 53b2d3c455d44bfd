// Package compatgraph implements the CompatibilityGraph: a lazily
// built graph over candidate (Slot, word) nodes whose edges encode
// pairwise compatibility, grounded on
// original_source/lib-python/littleboxes/solver/clique.py's
// build_conflict_graph.
package compatgraph

import (
	"fmt"
	"math/bits"

	"github.com/crossplay/solver/pkg/puzzle"
	"github.com/crossplay/solver/pkg/xwerrors"
)

// DefaultCapacity bounds the node universe a Graph will build before
// failing with ErrCapacityExceeded, generous enough for the
// exam-budget-scale puzzles spec.md §8 describes without risking
// unbounded memory on a pathological candidate set.
const DefaultCapacity = 200_000

// CandidateNode pairs a Slot with one candidate word for it.
type CandidateNode struct {
	Slot puzzle.Slot
	Word string
}

// bitset is a fixed-width dense integer set over node ids.
type bitset []uint64

func newBitset(n int) bitset {
	return make(bitset, (n+63)/64)
}

func (b bitset) set(i int) {
	b[i/64] |= 1 << uint(i%64)
}

func (b bitset) has(i int) bool {
	return b[i/64]&(1<<uint(i%64)) != 0
}

func (b bitset) popcount() int {
	c := 0
	for _, w := range b {
		c += bits.OnesCount64(w)
	}
	return c
}

// Graph is the CompatibilityGraph: a dense node list plus, per node, a
// precomputed conflict bitset. Construction is scoped to a single
// solver invocation over one Puzzle/candidate-set pair.
type Graph struct {
	Nodes     []CandidateNode
	conflicts []bitset
}

// Build constructs a Graph from puzzle p's current fill state and a
// candidate word set per slot. Candidates that would already conflict
// with p's current fill are dropped before node creation (the original
// filters with `if not xword.would_conflict(xwclue, word)` before
// adding a node at all).
func Build(p *puzzle.Puzzle, candidates map[puzzle.SlotId][]string, capacity int) (*Graph, error) {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	slotByID := make(map[puzzle.SlotId]puzzle.Slot, len(p.Slots))
	for _, s := range p.Slots {
		slotByID[s.Id] = s
	}

	var nodes []CandidateNode
	nodesBySlot := make(map[puzzle.SlotId][]int)

	for slotID, words := range candidates {
		slot, ok := slotByID[slotID]
		if !ok {
			continue
		}
		for _, w := range words {
			if p.WouldConflict(slot, w) {
				continue
			}
			idx := len(nodes)
			nodes = append(nodes, CandidateNode{Slot: slot, Word: w})
			nodesBySlot[slotID] = append(nodesBySlot[slotID], idx)
		}
	}

	if len(nodes) > capacity {
		return nil, fmt.Errorf("candidate node count %d exceeds cap %d: %w", len(nodes), capacity, xwerrors.ErrCapacityExceeded)
	}

	n := len(nodes)
	conflicts := make([]bitset, n)
	for i := range conflicts {
		conflicts[i] = newBitset(n)
	}

	// Every other candidate for the same slot conflicts: only one word
	// can ever be played into a slot at a time.
	for _, idxs := range nodesBySlot {
		for _, i := range idxs {
			for _, j := range idxs {
				if i != j {
					conflicts[i].set(j)
				}
			}
		}
	}

	// Crossing conflicts: for every crossing slot, any candidate whose
	// letter at the shared cell disagrees with this node's is a
	// conflict. Direction-matching pairs on *different* slots never
	// share a cell and so are never marked here, leaving them
	// compatible by default -- matching build_conflict_graph's
	// same-direction-always-an-edge shortcut.
	for i, node := range nodes {
		for pos, cellIdx := range node.Slot.Cells {
			crossSlot, ok := p.Crossing(node.Slot, pos)
			if !ok {
				continue
			}
			for _, j := range nodesBySlot[crossSlot.Id] {
				if j <= i {
					continue // each crossing pair only needs to be resolved once
				}
				other := nodes[j]
				otherPos := cellPosition(other.Slot, cellIdx)
				if otherPos < 0 {
					continue
				}
				if node.Word[pos] != other.Word[otherPos] {
					conflicts[i].set(j)
					conflicts[j].set(i)
				}
			}
		}
	}

	return &Graph{Nodes: nodes, conflicts: conflicts}, nil
}

func cellPosition(slot puzzle.Slot, cellIdx int) int {
	for pos, c := range slot.Cells {
		if c == cellIdx {
			return pos
		}
	}
	return -1
}

// N reports the total node count.
func (g *Graph) N() int {
	return len(g.Nodes)
}

// Neighbors returns every node id compatible with u: everything in the
// node universe except u itself and u's conflict set.
func (g *Graph) Neighbors(u int) []int {
	n := len(g.Nodes)
	out := make([]int, 0, n-1-g.conflicts[u].popcount())
	for i := 0; i < n; i++ {
		if i == u || g.conflicts[u].has(i) {
			continue
		}
		out = append(out, i)
	}
	return out
}

// Conflicts reports whether nodes u and v conflict (including the
// trivial case u == v, which is always a conflict with itself for
// clique-enumeration purposes).
func (g *Graph) Conflicts(u, v int) bool {
	if u == v {
		return true
	}
	return g.conflicts[u].has(v)
}

// Degree returns the number of nodes compatible with u.
func (g *Graph) Degree(u int) int {
	return len(g.Nodes) - 1 - g.conflicts[u].popcount()
}
