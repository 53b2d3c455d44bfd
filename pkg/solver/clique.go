package solver

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/crossplay/solver/internal/logging"
	"github.com/crossplay/solver/pkg/compatgraph"
	"github.com/crossplay/solver/pkg/puzzle"
	"github.com/crossplay/solver/pkg/ranking"
)

// CliqueSolver enumerates every maximal clique of the CompatibilityGraph
// built from QueryAnswers's candidates and emits one fully-consistent
// (partial) fill per clique, grounded on
// original_source/.../solver/clique.py's build_conflict_graph plus the
// DictionaryCliqueSolver/ClueDBCliqueSolver solve() loops.
type CliqueSolver struct {
	QueryAnswers QueryAnswers
	Capacity     int
	Logger       *logging.Logger
}

func (s *CliqueSolver) logger() *logging.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return logging.Default()
}

// Solve implements Solver.
func (s *CliqueSolver) Solve(ctx context.Context, p *puzzle.Puzzle, emit func(ranking.Scored) bool) error {
	id := uuid.New()
	logger := s.logger()
	logger.Infof("[%s] clique solve starting (%d slots)", id, len(p.Slots))

	candidates, err := s.QueryAnswers(p)
	if err != nil {
		return fmt.Errorf("clique solve %s: querying answers: %w", id, err)
	}

	g, err := compatgraph.Build(p, candidates, s.Capacity)
	if err != nil {
		return fmt.Errorf("clique solve %s: building compatibility graph: %w", id, err)
	}
	logger.Debugf("[%s] compatibility graph has %d nodes", id, g.N())

	cont := true
	enumerateCliques(g, func(clique []int) bool {
		select {
		case <-ctx.Done():
			cont = false
			return false
		default:
		}

		solved := p.Copy()
		for _, nodeIdx := range clique {
			n := g.Nodes[nodeIdx]
			if err := solved.SetFill(n.Slot, n.Word); err != nil {
				logger.Warningf("[%s] clique member rejected unexpectedly: %v", id, err)
				return true
			}
		}
		cont = emit(ranking.Scored{Score: float64(solved.NSet()), Puzzle: solved})
		return cont
	})

	logger.Infof("[%s] clique solve finished", id)
	return nil
}

// intSet is a plain Go set over compatgraph node ids, used by the
// Bron-Kerbosch enumeration below. Enumeration order is made
// deterministic by always iterating a sorted key slice rather than
// ranging the map directly.
type intSet map[int]bool

func newIntSet(ids []int) intSet {
	s := make(intSet, len(ids))
	for _, i := range ids {
		s[i] = true
	}
	return s
}

func (s intSet) clone() intSet {
	c := make(intSet, len(s))
	for k := range s {
		c[k] = true
	}
	return c
}

func (s intSet) sortedKeys() []int {
	keys := make([]int, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

func (s intSet) intersectList(ids []int) intSet {
	out := make(intSet)
	for _, id := range ids {
		if s[id] {
			out[id] = true
		}
	}
	return out
}

// degeneracyOrder computes a degeneracy ordering of g's nodes: repeatedly
// remove a minimum-remaining-degree vertex, appending it to the order,
// then reverse. Ties are broken by smallest node id for determinism.
func degeneracyOrder(g *compatgraph.Graph) []int {
	n := g.N()
	removed := make([]bool, n)
	neighbors := make([][]int, n)
	for i := 0; i < n; i++ {
		neighbors[i] = g.Neighbors(i)
	}

	order := make([]int, 0, n)
	for len(order) < n {
		best, bestDeg := -1, -1
		for v := 0; v < n; v++ {
			if removed[v] {
				continue
			}
			deg := 0
			for _, u := range neighbors[v] {
				if !removed[u] {
					deg++
				}
			}
			if best == -1 || deg < bestDeg {
				best, bestDeg = v, deg
			}
		}
		order = append(order, best)
		removed[best] = true
	}

	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}
	return order
}

// enumerateCliques enumerates every maximal clique of g via
// degeneracy-ordered Bron-Kerbosch with pivoting, per spec.md §4.5's
// CliqueSolver pseudocode. emit is called once per maximal clique
// (as a sorted slice of node ids); returning false stops enumeration.
func enumerateCliques(g *compatgraph.Graph, emit func([]int) bool) {
	order := degeneracyOrder(g)
	all := make([]int, g.N())
	for i := range all {
		all[i] = i
	}
	p := newIntSet(all)
	x := intSet{}

	for _, v := range order {
		neighborsV := g.Neighbors(v)
		r := intSet{v: true}
		pNext := p.intersectList(neighborsV)
		xNext := x.intersectList(neighborsV)
		if !bronKerboschPivot(g, r, pNext, xNext, emit) {
			return
		}
		delete(p, v)
		x[v] = true
	}
}

func bronKerboschPivot(g *compatgraph.Graph, r, p, x intSet, emit func([]int) bool) bool {
	if len(p) == 0 && len(x) == 0 {
		return emit(r.sortedKeys())
	}

	union := p.clone()
	for k := range x {
		union[k] = true
	}
	pivotCandidates := union.sortedKeys()
	u := pivotCandidates[0]
	neighborsU := newIntSet(g.Neighbors(u))

	var candidates []int
	for _, v := range p.sortedKeys() {
		if !neighborsU[v] {
			candidates = append(candidates, v)
		}
	}

	for _, v := range candidates {
		neighborsV := g.Neighbors(v)
		rNext := r.clone()
		rNext[v] = true
		pNext := p.intersectList(neighborsV)
		xNext := x.intersectList(neighborsV)
		if !bronKerboschPivot(g, rNext, pNext, xNext, emit) {
			return false
		}
		delete(p, v)
		x[v] = true
	}
	return true
}
