// Package ranking implements the bounded top-N scoring and ranking
// component (spec.md §4.6): a container/heap-based min-heap that keeps
// only the best n (score, Puzzle) pairs seen so far, a Go translation
// of original_source/.../filter/nbest.py's nbest() -- fixed to actually
// bound at n, which the Python PriorityQueue(n) never enforced (it
// only pre-sized the queue; nothing ever evicted past n entries), and
// to additionally bound the number of candidates examined, which the
// Python version never did at all.
package ranking

import (
	"container/heap"
	"sort"

	"github.com/crossplay/solver/pkg/puzzle"
)

// Scored pairs a candidate solution with its score: the number of
// filled cells, as spec.md §4.5 defines for every solver's output
// stream (higher is better).
type Scored struct {
	Score  float64
	Puzzle *puzzle.Puzzle
}

// heapEntry wraps a Scored with the order it was offered to Add, so
// Results can break score ties by insertion order even though the heap
// itself reorders entries internally and loses that information.
type heapEntry struct {
	s   Scored
	seq int
}

// minHeap orders heapEntries ascending by Score, so the root is always
// the current worst candidate -- the one to evict first.
type minHeap []heapEntry

func (h minHeap) Len() int            { return len(h) }
func (h minHeap) Less(i, j int) bool  { return h[i].s.Score < h[j].s.Score }
func (h minHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *minHeap) Push(x interface{}) { *h = append(*h, x.(heapEntry)) }
func (h *minHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// TopN accumulates (score, Puzzle) pairs, retaining only the n
// highest-scoring ones (evicting the current worst entry whenever a new
// one would push it over capacity) and examining at most maxExamined
// candidates in total -- the Go analogue of spec.md's
// top_n(stream, n, max_examined?) and the only specified bounded-work
// mechanism a Solver's consumer loop has for cutting a run short.
type TopN struct {
	n           int
	maxExamined int
	examined    int
	seq         int
	h           minHeap
}

// NewTopN creates a TopN bounded to the n best entries with no cap on
// the number of candidates examined. n <= 0 means unbounded (every Add
// is kept).
func NewTopN(n int) *TopN {
	return NewTopNWithLimit(n, 0)
}

// NewTopNWithLimit creates a TopN bounded to the n best entries,
// stopping after maxExamined candidates have been offered via Add.
// maxExamined <= 0 means no examination cap.
func NewTopNWithLimit(n, maxExamined int) *TopN {
	t := &TopN{n: n, maxExamined: maxExamined}
	heap.Init(&t.h)
	return t
}

// Add offers one candidate. If the heap is at capacity and s scores no
// better than the current worst kept entry, s is dropped. Add returns
// false once maxExamined candidates have been offered (including this
// one), signaling the caller's producer loop to stop; callers that
// don't cap examination can ignore the return value.
func (t *TopN) Add(s Scored) bool {
	t.examined++
	entry := heapEntry{s: s, seq: t.seq}
	t.seq++

	switch {
	case t.n <= 0:
		heap.Push(&t.h, entry)
	case len(t.h) < t.n:
		heap.Push(&t.h, entry)
	case len(t.h) > 0 && s.Score > t.h[0].s.Score:
		heap.Pop(&t.h)
		heap.Push(&t.h, entry)
	}

	return !t.Exhausted()
}

// Exhausted reports whether Add has been called maxExamined times
// (always false when no examination cap was set).
func (t *TopN) Exhausted() bool {
	return t.maxExamined > 0 && t.examined >= t.maxExamined
}

// Examined reports how many candidates have been offered via Add so far.
func (t *TopN) Examined() int {
	return t.examined
}

// Len reports how many entries are currently retained.
func (t *TopN) Len() int {
	return len(t.h)
}

// Results drains TopN and returns its retained entries sorted
// best-first (descending score, ties broken by insertion order),
// mirroring nbest()'s pop-until-empty loop but in the correct
// best-to-worst order.
func (t *TopN) Results() []Scored {
	entries := make([]heapEntry, len(t.h))
	copy(entries, t.h)
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].s.Score != entries[j].s.Score {
			return entries[i].s.Score > entries[j].s.Score
		}
		return entries[i].seq < entries[j].seq
	})

	out := make([]Scored, len(entries))
	for i, e := range entries {
		out[i] = e.s
	}
	return out
}
