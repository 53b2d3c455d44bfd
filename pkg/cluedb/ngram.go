package cluedb

import "sort"

// shingles returns the multiset of length-n character shingles of s, as a
// map from shingle to occurrence count. When len(s) < n, the whole string
// is its own single shingle (so very short clues still participate in
// fuzzy search instead of vanishing from the index).
func shingles(s string, n int) map[string]int {
	counts := make(map[string]int)
	if n <= 0 {
		return counts
	}
	if len(s) < n {
		if s != "" {
			counts[s] = 1
		}
		return counts
	}
	for i := 0; i+n <= len(s); i++ {
		counts[s[i:i+n]]++
	}
	return counts
}

// diceSimilarity computes the Dice coefficient between two shingle
// multisets: 2*|intersection| / (|a| + |b|), where the intersection of a
// multiset pair counts min(a[k], b[k]) for each shingle k. This is the
// "fraction of length-N character shingles shared between two strings"
// the glossary describes.
func diceSimilarity(a, b map[string]int) float64 {
	totalA, totalB := 0, 0
	for _, c := range a {
		totalA += c
	}
	for _, c := range b {
		totalB += c
	}
	if totalA == 0 && totalB == 0 {
		return 1.0
	}
	if totalA == 0 || totalB == 0 {
		return 0.0
	}

	shared := 0
	for shingle, ca := range a {
		if cb, ok := b[shingle]; ok {
			if ca < cb {
				shared += ca
			} else {
				shared += cb
			}
		}
	}

	return 2.0 * float64(shared) / float64(totalA+totalB)
}

// ngramIndex is the fuzzy clue index: every normalized clue added so far,
// its shingle multiset, and an inverted shingle->clues index so fuzzy
// search doesn't have to scan every clue ever added.
type ngramIndex struct {
	n          int
	shingleSet map[string]map[string]int // clue -> shingle multiset
	inverted   map[string]map[string]bool // shingle -> set of clues containing it
}

func newNgramIndex(n int) *ngramIndex {
	return &ngramIndex{
		n:          n,
		shingleSet: make(map[string]map[string]int),
		inverted:   make(map[string]map[string]bool),
	}
}

func (idx *ngramIndex) add(clue string) {
	if _, ok := idx.shingleSet[clue]; ok {
		return
	}
	sh := shingles(clue, idx.n)
	idx.shingleSet[clue] = sh
	for s := range sh {
		bucket, ok := idx.inverted[s]
		if !ok {
			bucket = make(map[string]bool)
			idx.inverted[s] = bucket
		}
		bucket[clue] = true
	}
}

// SearchMatch is one fuzzy-search result: a previously-seen clue and its
// similarity to the query.
type SearchMatch struct {
	Clue       string
	Similarity float64
}

// search returns every indexed clue whose similarity to query is >=
// threshold, most-similar first (ties broken lexicographically by clue
// text, for determinism).
func (idx *ngramIndex) search(query string, threshold float64) []SearchMatch {
	querySh := shingles(query, idx.n)

	candidates := make(map[string]bool)
	for s := range querySh {
		for clue := range idx.inverted[s] {
			candidates[clue] = true
		}
	}

	var results []SearchMatch
	for clue := range candidates {
		sim := diceSimilarity(querySh, idx.shingleSet[clue])
		if sim >= threshold {
			results = append(results, SearchMatch{Clue: clue, Similarity: sim})
		}
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Similarity != results[j].Similarity {
			return results[i].Similarity > results[j].Similarity
		}
		return results[i].Clue < results[j].Clue
	})

	return results
}
