// Package topk provides a bounded selector that keeps the K highest-scored
// candidates out of a stream in O(n log k), instead of sorting the whole
// candidate set.
package topk

import (
	"container/heap"
	"sort"
)

// Candidate is one scored item offered to the selector.
type Candidate struct {
	Key   string
	Score float64
}

// candidateHeap is a min-heap over scores: the worst retained candidate
// sits at the root so it can be compared and evicted in O(log k).
type candidateHeap []Candidate

func (h candidateHeap) Len() int            { return len(h) }
func (h candidateHeap) Less(i, j int) bool  { return h[i].Score < h[j].Score }
func (h candidateHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *candidateHeap) Push(x interface{}) { *h = append(*h, x.(Candidate)) }

func (h *candidateHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Selector retains the K best-scored candidates seen so far.
// A Selector is transient: created per query, never shared or persisted.
type Selector struct {
	k    int
	heap candidateHeap
}

// NewSelector creates a selector with capacity k. k <= 0 yields a selector
// that retains nothing.
func NewSelector(k int) *Selector {
	s := &Selector{k: k}
	if k > 0 {
		s.heap = make(candidateHeap, 0, k)
	}
	return s
}

// Offer considers a candidate. Below capacity it is inserted
// unconditionally; at capacity it replaces the current worst retained
// candidate only when it scores strictly higher.
func (s *Selector) Offer(key string, score float64) {
	if s.k <= 0 {
		return
	}
	if s.heap.Len() < s.k {
		heap.Push(&s.heap, Candidate{Key: key, Score: score})
		return
	}
	if score > s.heap[0].Score {
		s.heap[0] = Candidate{Key: key, Score: score}
		heap.Fix(&s.heap, 0)
	}
}

// Results drains the selector and returns the retained candidates sorted
// by score descending; equal scores order by key ascending so output is
// reproducible. The selector is empty afterwards.
func (s *Selector) Results() []Candidate {
	results := make([]Candidate, len(s.heap))
	copy(results, s.heap)
	s.heap = s.heap[:0]

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Key < results[j].Key
	})
	return results
}
