// Cinerec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package cache

// RankEntry is a scored value held by a RankHeap.
type RankEntry[T any] struct {
	Value T
	Score float64

	// Seq is the insertion sequence number; earlier entries win score ties.
	Seq int
}

// RankHeap is a max-heap ordered by score, ties broken by insertion order.
// Popping n entries yields the same selection as n rounds of "take the
// current maximum, remove it" over the insertion-ordered input, with O(log n)
// work per pop instead of a linear scan.
//
// A RankHeap is built and drained within one call and is not safe for
// concurrent use.
type RankHeap[T any] struct {
	heap    []RankEntry[T]
	nextSeq int
}

// NewRankHeap creates an empty heap with room for capacity entries.
func NewRankHeap[T any](capacity int) *RankHeap[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &RankHeap[T]{
		heap: make([]RankEntry[T], 0, capacity),
	}
}

// Push adds a value with the given score.
func (h *RankHeap[T]) Push(value T, score float64) {
	h.heap = append(h.heap, RankEntry[T]{Value: value, Score: score, Seq: h.nextSeq})
	h.nextSeq++
	h.bubbleUp(len(h.heap) - 1)
}

// PopN removes and returns up to n entries, best first.
func (h *RankHeap[T]) PopN(n int) []RankEntry[T] {
	if n > len(h.heap) {
		n = len(h.heap)
	}
	if n <= 0 {
		return nil
	}

	out := make([]RankEntry[T], 0, n)
	for i := 0; i < n; i++ {
		entry, _ := h.popTop()
		out = append(out, entry)
	}
	return out
}

// popTop removes and returns the root element.
func (h *RankHeap[T]) popTop() (RankEntry[T], bool) {
	n := len(h.heap)
	if n == 0 {
		var zero RankEntry[T]
		return zero, false
	}

	top := h.heap[0]
	last := n - 1
	h.heap[0] = h.heap[last]
	h.heap = h.heap[:last]
	if last > 0 {
		h.bubbleDown(0)
	}
	return top, true
}

// outranks reports whether entry i belongs above entry j.
func (h *RankHeap[T]) outranks(i, j int) bool {
	a, b := h.heap[i], h.heap[j]
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	return a.Seq < b.Seq
}

// bubbleUp moves element at index i up to its correct position.
func (h *RankHeap[T]) bubbleUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.outranks(i, parent) {
			break
		}
		h.swap(i, parent)
		i = parent
	}
}

// bubbleDown moves element at index i down to its correct position.
func (h *RankHeap[T]) bubbleDown(i int) {
	n := len(h.heap)
	for {
		best := i
		left := 2*i + 1
		right := 2*i + 2

		if left < n && h.outranks(left, best) {
			best = left
		}
		if right < n && h.outranks(right, best) {
			best = right
		}

		if best == i {
			break
		}

		h.swap(i, best)
		i = best
	}
}

// swap swaps elements at indices i and j.
func (h *RankHeap[T]) swap(i, j int) {
	h.heap[i], h.heap[j] = h.heap[j], h.heap[i]
}
