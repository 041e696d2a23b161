// Cinerec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

/*
Package cache provides small generic in-memory data structures used by the
recommendation engine.

# Overview

The package provides:
  - RankHeap: a max-heap over scored values with insertion-order tie breaking,
    used for top-k neighbor selection
  - LRU: a fixed-capacity least recently used cache, used to memoise
    pairwise similarities between catalog movies

LRU is safe for concurrent use and guards its state with a sync.Mutex.
RankHeap is a per-call scratch structure and has no lock.

# Usage Example

	h := cache.NewRankHeap[string](3)
	h.Push("a", 0.9)
	h.Push("b", 0.5)
	h.Push("c", 0.9)
	top := h.PopN(2) // a, c

	lru := cache.NewLRU[string, float64](1024)
	lru.Add("pair", 0.42)
	if v, ok := lru.Get("pair"); ok {
	    _ = v
	}

# Tie Breaking

RankHeap entries with equal scores pop in the order they were pushed. This
matches repeated linear "take the current maximum" extraction over the same
input, so callers can swap one for the other without changing results.
*/
package cache
