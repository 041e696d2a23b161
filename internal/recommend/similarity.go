// Cinerec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package recommend

import (
	"maps"
	"math"
	"slices"
)

// CosineSimilarity computes the cosine similarity between two vectors.
// Returns 0 when the lengths differ, either vector has zero norm or either
// holds a non-finite component.
//
// Each vector is divided by its largest absolute component first, so the
// sums stay within [0, len] and neither overflow nor underflow for any
// finite input.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	scaleA, scaleB := maxAbs(a), maxAbs(b)
	if scaleA == 0 || scaleB == 0 || math.IsInf(scaleA, 0) || math.IsInf(scaleB, 0) ||
		math.IsNaN(scaleA) || math.IsNaN(scaleB) {
		return 0
	}

	var dotProduct, normA, normB float64
	for i := range a {
		x, y := a[i]/scaleA, b[i]/scaleB
		dotProduct += x * y
		normA += x * x
		normB += y * y
	}

	sim := dotProduct / (math.Sqrt(normA) * math.Sqrt(normB))
	return max(-1, min(1, sim))
}

// maxAbs returns the largest absolute component of v, or NaN if v holds one.
func maxAbs(v []float64) float64 {
	var m float64
	for _, x := range v {
		if math.IsNaN(x) {
			return x
		}
		m = max(m, math.Abs(x))
	}
	return m
}

// Mean returns the arithmetic mean of the rating values.
// Values are summed in movie order so the result does not depend on map
// iteration order.
func Mean(ratings map[Movie]float64) (float64, error) {
	if len(ratings) == 0 {
		return 0, ErrNoRatings
	}

	movies := sortedMovies(ratings)
	n := float64(len(movies))

	var sum float64
	for _, m := range movies {
		sum += ratings[m]
	}
	if !math.IsInf(sum, 0) {
		return sum / n, nil
	}

	// The sum overflowed; average the scaled values instead.
	var mean float64
	for _, m := range movies {
		mean += ratings[m] / n
	}
	return mean, nil
}

// sortedMovies returns the keys of ratings in movie order.
func sortedMovies(ratings map[Movie]float64) []Movie {
	return slices.SortedFunc(maps.Keys(ratings), compareMovies)
}

// moviePair keys the similarity cache. The lower movie is always first.
type moviePair struct {
	a, b Movie
}

func newMoviePair(x, y Movie) moviePair {
	if y.Less(x) {
		x, y = y, x
	}
	return moviePair{a: x, b: y}
}
