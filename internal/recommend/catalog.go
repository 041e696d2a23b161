// Cinerec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package recommend

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinerec/internal/cache"
	"github.com/tomtom215/cinerec/internal/metrics"
)

// RatingSource supplies the ratings a recommendation is computed from.
// *User implements it.
type RatingSource interface {
	Username() string
	Ratings() map[Movie]float64
}

// Catalog holds every known movie with its feature vector and computes
// content-based and collaborative-filtering recommendations against it.
//
// Movies are kept in (year, name) order; every scan visits them in that
// order, which makes tie-breaking deterministic.
type Catalog struct {
	config *CatalogConfig
	logger zerolog.Logger

	mu        sync.RWMutex
	features  map[Movie][]float64
	order     []Movie
	dimension int

	// nil when caching is disabled
	simCache *cache.LRU[moviePair, float64]
}

// NewCatalog creates an empty catalog.
func NewCatalog(cfg *CatalogConfig, logger zerolog.Logger) (*Catalog, error) {
	if cfg == nil {
		cfg = DefaultCatalogConfig()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	c := &Catalog{
		config:   cfg,
		logger:   logger.With().Str("component", "recommend").Logger(),
		features: make(map[Movie][]float64),
	}
	if cfg.SimilarityCacheSize > 0 {
		c.simCache = cache.NewLRU[moviePair, float64](cfg.SimilarityCacheSize)
	}
	return c, nil
}

// AddMovie inserts a movie, or replaces the features of an existing one.
// The first vector added fixes the catalog dimension.
func (c *Catalog) AddMovie(name string, year int, features []float64) (Movie, error) {
	movie := NewMovie(name, year)
	if len(features) == 0 {
		return Movie{}, fmt.Errorf("add movie %s: %w", movie, ErrEmptyFeatures)
	}
	for i, f := range features {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return Movie{}, fmt.Errorf("add movie %s: feature %d is %v: %w", movie, i+1, f, ErrNonFiniteFeature)
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.dimension != 0 && len(features) != c.dimension {
		return Movie{}, fmt.Errorf("add movie %s: got %d features, want %d: %w",
			movie, len(features), c.dimension, ErrDimensionMismatch)
	}

	vec := slices.Clone(features)
	if _, exists := c.features[movie]; exists {
		c.features[movie] = vec
		evt := c.logger.Debug().Stringer("movie", movie)
		if c.simCache != nil {
			evt = evt.Int("dropped_similarities", c.simCache.Len())
			c.simCache.Clear()
		}
		evt.Msg("replaced movie features")
		return movie, nil
	}

	c.features[movie] = vec
	i, _ := slices.BinarySearchFunc(c.order, movie, compareMovies)
	c.order = slices.Insert(c.order, i, movie)
	if c.dimension == 0 {
		c.dimension = len(vec)
	}

	return movie, nil
}

// GetMovie looks up a movie by name and year.
func (c *Catalog) GetMovie(name string, year int) (Movie, bool) {
	movie := NewMovie(name, year)

	c.mu.RLock()
	defer c.mu.RUnlock()

	if _, ok := c.features[movie]; !ok {
		return Movie{}, false
	}
	return movie, true
}

// Features returns a copy of the movie's feature vector.
func (c *Catalog) Features(m Movie) ([]float64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	vec, ok := c.features[m]
	if !ok {
		return nil, false
	}
	return slices.Clone(vec), true
}

// Len returns the number of movies in the catalog.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.order)
}

// Dimension returns the feature vector length, or 0 for an empty catalog.
func (c *Catalog) Dimension() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.dimension
}

// Movies returns every movie in order.
func (c *Catalog) Movies() []Movie {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.order)
}

// All iterates movies and copies of their features in order.
// Movies added during iteration are not visited.
func (c *Catalog) All() iter.Seq2[Movie, []float64] {
	return func(yield func(Movie, []float64) bool) {
		for _, m := range c.Movies() {
			vec, ok := c.Features(m)
			if !ok {
				continue
			}
			if !yield(m, vec) {
				return
			}
		}
	}
}

// String lists every movie in order, one "Name (Year)" per line.
func (c *Catalog) String() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var b strings.Builder
	for _, m := range c.order {
		b.WriteString(m.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// RecommendByContent returns the unrated movie whose features are most
// similar to the user's preference vector. Ties go to the movie that orders
// first.
func (c *Catalog) RecommendByContent(src RatingSource) (Movie, error) {
	start := time.Now()
	movie, err := c.recommendByContent(src.Ratings())
	record(metrics.MethodContent, start, err)
	if err != nil {
		return Movie{}, fmt.Errorf("content recommendation for %q: %w", src.Username(), err)
	}

	c.logger.Debug().
		Str("user", src.Username()).
		Stringer("movie", movie).
		Msg("content recommendation")
	return movie, nil
}

func (c *Catalog) recommendByContent(ratings map[Movie]float64) (Movie, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	pref, err := c.preferenceVector(ratings)
	if err != nil {
		return Movie{}, err
	}

	var (
		best      Movie
		bestScore float64
		found     bool
	)
	for _, m := range c.order {
		if _, rated := ratings[m]; rated {
			continue
		}
		score := CosineSimilarity(pref, c.features[m])
		if math.IsNaN(score) {
			continue
		}
		if !found || score > bestScore {
			best, bestScore, found = m, score, true
		}
	}

	if !found {
		return Movie{}, ErrNoCandidates
	}
	return best, nil
}

// preferenceVector sums each rated movie's features scaled by its
// mean-centred rating. Features are divided by the largest absolute feature
// among the rated movies so the sum stays finite; cosine similarity ignores
// the scale. Caller holds c.mu.
func (c *Catalog) preferenceVector(ratings map[Movie]float64) ([]float64, error) {
	mean, err := Mean(ratings)
	if err != nil {
		return nil, err
	}

	rated := sortedMovies(ratings)
	var scale float64
	for _, m := range rated {
		vec, ok := c.features[m]
		if !ok {
			return nil, fmt.Errorf("rated movie %s: %w", m, ErrMovieNotFound)
		}
		scale = max(scale, maxAbs(vec))
	}

	pref := make([]float64, c.dimension)
	if scale == 0 {
		return pref, nil
	}
	for _, m := range rated {
		centred := ratings[m] - mean
		for i, f := range c.features[m] {
			pref[i] += centred * (f / scale)
		}
	}
	return pref, nil
}

// RecommendByCF predicts a score for every unrated movie from the user's k
// most similar rated movies and returns the highest. Ties go to the movie
// that orders first. Movies with no defined prediction are skipped.
func (c *Catalog) RecommendByCF(src RatingSource, k int) (Movie, error) {
	start := time.Now()
	movie, err := c.recommendByCF(src.Ratings(), k)
	record(metrics.MethodCF, start, err)
	if err != nil {
		return Movie{}, fmt.Errorf("cf recommendation for %q: %w", src.Username(), err)
	}

	c.logger.Debug().
		Str("user", src.Username()).
		Int("k", k).
		Stringer("movie", movie).
		Msg("cf recommendation")
	return movie, nil
}

func (c *Catalog) recommendByCF(ratings map[Movie]float64, k int) (Movie, error) {
	if err := checkNeighbors(ratings, k); err != nil {
		return Movie{}, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	rated := sortedMovies(ratings)

	var (
		best      Movie
		bestScore float64
		found     bool
		candidate bool
		lastErr   error
	)
	for _, m := range c.order {
		if _, ok := ratings[m]; ok {
			continue
		}
		candidate = true

		score, err := c.predictLocked(ratings, rated, m, k)
		if errors.Is(err, ErrZeroSimilaritySum) {
			c.logger.Debug().Stringer("movie", m).Msg("skipping movie without prediction")
			metrics.RecordPredictionSkipped()
			lastErr = err
			continue
		}
		if err != nil {
			return Movie{}, err
		}
		if math.IsNaN(score) {
			continue
		}

		if !found || score > bestScore {
			best, bestScore, found = m, score, true
		}
	}

	switch {
	case !candidate:
		return Movie{}, ErrNoCandidates
	case !found:
		return Movie{}, lastErr
	}
	return best, nil
}

// PredictMovieScore estimates the user's rating for target as the
// similarity-weighted average of the ratings of the k rated movies most
// similar to it.
func (c *Catalog) PredictMovieScore(src RatingSource, target Movie, k int) (float64, error) {
	start := time.Now()
	score, err := c.predictMovieScore(src.Ratings(), target, k)
	record(metrics.MethodPredict, start, err)
	if err != nil {
		return 0, fmt.Errorf("predict %s for %q: %w", target, src.Username(), err)
	}
	return score, nil
}

func (c *Catalog) predictMovieScore(ratings map[Movie]float64, target Movie, k int) (float64, error) {
	if err := checkNeighbors(ratings, k); err != nil {
		return 0, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.predictLocked(ratings, sortedMovies(ratings), target, k)
}

// predictLocked ranks rated movies by similarity to target and takes the
// weighted average over the top k. rated must be the keys of ratings in
// movie order. Caller holds c.mu and has validated k.
func (c *Catalog) predictLocked(ratings map[Movie]float64, rated []Movie, target Movie, k int) (float64, error) {
	targetVec, ok := c.features[target]
	if !ok {
		return 0, ErrMovieNotFound
	}

	ranked := cache.NewRankHeap[Movie](len(rated))
	for _, m := range rated {
		vec, ok := c.features[m]
		if !ok {
			return 0, fmt.Errorf("rated movie %s: %w", m, ErrMovieNotFound)
		}
		ranked.Push(m, c.similarity(target, targetVec, m, vec))
	}

	var weighted, total float64
	for _, entry := range ranked.PopN(k) {
		weighted += entry.Score * ratings[entry.Value]
		total += entry.Score
	}

	if total == 0 {
		return 0, ErrZeroSimilaritySum
	}
	return weighted / total, nil
}

// similarity returns the cosine similarity of two catalog movies, memoised
// by pair.
func (c *Catalog) similarity(a Movie, aVec []float64, b Movie, bVec []float64) float64 {
	if c.simCache == nil {
		return CosineSimilarity(aVec, bVec)
	}

	key := newMoviePair(a, b)
	if sim, ok := c.simCache.Get(key); ok {
		metrics.RecordSimilarityCache(true)
		return sim
	}
	metrics.RecordSimilarityCache(false)

	sim := CosineSimilarity(aVec, bVec)
	c.simCache.Add(key, sim)
	return sim
}

// checkNeighbors validates k against the rating count.
func checkNeighbors(ratings map[Movie]float64, k int) error {
	if k < 1 {
		return fmt.Errorf("k=%d: %w", k, ErrInvalidK)
	}
	if len(ratings) == 0 {
		return ErrNoRatings
	}
	if k > len(ratings) {
		return fmt.Errorf("k=%d with %d ratings: %w", k, len(ratings), ErrInsufficientNeighbors)
	}
	return nil
}

func record(method string, start time.Time, err error) {
	metrics.RecordRecommendation(method, resultLabel(err), time.Since(start))
}

// resultLabel maps an error to a bounded metric label value.
func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrNoRatings):
		return "no_ratings"
	case errors.Is(err, ErrNoCandidates):
		return "no_candidates"
	case errors.Is(err, ErrInvalidK):
		return "invalid_k"
	case errors.Is(err, ErrInsufficientNeighbors):
		return "insufficient_neighbors"
	case errors.Is(err, ErrZeroSimilaritySum):
		return "zero_similarity_sum"
	case errors.Is(err, ErrMovieNotFound):
		return "movie_not_found"
	default:
		return "error"
	}
}
