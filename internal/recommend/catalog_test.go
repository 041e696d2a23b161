// Cinerec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package recommend

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/rs/zerolog"
)

// ratingMap is a minimal RatingSource for catalog tests.
type ratingMap map[Movie]float64

func (r ratingMap) Username() string           { return "test" }
func (r ratingMap) Ratings() map[Movie]float64 { return r }

func newTestCatalog(t *testing.T, cfg *CatalogConfig) *Catalog {
	t.Helper()
	c, err := NewCatalog(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewCatalog() error = %v", err)
	}
	return c
}

func mustAdd(t *testing.T, c *Catalog, name string, year int, features ...float64) Movie {
	t.Helper()
	m, err := c.AddMovie(name, year, features)
	if err != nil {
		t.Fatalf("AddMovie(%s, %d) error = %v", name, year, err)
	}
	return m
}

func TestNewCatalog(t *testing.T) {
	tests := []struct {
		name      string
		cfg       *CatalogConfig
		wantErr   bool
		wantCache bool
	}{
		{name: "nil config uses defaults", cfg: nil, wantCache: true},
		{name: "cache disabled", cfg: &CatalogConfig{SimilarityCacheSize: 0}},
		{name: "custom cache size", cfg: &CatalogConfig{SimilarityCacheSize: 16}, wantCache: true},
		{name: "negative cache size", cfg: &CatalogConfig{SimilarityCacheSize: -1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCatalog(tt.cfg, zerolog.Nop())
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewCatalog() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if (c.simCache != nil) != tt.wantCache {
				t.Errorf("simCache present = %v, want %v", c.simCache != nil, tt.wantCache)
			}
			if c.Len() != 0 || c.Dimension() != 0 {
				t.Errorf("new catalog Len=%d Dimension=%d, want 0/0", c.Len(), c.Dimension())
			}
		})
	}
}

func TestCatalogAddMovie(t *testing.T) {
	tests := []struct {
		name     string
		features []float64
		wantErr  error
	}{
		{name: "matching dimension", features: []float64{1, 2, 3}},
		{name: "empty vector", features: nil, wantErr: ErrEmptyFeatures},
		{name: "too short", features: []float64{1, 2}, wantErr: ErrDimensionMismatch},
		{name: "too long", features: []float64{1, 2, 3, 4}, wantErr: ErrDimensionMismatch},
		{name: "NaN feature", features: []float64{1, math.NaN(), 3}, wantErr: ErrNonFiniteFeature},
		{name: "infinite feature", features: []float64{math.Inf(-1), 2, 3}, wantErr: ErrNonFiniteFeature},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCatalog(t, nil)
			mustAdd(t, c, "Seed", 1990, 0, 0, 1)

			m, err := c.AddMovie("Heat", 1995, tt.features)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("AddMovie() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				if c.Len() != 1 {
					t.Errorf("Len() = %d after rejected insert, want 1", c.Len())
				}
				return
			}
			if m != NewMovie("Heat", 1995) {
				t.Errorf("AddMovie() = %v", m)
			}
			if c.Dimension() != 3 {
				t.Errorf("Dimension() = %d, want 3", c.Dimension())
			}
		})
	}
}

func TestCatalogAddMovieCopiesFeatures(t *testing.T) {
	c := newTestCatalog(t, nil)
	features := []float64{1, 2}
	m := mustAdd(t, c, "Heat", 1995, features...)

	features[0] = 99
	got, _ := c.Features(m)
	if got[0] != 1 {
		t.Errorf("catalog vector changed through caller slice: %v", got)
	}

	got[1] = 99
	again, _ := c.Features(m)
	if again[1] != 2 {
		t.Errorf("catalog vector changed through returned slice: %v", again)
	}
}

func TestCatalogOverwriteKeepsSingleIdentity(t *testing.T) {
	c := newTestCatalog(t, nil)
	mustAdd(t, c, "Heat", 1995, 1, 0)
	mustAdd(t, c, "Heat", 1995, 0, 1)

	if c.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", c.Len())
	}
	got, ok := c.Features(NewMovie("Heat", 1995))
	if !ok || !slices.Equal(got, []float64{0, 1}) {
		t.Errorf("Features() = %v, %v; want [0 1], true", got, ok)
	}
}

func TestCatalogGetMovie(t *testing.T) {
	c := newTestCatalog(t, nil)
	mustAdd(t, c, "Heat", 1995, 1, 0)

	tests := []struct {
		name   string
		title  string
		year   int
		wantOK bool
	}{
		{name: "present", title: "Heat", year: 1995, wantOK: true},
		{name: "wrong year", title: "Heat", year: 1996},
		{name: "wrong name", title: "heat", year: 1995},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := c.GetMovie(tt.title, tt.year)
			if ok != tt.wantOK {
				t.Fatalf("GetMovie() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && m != NewMovie(tt.title, tt.year) {
				t.Errorf("GetMovie() = %v", m)
			}
			if !ok && !m.IsZero() {
				t.Errorf("GetMovie() returned %v on miss", m)
			}
		})
	}
}

func TestCatalogOrderAndString(t *testing.T) {
	c := newTestCatalog(t, nil)
	mustAdd(t, c, "Heat", 1995, 1)
	mustAdd(t, c, "Alien", 1979, 1)
	mustAdd(t, c, "Casino", 1995, 1)

	want := []Movie{NewMovie("Alien", 1979), NewMovie("Casino", 1995), NewMovie("Heat", 1995)}
	if got := c.Movies(); !slices.Equal(got, want) {
		t.Errorf("Movies() = %v, want %v", got, want)
	}

	var visited []Movie
	for m, vec := range c.All() {
		if len(vec) != 1 {
			t.Errorf("All() yielded %v for %v", vec, m)
		}
		visited = append(visited, m)
	}
	if !slices.Equal(visited, want) {
		t.Errorf("All() order = %v, want %v", visited, want)
	}

	// Restartable and stoppable.
	count := 0
	for range c.All() {
		count++
		break
	}
	if count != 1 {
		t.Errorf("All() did not stop after break")
	}

	wantStr := "Alien (1979)\nCasino (1995)\nHeat (1995)\n"
	if got := c.String(); got != wantStr {
		t.Errorf("String() = %q, want %q", got, wantStr)
	}
}

func TestRecommendByContent(t *testing.T) {
	c := newTestCatalog(t, nil)
	a := mustAdd(t, c, "A", 2000, 1, 0)
	b := mustAdd(t, c, "B", 2001, 0, 1)
	want := mustAdd(t, c, "C", 2002, 1, 1)

	got, err := c.RecommendByContent(ratingMap{a: 5, b: 1})
	if err != nil {
		t.Fatalf("RecommendByContent() error = %v", err)
	}
	if got != want {
		t.Errorf("RecommendByContent() = %v, want %v", got, want)
	}
}

func TestRecommendByContentPicksMostSimilar(t *testing.T) {
	c := newTestCatalog(t, nil)
	a := mustAdd(t, c, "Liked", 2000, 1, 0)
	b := mustAdd(t, c, "Disliked", 2000, 0, 1)
	mustAdd(t, c, "LikeDisliked", 1990, 0.1, 1)
	want := mustAdd(t, c, "LikeLiked", 2010, 1, 0.1)

	got, err := c.RecommendByContent(ratingMap{a: 9, b: 2})
	if err != nil {
		t.Fatalf("RecommendByContent() error = %v", err)
	}
	if got != want {
		t.Errorf("RecommendByContent() = %v, want %v", got, want)
	}
}

func TestRecommendByContentTieGoesToFirstInOrder(t *testing.T) {
	c := newTestCatalog(t, nil)
	a := mustAdd(t, c, "A", 2000, 1, 0)
	b := mustAdd(t, c, "B", 2000, 0, 1)
	// Identical vectors, so identical similarity; Y (1980) orders before X (1990).
	mustAdd(t, c, "X", 1990, 1, 0)
	want := mustAdd(t, c, "Y", 1980, 1, 0)

	got, err := c.RecommendByContent(ratingMap{a: 5, b: 1})
	if err != nil {
		t.Fatalf("RecommendByContent() error = %v", err)
	}
	if got != want {
		t.Errorf("RecommendByContent() = %v, want %v", got, want)
	}
}

func TestRecommendByContentExtremeFeatures(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, c *Catalog) (ratingMap, Movie)
	}{
		{
			// Huge orders first and is orthogonal to the preference; an
			// overflowing similarity must not let it win.
			name: "huge candidate ordered first",
			setup: func(t *testing.T, c *Catalog) (ratingMap, Movie) {
				a := mustAdd(t, c, "A", 2000, 1, 0)
				b := mustAdd(t, c, "B", 2001, 0, 1)
				mustAdd(t, c, "Huge", 2002, 1e308, 1e308)
				good := mustAdd(t, c, "Good", 2003, 1, -1)
				return ratingMap{a: 5, b: 1}, good
			},
		},
		{
			name: "huge rated movies",
			setup: func(t *testing.T, c *Catalog) (ratingMap, Movie) {
				liked := mustAdd(t, c, "Liked", 2000, 1e308, 0)
				disliked := mustAdd(t, c, "Disliked", 2000, 0, 1e308)
				mustAdd(t, c, "Far", 1990, -1, 1)
				near := mustAdd(t, c, "Near", 2010, 1, -1)
				return ratingMap{liked: 10, disliked: 1}, near
			},
		},
		{
			name: "tiny features",
			setup: func(t *testing.T, c *Catalog) (ratingMap, Movie) {
				liked := mustAdd(t, c, "Liked", 2000, 1e-300, 0)
				disliked := mustAdd(t, c, "Disliked", 2000, 0, 1e-300)
				mustAdd(t, c, "Far", 1990, -1e-300, 1e-300)
				near := mustAdd(t, c, "Near", 2010, 1e-300, -1e-300)
				return ratingMap{liked: 10, disliked: 1}, near
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCatalog(t, nil)
			ratings, want := tt.setup(t, c)

			got, err := c.RecommendByContent(ratings)
			if err != nil {
				t.Fatalf("RecommendByContent() error = %v", err)
			}
			if got != want {
				t.Errorf("RecommendByContent() = %v, want %v", got, want)
			}
		})
	}
}

func TestRecommendByContentErrors(t *testing.T) {
	c := newTestCatalog(t, nil)
	a := mustAdd(t, c, "A", 2000, 1, 0)
	b := mustAdd(t, c, "B", 2001, 0, 1)

	tests := []struct {
		name    string
		ratings ratingMap
		wantErr error
	}{
		{name: "no ratings", ratings: ratingMap{}, wantErr: ErrNoRatings},
		{name: "everything rated", ratings: ratingMap{a: 5, b: 1}, wantErr: ErrNoCandidates},
		{name: "rated movie missing from catalog", ratings: ratingMap{NewMovie("Ghost", 1990): 4}, wantErr: ErrMovieNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.RecommendByContent(tt.ratings)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("RecommendByContent() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRecommendByContentNeverReturnsRated(t *testing.T) {
	c := newTestCatalog(t, nil)
	var all []Movie
	for i := 0; i < 8; i++ {
		all = append(all, mustAdd(t, c, "M", 1990+i, float64(i%3), float64(i%5), float64(i%2)+1))
	}

	for n := 1; n < len(all); n++ {
		ratings := ratingMap{}
		for i, m := range all[:n] {
			ratings[m] = float64(i%10 + 1)
		}
		got, err := c.RecommendByContent(ratings)
		if err != nil {
			t.Fatalf("n=%d: RecommendByContent() error = %v", n, err)
		}
		if _, rated := ratings[got]; rated {
			t.Errorf("n=%d: recommended already rated movie %v", n, got)
		}
		if _, ok := c.GetMovie(got.Name, got.Year); !ok {
			t.Errorf("n=%d: recommended movie %v not in catalog", n, got)
		}
	}
}

// cfScenario builds a catalog where A, B and C have cosine similarity 0.9,
// 0.5 and 0.1 to D.
func cfScenario(t *testing.T, cfg *CatalogConfig) (c *Catalog, a, b, cm, d Movie) {
	t.Helper()
	c = newTestCatalog(t, cfg)
	a = mustAdd(t, c, "A", 2000, 0.9, math.Sqrt(1-0.81))
	b = mustAdd(t, c, "B", 2001, 0.5, math.Sqrt(1-0.25))
	cm = mustAdd(t, c, "C", 2002, 0.1, math.Sqrt(1-0.01))
	d = mustAdd(t, c, "D", 2003, 1, 0)
	return c, a, b, cm, d
}

func TestPredictMovieScore(t *testing.T) {
	tests := []struct {
		name string
		cfg  *CatalogConfig
	}{
		{name: "with similarity cache", cfg: nil},
		{name: "without similarity cache", cfg: &CatalogConfig{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, a, b, cm, d := cfScenario(t, tt.cfg)
			ratings := ratingMap{a: 5, b: 3, cm: 1}

			want := (0.9*5 + 0.5*3) / (0.9 + 0.5)
			// Twice, so the second call runs against a warm cache.
			for i := 0; i < 2; i++ {
				got, err := c.PredictMovieScore(ratings, d, 2)
				if err != nil {
					t.Fatalf("PredictMovieScore() error = %v", err)
				}
				if !almostEqual(got, want) {
					t.Errorf("PredictMovieScore() = %v, want %v", got, want)
				}
			}
			if !almostEqual(want, 6.0/1.4) {
				t.Fatalf("scenario arithmetic drifted: %v", want)
			}
		})
	}
}

func TestPredictMovieScoreKSelection(t *testing.T) {
	c, a, b, cm, d := cfScenario(t, nil)
	ratings := ratingMap{a: 5, b: 3, cm: 1}

	tests := []struct {
		k    int
		want float64
	}{
		{k: 1, want: 5},
		{k: 2, want: 6.0 / 1.4},
		{k: 3, want: (0.9*5 + 0.5*3 + 0.1*1) / 1.5},
	}

	for _, tt := range tests {
		got, err := c.PredictMovieScore(ratings, d, tt.k)
		if err != nil {
			t.Fatalf("k=%d: PredictMovieScore() error = %v", tt.k, err)
		}
		if !almostEqual(got, tt.want) {
			t.Errorf("k=%d: PredictMovieScore() = %v, want %v", tt.k, got, tt.want)
		}
	}
}

func TestPredictMovieScoreTiesUseMovieOrder(t *testing.T) {
	c := newTestCatalog(t, nil)
	early := mustAdd(t, c, "Early", 1980, 1, 1)
	late := mustAdd(t, c, "Late", 1990, 1, 1)
	target := mustAdd(t, c, "Target", 2000, 1, 0)

	got, err := c.PredictMovieScore(ratingMap{late: 2, early: 8}, target, 1)
	if err != nil {
		t.Fatalf("PredictMovieScore() error = %v", err)
	}
	if got != 8 {
		t.Errorf("PredictMovieScore() = %v, want rating of the earlier movie (8)", got)
	}
}

func TestPredictMovieScoreInsertionOrderInvariant(t *testing.T) {
	c := newTestCatalog(t, nil)
	var movies []Movie
	for i := 0; i < 6; i++ {
		movies = append(movies, mustAdd(t, c, "M", 1990+i, float64(i+1), float64(6-i), float64(i%2)))
	}
	target := mustAdd(t, c, "Target", 2020, 2, 3, 1)
	values := []float64{3, 9, 4, 7, 1, 6}

	var want float64
	for shift := range movies {
		u := NewUser("u", nil, c)
		for i := range movies {
			idx := (i + shift) % len(movies)
			u.ratings[movies[idx]] = values[idx]
		}

		got, err := c.PredictMovieScore(u, target, 3)
		if err != nil {
			t.Fatalf("shift %d: PredictMovieScore() error = %v", shift, err)
		}
		if shift == 0 {
			want = got
			continue
		}
		if got != want {
			t.Errorf("shift %d: PredictMovieScore() = %v, want %v", shift, got, want)
		}
	}
}

func TestPredictMovieScoreErrors(t *testing.T) {
	c, a, b, _, d := cfScenario(t, nil)
	x := mustAdd(t, c, "X", 2010, 0, 1)
	y := mustAdd(t, c, "Y", 2011, 0, -1)
	ratings := ratingMap{a: 5, b: 3}

	tests := []struct {
		name    string
		ratings ratingMap
		target  Movie
		k       int
		wantErr error
	}{
		{name: "k zero", ratings: ratings, target: d, k: 0, wantErr: ErrInvalidK},
		{name: "k negative", ratings: ratings, target: d, k: -2, wantErr: ErrInvalidK},
		{name: "k exceeds ratings", ratings: ratings, target: d, k: 3, wantErr: ErrInsufficientNeighbors},
		{name: "no ratings", ratings: ratingMap{}, target: d, k: 1, wantErr: ErrNoRatings},
		{name: "unknown target", ratings: ratings, target: NewMovie("Ghost", 1900), k: 1, wantErr: ErrMovieNotFound},
		{name: "orthogonal neighbour", ratings: ratingMap{x: 4}, target: d, k: 1, wantErr: ErrZeroSimilaritySum},
		{name: "cancelling neighbours", ratings: ratingMap{x: 4, y: 2}, target: b, k: 2, wantErr: ErrZeroSimilaritySum},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.PredictMovieScore(tt.ratings, tt.target, tt.k)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("PredictMovieScore() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestPredictMovieScoreAfterOverwrite(t *testing.T) {
	c := newTestCatalog(t, nil)
	a := mustAdd(t, c, "A", 2000, 1, 0)
	b := mustAdd(t, c, "B", 2001, 1, 1)
	target := mustAdd(t, c, "T", 2002, 1, 0)
	ratings := ratingMap{a: 5, b: 1}

	got, err := c.PredictMovieScore(ratings, target, 1)
	if err != nil || got != 5 {
		t.Fatalf("before overwrite: PredictMovieScore() = %v, %v; want 5", got, err)
	}

	mustAdd(t, c, "A", 2000, 0, 1)

	got, err = c.PredictMovieScore(ratings, target, 1)
	if err != nil || got != 1 {
		t.Errorf("after overwrite: PredictMovieScore() = %v, %v; want 1", got, err)
	}
}

func TestRecommendByCF(t *testing.T) {
	c, a, b, cm, d := cfScenario(t, nil)
	mustAdd(t, c, "E", 2004, 0, 1)

	// D scores about 4.29 and E about 1.93 with k=2.
	got, err := c.RecommendByCF(ratingMap{a: 5, b: 3, cm: 1}, 2)
	if err != nil {
		t.Fatalf("RecommendByCF() error = %v", err)
	}
	if got != d {
		t.Errorf("RecommendByCF() = %v, want %v", got, d)
	}
}

func TestRecommendByCFSkipsUndefinedPredictions(t *testing.T) {
	c := newTestCatalog(t, nil)
	rated := mustAdd(t, c, "Rated", 2000, 0, 1)
	mustAdd(t, c, "Orthogonal", 1990, 1, 0)

	_, err := c.RecommendByCF(ratingMap{rated: 7}, 1)
	if !errors.Is(err, ErrZeroSimilaritySum) {
		t.Fatalf("RecommendByCF() error = %v, want %v", err, ErrZeroSimilaritySum)
	}

	want := mustAdd(t, c, "Similar", 2010, 1, 1)
	got, err := c.RecommendByCF(ratingMap{rated: 7}, 1)
	if err != nil {
		t.Fatalf("RecommendByCF() error = %v", err)
	}
	if got != want {
		t.Errorf("RecommendByCF() = %v, want %v", got, want)
	}
}

func TestRecommendByCFErrors(t *testing.T) {
	c := newTestCatalog(t, nil)
	a := mustAdd(t, c, "A", 2000, 1, 0)
	b := mustAdd(t, c, "B", 2001, 0, 1)

	tests := []struct {
		name    string
		ratings ratingMap
		k       int
		wantErr error
	}{
		{name: "no ratings", ratings: ratingMap{}, k: 1, wantErr: ErrNoRatings},
		{name: "invalid k", ratings: ratingMap{a: 3}, k: 0, wantErr: ErrInvalidK},
		{name: "k too large", ratings: ratingMap{a: 3}, k: 2, wantErr: ErrInsufficientNeighbors},
		{name: "everything rated", ratings: ratingMap{a: 3, b: 4}, k: 1, wantErr: ErrNoCandidates},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.RecommendByCF(tt.ratings, tt.k)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("RecommendByCF() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestResultLabel(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, "ok"},
		{ErrNoRatings, "no_ratings"},
		{ErrNoCandidates, "no_candidates"},
		{ErrInvalidK, "invalid_k"},
		{ErrInsufficientNeighbors, "insufficient_neighbors"},
		{ErrZeroSimilaritySum, "zero_similarity_sum"},
		{ErrMovieNotFound, "movie_not_found"},
		{errors.New("boom"), "error"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := resultLabel(tt.err); got != tt.want {
				t.Errorf("resultLabel(%v) = %q, want %q", tt.err, got, tt.want)
			}
		})
	}
}
