// Cinerec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package recommend

import (
	"fmt"
	"maps"
	"math"
	"strings"
)

// User is a named rating history bound to a shared Catalog.
// The catalog is borrowed, never owned.
type User struct {
	username string
	ratings  map[Movie]float64
	catalog  *Catalog
}

// NewUser creates a user. The ratings map is copied.
func NewUser(username string, ratings map[Movie]float64, catalog *Catalog) *User {
	r := make(map[Movie]float64, len(ratings))
	maps.Copy(r, ratings)
	return &User{
		username: username,
		ratings:  r,
		catalog:  catalog,
	}
}

// Username returns the user's name.
func (u *User) Username() string {
	return u.username
}

// Ratings returns a copy of the user's ratings.
func (u *User) Ratings() map[Movie]float64 {
	return maps.Clone(u.ratings)
}

// Rating returns the user's rating for m.
func (u *User) Rating(m Movie) (float64, bool) {
	r, ok := u.ratings[m]
	return r, ok
}

// Len returns the number of rated movies.
func (u *User) Len() int {
	return len(u.ratings)
}

// Mean returns the user's mean rating.
func (u *User) Mean() (float64, error) {
	return Mean(u.ratings)
}

// Catalog returns the catalog the user recommends from.
func (u *User) Catalog() *Catalog {
	return u.catalog
}

// AddMovieToRS adds a movie to the shared catalog and records the user's
// rating for it. A non-finite rating is rejected before the catalog is
// touched; if the catalog rejects the movie the ratings are unchanged.
func (u *User) AddMovieToRS(name string, year int, features []float64, rating float64) error {
	if math.IsNaN(rating) || math.IsInf(rating, 0) {
		return fmt.Errorf("rate %s: %v: %w", NewMovie(name, year), rating, ErrInvalidRating)
	}

	movie, err := u.catalog.AddMovie(name, year, features)
	if err != nil {
		return err
	}
	u.ratings[movie] = rating
	return nil
}

// RecommendationByContent returns the best content-based recommendation.
func (u *User) RecommendationByContent() (Movie, error) {
	return u.catalog.RecommendByContent(u)
}

// RecommendationByCF returns the best collaborative-filtering recommendation
// using k neighbours.
func (u *User) RecommendationByCF(k int) (Movie, error) {
	return u.catalog.RecommendByCF(u, k)
}

// PredictionScoreForMovie predicts the user's rating for the named movie.
func (u *User) PredictionScoreForMovie(name string, year int, k int) (float64, error) {
	movie, ok := u.catalog.GetMovie(name, year)
	if !ok {
		return 0, fmt.Errorf("predict %s for %q: %w", NewMovie(name, year), u.username, ErrMovieNotFound)
	}
	return u.catalog.PredictMovieScore(u, movie, k)
}

// String renders "name: <username>" followed by the catalog listing.
func (u *User) String() string {
	var b strings.Builder
	b.WriteString("name: ")
	b.WriteString(u.username)
	b.WriteByte('\n')
	b.WriteString(u.catalog.String())
	b.WriteByte('\n')
	return b.String()
}
