// Cinerec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package recommend

import "errors"

var (
	// ErrMovieNotFound is returned when an operation needs a movie the catalog does not hold.
	ErrMovieNotFound = errors.New("movie not found in catalog")

	// ErrNoRatings is returned when a mean or prediction is requested for a user without ratings.
	ErrNoRatings = errors.New("user has no ratings")

	// ErrNoCandidates is returned when every catalog movie is already rated by the user.
	ErrNoCandidates = errors.New("no unrated movie to recommend")

	// ErrInvalidK is returned when the neighbor count is less than one.
	ErrInvalidK = errors.New("neighbor count must be at least 1")

	// ErrInsufficientNeighbors is returned when k exceeds the number of rated movies.
	ErrInsufficientNeighbors = errors.New("neighbor count exceeds rated movies")

	// ErrZeroSimilaritySum is returned when the selected neighbors' similarities sum to zero.
	ErrZeroSimilaritySum = errors.New("neighbor similarities sum to zero")

	// ErrEmptyFeatures is returned when a movie is added with an empty feature vector.
	ErrEmptyFeatures = errors.New("feature vector is empty")

	// ErrNonFiniteFeature is returned when a feature vector holds NaN or an infinity.
	ErrNonFiniteFeature = errors.New("feature value is not finite")

	// ErrInvalidRating is returned when a rating is NaN or an infinity.
	ErrInvalidRating = errors.New("rating is not a finite number")

	// ErrDimensionMismatch is returned when a feature vector length differs from the catalog dimension.
	ErrDimensionMismatch = errors.New("feature vector dimension mismatch")
)
