// Cinerec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

// Package recommend implements the movie recommendation engine.
//
// # Architecture
//
// A Catalog maps every Movie to a fixed-length feature vector. Users hold
// their own ratings and a reference to the Catalog they rate against. Two
// recommendation strategies are offered:
//
//   - Content-Based: a preference vector is built from the user's
//     mean-centered ratings and compared against every unrated movie
//     with cosine similarity.
//   - Item-Based Collaborative Filtering: the score of an unrated movie is
//     the similarity-weighted mean of the user's ratings on the k rated
//     movies most similar to it.
//
// # Determinism
//
// Movies are totally ordered by (Year, Name). Every traversal of the
// catalog or of a user's ratings follows that order, so ties are broken
// the same way on every run and predictions do not depend on the order
// ratings were inserted in.
//
// # Degenerate Input
//
// Cosine similarity against a zero vector is defined as 0. Operations
// that cannot produce a value return one of the sentinel errors declared
// in errors.go; callers match them with errors.Is.
//
// # Usage
//
//	catalog, err := recommend.NewCatalog(recommend.DefaultCatalogConfig(), logger)
//	if err != nil {
//	    return err
//	}
//	titanic, _ := catalog.AddMovie("Titanic", 1997, []float64{7, 2, 9, 1})
//
//	user := recommend.NewUser("alice", map[recommend.Movie]float64{titanic: 8}, catalog)
//	movie, err := user.RecommendationByCF(1)
//
// # Thread Safety
//
// The engine targets single-threaded use. Catalog state is guarded by a
// read/write lock so concurrent readers cannot corrupt it, but interleaving
// mutation with recommendation from several goroutines gives no ordering
// guarantees.
package recommend
