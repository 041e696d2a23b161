// Cinerec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

/*
Package loader reads movie features and user ratings into a recommend.Catalog.

Two dataset formats are supported.

# Text

A features file with one movie per line; the movie token is split on its
last hyphen:

	Titanic-1997 7 2 9 1
	Spider-Man-2002 3 8 1 4

and a ratings matrix whose header lists the rated movies, followed by one
row per user. NA marks a movie the user has not rated:

	Titanic-1997 Spider-Man-2002
	alice 8 NA
	bob   3 9

# JSON

A single document decoded with goccy/go-json and validated with struct tags:

	{
	  "movies": [{"name": "Titanic", "year": 1997, "features": [7, 2, 9, 1]}],
	  "users":  [{"name": "alice", "ratings": [{"name": "Titanic", "year": 1997, "rating": 8}]}]
	}

Every rating must refer to a movie in the catalog and lie within the
configured rating range.
*/
package loader
