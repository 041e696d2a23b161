// Cinerec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package loader

import (
	"context"
	"fmt"
	"io"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cinerec/internal/recommend"
	"github.com/tomtom215/cinerec/internal/validation"
)

// Dataset is the JSON layout: every movie with its features, and every user
// with the movies they rated.
type Dataset struct {
	Movies []MovieRecord `json:"movies" validate:"required,min=1,dive"`
	Users  []UserRecord  `json:"users" validate:"dive"`
}

// MovieRecord is one catalog entry.
type MovieRecord struct {
	Name     string    `json:"name" validate:"required,notblank"`
	Year     int       `json:"year"`
	Features []float64 `json:"features" validate:"required,min=1"`
}

// UserRecord is one user and their ratings.
type UserRecord struct {
	Name    string         `json:"name" validate:"required,notblank"`
	Ratings []RatingRecord `json:"ratings" validate:"dive"`
}

// RatingRecord rates a catalog movie identified by name and year.
type RatingRecord struct {
	Name   string  `json:"name" validate:"required"`
	Year   int     `json:"year"`
	Rating float64 `json:"rating"`
}

// Stats counts what a load produced.
type Stats struct {
	Movies  int
	Users   int
	Ratings int
}

// DecodeDataset parses and validates a JSON dataset. Unknown fields are rejected.
func DecodeDataset(r io.Reader) (*Dataset, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var ds Dataset
	if err := dec.Decode(&ds); err != nil {
		return nil, fmt.Errorf("decode dataset: %w: %w", ErrInvalidRecord, err)
	}
	if err := validation.ValidateStruct(&ds); err != nil {
		return nil, fmt.Errorf("invalid dataset: %w: %w", ErrInvalidRecord, err)
	}
	return &ds, nil
}

// ReadDataset decodes a JSON dataset, adds its movies to the catalog and
// builds its users. Movies are added before any rating is resolved, so a
// rating may refer to any movie in the document or already in the catalog.
func ReadDataset(ctx context.Context, r io.Reader, catalog *recommend.Catalog, opts Options) ([]*recommend.User, Stats, error) {
	var stats Stats

	ds, err := DecodeDataset(r)
	if err != nil {
		return nil, stats, err
	}

	for i, mr := range ds.Movies {
		if err := ctx.Err(); err != nil {
			return nil, stats, err
		}
		if _, err := catalog.AddMovie(mr.Name, mr.Year, mr.Features); err != nil {
			return nil, stats, fmt.Errorf("movies[%d]: %w", i, err)
		}
		stats.Movies++
	}

	users := make([]*recommend.User, 0, len(ds.Users))
	seen := make(map[string]struct{}, len(ds.Users))
	for i, ur := range ds.Users {
		if err := ctx.Err(); err != nil {
			return nil, stats, err
		}
		if _, dup := seen[ur.Name]; dup {
			return nil, stats, fmt.Errorf("users[%d] %q: %w", i, ur.Name, ErrDuplicateUser)
		}
		seen[ur.Name] = struct{}{}

		ratings := make(map[recommend.Movie]float64, len(ur.Ratings))
		for j, rr := range ur.Ratings {
			m, ok := catalog.GetMovie(rr.Name, rr.Year)
			if !ok {
				return nil, stats, fmt.Errorf("users[%d].ratings[%d] %s: %w",
					i, j, recommend.NewMovie(rr.Name, rr.Year), ErrUnknownMovie)
			}
			if err := opts.checkRating(rr.Rating); err != nil {
				return nil, stats, fmt.Errorf("users[%d].ratings[%d]: %w", i, j, err)
			}
			ratings[m] = rr.Rating
		}

		users = append(users, recommend.NewUser(ur.Name, ratings, catalog))
		stats.Users++
		stats.Ratings += len(ratings)
	}

	return users, stats, nil
}
