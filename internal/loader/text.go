// Cinerec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package loader

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/tomtom215/cinerec/internal/recommend"
)

// notRated marks a missing rating in the ratings matrix.
const notRated = "NA"

// maxLineSize bounds a single line of a text dataset.
const maxLineSize = 1 << 20

// ParseMovieRef splits a "Name-Year" token on its last hyphen, so names may
// themselves contain hyphens ("Spider-Man-2002").
func ParseMovieRef(token string) (name string, year int, err error) {
	i := strings.LastIndexByte(token, '-')
	if i <= 0 || i == len(token)-1 {
		return "", 0, fmt.Errorf("movie %q must have the form Name-Year: %w", token, ErrInvalidRecord)
	}

	year, err = strconv.Atoi(token[i+1:])
	if err != nil {
		return "", 0, fmt.Errorf("movie %q has a non-numeric year: %w", token, ErrInvalidRecord)
	}
	return token[:i], year, nil
}

func newScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return sc
}

// ReadFeatures reads one movie per line, "Name-Year f1 f2 ...", and adds
// each to the catalog. Blank lines are skipped. It returns the number of
// movies read.
func ReadFeatures(ctx context.Context, r io.Reader, source string, catalog *recommend.Catalog) (int, error) {
	sc := newScanner(r)
	count := 0

	for line := 1; sc.Scan(); line++ {
		if err := ctx.Err(); err != nil {
			return count, err
		}

		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 2 {
			return count, lineErr(source, line, "movie %q has no features: %w", fields[0], ErrInvalidRecord)
		}

		name, year, err := ParseMovieRef(fields[0])
		if err != nil {
			return count, &LineError{Source: source, Line: line, Err: err}
		}

		features := make([]float64, len(fields)-1)
		for i, f := range fields[1:] {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				return count, lineErr(source, line, "feature %d %q is not a finite number: %w", i+1, f, ErrInvalidRecord)
			}
			features[i] = v
		}

		if _, err := catalog.AddMovie(name, year, features); err != nil {
			return count, &LineError{Source: source, Line: line, Err: err}
		}
		count++
	}

	if err := sc.Err(); err != nil {
		return count, fmt.Errorf("read %s: %w", source, err)
	}
	return count, nil
}

// ReadRatings reads a ratings matrix and builds one User per row.
//
// The first non-blank line lists the rated movies as "Name-Year" tokens.
// Each following line is a username followed by one value per header
// movie, where NA means not rated. Every header movie must already be in
// the catalog.
func ReadRatings(ctx context.Context, r io.Reader, source string, catalog *recommend.Catalog, opts Options) ([]*recommend.User, int, error) {
	sc := newScanner(r)

	var (
		header  []recommend.Movie
		users   []*recommend.User
		seen    = make(map[string]struct{})
		ratings int
	)

	for line := 1; sc.Scan(); line++ {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}

		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}

		if header == nil {
			movies, err := parseHeader(fields, catalog)
			if err != nil {
				return nil, 0, &LineError{Source: source, Line: line, Err: err}
			}
			header = movies
			continue
		}

		username := fields[0]
		values := fields[1:]
		if len(values) != len(header) {
			return nil, 0, lineErr(source, line, "user %q has %d values, header has %d movies: %w",
				username, len(values), len(header), ErrInvalidRecord)
		}
		if _, dup := seen[username]; dup {
			return nil, 0, lineErr(source, line, "user %q: %w", username, ErrDuplicateUser)
		}
		seen[username] = struct{}{}

		row := make(map[recommend.Movie]float64, len(values))
		for i, v := range values {
			if v == notRated {
				continue
			}
			rating, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, 0, lineErr(source, line, "user %q rating for %s %q: %w", username, header[i], v, ErrInvalidRecord)
			}
			if err := opts.checkRating(rating); err != nil {
				return nil, 0, lineErr(source, line, "user %q rating for %s: %w", username, header[i], err)
			}
			row[header[i]] = rating
		}

		users = append(users, recommend.NewUser(username, row, catalog))
		ratings += len(row)
	}

	if err := sc.Err(); err != nil {
		return nil, 0, fmt.Errorf("read %s: %w", source, err)
	}
	if header == nil {
		return nil, 0, fmt.Errorf("%s: missing header line: %w", source, ErrInvalidRecord)
	}
	return users, ratings, nil
}

// parseHeader resolves every header token against the catalog.
func parseHeader(fields []string, catalog *recommend.Catalog) ([]recommend.Movie, error) {
	movies := make([]recommend.Movie, len(fields))
	for i, tok := range fields {
		name, year, err := ParseMovieRef(tok)
		if err != nil {
			return nil, err
		}
		m, ok := catalog.GetMovie(name, year)
		if !ok {
			return nil, fmt.Errorf("header movie %s: %w", recommend.NewMovie(name, year), ErrUnknownMovie)
		}
		movies[i] = m
	}
	return movies, nil
}
