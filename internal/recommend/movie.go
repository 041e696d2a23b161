// Cinerec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package recommend

import (
	"cmp"
	"strconv"
	"strings"
)

// Movie identifies a title by name and release year.
// It is a comparable value type and is used directly as a map key.
type Movie struct {
	// Name is the movie title.
	Name string `json:"name"`

	// Year is the release year.
	Year int `json:"year"`
}

// NewMovie creates a movie identity.
func NewMovie(name string, year int) Movie {
	return Movie{Name: name, Year: year}
}

// Compare orders movies by year, then lexicographically by name.
// It returns -1, 0 or +1.
func (m Movie) Compare(other Movie) int {
	if c := cmp.Compare(m.Year, other.Year); c != 0 {
		return c
	}
	return strings.Compare(m.Name, other.Name)
}

// Less reports whether m orders before other.
func (m Movie) Less(other Movie) bool {
	return m.Compare(other) < 0
}

// Equal reports whether neither movie orders before the other.
func (m Movie) Equal(other Movie) bool {
	return m.Compare(other) == 0
}

// IsZero reports whether m is the zero Movie.
func (m Movie) IsZero() bool {
	return m.Name == "" && m.Year == 0
}

// String renders the movie as "Name (Year)".
func (m Movie) String() string {
	var b strings.Builder
	b.Grow(len(m.Name) + 7)
	b.WriteString(m.Name)
	b.WriteString(" (")
	b.WriteString(strconv.Itoa(m.Year))
	b.WriteString(")")
	return b.String()
}

// compareMovies adapts Compare for slices.SortFunc and slices.BinarySearchFunc.
func compareMovies(a, b Movie) int {
	return a.Compare(b)
}
