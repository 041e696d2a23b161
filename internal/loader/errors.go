// Cinerec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package loader

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownMovie is returned when a rating refers to a movie that is not in the catalog.
	ErrUnknownMovie = errors.New("movie not in catalog")

	// ErrInvalidRecord is returned for a line or document entry that cannot be parsed.
	ErrInvalidRecord = errors.New("invalid record")

	// ErrRatingOutOfRange is returned when a rating falls outside the configured bounds.
	ErrRatingOutOfRange = errors.New("rating out of range")

	// ErrDuplicateUser is returned when the same username appears twice.
	ErrDuplicateUser = errors.New("duplicate user")

	// ErrUnsupportedFormat is returned for an unknown dataset format.
	ErrUnsupportedFormat = errors.New("unsupported dataset format")
)

// LineError locates a parse failure in a text file.
type LineError struct {
	Source string
	Line   int
	Err    error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.Source, e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

func lineErr(source string, line int, format string, args ...any) error {
	return &LineError{Source: source, Line: line, Err: fmt.Errorf(format, args...)}
}
