// Cinerec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package loader

import (
	"fmt"
	"math"

	"github.com/tomtom215/cinerec/internal/config"
)

// Options controls how ratings are accepted.
type Options struct {
	// MinRating and MaxRating bound every rating (inclusive).
	MinRating float64
	MaxRating float64
}

// DefaultOptions accepts ratings from 1 to 10.
func DefaultOptions() Options {
	return Options{
		MinRating: 1,
		MaxRating: 10,
	}
}

// OptionsFromConfig builds Options from the data configuration.
func OptionsFromConfig(cfg config.DataConfig) Options {
	return Options{
		MinRating: cfg.MinRating,
		MaxRating: cfg.MaxRating,
	}
}

func (o Options) checkRating(r float64) error {
	if math.IsNaN(r) || r < o.MinRating || r > o.MaxRating {
		return fmt.Errorf("%g not in [%g, %g]: %w", r, o.MinRating, o.MaxRating, ErrRatingOutOfRange)
	}
	return nil
}
