// Cinerec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package loader

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinerec/internal/config"
	"github.com/tomtom215/cinerec/internal/metrics"
	"github.com/tomtom215/cinerec/internal/recommend"
)

// Load reads the dataset described by cfg into catalog and returns its users
// in file order.
func Load(ctx context.Context, cfg config.DataConfig, catalog *recommend.Catalog, logger zerolog.Logger) ([]*recommend.User, error) {
	logger = logger.With().Str("component", "loader").Str("format", cfg.Format).Logger()
	opts := OptionsFromConfig(cfg)
	start := time.Now()

	var (
		users []*recommend.User
		stats Stats
		err   error
	)
	switch cfg.Format {
	case config.FormatText:
		users, stats, err = loadText(ctx, cfg, catalog, opts)
	case config.FormatJSON:
		users, stats, err = loadJSON(ctx, cfg, catalog, opts)
	default:
		return nil, fmt.Errorf("%q: %w", cfg.Format, ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, err
	}

	metrics.RecordLoaderRecords("movie", stats.Movies)
	metrics.RecordLoaderRecords("user", stats.Users)
	metrics.RecordLoaderRecords("rating", stats.Ratings)

	logger.Info().
		Int("movies", stats.Movies).
		Int("users", stats.Users).
		Int("ratings", stats.Ratings).
		Dur("duration", time.Since(start)).
		Msg("Dataset loaded")

	return users, nil
}

func loadText(ctx context.Context, cfg config.DataConfig, catalog *recommend.Catalog, opts Options) ([]*recommend.User, Stats, error) {
	var stats Stats

	features, err := os.Open(cfg.FeaturesPath)
	if err != nil {
		return nil, stats, fmt.Errorf("open features: %w", err)
	}
	defer features.Close()

	stats.Movies, err = ReadFeatures(ctx, features, cfg.FeaturesPath, catalog)
	if err != nil {
		return nil, stats, err
	}

	ratings, err := os.Open(cfg.RatingsPath)
	if err != nil {
		return nil, stats, fmt.Errorf("open ratings: %w", err)
	}
	defer ratings.Close()

	users, n, err := ReadRatings(ctx, ratings, cfg.RatingsPath, catalog, opts)
	if err != nil {
		return nil, stats, err
	}
	stats.Users = len(users)
	stats.Ratings = n

	return users, stats, nil
}

func loadJSON(ctx context.Context, cfg config.DataConfig, catalog *recommend.Catalog, opts Options) ([]*recommend.User, Stats, error) {
	f, err := os.Open(cfg.DatasetPath)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	users, stats, err := ReadDataset(ctx, f, catalog, opts)
	if err != nil {
		return nil, stats, fmt.Errorf("%s: %w", cfg.DatasetPath, err)
	}
	return users, stats, nil
}
