// Cinerec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/cinerec/internal/config"
	"github.com/tomtom215/cinerec/internal/loader"
	"github.com/tomtom215/cinerec/internal/logging"
	"github.com/tomtom215/cinerec/internal/metrics"
	"github.com/tomtom215/cinerec/internal/recommend"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := run(ctx, os.Stdout)
	stop()
	if err != nil {
		logging.Err(err).Msg("cinerec failed")
		os.Exit(1)
	}
}

// run loads configuration and data, prints the report to stdout and exports
// metrics when enabled.
func run(ctx context.Context, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logging.Init(cfg.Logging.LoggerConfig())

	ctx = logging.ContextWithNewCorrelationID(ctx)
	logger := *logging.Ctx(ctx)
	start := time.Now()

	logger.Info().
		Str("format", cfg.Data.Format).
		Int("neighbors", cfg.Recommend.Neighbors).
		Msg("Starting cinerec")

	catalog, err := recommend.NewCatalog(cfg.Recommend.CatalogConfig(), logger)
	if err != nil {
		return fmt.Errorf("create catalog: %w", err)
	}

	users, err := loader.Load(ctx, cfg.Data, catalog, logger)
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}
	metrics.SetCatalogSize(catalog.Len())

	predict, err := parsePredictRefs(cfg.Report.Predict)
	if err != nil {
		return err
	}

	selected := selectUsers(users, cfg.Report.Users, logger)
	report := &reporter{
		out:       stdout,
		neighbors: cfg.Recommend.Neighbors,
		predict:   predict,
	}
	if err := report.write(ctx, selected); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if cfg.Metrics.Enabled {
		if err := metrics.WriteTextfile(cfg.Metrics.TextfilePath); err != nil {
			return fmt.Errorf("write metrics textfile: %w", err)
		}
		logger.Debug().Str("path", cfg.Metrics.TextfilePath).Msg("Metrics textfile written")
	}

	logger.Info().
		Int("users", len(selected)).
		Int("movies", catalog.Len()).
		Dur("duration", time.Since(start)).
		Msg("Run complete")
	return nil
}
