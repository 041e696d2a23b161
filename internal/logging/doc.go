// Cinerec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

// Package logging provides centralized zerolog-based logging for Cinerec.
//
// A global logger is configured once at startup with [Init]; packages that
// need their own fields receive a zerolog.Logger derived from it (see [Ctx])
// instead of reaching for the global.
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logger := logging.Ctx(ctx)
//	logger.Info().Msg("Loading dataset")
//	logging.Err(err).Msg("Failed to load dataset")
//
// # Correlation IDs
//
// Each CLI run is tagged with a short correlation ID so the lines of one
// run can be grepped out of a shared log:
//
//	ctx = logging.ContextWithNewCorrelationID(ctx)
//	logging.Ctx(ctx).Info().Msg("Run started")
//
// # Configuration
//
// Level, format and caller reporting come from the logging section of the
// configuration file or the LOG_LEVEL, LOG_FORMAT and LOG_CALLER
// environment variables.
//
// Always terminate log chains with .Msg() or .Send(); an unterminated event
// is never written.
package logging
