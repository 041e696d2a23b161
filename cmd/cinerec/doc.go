// Cinerec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

// Package main is the entry point for the cinerec command.
//
// cinerec loads a movie catalog and user ratings, then prints a
// content-based and a collaborative-filtering recommendation for every user:
//
//	alice: content=Titanic (1997) cf=Twilight (2008)
//	  predict Heat (1995)=6.4210
//	bob: content=Heat (1995) cf=<cf recommendation for "bob": user has no ratings>
//
// # Configuration
//
// Settings come from built-in defaults, an optional YAML file and the
// environment (see package config). The most common overrides:
//
//	export FEATURES_PATH=movies_features.txt
//	export RATINGS_PATH=ratings.txt
//	export RECOMMEND_NEIGHBORS=2
//	export REPORT_PREDICT=Heat-1995
//	./cinerec
//
// # Metrics
//
// With METRICS_ENABLED=true the run's Prometheus metrics are written to
// METRICS_TEXTFILE_PATH for the node_exporter textfile collector.
//
// # Exit Status
//
// 0 on success, 1 if configuration or the dataset cannot be loaded.
// Per-user recommendation failures are printed inline and do not change
// the exit status.
package main
