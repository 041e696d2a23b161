// Cinerec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

/*
Package config provides centralized configuration management for Cinerec.

Configuration is layered with koanf: built-in defaults, then an optional YAML
file, then environment variables. The result is validated with struct tags
(see package validation) plus a few cross-field checks.

# Configuration File

The first existing file among CONFIG_PATH, cinerec.yaml, config.yaml,
config.yml and /etc/cinerec/config.yaml is loaded:

	data:
	  format: text
	  features_path: /srv/cinerec/movies_features.txt
	  ratings_path: /srv/cinerec/ratings.txt
	  min_rating: 1
	  max_rating: 10
	recommend:
	  neighbors: 2
	  similarity_cache_size: 4096
	logging:
	  level: info
	  format: console
	metrics:
	  enabled: true
	  textfile_path: /var/lib/node_exporter/cinerec.prom
	report:
	  users: [alice, bob]
	  predict: [Titanic-1997]

# Environment Variables

Data:
  - DATA_FORMAT: text or json (default: text)
  - FEATURES_PATH: movie features file (text format)
  - RATINGS_PATH: ratings matrix file (text format)
  - DATASET_PATH: JSON dataset (json format)
  - MIN_RATING, MAX_RATING: accepted rating range (default: 1 to 10)

Recommendation:
  - RECOMMEND_NEIGHBORS: k for collaborative filtering (default: 2)
  - RECOMMEND_SIMILARITY_CACHE_SIZE: similarity cache entries, 0 disables (default: 4096)

Logging:
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json or console (default: json)
  - LOG_CALLER: include caller file and line (default: false)

Metrics:
  - METRICS_ENABLED: write a Prometheus textfile at exit (default: false)
  - METRICS_TEXTFILE_PATH: destination .prom file

Report:
  - REPORT_USERS: comma-separated usernames to report on (default: all)
  - REPORT_PREDICT: comma-separated Name-Year movies to predict scores for

# Usage

	cfg, err := config.Load()
	if err != nil {
	    return fmt.Errorf("load config: %w", err)
	}
	logging.Init(cfg.Logging.LoggerConfig())
*/
package config
