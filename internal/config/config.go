// Cinerec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package config

import (
	"os"

	"github.com/tomtom215/cinerec/internal/logging"
	"github.com/tomtom215/cinerec/internal/recommend"
)

// Config holds all application configuration.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in defaults for every setting
//  2. Config File: Optional YAML file (CONFIG_PATH, cinerec.yaml, config.yaml, /etc/cinerec/config.yaml)
//  3. Environment Variables: Override any mapped setting
//
// Config is immutable after Load() and safe for concurrent read access.
type Config struct {
	Data      DataConfig      `koanf:"data"`
	Recommend RecommendConfig `koanf:"recommend"`
	Logging   LoggingConfig   `koanf:"logging"`
	Metrics   MetricsConfig   `koanf:"metrics"`
	Report    ReportConfig    `koanf:"report"`
}

// Dataset formats understood by the loader.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// DataConfig locates the dataset.
type DataConfig struct {
	// Format selects the dataset layout: text or json.
	// Default: text
	Format string `koanf:"format" validate:"required,oneof=text json"`

	// FeaturesPath is the movie features file ("Name-Year f1 f2 ..." per line).
	// Required for the text format.
	FeaturesPath string `koanf:"features_path" validate:"required_if=Format text"`

	// RatingsPath is the user ratings matrix. Required for the text format.
	RatingsPath string `koanf:"ratings_path" validate:"required_if=Format text"`

	// DatasetPath is the single JSON document holding movies and users.
	// Required for the json format.
	DatasetPath string `koanf:"dataset_path" validate:"required_if=Format json"`

	// MinRating and MaxRating bound every accepted rating (inclusive).
	// Default: 1 and 10
	MinRating float64 `koanf:"min_rating"`
	MaxRating float64 `koanf:"max_rating" validate:"gtfield=MinRating"`
}

// RecommendConfig tunes the recommendation engine.
type RecommendConfig struct {
	// Neighbors is k, the number of similar rated movies used by
	// collaborative filtering.
	// Default: 2
	Neighbors int `koanf:"neighbors" validate:"min=1"`

	// SimilarityCacheSize bounds memoised pairwise similarities; 0 disables the cache.
	// Default: 4096
	SimilarityCacheSize int `koanf:"similarity_cache_size" validate:"min=0"`
}

// CatalogConfig returns the engine configuration for a new catalog.
func (r RecommendConfig) CatalogConfig() *recommend.CatalogConfig {
	return &recommend.CatalogConfig{
		SimilarityCacheSize: r.SimilarityCacheSize,
	}
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format" validate:"oneof=json console"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// LoggerConfig converts the section into a logging.Config writing to stderr.
func (l LoggingConfig) LoggerConfig() logging.Config {
	return logging.Config{
		Level:     l.Level,
		Format:    l.Format,
		Caller:    l.Caller,
		Timestamp: true,
		Output:    os.Stderr,
	}
}

// MetricsConfig controls the Prometheus textfile export.
type MetricsConfig struct {
	// Enabled writes metrics to TextfilePath when a run finishes.
	Enabled bool `koanf:"enabled"`

	// TextfilePath is the .prom file picked up by the node_exporter textfile collector.
	TextfilePath string `koanf:"textfile_path" validate:"required_if=Enabled true"`
}

// ReportConfig selects what the CLI prints.
type ReportConfig struct {
	// Users limits the report to these usernames. Empty means every user.
	Users []string `koanf:"users"`

	// Predict lists movies, as "Name-Year", whose predicted score is printed
	// for every reported user.
	Predict []string `koanf:"predict"`
}
