// Cinerec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recommendation methods used as the "method" label.
const (
	MethodContent = "content"
	MethodCF      = "cf"
	MethodPredict = "predict"
)

var (
	// Recommendation Metrics
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinerec_recommendations_total",
			Help: "Total number of recommendation and prediction requests",
		},
		[]string{"method", "result"}, // result: "ok" or an error class
	)

	RecommendationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cinerec_recommendation_duration_seconds",
			Help:    "Duration of recommendation and prediction requests in seconds",
			Buckets: []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05, .1, .5, 1},
		},
		[]string{"method"},
	)

	PredictionsSkipped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cinerec_predictions_skipped_total",
			Help: "Candidate movies skipped by collaborative filtering because no prediction was defined",
		},
	)

	// Catalog Metrics
	CatalogMovies = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cinerec_catalog_movies",
			Help: "Number of movies in the loaded catalog",
		},
	)

	SimilarityCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cinerec_similarity_cache_hits_total",
			Help: "Total number of pairwise similarity cache hits",
		},
	)

	SimilarityCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cinerec_similarity_cache_misses_total",
			Help: "Total number of pairwise similarity cache misses",
		},
	)

	// Loader Metrics
	LoaderRecords = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinerec_loader_records_total",
			Help: "Total number of records read by the dataset loader",
		},
		[]string{"kind"}, // "movie", "user", "rating"
	)
)

// RecordRecommendation records the outcome and latency of a recommendation request.
func RecordRecommendation(method, result string, duration time.Duration) {
	RecommendationsTotal.WithLabelValues(method, result).Inc()
	RecommendationDuration.WithLabelValues(method).Observe(duration.Seconds())
}

// RecordPredictionSkipped counts a candidate dropped during collaborative filtering.
func RecordPredictionSkipped() {
	PredictionsSkipped.Inc()
}

// SetCatalogSize updates the catalog size gauge. The gauge describes the one
// catalog a process loads; set it once after loading.
func SetCatalogSize(n int) {
	CatalogMovies.Set(float64(n))
}

// RecordSimilarityCache records a similarity cache lookup.
func RecordSimilarityCache(hit bool) {
	if hit {
		SimilarityCacheHits.Inc()
		return
	}
	SimilarityCacheMisses.Inc()
}

// RecordLoaderRecords adds n records of the given kind.
func RecordLoaderRecords(kind string, n int) {
	if n <= 0 {
		return
	}
	LoaderRecords.WithLabelValues(kind).Add(float64(n))
}

// WriteTextfile writes every registered metric to path in the Prometheus text
// exposition format, for pickup by the node_exporter textfile collector.
// The file is written to a temporary name and renamed into place.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
