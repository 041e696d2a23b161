// Cinerec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

/*
Package metrics provides Prometheus metrics collection and export for observability.

Collectors are registered with the default registry through promauto when the
package is loaded. Cinerec is a batch tool with no listening port, so metrics
are exported with [WriteTextfile] at the end of a run and picked up by the
node_exporter textfile collector:

	node_exporter --collector.textfile.directory=/var/lib/node_exporter

# Available Metrics

Recommendation Metrics:
  - cinerec_recommendations_total: Requests by method and result (counter)
    Labels: method (content, cf, predict), result (ok or error class)
  - cinerec_recommendation_duration_seconds: Request latency (histogram)
    Labels: method
  - cinerec_predictions_skipped_total: CF candidates without a defined prediction (counter)

Catalog Metrics:
  - cinerec_catalog_movies: Movies in the catalog (gauge)
  - cinerec_similarity_cache_hits_total: Similarity cache hits (counter)
  - cinerec_similarity_cache_misses_total: Similarity cache misses (counter)

Loader Metrics:
  - cinerec_loader_records_total: Records read (counter)
    Labels: kind (movie, user, rating)

# Usage

	start := time.Now()
	movie, err := catalog.RecommendByContent(user)
	metrics.RecordRecommendation(metrics.MethodContent, "ok", time.Since(start))

	if err := metrics.WriteTextfile("/var/lib/node_exporter/cinerec.prom"); err != nil {
	    logging.Err(err).Msg("Failed to write metrics textfile")
	}

# Thread Safety

All collectors are safe for concurrent use.
*/
package metrics
