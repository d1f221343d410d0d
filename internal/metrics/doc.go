// Cinematch - Item-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package metrics provides Prometheus instrumentation for the recommender.

Cinematch is a command-line program, so metrics are not scraped over HTTP.
When a textfile path is configured the default registry is written once on
exit, in the format read by the node_exporter textfile collector:

	METRICS_TEXTFILE_PATH=/var/lib/node_exporter/cinematch.prom ./cinematch

# Available Metrics

Rating Table:
  - cinematch_rating_observations: observations loaded (gauge)
  - cinematch_rating_table_users: user rows (gauge)
  - cinematch_rating_table_items: retained item columns (gauge)

Similarity Model:
  - cinematch_similarity_build_duration_seconds: build time (histogram)
  - cinematch_similarity_undefined_pairs: zero-variance pairs set to 0 (gauge)

Recommendations:
  - cinematch_recommendations_total: requests (counter)
    Labels: status
  - cinematch_recommendation_duration_seconds: scoring latency (histogram)
  - cinematch_unknown_items_total: rated items without similarity data (counter)
    Labels: policy

Tuning:
  - cinematch_tuning_subjects_total: subjects per outcome (counter)
    Labels: parameter, outcome
  - cinematch_tuning_score: quality scores (histogram)
    Labels: parameter, value
*/
package metrics
