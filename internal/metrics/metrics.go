// Cinematch - Item-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Rating Table Metrics
	RatingObservations = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cinematch_rating_observations",
			Help: "Number of (user, item) observations loaded into the rating table",
		},
	)

	RatingTableUsers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cinematch_rating_table_users",
			Help: "Number of user rows in the rating table",
		},
	)

	RatingTableItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cinematch_rating_table_items",
			Help: "Number of item columns retained after the observation threshold",
		},
	)

	// Similarity Model Metrics
	SimilarityBuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cinematch_similarity_build_duration_seconds",
			Help:    "Time spent computing the item-item correlation matrix",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30, 60, 120},
		},
	)

	SimilarityZeroVariancePairs = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cinematch_similarity_undefined_pairs",
			Help: "Item pairs whose correlation was undefined and replaced by 0",
		},
	)

	// Recommendation Metrics
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinematch_recommendations_total",
			Help: "Total number of recommendation requests",
		},
		[]string{"status"}, // "success", "error"
	)

	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cinematch_recommendation_duration_seconds",
			Help:    "Recommendation scoring latency in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
	)

	UnknownItemsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinematch_unknown_items_total",
			Help: "Rated items with no similarity data",
		},
		[]string{"policy"}, // "skip", "fail"
	)

	// Tuning Metrics
	TuningSubjectsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinematch_tuning_subjects_total",
			Help: "Tuning subjects by outcome",
		},
		[]string{"parameter", "outcome"}, // outcome: "completed", "discarded"
	)

	TuningScores = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cinematch_tuning_score",
			Help:    "Quality scores given to recommendation lists during tuning",
			Buckets: []float64{1, 2, 3, 4, 5},
		},
		[]string{"parameter", "value"},
	)
)

// SetRatingTableSize records the shape of the loaded rating table.
func SetRatingTableSize(observations, users, items int) {
	RatingObservations.Set(float64(observations))
	RatingTableUsers.Set(float64(users))
	RatingTableItems.Set(float64(items))
}

// RecordSimilarityBuild records a similarity model build.
func RecordSimilarityBuild(duration time.Duration, undefinedPairs int) {
	SimilarityBuildDuration.Observe(duration.Seconds())
	SimilarityZeroVariancePairs.Set(float64(undefinedPairs))
}

// RecordRecommendation records a recommendation request.
func RecordRecommendation(duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	RecommendationsTotal.WithLabelValues(status).Inc()
	RecommendationDuration.Observe(duration.Seconds())
}

// RecordUnknownItem records a rated item missing from the similarity model.
func RecordUnknownItem(policy string) {
	UnknownItemsTotal.WithLabelValues(policy).Inc()
}

// RecordTuningSubject records a tuning subject that completed or abandoned
// its candidate sweep.
func RecordTuningSubject(parameter string, completed bool) {
	outcome := "completed"
	if !completed {
		outcome = "discarded"
	}
	TuningSubjectsTotal.WithLabelValues(parameter, outcome).Inc()
}

// RecordTuningScore records one quality score for a candidate value.
func RecordTuningScore(parameter string, value, score int) {
	TuningScores.WithLabelValues(parameter, strconv.Itoa(value)).Observe(float64(score))
}

// WriteTextfile writes the default registry to path in the text exposition
// format read by the node_exporter textfile collector.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
