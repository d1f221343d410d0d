// Cinematch - Item-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"context"
	"time"
)

// Rating is one (item, rating) pair supplied by a rater at request time.
type Rating struct {
	// Item is the item identifier (the movie title).
	Item string `json:"item"`

	// Value is the rating on the 1-5 scale.
	Value int `json:"value"`
}

// ScoredItem is a candidate item with its aggregate similarity score.
type ScoredItem struct {
	// Item is the item identifier.
	Item string `json:"item"`

	// Score is the sum of similarity rows weighted by centred ratings.
	// It is not normalized; only the ordering is meaningful.
	Score float64 `json:"score"`
}

// Interactor is the human interaction capability the recommender depends
// on. Implementations block until the rater answers.
type Interactor interface {
	// AskRating asks for an integer rating in [1, 5].
	// Implementations re-prompt on invalid input and only return an error
	// when no answer can be obtained at all.
	AskRating(ctx context.Context, prompt string) (int, error)

	// AskYesNo asks a yes/no question, re-prompting on invalid input.
	AskYesNo(ctx context.Context, prompt string) (bool, error)

	// Present shows an ordered recommendation list to the rater.
	Present(ctx context.Context, items []string) error
}

// Parameter names a tunable parameter.
type Parameter string

const (
	// ParameterInputSize is the number of ratings elicited before scoring.
	ParameterInputSize Parameter = "input_size"
	// ParameterOutputSize is the number of recommendations returned.
	ParameterOutputSize Parameter = "output_size"
)

// Label returns a human-readable axis label for the parameter.
func (p Parameter) Label() string {
	switch p {
	case ParameterInputSize:
		return "Number of selections passed to the algorithm"
	case ParameterOutputSize:
		return "Number of movies recommended to the user"
	default:
		return string(p)
	}
}

// CandidateMean is the mean quality score of one candidate value.
type CandidateMean struct {
	// Value is the candidate parameter value.
	Value int `json:"value"`

	// Mean is the average score over completed subjects.
	Mean float64 `json:"mean"`
}

// TuningResult is the outcome of a tuning session.
type TuningResult struct {
	// SessionID uniquely identifies the session.
	SessionID string `json:"session_id"`

	// Parameter is the tuned parameter.
	Parameter Parameter `json:"parameter"`

	// Subjects is the number of subjects who completed the full sweep.
	Subjects int `json:"subjects"`

	// Means holds one entry per candidate value, in enumeration order.
	Means []CandidateMean `json:"means"`

	// Best is the candidate value with the strictly highest mean,
	// the first in enumeration order on ties.
	Best int `json:"best"`

	// StartedAt is when the session started.
	StartedAt time.Time `json:"started_at"`

	// CompletedAt is when the session ended.
	CompletedAt time.Time `json:"completed_at"`
}

// Mean returns the mean score for a candidate value.
func (r *TuningResult) Mean(value int) (float64, bool) {
	for _, m := range r.Means {
		if m.Value == value {
			return m.Mean, true
		}
	}
	return 0, false
}
