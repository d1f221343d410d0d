// Cinematch - Item-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinematch/internal/metrics"
)

// Scorer ranks candidate items for a set of ratings supplied by one rater.
//
// For each rated item the model's similarity row is weighted by
// (rating - NeutralRating) and the weighted rows are summed into one
// score per candidate:
//
//	score(c) = sum_{(i, r) in ratings} sim(i, c) * (r - neutral)
//
// Candidates are sorted by descending score. Equal scores keep the model's
// column order, so results are deterministic.
type Scorer struct {
	model   *SimilarityModel
	neutral float64
	policy  UnknownItemPolicy
	logger  zerolog.Logger
}

// NewScorer creates a scorer over model.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewScorer(model *SimilarityModel, cfg *Config, logger zerolog.Logger) *Scorer {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	policy := cfg.UnknownItems
	if policy == "" {
		policy = UnknownItemSkip
	}
	return &Scorer{
		model:   model,
		neutral: cfg.NeutralRating,
		policy:  policy,
		logger:  logger.With().Str("component", "scorer").Logger(),
	}
}

// Score returns every candidate not present in ratings, ordered by
// descending aggregate score.
//
// It returns ErrNoRatings when ratings is empty or when no rated item has
// similarity data. Under UnknownItemFail an unknown item yields an
// *UnknownItemError.
func (s *Scorer) Score(ratings []Rating) ([]ScoredItem, error) {
	if len(ratings) == 0 {
		return nil, ErrNoRatings
	}

	n := s.model.Len()
	scores := make([]float64, n)
	rated := make(map[string]struct{}, len(ratings))
	contributed := 0

	for _, r := range ratings {
		rated[r.Item] = struct{}{}

		i, ok := s.model.Index(r.Item)
		if !ok {
			metrics.RecordUnknownItem(string(s.policy))
			if s.policy == UnknownItemFail {
				return nil, &UnknownItemError{Item: r.Item}
			}
			s.logger.Warn().
				Str("item", r.Item).
				Int("rating", r.Value).
				Msg("rated item has no similarity data, skipping")
			continue
		}

		weight := float64(r.Value) - s.neutral
		for j := 0; j < n; j++ {
			scores[j] += s.model.at(i, j) * weight
		}
		contributed++
	}

	if contributed == 0 {
		return nil, fmt.Errorf("%w: none of %d rated items is known", ErrNoRatings, len(ratings))
	}

	candidates := make([]ScoredItem, 0, n)
	for j, item := range s.model.items {
		if _, ok := rated[item]; ok {
			continue
		}
		candidates = append(candidates, ScoredItem{Item: item, Score: scores[j]})
	}

	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].Score > candidates[b].Score
	})

	return candidates, nil
}

// Recommend returns up to k items ordered from most to least recommended.
// Fewer than k items are returned only when fewer unrated candidates exist.
func (s *Scorer) Recommend(ratings []Rating, k int) ([]string, error) {
	start := time.Now()

	items, err := s.recommend(ratings, k)
	metrics.RecordRecommendation(time.Since(start), err)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().
		Int("ratings", len(ratings)).
		Int("k", k).
		Int("returned", len(items)).
		Msg("recommendation complete")

	return items, nil
}

func (s *Scorer) recommend(ratings []Rating, k int) ([]string, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidK, k)
	}

	scored, err := s.Score(ratings)
	if err != nil {
		return nil, err
	}

	if len(scored) > k {
		scored = scored[:k]
	}

	items := make([]string, len(scored))
	for i, c := range scored {
		items[i] = c.Item
	}
	return items, nil
}
