// Cinematch - Item-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tomtom215/cinematch/internal/metrics"
)

const (
	listRatingPrompt = "Please rate the list of movies from 1-5"
	continuePrompt   = "Do you want to test another person?"
)

// TuningRun accumulates quality scores per candidate value over the
// subjects of one tuning session.
//
// Scores are committed one full sweep at a time, so every mean covers
// exactly the subjects who scored every candidate.
type TuningRun struct {
	parameter  Parameter
	candidates []int
	totals     []float64
	subjects   int
	startedAt  time.Time
}

// NewTuningRun creates an empty run over candidates, in enumeration order.
func NewTuningRun(parameter Parameter, candidates []int) *TuningRun {
	c := make([]int, len(candidates))
	copy(c, candidates)
	return &TuningRun{
		parameter:  parameter,
		candidates: c,
		totals:     make([]float64, len(c)),
		startedAt:  time.Now(),
	}
}

// Commit adds one subject's full sweep. scores[i] is the score given to
// candidates[i].
func (r *TuningRun) Commit(scores []int) error {
	if len(scores) != len(r.candidates) {
		return fmt.Errorf("sweep has %d scores, want %d", len(scores), len(r.candidates))
	}
	for i, s := range scores {
		r.totals[i] += float64(s)
	}
	r.subjects++
	return nil
}

// Subjects returns the number of committed sweeps.
func (r *TuningRun) Subjects() int {
	return r.subjects
}

// Result computes per-candidate means and the best candidate.
// It returns ErrNoSubjects if nothing was committed.
func (r *TuningRun) Result(sessionID string) (*TuningResult, error) {
	if r.subjects == 0 || len(r.candidates) == 0 {
		return nil, ErrNoSubjects
	}

	result := &TuningResult{
		SessionID:   sessionID,
		Parameter:   r.parameter,
		Subjects:    r.subjects,
		Means:       make([]CandidateMean, len(r.candidates)),
		StartedAt:   r.startedAt,
		CompletedAt: time.Now(),
	}

	bestMean := 0.0
	for i, value := range r.candidates {
		mean := r.totals[i] / float64(r.subjects)
		result.Means[i] = CandidateMean{Value: value, Mean: mean}
		if i == 0 || mean > bestMean {
			bestMean = mean
			result.Best = value
		}
	}

	return result, nil
}

// Tuner runs interactive sessions that search for the input and output
// sizes raters are most satisfied with.
type Tuner struct {
	scorer   *Scorer
	elicitor *Elicitor
	ui       Interactor
	rng      *rand.Rand
	cfg      *Config
	logger   zerolog.Logger
}

// NewTuner creates a tuner.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewTuner(scorer *Scorer, elicitor *Elicitor, ui Interactor, rng *rand.Rand, cfg *Config, logger zerolog.Logger) *Tuner {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Tuner{
		scorer:   scorer,
		elicitor: elicitor,
		ui:       ui,
		rng:      rng,
		cfg:      cfg,
		logger:   logger.With().Str("component", "tuner").Logger(),
	}
}

// TuneInputSize searches for the best number of ratings to elicit.
//
// Each subject rates a pool of MaxInputSize items. For every length
// 1..MaxInputSize a random subset of that length is drawn from the pool
// and scored with OutputSize recommendations. Subsets are drawn
// independently, not as nested prefixes, so two lengths may share no
// items; the comparison across lengths is exploratory.
func (t *Tuner) TuneInputSize(ctx context.Context) (*TuningResult, error) {
	candidates := sequence(t.cfg.MaxInputSize)

	return t.runSession(ctx, ParameterInputSize, candidates, func(ctx context.Context) ([]int, error) {
		pool, err := t.elicitor.Elicit(ctx, t.cfg.MaxInputSize)
		if err != nil {
			return nil, err
		}

		scores := make([]int, 0, len(candidates))
		for _, length := range candidates {
			score, err := t.trial(ctx, t.sample(pool, length), t.cfg.OutputSize)
			if err != nil {
				return nil, err
			}
			metrics.RecordTuningScore(string(ParameterInputSize), length, score)
			scores = append(scores, score)
		}
		return scores, nil
	})
}

// TuneOutputSize searches for the best number of recommendations to show.
//
// Each subject rates InputSize items once; the same ratings are then
// scored for every list length 1..MaxOutputSize.
func (t *Tuner) TuneOutputSize(ctx context.Context) (*TuningResult, error) {
	candidates := sequence(t.cfg.MaxOutputSize)

	return t.runSession(ctx, ParameterOutputSize, candidates, func(ctx context.Context) ([]int, error) {
		ratings, err := t.elicitor.Elicit(ctx, t.cfg.InputSize)
		if err != nil {
			return nil, err
		}

		scores := make([]int, 0, len(candidates))
		for _, length := range candidates {
			score, err := t.trial(ctx, ratings, length)
			if err != nil {
				return nil, err
			}
			metrics.RecordTuningScore(string(ParameterOutputSize), length, score)
			scores = append(scores, score)
		}
		return scores, nil
	})
}

// runSession repeats sweep once per subject until the rater declines to
// test another subject. A sweep that fails is discarded and ends the
// session with the subjects completed so far.
func (t *Tuner) runSession(ctx context.Context, parameter Parameter, candidates []int, sweep func(context.Context) ([]int, error)) (*TuningResult, error) {
	sessionID := uuid.New().String()
	logger := t.logger.With().
		Str("session_id", sessionID).
		Str("parameter", string(parameter)).
		Logger()

	logger.Info().Ints("candidates", candidates).Msg("tuning session started")

	run := NewTuningRun(parameter, candidates)
	var stopErr error

	for {
		scores, err := sweep(ctx)
		if err != nil {
			metrics.RecordTuningSubject(string(parameter), false)
			logger.Warn().Err(err).
				Int("subject", run.Subjects()+1).
				Msg("subject sweep interrupted, discarding partial scores")
			stopErr = err
			break
		}

		if err := run.Commit(scores); err != nil {
			return nil, err
		}
		metrics.RecordTuningSubject(string(parameter), true)
		logger.Debug().Int("subject", run.Subjects()).Ints("scores", scores).Msg("subject completed")

		again, err := t.ui.AskYesNo(ctx, continuePrompt)
		if err != nil {
			logger.Warn().Err(err).Msg("no answer to continue prompt, ending session")
			break
		}
		if !again {
			break
		}
	}

	result, err := run.Result(sessionID)
	if err != nil {
		if stopErr != nil {
			return nil, fmt.Errorf("%w: %w", err, stopErr)
		}
		return nil, err
	}

	logger.Info().
		Int("subjects", result.Subjects).
		Int("best", result.Best).
		Msg("tuning session complete")

	return result, nil
}

// trial presents the recommendations for ratings and asks for a score.
func (t *Tuner) trial(ctx context.Context, ratings []Rating, k int) (int, error) {
	items, err := t.scorer.Recommend(ratings, k)
	if err != nil {
		return 0, err
	}
	if err := t.ui.Present(ctx, items); err != nil {
		return 0, fmt.Errorf("present recommendations: %w", err)
	}
	score, err := t.ui.AskRating(ctx, listRatingPrompt)
	if err != nil {
		return 0, fmt.Errorf("ask list rating: %w", err)
	}
	return score, nil
}

// sample draws length distinct ratings from pool.
func (t *Tuner) sample(pool []Rating, length int) []Rating {
	if length > len(pool) {
		length = len(pool)
	}
	perm := t.rng.Perm(len(pool))
	subset := make([]Rating, length)
	for i := 0; i < length; i++ {
		subset[i] = pool[perm[i]]
	}
	return subset
}

// sequence returns 1..n.
func sequence(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}
