// Cinematch - Item-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinematch/internal/config"
	"github.com/tomtom215/cinematch/internal/console"
	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/ratings"
	"github.com/tomtom215/cinematch/internal/recommend"
)

// app holds the components wired for one run.
type app struct {
	cfg      *config.Config
	out      io.Writer
	prompter *console.Prompter
	scorer   *recommend.Scorer
	elicitor *recommend.Elicitor
	tuner    *recommend.Tuner
	logger   zerolog.Logger
}

// newApp loads the rating data, builds the similarity model and wires the
// interactive components around it.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func newApp(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer, logger zerolog.Logger) (*app, error) {
	store := ratings.NewStore(cfg.RatingsConfig(), logging.Logger())
	table, err := store.Load(ctx)
	if err != nil {
		return nil, err
	}

	model := recommend.BuildSimilarity(table)
	logger.Info().
		Int("items", model.Len()).
		Int("undefined_pairs", model.UndefinedPairs()).
		Msg("Similarity model built")

	rcfg := cfg.RecommendConfig()
	rng := rand.New(rand.NewSource(rcfg.Seed)) //nolint:gosec // sampling, not security

	prompter := console.NewPrompter(in, out)
	scorer := recommend.NewScorer(model, rcfg, logging.Logger())
	elicitor := recommend.NewElicitor(model, prompter, rng)

	return &app{
		cfg:      cfg,
		out:      out,
		prompter: prompter,
		scorer:   scorer,
		elicitor: elicitor,
		tuner:    recommend.NewTuner(scorer, elicitor, prompter, rng, rcfg, logging.Logger()),
		logger:   logger,
	}, nil
}

// recommend elicits ratings and presents the recommendations for them.
func (a *app) recommend(ctx context.Context) error {
	userRatings, err := a.elicitor.Elicit(ctx, a.cfg.Recommend.InputSize)
	if err != nil {
		return fmt.Errorf("collect ratings: %w", err)
	}

	items, err := a.scorer.Recommend(userRatings, a.cfg.Recommend.OutputSize)
	if err != nil {
		return fmt.Errorf("recommend: %w", err)
	}

	return a.prompter.Present(ctx, items)
}

// tune runs a tuning session for the parameter selected by mode, then
// prints the best value and a chart of the means.
func (a *app) tune(ctx context.Context, mode config.RunMode) error {
	var (
		result *recommend.TuningResult
		err    error
	)

	if mode == config.RunTuneInputSize {
		fmt.Fprintln(a.out, "Finding the optimal number of user selections that should be passed to the algorithm")
		result, err = a.tuner.TuneInputSize(ctx)
	} else {
		fmt.Fprintln(a.out, "Finding the optimal number of recommendations that the algorithm should give")
		result, err = a.tuner.TuneOutputSize(ctx)
	}
	if err != nil {
		return fmt.Errorf("tuning session: %w", err)
	}

	fmt.Fprintf(a.out, "The highest rated list length is: %d\n", result.Best)
	if err := console.RenderChart(a.out, result); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}

	if path := a.cfg.Tuning.ReportPath; path != "" {
		if err := recommend.WriteReport(path, result); err != nil {
			a.logger.Warn().Err(err).Str("path", path).Msg("Failed to write tuning report")
		} else {
			a.logger.Info().Str("path", path).Str("session_id", result.SessionID).Msg("Tuning report written")
		}
	}

	return nil
}
