// Cinematch - Item-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package recommend implements item-based collaborative filtering for movies.
//
// # Architecture
//
// The package is built around one immutable SimilarityModel:
//
//   - SimilarityModel: Pearson correlation of every pair of item columns
//   - Scorer: ranks unrated items for a small set of ratings
//   - Elicitor: collects ratings for randomly sampled items
//   - Tuner: interactive sessions that pick the input and output sizes
//
// # Scoring
//
// Every rating is centred on a neutral point (2.5 by default), so a rating
// of 1 pushes similar items down and a rating of 5 pushes them up:
//
//	score(c) = sum_{(i, r)} sim(i, c) * (r - 2.5)
//
// Rated items are removed from the ranking. Equal scores keep the model's
// column order.
//
// # Unknown Items
//
// A rated item may be missing from the model, usually because it has too
// few observations. UnknownItemSkip ignores it and logs a warning;
// UnknownItemFail rejects the request with an *UnknownItemError.
//
// # Usage
//
//	model := recommend.BuildSimilarity(table)
//	scorer := recommend.NewScorer(model, cfg, logger)
//
//	recs, err := scorer.Recommend([]recommend.Rating{
//	    {Item: "Heat (1995)", Value: 5},
//	}, 4)
//
// # Thread Safety
//
// SimilarityModel and Scorer are read-only after construction. Elicitor
// and Tuner share a *rand.Rand and an Interactor and are meant to be driven
// by a single goroutine.
package recommend
