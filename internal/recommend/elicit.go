// Cinematch - Item-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"context"
	"fmt"
	"math/rand"
)

// Elicitor collects ratings from a rater for randomly sampled items.
type Elicitor struct {
	model *SimilarityModel
	ui    Interactor
	rng   *rand.Rand
}

// NewElicitor creates an elicitor that samples from model with rng.
func NewElicitor(model *SimilarityModel, ui Interactor, rng *rand.Rand) *Elicitor {
	return &Elicitor{
		model: model,
		ui:    ui,
		rng:   rng,
	}
}

// Elicit offers random items until the rater knows n of them, then asks
// for a rating of each known item.
//
// Each item is offered at most once. If the rater declines so many items
// that fewer than n remain, Elicit returns ErrNotEnoughItems.
func (e *Elicitor) Elicit(ctx context.Context, n int) ([]Rating, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: asked for %d items", ErrNotEnoughItems, n)
	}
	if n > e.model.Len() {
		return nil, fmt.Errorf("%w: asked for %d items, model has %d", ErrNotEnoughItems, n, e.model.Len())
	}

	order := e.rng.Perm(e.model.Len())
	selected := make([]string, 0, n)

	for offered, idx := range order {
		if len(selected) == n {
			break
		}
		if remaining := len(order) - offered; remaining < n-len(selected) {
			break
		}

		if err := ctx.Err(); err != nil {
			return nil, err
		}

		item := e.model.items[idx]
		known, err := e.ui.AskYesNo(ctx, fmt.Sprintf("Do you know the movie %q?", item))
		if err != nil {
			return nil, fmt.Errorf("ask whether %q is known: %w", item, err)
		}
		if known {
			selected = append(selected, item)
		}
	}

	if len(selected) < n {
		return nil, fmt.Errorf("%w: rater knows %d of %d requested", ErrNotEnoughItems, len(selected), n)
	}

	ratings := make([]Rating, 0, n)
	for _, item := range selected {
		value, err := e.ui.AskRating(ctx, fmt.Sprintf("Please rate the movie %q from 1-5", item))
		if err != nil {
			return nil, fmt.Errorf("ask rating for %q: %w", item, err)
		}
		ratings = append(ratings, Rating{Item: item, Value: value})
	}

	return ratings, nil
}
