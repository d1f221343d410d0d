// Cinematch - Item-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"errors"
	"fmt"
)

var (
	// ErrNoRatings is returned when a request carries no usable rating.
	ErrNoRatings = errors.New("no ratings to score")

	// ErrInvalidK is returned when the requested list length is not positive.
	ErrInvalidK = errors.New("recommendation count must be positive")

	// ErrNoSubjects is returned when a tuning session ends before any
	// subject completed a full candidate sweep.
	ErrNoSubjects = errors.New("no subject completed the tuning sweep")

	// ErrNotEnoughItems is returned when the rater cannot be offered enough
	// distinct items.
	ErrNotEnoughItems = errors.New("not enough known items to elicit ratings")
)

// UnknownItemError reports a rated item that has no similarity data,
// typically because it fell below the observation threshold.
type UnknownItemError struct {
	Item string
}

// Error implements the error interface.
func (e *UnknownItemError) Error() string {
	return fmt.Sprintf("unknown item %q: no similarity data", e.Item)
}
