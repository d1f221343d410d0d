// Cinematch - Item-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"fmt"
)

// UnknownItemPolicy decides how the scorer treats rated items that have no
// similarity data.
type UnknownItemPolicy string

const (
	// UnknownItemSkip ignores the item; it contributes nothing to the scores.
	UnknownItemSkip UnknownItemPolicy = "skip"
	// UnknownItemFail rejects the request with an *UnknownItemError.
	UnknownItemFail UnknownItemPolicy = "fail"
)

// Config contains all configuration for scoring and tuning.
type Config struct {
	// InputSize is the number of ratings elicited for a normal run and for
	// output-size tuning.
	// Default: 5.
	InputSize int `json:"input_size"`

	// OutputSize is the number of recommendations returned by a normal run
	// and used during input-size tuning.
	// Default: 4.
	OutputSize int `json:"output_size"`

	// NeutralRating is subtracted from every rating before weighting, so
	// ratings below it contribute negatively.
	// Default: 2.5.
	NeutralRating float64 `json:"neutral_rating"`

	// UnknownItems selects the unknown-item policy.
	// Default: skip.
	UnknownItems UnknownItemPolicy `json:"unknown_items"`

	// MaxInputSize is the largest input length tried when tuning input size.
	// Candidate lengths are 1..MaxInputSize.
	// Default: 5.
	MaxInputSize int `json:"max_input_size"`

	// MaxOutputSize is the largest list length tried when tuning output size.
	// Candidate lengths are 1..MaxOutputSize.
	// Default: 10.
	MaxOutputSize int `json:"max_output_size"`

	// Seed is the random seed for item sampling and subset draws.
	// If zero, a fixed default seed is used.
	Seed int64 `json:"seed"`
}

// DefaultConfig returns a Config with the standard defaults.
func DefaultConfig() *Config {
	return &Config{
		InputSize:     5,
		OutputSize:    4,
		NeutralRating: 2.5,
		UnknownItems:  UnknownItemSkip,
		MaxInputSize:  5,
		MaxOutputSize: 10,
		Seed:          42, // Default seed for determinism
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.InputSize < 1 {
		return fmt.Errorf("input_size must be positive, got %d", c.InputSize)
	}
	if c.OutputSize < 1 {
		return fmt.Errorf("output_size must be positive, got %d", c.OutputSize)
	}
	if c.NeutralRating < 1 || c.NeutralRating > 5 {
		return fmt.Errorf("neutral_rating must be in [1, 5], got %f", c.NeutralRating)
	}
	switch c.UnknownItems {
	case UnknownItemSkip, UnknownItemFail:
	default:
		return fmt.Errorf("unknown_items must be %q or %q, got %q", UnknownItemSkip, UnknownItemFail, c.UnknownItems)
	}
	if c.MaxInputSize < 1 {
		return fmt.Errorf("max_input_size must be positive, got %d", c.MaxInputSize)
	}
	if c.MaxOutputSize < 1 {
		return fmt.Errorf("max_output_size must be positive, got %d", c.MaxOutputSize)
	}
	return nil
}
