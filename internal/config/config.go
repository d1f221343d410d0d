// Cinematch - Item-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package config

import (
	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/ratings"
	"github.com/tomtom215/cinematch/internal/recommend"
)

// Config holds all application configuration.
//
// Loading Priority:
//  1. Built-in defaults
//  2. Config file (cinematch.yaml if it exists, or the path in CONFIG_PATH)
//  3. Environment variables
//  4. Positional command-line arguments (input and output size only)
//
// Thread Safety:
// Config is immutable after Load() and safe for concurrent read access.
type Config struct {
	Data      DataConfig      `koanf:"data"`
	Model     ModelConfig     `koanf:"model"`
	Recommend RecommendConfig `koanf:"recommend"`
	Tuning    TuningConfig    `koanf:"tuning"`
	Metrics   MetricsConfig   `koanf:"metrics"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// DataConfig locates the MovieLens-style CSV inputs.
//
// Environment Variables:
//   - DATA_RATINGS_PATH: ratings.csv with userId,movieId,rating[,timestamp] (default: dataset/ratings.csv)
//   - DATA_MOVIES_PATH: movies.csv with movieId,title[,genres] (default: dataset/movies.csv)
type DataConfig struct {
	RatingsPath string `koanf:"ratings_path" validate:"required"`
	MoviesPath  string `koanf:"movies_path" validate:"required"`
}

// ModelConfig controls how the rating table is built.
//
// Environment Variables:
//   - MIN_RATINGS_PER_ITEM: drop movies with fewer ratings (default: 10)
type ModelConfig struct {
	// MinRatingsPerItem is the minimum number of distinct users who rated a
	// movie for it to take part in similarity.
	// Default: 10
	MinRatingsPerItem int `koanf:"min_ratings_per_item" validate:"gte=1"`
}

// RecommendConfig holds the scoring parameters of a normal run.
//
// Environment Variables:
//   - INPUT_SIZE: ratings elicited per rater (default: 5)
//   - OUTPUT_SIZE: recommendations shown (default: 4)
//   - NEUTRAL_RATING: rating that contributes nothing (default: 2.5)
//   - UNKNOWN_ITEM_POLICY: skip or fail (default: skip)
//   - RANDOM_SEED: seed for item sampling (default: 42)
type RecommendConfig struct {
	InputSize     int     `koanf:"input_size" validate:"gte=1"`
	OutputSize    int     `koanf:"output_size" validate:"gte=1"`
	NeutralRating float64 `koanf:"neutral_rating" validate:"gte=1,lte=5"`
	UnknownItems  string  `koanf:"unknown_items" validate:"oneof=skip fail"`
	Seed          int64   `koanf:"seed"`
}

// TuningConfig holds the candidate ranges of the tuning modes.
//
// Environment Variables:
//   - MAX_INPUT_SIZE: input lengths tried are 1..N (default: 5)
//   - MAX_OUTPUT_SIZE: list lengths tried are 1..N (default: 10)
//   - TUNING_REPORT_PATH: write the tuning result as JSON here (default: disabled)
type TuningConfig struct {
	MaxInputSize  int    `koanf:"max_input_size" validate:"gte=1"`
	MaxOutputSize int    `koanf:"max_output_size" validate:"gte=1"`
	ReportPath    string `koanf:"report_path"`
}

// MetricsConfig controls the metrics snapshot written on exit.
//
// Environment Variables:
//   - METRICS_TEXTFILE_PATH: node_exporter textfile target (default: disabled)
type MetricsConfig struct {
	TextfilePath string `koanf:"textfile_path"`
}

// LoggingConfig holds logging settings for zerolog.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: warn)
//   - LOG_FORMAT: json, console (default: console)
//   - LOG_CALLER: true/false - include caller file:line (default: false)
type LoggingConfig struct {
	// Level is the minimum log level.
	// Default: warn, so the interactive session is not drowned in logs.
	Level string `koanf:"level" validate:"oneof=trace debug info warn error"`

	// Format is the output format: json or console.
	// Default: console
	Format string `koanf:"format" validate:"oneof=json console"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// RatingsConfig returns the rating store settings.
func (c *Config) RatingsConfig() ratings.Config {
	return ratings.Config{
		RatingsPath:       c.Data.RatingsPath,
		MoviesPath:        c.Data.MoviesPath,
		MinRatingsPerItem: c.Model.MinRatingsPerItem,
	}
}

// RecommendConfig returns the scorer and tuner settings.
func (c *Config) RecommendConfig() *recommend.Config {
	return &recommend.Config{
		InputSize:     c.Recommend.InputSize,
		OutputSize:    c.Recommend.OutputSize,
		NeutralRating: c.Recommend.NeutralRating,
		UnknownItems:  recommend.UnknownItemPolicy(c.Recommend.UnknownItems),
		MaxInputSize:  c.Tuning.MaxInputSize,
		MaxOutputSize: c.Tuning.MaxOutputSize,
		Seed:          c.Recommend.Seed,
	}
}

// LoggingConfig returns the logger settings. Output is left to the
// logging package default (stderr).
func (c *Config) LoggingConfig() logging.Config {
	return logging.Config{
		Level:     c.Logging.Level,
		Format:    c.Logging.Format,
		Caller:    c.Logging.Caller,
		Timestamp: true,
	}
}

// Load reads configuration from all sources in priority order:
//  1. Built-in defaults
//  2. Config file (cinematch.yaml if exists, or path specified in CONFIG_PATH env var)
//  3. Environment variables
//
// See LoadWithKoanf() for the underlying implementation.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
