// Cinematch - Item-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package config provides configuration management for Cinematch.

Configuration is layered with koanf: built-in defaults, then an optional
YAML file, then environment variables. The two positional command-line
arguments are parsed separately by ParseArgs and applied last.

# Configuration File

The file is read from CONFIG_PATH if set, otherwise from cinematch.yaml or
cinematch.yml in the working directory when present:

	data:
	  ratings_path: dataset/ratings.csv
	  movies_path: dataset/movies.csv
	model:
	  min_ratings_per_item: 10
	recommend:
	  input_size: 5
	  output_size: 4
	  neutral_rating: 2.5
	  unknown_items: skip
	  seed: 42
	tuning:
	  max_input_size: 5
	  max_output_size: 10
	  report_path: ""
	metrics:
	  textfile_path: ""
	logging:
	  level: warn
	  format: console
	  caller: false

# Environment Variables

Only mapped names are read; anything else in the environment is ignored:

  - DATA_RATINGS_PATH, DATA_MOVIES_PATH
  - MIN_RATINGS_PER_ITEM
  - INPUT_SIZE, OUTPUT_SIZE, NEUTRAL_RATING, UNKNOWN_ITEM_POLICY, RANDOM_SEED
  - MAX_INPUT_SIZE, MAX_OUTPUT_SIZE, TUNING_REPORT_PATH
  - METRICS_TEXTFILE_PATH
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

# Command Line

	cinematch            normal run with configured sizes
	cinematch 3 6        normal run, 3 ratings in, 6 recommendations out
	cinematch 3 ?        tune the output size with 3 ratings in
	cinematch ? 6        tune the input size with 6 recommendations out

# Validation

Struct tags are checked with go-playground/validator through the
validation package. Every loading or parsing failure is a
*ConfigurationError.
*/
package config
