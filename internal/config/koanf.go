// Cinematch - Item-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/tomtom215/cinematch/internal/ratings"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"cinematch.yaml",
	"cinematch.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config struct with all default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Data: DataConfig{
			RatingsPath: "dataset/ratings.csv",
			MoviesPath:  "dataset/movies.csv",
		},
		Model: ModelConfig{
			MinRatingsPerItem: ratings.DefaultMinRatingsPerItem,
		},
		Recommend: RecommendConfig{
			InputSize:     5,
			OutputSize:    4,
			NeutralRating: 2.5,
			UnknownItems:  "skip",
			Seed:          42,
		},
		Tuning: TuningConfig{
			MaxInputSize:  5,
			MaxOutputSize: 10,
			ReportPath:    "", // disabled
		},
		Metrics: MetricsConfig{
			TextfilePath: "", // disabled
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
			Caller: false,
		},
	}
}

// LoadWithKoanf loads configuration using Koanf with layered sources:
//  1. Defaults: Built-in defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. Environment Variables: Override any setting
//
// Any failure is returned as a *ConfigurationError.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, configErr("failed to load defaults", err)
	}

	// Layer 2: Load config file (optional)
	configPath, err := findConfigFile()
	if err != nil {
		return nil, configErr("config file", err)
	}
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, configErr(fmt.Sprintf("failed to load config file %s", configPath), err)
		}
	}

	// Layer 3: Load environment variables (highest priority)
	// Transform environment variable names to koanf paths:
	// INPUT_SIZE -> recommend.input_size
	// DATA_RATINGS_PATH -> data.ratings_path
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, configErr("failed to load environment variables", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, configErr("failed to unmarshal configuration", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// findConfigFile returns the config file to load, or "" if there is none.
// A CONFIG_PATH that does not exist is an error; the default paths are optional.
func findConfigFile() (string, error) {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err != nil {
			return "", fmt.Errorf("%s=%s: %w", ConfigPathEnvVar, envPath, err)
		}
		return envPath, nil
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", nil
}

// envMappings maps environment variable names (lowercased) to config paths.
var envMappings = map[string]string{
	// Data
	"data_ratings_path": "data.ratings_path",
	"data_movies_path":  "data.movies_path",

	// Model
	"min_ratings_per_item": "model.min_ratings_per_item",

	// Recommend
	"input_size":          "recommend.input_size",
	"output_size":         "recommend.output_size",
	"neutral_rating":      "recommend.neutral_rating",
	"unknown_item_policy": "recommend.unknown_items",
	"random_seed":         "recommend.seed",

	// Tuning
	"max_input_size":     "tuning.max_input_size",
	"max_output_size":    "tuning.max_output_size",
	"tuning_report_path": "tuning.report_path",

	// Metrics
	"metrics_textfile_path": "metrics.textfile_path",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - DATA_RATINGS_PATH -> data.ratings_path
//   - UNKNOWN_ITEM_POLICY -> recommend.unknown_items
//   - LOG_LEVEL -> logging.level
func envTransformFunc(key string) string {
	if mapped, ok := envMappings[strings.ToLower(key)]; ok {
		return mapped
	}

	// For unmapped keys, return empty string to skip them
	// This prevents random environment variables from polluting config
	return ""
}
