// Cinematch - Item-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package logging provides centralized zerolog-based logging for Cinematch.
//
// A global logger is configured once from the logging section of the
// configuration. Components take a zerolog.Logger and tag it with their
// own component field:
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "console",
//	})
//
//	store := ratings.NewStore(cfg, logging.Logger())
//	logger := logging.WithComponent("cli")
//
// # Configuration
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: warn)
//   - LOG_FORMAT: json, console (default: console)
//   - LOG_CALLER: true/false - include caller info (default: false)
//
// Logs go to stderr so they never interleave with prompts on stdout.
//
// # Best Practices
//
// Always terminate log chains with .Msg() or .Send():
//
//	logging.Warn().Str("key", "value").Msg("message")  // Correct
//	logging.Warn().Str("key", "value")                 // WRONG - log not emitted
//
// Use structured fields instead of string formatting:
//
//	logger.Info().Int("items", n).Msg("similarity model built")  // Correct
//	logger.Info().Msgf("built model with %d items", n)          // Avoid
package logging
