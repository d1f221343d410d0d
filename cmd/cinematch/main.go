// Cinematch - Item-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/cinematch/internal/config"
	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/metrics"
	"github.com/tomtom215/cinematch/internal/ratings"
)

const usage = "usage: cinematch [INPUT_SIZE OUTPUT_SIZE]  (each a whole number >= 1, or '?' for one of them)"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one invocation and returns the process exit status.
// Configuration and data errors exit 1; a session that ends early is
// reported but still exits 0.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	runArgs, err := config.ParseArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "cinematch: %v\n%s\n", err, usage)
		return 1
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "cinematch: %v\n", err)
		return 1
	}
	runArgs.Apply(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "cinematch: %v\n%s\n", err, usage)
		return 1
	}

	logCfg := cfg.LoggingConfig()
	logCfg.Output = stderr
	logging.Init(logCfg)
	logger := logging.WithComponent("cli")

	logger.Info().
		Str("mode", string(runArgs.Mode)).
		Int("input_size", cfg.Recommend.InputSize).
		Int("output_size", cfg.Recommend.OutputSize).
		Msg("Starting Cinematch")

	if path := cfg.Metrics.TextfilePath; path != "" {
		defer func() {
			if err := metrics.WriteTextfile(path); err != nil {
				logger.Warn().Err(err).Str("path", path).Msg("Failed to write metrics textfile")
			}
		}()
	}

	app, err := newApp(ctx, cfg, stdin, stdout, logger)
	if err != nil {
		return reportFailure(stderr, err)
	}

	switch runArgs.Mode {
	case config.RunTuneInputSize, config.RunTuneOutputSize:
		err = app.tune(ctx, runArgs.Mode)
	default:
		err = app.recommend(ctx)
	}
	if err != nil {
		return reportFailure(stderr, err)
	}

	logger.Info().Msg("Cinematch finished")
	return 0
}

// reportFailure prints err and maps it to an exit status.
func reportFailure(stderr io.Writer, err error) int {
	var cfgErr *config.ConfigurationError
	var dataErr *ratings.DataFormatError

	switch {
	case errors.As(err, &cfgErr), errors.As(err, &dataErr):
		logging.Error().Err(err).Msg("Cinematch cannot start")
		fmt.Fprintf(stderr, "cinematch: %v\n", err)
		return 1
	case errors.Is(err, context.Canceled):
		fmt.Fprintln(stderr, "cinematch: interrupted")
		return 0
	default:
		logging.Warn().Err(err).Msg("Session ended early")
		fmt.Fprintf(stderr, "cinematch: %v\n", err)
		return 0
	}
}
