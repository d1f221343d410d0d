// Cinematch - Item-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package config

import (
	"errors"
	"fmt"
	"strconv"
)

// searchMarker in a positional argument asks for that size to be tuned.
const searchMarker = "?"

// RunMode selects what the CLI does.
type RunMode string

const (
	// RunNormal elicits ratings and prints recommendations.
	RunNormal RunMode = "normal"
	// RunTuneInputSize searches for the best number of elicited ratings.
	RunTuneInputSize RunMode = "tune_input_size"
	// RunTuneOutputSize searches for the best recommendation list length.
	RunTuneOutputSize RunMode = "tune_output_size"
)

// RunArgs is the parsed command line. A zero size means "not given".
type RunArgs struct {
	Mode       RunMode
	InputSize  int
	OutputSize int
}

var (
	errArgCount    = errors.New("expected no arguments or exactly two: INPUT_SIZE OUTPUT_SIZE")
	errBothSearch  = errors.New("at most one of INPUT_SIZE and OUTPUT_SIZE can be '?'")
	errNotPositive = errors.New("must be a whole number of at least 1 or '?'")
)

// ParseArgs interprets the positional arguments (without the program name).
//
//	(none)  normal run with configured sizes
//	N M     normal run with input size N and output size M
//	N ?     tune output size, eliciting N ratings
//	? M     tune input size, recommending M movies
//
// Any other shape is a *ConfigurationError.
func ParseArgs(args []string) (RunArgs, error) {
	if len(args) == 0 {
		return RunArgs{Mode: RunNormal}, nil
	}
	if len(args) != 2 {
		return RunArgs{}, configErr(fmt.Sprintf("got %d arguments", len(args)), errArgCount)
	}

	in, out := args[0], args[1]
	if in == searchMarker && out == searchMarker {
		return RunArgs{}, configErr("arguments", errBothSearch)
	}

	var run RunArgs
	switch {
	case in == searchMarker:
		run.Mode = RunTuneInputSize
	case out == searchMarker:
		run.Mode = RunTuneOutputSize
	default:
		run.Mode = RunNormal
	}

	var err error
	if in != searchMarker {
		if run.InputSize, err = parseSize("INPUT_SIZE", in); err != nil {
			return RunArgs{}, err
		}
	}
	if out != searchMarker {
		if run.OutputSize, err = parseSize("OUTPUT_SIZE", out); err != nil {
			return RunArgs{}, err
		}
	}

	return run, nil
}

func parseSize(name, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		return 0, configErr(fmt.Sprintf("%s %q", name, value), errNotPositive)
	}
	return n, nil
}

// Apply overrides the configured sizes with the ones given on the command line.
func (r RunArgs) Apply(cfg *Config) {
	if r.InputSize > 0 {
		cfg.Recommend.InputSize = r.InputSize
	}
	if r.OutputSize > 0 {
		cfg.Recommend.OutputSize = r.OutputSize
	}
}
