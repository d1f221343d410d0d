// Cinematch - Item-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package ratings

import (
	"errors"
	"fmt"
)

// ErrNoItems is returned when no item survives the observation threshold.
var ErrNoItems = errors.New("no items with enough observations")

// DataFormatError reports input data that cannot be joined or shaped into
// a rating table.
type DataFormatError struct {
	// Source names the offending input (a file path or "observations").
	Source string

	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *DataFormatError) Error() string {
	return fmt.Sprintf("data format error in %s: %v", e.Source, e.Err)
}

// Unwrap returns the underlying cause.
func (e *DataFormatError) Unwrap() error {
	return e.Err
}

func formatErr(source string, err error) error {
	return &DataFormatError{Source: source, Err: err}
}
