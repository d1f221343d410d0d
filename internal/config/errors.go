// Cinematch - Item-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package config

import (
	"fmt"
)

// ConfigurationError reports unusable configuration: a malformed command
// line, an unreadable config file or a value that fails validation.
// It is fatal; the CLI exits with status 1.
type ConfigurationError struct {
	Context string
	Err     error
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	if e.Context == "" {
		return fmt.Sprintf("configuration error: %v", e.Err)
	}
	return fmt.Sprintf("configuration error: %s: %v", e.Context, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

func configErr(context string, err error) error {
	return &ConfigurationError{Context: context, Err: err}
}
