// Cinematch - Item-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package config

import (
	"github.com/tomtom215/cinematch/internal/validation"
)

// Validate checks field constraints declared in struct tags and then the
// cross-section rules. Failures are returned as *ConfigurationError.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c); err != nil {
		return configErr("invalid configuration", err)
	}

	// Derived settings go through the component's own checks too.
	if err := c.RecommendConfig().Validate(); err != nil {
		return configErr("invalid recommend settings", err)
	}

	return nil
}
