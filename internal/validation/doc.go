// Cinematch - Item-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package validation provides struct validation using go-playground/validator v10.
//
// It wraps the library in a thread-safe singleton and translates field
// failures into short messages keyed by configuration path.
//
// # Field Names
//
// Fields are reported by their koanf tag, so a failure on
//
//	type Config struct {
//	    Recommend RecommendConfig `koanf:"recommend"`
//	}
//
//	type RecommendConfig struct {
//	    InputSize int `koanf:"input_size" validate:"gte=1"`
//	}
//
// reads "recommend.input_size must be greater than or equal to 1", which
// matches the key a user writes in the YAML file.
//
// # Error Types
//
// ValidateStruct returns a *StructError holding one FieldError per failed
// field. Both implement error; inspect them with errors.As:
//
//	var se *validation.StructError
//	if errors.As(err, &se) {
//	    for _, fe := range se.Errors() {
//	        fmt.Println(fe.Path(), fe.Tag(), fe.Param())
//	    }
//	}
//
// # Thread Safety
//
// The singleton validator is initialized once and safe for concurrent use.
package validation
