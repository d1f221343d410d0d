// Cinematch - Item-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package console is the terminal side of the recommender: a Prompter that
// implements recommend.Interactor over a reader/writer pair, and a bar
// chart for tuning results.
//
// Output is styled with lipgloss. Styles are created per writer, so output
// to a pipe or file is plain text.
//
// Invalid answers are reported as an *InvalidUserInputError and the
// question is asked again. When the input is exhausted the prompter
// returns an error wrapping io.EOF.
package console
