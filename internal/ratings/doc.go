// Cinematch - Item-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package ratings loads raw rating observations and shapes them into the
// dense user-by-item table consumed by the similarity model.
//
// # Data Sources
//
// Two MovieLens-style CSV files are read through an in-memory DuckDB
// connection:
//
//   - ratings.csv: userId, movieId, rating, timestamp
//   - movies.csv: movieId, title, genres
//
// The files are joined on movieId. Timestamp and genres are discarded.
//
// # Table Shape
//
// The resulting Table has one row per user and one column per movie title,
// ordered lexicographically. Columns with fewer than the configured minimum
// number of observations are dropped, and every remaining gap is filled
// with 0. The zero fill is an approximation, not a missing-value model:
// downstream correlations treat "not rated" as a rating of 0.
//
// # Errors
//
// Any failure to read, join or shape the sources is reported as a
// *DataFormatError. These are fatal at startup.
package ratings
