// Cinematch - Item-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Cinematch is an interactive movie recommender for the terminal.

It loads a MovieLens ratings dataset, builds an item-to-item Pearson
similarity model, asks the user to rate a few movies they know and prints
the movies most similar to the ones they liked.

Usage:

	cinematch                normal run with the configured sizes
	cinematch INPUT OUTPUT   normal run, INPUT ratings in, OUTPUT movies out
	cinematch INPUT ?        find the best number of movies to recommend
	cinematch ? OUTPUT       find the best number of ratings to ask for

In the two search modes every tested list is shown and rated from 1 to 5.
Test subjects repeat until the operator declines, then the best size is
printed with a chart of the mean ratings.

Configuration comes from cinematch.yaml (or CONFIG_PATH) and environment
variables; see package config. Logs go to stderr so they do not interleave
with the prompts on stdout.

Exit status is 1 for configuration and dataset errors and 0 otherwise,
including sessions that end because input ran out or was interrupted.
*/
package main
