// Cinematch - Item-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/tomtom215/cinematch/internal/ratings"
)

// scriptedUI is an Interactor that replays canned answers.
// It returns io.EOF once a queue runs dry.
type scriptedUI struct {
	yesNo   []bool
	ratings []int

	prompts   []string
	presented [][]string
}

func (s *scriptedUI) AskRating(_ context.Context, prompt string) (int, error) {
	s.prompts = append(s.prompts, prompt)
	if len(s.ratings) == 0 {
		return 0, fmt.Errorf("rating for %q: %w", prompt, io.EOF)
	}
	v := s.ratings[0]
	s.ratings = s.ratings[1:]
	return v, nil
}

func (s *scriptedUI) AskYesNo(_ context.Context, prompt string) (bool, error) {
	s.prompts = append(s.prompts, prompt)
	if len(s.yesNo) == 0 {
		return false, fmt.Errorf("answer for %q: %w", prompt, io.EOF)
	}
	v := s.yesNo[0]
	s.yesNo = s.yesNo[1:]
	return v, nil
}

func (s *scriptedUI) Present(_ context.Context, items []string) error {
	list := make([]string, len(items))
	copy(list, items)
	s.presented = append(s.presented, list)
	return nil
}

func repeatBool(v bool, n int) []bool {
	out := make([]bool, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func repeatInt(v, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// columns builds a table from per-item rating columns over users 1..n.
// A zero cell means the user did not rate the item.
func columns(t *testing.T, cols map[string][]float64) *ratings.Table {
	t.Helper()

	var observations []ratings.Observation
	for item, col := range cols {
		for u, v := range col {
			if v == 0 {
				continue
			}
			observations = append(observations, ratings.Observation{
				UserID: u + 1,
				Item:   item,
				Rating: v,
			})
		}
	}

	table, err := ratings.NewTable(observations, 1)
	if err != nil {
		t.Fatalf("NewTable() error = %v", err)
	}
	return table
}

// scenarioModel is 3 users x 4 items where D has the same ratings as A.
//
//	A: 5 1 3   (D identical)
//	B: 1 5 2   (negatively correlated with A)
//	C: 2 2 5   (uncorrelated with A)
func scenarioModel(t *testing.T) *SimilarityModel {
	t.Helper()
	return BuildSimilarity(columns(t, map[string][]float64{
		"A": {5, 1, 3},
		"B": {1, 5, 2},
		"C": {2, 2, 5},
		"D": {5, 1, 3},
	}))
}
