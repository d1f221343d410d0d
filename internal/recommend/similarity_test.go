// Cinematch - Item-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"math"
	"reflect"
	"testing"
)

const tolerance = 1e-9

func TestBuildSimilarity_Scenario(t *testing.T) {
	t.Parallel()

	model := scenarioModel(t)

	if got := model.Len(); got != 4 {
		t.Fatalf("Len() = %d, want 4", got)
	}
	if got, want := model.Items(), []string{"A", "B", "C", "D"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Items() = %v, want %v", got, want)
	}

	tests := []struct {
		a, b string
		want float64
	}{
		{"A", "D", 1},
		{"A", "C", 0},
		{"A", "A", 1},
	}
	for _, tt := range tests {
		got, ok := model.Similarity(tt.a, tt.b)
		if !ok {
			t.Fatalf("Similarity(%s, %s) not found", tt.a, tt.b)
		}
		if math.Abs(got-tt.want) > tolerance {
			t.Errorf("Similarity(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}

	if ab, _ := model.Similarity("A", "B"); ab >= 0 {
		t.Errorf("Similarity(A, B) = %v, want negative", ab)
	}
}

func TestBuildSimilarity_SymmetricWithUnitDiagonal(t *testing.T) {
	t.Parallel()

	model := BuildSimilarity(columns(t, map[string][]float64{
		"Alien":  {4.5, 0, 3, 5, 1, 0, 2.5},
		"Brazil": {0, 4, 3.5, 0, 2, 5, 1},
		"Casino": {3, 3, 0, 4, 0.5, 2, 0},
		"Dune":   {1, 0, 0, 2, 5, 4, 4},
		"Evita":  {0, 0.5, 5, 3, 3, 0, 2},
	}))

	items := model.Items()
	for _, a := range items {
		if v, _ := model.Similarity(a, a); v != 1 {
			t.Errorf("Similarity(%s, %s) = %v, want exactly 1", a, a, v)
		}
		for _, b := range items {
			ab, _ := model.Similarity(a, b)
			ba, _ := model.Similarity(b, a)
			if ab != ba {
				t.Errorf("Similarity(%s, %s) = %v but Similarity(%s, %s) = %v", a, b, ab, b, a, ba)
			}
			if ab < -1 || ab > 1 {
				t.Errorf("Similarity(%s, %s) = %v, outside [-1, 1]", a, b, ab)
			}
		}
	}
}

func TestBuildSimilarity_ZeroVariance(t *testing.T) {
	t.Parallel()

	// Everybody rated E identically, so its column has zero variance.
	model := BuildSimilarity(columns(t, map[string][]float64{
		"A": {5, 1, 3},
		"E": {4, 4, 4},
	}))

	got, ok := model.Similarity("A", "E")
	if !ok {
		t.Fatal("Similarity(A, E) not found")
	}
	if math.IsNaN(got) || got != 0 {
		t.Errorf("Similarity(A, E) = %v, want 0", got)
	}
	if diag, _ := model.Similarity("E", "E"); diag != 1 {
		t.Errorf("Similarity(E, E) = %v, want 1", diag)
	}
	if got := model.UndefinedPairs(); got != 1 {
		t.Errorf("UndefinedPairs() = %d, want 1", got)
	}
}

func TestSimilarityModel_Row(t *testing.T) {
	t.Parallel()

	model := scenarioModel(t)

	row, ok := model.Row("A")
	if !ok {
		t.Fatal("Row(A) not found")
	}
	if len(row) != 4 {
		t.Errorf("len(Row(A)) = %d, want 4", len(row))
	}
	if math.Abs(row["D"]-1) > tolerance {
		t.Errorf("Row(A)[D] = %v, want 1", row["D"])
	}

	if _, ok := model.Row("Z"); ok {
		t.Error("Row(Z) found, want missing")
	}
	if _, ok := model.Similarity("A", "Z"); ok {
		t.Error("Similarity(A, Z) found, want missing")
	}
	if model.Contains("Z") {
		t.Error("Contains(Z) = true, want false")
	}
}
