// Cinematch - Item-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"context"
	"errors"
	"io"
	"math"
	"math/rand"
	"testing"
)

func newTestTuner(t *testing.T, ui Interactor, cfg *Config) *Tuner {
	t.Helper()
	model := scenarioModel(t)
	rng := rand.New(rand.NewSource(7))
	scorer := NewScorer(model, cfg, testLogger())
	return NewTuner(scorer, NewElicitor(model, ui, rng), ui, rng, cfg, testLogger())
}

func assertMeans(t *testing.T, result *TuningResult, want []float64) {
	t.Helper()
	if len(result.Means) != len(want) {
		t.Fatalf("len(Means) = %d, want %d", len(result.Means), len(want))
	}
	for i, w := range want {
		m := result.Means[i]
		if m.Value != i+1 {
			t.Errorf("Means[%d].Value = %d, want %d", i, m.Value, i+1)
		}
		if math.Abs(m.Mean-w) > 1e-9 {
			t.Errorf("Means[%d].Mean = %v, want %v", i, m.Mean, w)
		}
	}
}

func TestTuningRun_Result(t *testing.T) {
	t.Parallel()

	t.Run("two subjects", func(t *testing.T) {
		run := NewTuningRun(ParameterInputSize, sequence(5))
		for _, scores := range [][]int{{3, 4, 5, 5, 2}, {5, 1, 4, 4, 1}} {
			if err := run.Commit(scores); err != nil {
				t.Fatalf("Commit() error = %v", err)
			}
		}

		result, err := run.Result("session")
		if err != nil {
			t.Fatalf("Result() error = %v", err)
		}
		assertMeans(t, result, []float64{4, 2.5, 4.5, 4.5, 1.5})
		if result.Best != 3 {
			t.Errorf("Best = %d, want 3 (first of the tied maxima)", result.Best)
		}
		if result.Subjects != 2 {
			t.Errorf("Subjects = %d, want 2", result.Subjects)
		}
		if result.SessionID != "session" {
			t.Errorf("SessionID = %q, want session", result.SessionID)
		}
	})

	t.Run("short sweep rejected", func(t *testing.T) {
		run := NewTuningRun(ParameterOutputSize, sequence(3))
		if err := run.Commit([]int{1, 2}); err == nil {
			t.Error("Commit() error = nil, want length mismatch")
		}
		if run.Subjects() != 0 {
			t.Errorf("Subjects() = %d, want 0", run.Subjects())
		}
	})

	t.Run("no subjects", func(t *testing.T) {
		run := NewTuningRun(ParameterOutputSize, sequence(3))
		if _, err := run.Result("session"); !errors.Is(err, ErrNoSubjects) {
			t.Errorf("Result() error = %v, want ErrNoSubjects", err)
		}
	})
}

func TestTuner_TuneInputSize(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.MaxInputSize = 3
	cfg.OutputSize = 2

	ui := &scriptedUI{
		// subject 1: know three items, continue; subject 2: same, stop
		yesNo: []bool{true, true, true, true, true, true, true, false},
		ratings: []int{
			5, 5, 5, // subject 1 pool
			3, 4, 5, // subject 1 list scores
			4, 4, 4, // subject 2 pool
			5, 1, 4, // subject 2 list scores
		},
	}

	result, err := newTestTuner(t, ui, cfg).TuneInputSize(context.Background())
	if err != nil {
		t.Fatalf("TuneInputSize() error = %v", err)
	}

	if result.Parameter != ParameterInputSize {
		t.Errorf("Parameter = %q, want %q", result.Parameter, ParameterInputSize)
	}
	if result.Subjects != 2 {
		t.Errorf("Subjects = %d, want 2", result.Subjects)
	}
	assertMeans(t, result, []float64{4, 2.5, 4.5})
	if result.Best != 3 {
		t.Errorf("Best = %d, want 3", result.Best)
	}
	if result.SessionID == "" {
		t.Error("SessionID is empty")
	}

	if len(ui.presented) != 6 {
		t.Fatalf("presented lists = %d, want 6", len(ui.presented))
	}
	for i, list := range ui.presented {
		if len(list) == 0 || len(list) > cfg.OutputSize {
			t.Errorf("presented[%d] has %d items, want 1..%d", i, len(list), cfg.OutputSize)
		}
	}
}

func TestTuner_TuneOutputSize(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.InputSize = 2
	cfg.MaxOutputSize = 3

	ui := &scriptedUI{
		yesNo:   []bool{true, true, false},
		ratings: []int{5, 1, 2, 3, 4},
	}

	result, err := newTestTuner(t, ui, cfg).TuneOutputSize(context.Background())
	if err != nil {
		t.Fatalf("TuneOutputSize() error = %v", err)
	}

	assertMeans(t, result, []float64{2, 3, 4})
	if result.Best != 3 {
		t.Errorf("Best = %d, want 3", result.Best)
	}

	// Two of four items are rated, so lists are capped at two.
	wantLens := []int{1, 2, 2}
	if len(ui.presented) != len(wantLens) {
		t.Fatalf("presented lists = %d, want %d", len(ui.presented), len(wantLens))
	}
	for i, want := range wantLens {
		if got := len(ui.presented[i]); got != want {
			t.Errorf("len(presented[%d]) = %d, want %d", i, got, want)
		}
	}
}

func TestTuner_Interrupted(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.MaxInputSize = 3
	cfg.OutputSize = 2

	t.Run("partial subject is discarded", func(t *testing.T) {
		ui := &scriptedUI{
			yesNo: repeatBool(true, 7),
			// subject 2 stops after its first list score
			ratings: []int{5, 5, 5, 3, 4, 5, 4, 4, 4, 5},
		}

		result, err := newTestTuner(t, ui, cfg).TuneInputSize(context.Background())
		if err != nil {
			t.Fatalf("TuneInputSize() error = %v", err)
		}
		if result.Subjects != 1 {
			t.Errorf("Subjects = %d, want 1", result.Subjects)
		}
		assertMeans(t, result, []float64{3, 4, 5})
		if result.Best != 3 {
			t.Errorf("Best = %d, want 3", result.Best)
		}
	})

	t.Run("unanswered continue prompt ends the session", func(t *testing.T) {
		ui := &scriptedUI{
			yesNo:   repeatBool(true, 3),
			ratings: []int{5, 5, 5, 2, 2, 1},
		}

		result, err := newTestTuner(t, ui, cfg).TuneInputSize(context.Background())
		if err != nil {
			t.Fatalf("TuneInputSize() error = %v", err)
		}
		if result.Subjects != 1 {
			t.Errorf("Subjects = %d, want 1", result.Subjects)
		}
		if result.Best != 1 {
			t.Errorf("Best = %d, want 1", result.Best)
		}
	})

	t.Run("no completed subject", func(t *testing.T) {
		ui := &scriptedUI{yesNo: repeatBool(true, 3)}

		_, err := newTestTuner(t, ui, cfg).TuneInputSize(context.Background())
		if !errors.Is(err, ErrNoSubjects) {
			t.Errorf("TuneInputSize() error = %v, want ErrNoSubjects", err)
		}
		if !errors.Is(err, io.EOF) {
			t.Errorf("TuneInputSize() error = %v, want it to wrap io.EOF", err)
		}
	})
}

func TestTuner_Sample(t *testing.T) {
	t.Parallel()

	tuner := newTestTuner(t, &scriptedUI{}, DefaultConfig())
	pool := []Rating{
		{Item: "A", Value: 5},
		{Item: "B", Value: 4},
		{Item: "C", Value: 3},
	}

	for length := 1; length <= 4; length++ {
		subset := tuner.sample(pool, length)
		want := min(length, len(pool))
		if len(subset) != want {
			t.Errorf("sample(%d) has %d items, want %d", length, len(subset), want)
		}
		seen := make(map[string]bool)
		for _, r := range subset {
			if seen[r.Item] {
				t.Errorf("sample(%d) repeated %q", length, r.Item)
			}
			seen[r.Item] = true
		}
	}
}
