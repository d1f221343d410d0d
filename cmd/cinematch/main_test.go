// Cinematch - Item-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
)

const fixtureMovies = `movieId,title,genres
1,Alien (1979),Horror|Sci-Fi
2,Amelie (2001),Comedy|Romance
3,Heat (1995),Action|Crime
4,Clueless (1995),Comedy|Romance
5,Casino (1995),Crime|Drama
`

const fixtureRatings = `userId,movieId,rating,timestamp
1,1,5.0,964982703
1,2,1.0,964982703
1,3,4.0,964982703
2,1,1.0,964982703
2,2,5.0,964982703
2,3,2.0,964982703
3,1,3.0,964982703
3,2,2.0,964982703
3,3,5.0,964982703
1,4,2.0,964982703
2,4,4.0,964982703
3,4,1.0,964982703
1,5,4.0,964982703
2,5,1.0,964982703
3,5,4.5,964982703
`

// setupDataset writes the fixtures into a fresh working directory and
// points the configuration at them.
func setupDataset(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)

	ratingsPath := filepath.Join(dir, "ratings.csv")
	moviesPath := filepath.Join(dir, "movies.csv")
	if err := os.WriteFile(ratingsPath, []byte(fixtureRatings), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(moviesPath, []byte(fixtureMovies), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("CONFIG_PATH", "")
	t.Setenv("DATA_RATINGS_PATH", ratingsPath)
	t.Setenv("DATA_MOVIES_PATH", moviesPath)
	t.Setenv("MIN_RATINGS_PER_ITEM", "1")
	t.Setenv("LOG_LEVEL", "error")
	return dir
}

func runWith(t *testing.T, args []string, input string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(context.Background(), args, strings.NewReader(input), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRun_InvalidArguments(t *testing.T) {
	setupDataset(t)

	tests := []struct {
		name string
		args []string
	}{
		{"both searched", []string{"?", "?"}},
		{"single argument", []string{"5"}},
		{"too many", []string{"1", "2", "3"}},
		{"not a number", []string{"five", "4"}},
		{"zero", []string{"0", "4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := runWith(t, tt.args, "")
			if code != 1 {
				t.Errorf("exit code = %d, want 1", code)
			}
			if !strings.Contains(stderr, "usage:") {
				t.Errorf("stderr %q should include usage", stderr)
			}
			if stdout != "" {
				t.Errorf("stdout = %q, want nothing before the session starts", stdout)
			}
		})
	}
}

func TestRun_InvalidEnvironment(t *testing.T) {
	setupDataset(t)
	t.Setenv("NEUTRAL_RATING", "9")

	code, _, stderr := runWith(t, nil, "")
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr, "configuration error") {
		t.Errorf("stderr = %q, want a configuration error", stderr)
	}
}

func TestRun_MissingData(t *testing.T) {
	dir := setupDataset(t)
	t.Setenv("DATA_MOVIES_PATH", filepath.Join(dir, "missing.csv"))
	t.Setenv("LOG_FORMAT", "json")

	code, _, stderr := runWith(t, []string{"2", "2"}, "")
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr, "missing.csv") {
		t.Errorf("stderr = %q, should name the missing file", stderr)
	}
	if !strings.Contains(stderr, `"level":"error"`) || !strings.Contains(stderr, `"message":"Cinematch cannot start"`) {
		t.Errorf("stderr = %q, want an error-level log entry", stderr)
	}
}

func TestRun_Recommend(t *testing.T) {
	setupDataset(t)

	// Know the first two movies offered, then rate them.
	input := "y\ny\n5\n1\n"
	code, stdout, stderr := runWith(t, []string{"2", "2"}, input)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %q", code, stderr)
	}

	if got := strings.Count(stdout, "from 1-5"); got != 2 {
		t.Errorf("rating prompts = %d, want 2", got)
	}
	idx := strings.Index(stdout, "Recommended movies:")
	if idx < 0 {
		t.Fatalf("stdout has no recommendations:\n%s", stdout)
	}
	list := stdout[idx:]
	if !strings.Contains(list, " 1.") || !strings.Contains(list, " 2.") {
		t.Errorf("expected two numbered recommendations:\n%s", list)
	}
	if strings.Contains(list, " 3.") {
		t.Errorf("expected only two recommendations:\n%s", list)
	}
}

func TestRun_SessionEndsEarly(t *testing.T) {
	setupDataset(t)
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("LOG_FORMAT", "json")

	// Input runs out while the elicitor is still asking.
	code, _, stderr := runWith(t, []string{"3", "2"}, "y\n")
	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
	if !strings.Contains(stderr, "collect ratings") {
		t.Errorf("stderr = %q, should explain why the session ended", stderr)
	}
	if !strings.Contains(stderr, `"level":"warn"`) || !strings.Contains(stderr, `"message":"Session ended early"`) {
		t.Errorf("stderr = %q, want a warn-level log entry", stderr)
	}
}

func TestRun_TuneOutputSize(t *testing.T) {
	dir := setupDataset(t)
	reportPath := filepath.Join(dir, "reports", "tuning.json")
	t.Setenv("MAX_OUTPUT_SIZE", "2")
	t.Setenv("TUNING_REPORT_PATH", reportPath)
	t.Setenv("METRICS_TEXTFILE_PATH", filepath.Join(dir, "cinematch.prom"))

	// One subject: know and rate two movies, score the lists 3 then 5, stop.
	input := "y\ny\n4\n2\n3\n5\nn\n"
	code, stdout, stderr := runWith(t, []string{"2", "?"}, input)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %q", code, stderr)
	}

	if !strings.Contains(stdout, "Finding the optimal number of recommendations") {
		t.Errorf("stdout should announce the search:\n%s", stdout)
	}
	if !strings.Contains(stdout, "The highest rated list length is: 2") {
		t.Errorf("stdout should name the best length:\n%s", stdout)
	}
	if !strings.Contains(stdout, "Number of movies recommended to the user") {
		t.Errorf("stdout should include the chart:\n%s", stdout)
	}

	data, err := os.ReadFile(reportPath)
	if err != nil {
		t.Fatalf("report not written: %v", err)
	}
	var report struct {
		Parameter string `json:"parameter"`
		Subjects  int    `json:"subjects"`
		Best      int    `json:"best"`
	}
	if err := json.Unmarshal(data, &report); err != nil {
		t.Fatalf("report is not JSON: %v", err)
	}
	if report.Parameter != "output_size" || report.Subjects != 1 || report.Best != 2 {
		t.Errorf("report = %+v", report)
	}

	if _, err := os.Stat(filepath.Join(dir, "cinematch.prom")); err != nil {
		t.Errorf("metrics textfile not written: %v", err)
	}
}

func TestRun_TuneInputSize(t *testing.T) {
	setupDataset(t)
	t.Setenv("MAX_INPUT_SIZE", "2")

	// One subject: know and rate two movies, score the lists built from
	// one and from two of them 5 then 3, stop.
	input := "y\ny\n4\n2\n5\n3\nn\n"
	code, stdout, stderr := runWith(t, []string{"?", "2"}, input)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %q", code, stderr)
	}

	if !strings.Contains(stdout, "Finding the optimal number of user selections") {
		t.Errorf("stdout should announce the search:\n%s", stdout)
	}
	if got := strings.Count(stdout, "Recommended movies:"); got != 2 {
		t.Errorf("presented lists = %d, want 2", got)
	}
	if !strings.Contains(stdout, "The highest rated list length is: 1") {
		t.Errorf("stdout should name the best length:\n%s", stdout)
	}
	if !strings.Contains(stdout, "Number of selections passed to the algorithm") {
		t.Errorf("stdout should include the chart:\n%s", stdout)
	}
}

func TestRun_TuneWithoutSubjects(t *testing.T) {
	setupDataset(t)
	t.Setenv("MAX_INPUT_SIZE", "2")

	code, _, stderr := runWith(t, []string{"?", "1"}, "")
	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
	if !strings.Contains(stderr, "tuning session") {
		t.Errorf("stderr = %q, should report the empty session", stderr)
	}
}
