// Cinematch - Item-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package ratings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/rs/zerolog"

	"github.com/tomtom215/cinematch/internal/metrics"
)

// Config contains the inputs of a Store.
type Config struct {
	// RatingsPath is the path of the ratings CSV file.
	RatingsPath string

	// MoviesPath is the path of the movie metadata CSV file.
	MoviesPath string

	// MinRatingsPerItem is the observation threshold below which an item
	// column is dropped.
	MinRatingsPerItem int
}

// Store reads rating observations and movie metadata from CSV files.
type Store struct {
	cfg    Config
	logger zerolog.Logger
}

// NewStore creates a store for the given files.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewStore(cfg Config, logger zerolog.Logger) *Store {
	if cfg.MinRatingsPerItem <= 0 {
		cfg.MinRatingsPerItem = DefaultMinRatingsPerItem
	}
	return &Store{
		cfg:    cfg,
		logger: logger.With().Str("component", "ratings").Logger(),
	}
}

// Load joins ratings with movie metadata and builds the rating table.
func (s *Store) Load(ctx context.Context) (*Table, error) {
	start := time.Now()

	for _, path := range []string{s.cfg.RatingsPath, s.cfg.MoviesPath} {
		if _, err := os.Stat(path); err != nil {
			return nil, formatErr(path, err)
		}
	}

	db, err := sql.Open("duckdb", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to open duckdb: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			s.logger.Warn().Err(err).Msg("error closing duckdb")
		}
	}()

	if err := s.loadMovies(ctx, db); err != nil {
		return nil, err
	}
	if err := s.loadRatings(ctx, db); err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, db); err != nil {
		return nil, err
	}

	observations, err := s.queryObservations(ctx, db)
	if err != nil {
		return nil, err
	}

	table, err := NewTable(observations, s.cfg.MinRatingsPerItem)
	if err != nil {
		var dfe *DataFormatError
		if errors.As(err, &dfe) {
			dfe.Source = s.cfg.RatingsPath
		}
		return nil, err
	}

	users, items := table.Dims()
	metrics.SetRatingTableSize(len(observations), users, items)
	s.logger.Info().
		Int("observations", len(observations)).
		Int("users", users).
		Int("items", items).
		Int("min_ratings_per_item", s.cfg.MinRatingsPerItem).
		Dur("duration", time.Since(start)).
		Msg("rating table loaded")

	return table, nil
}

func (s *Store) loadMovies(ctx context.Context, db *sql.DB) error {
	query := fmt.Sprintf(`
		CREATE TABLE movies AS
		SELECT CAST(movieId AS BIGINT) AS movie_id, CAST(title AS VARCHAR) AS title
		FROM read_csv(%s, header = true, auto_detect = true)
	`, quoteLiteral(s.cfg.MoviesPath))

	if _, err := db.ExecContext(ctx, query); err != nil {
		return formatErr(s.cfg.MoviesPath, err)
	}

	var nullTitles int
	if err := db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM movies WHERE title IS NULL OR movie_id IS NULL`,
	).Scan(&nullTitles); err != nil {
		return fmt.Errorf("failed to check movies: %w", err)
	}
	if nullTitles > 0 {
		return formatErr(s.cfg.MoviesPath, fmt.Errorf("%d rows with missing movieId or title", nullTitles))
	}
	return nil
}

func (s *Store) loadRatings(ctx context.Context, db *sql.DB) error {
	query := fmt.Sprintf(`
		CREATE TABLE ratings AS
		SELECT CAST(userId AS BIGINT) AS user_id,
		       CAST(movieId AS BIGINT) AS movie_id,
		       CAST(rating AS DOUBLE) AS rating
		FROM read_csv(%s, header = true, auto_detect = true)
	`, quoteLiteral(s.cfg.RatingsPath))

	if _, err := db.ExecContext(ctx, query); err != nil {
		return formatErr(s.cfg.RatingsPath, err)
	}

	var incomplete int
	if err := db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM ratings WHERE user_id IS NULL OR movie_id IS NULL OR rating IS NULL`,
	).Scan(&incomplete); err != nil {
		return fmt.Errorf("failed to check ratings: %w", err)
	}
	if incomplete > 0 {
		return formatErr(s.cfg.RatingsPath, fmt.Errorf("%d rows with missing userId, movieId or rating", incomplete))
	}
	return nil
}

// checkReferences rejects ratings of movies that have no metadata row.
func (s *Store) checkReferences(ctx context.Context, db *sql.DB) error {
	var (
		missing int
		example sql.NullInt64
	)
	err := db.QueryRowContext(ctx, `
		SELECT COUNT(*), MIN(r.movie_id)
		FROM ratings r
		LEFT JOIN movies m ON r.movie_id = m.movie_id
		WHERE m.movie_id IS NULL
	`).Scan(&missing, &example)
	if err != nil {
		return fmt.Errorf("failed to check movie references: %w", err)
	}
	if missing > 0 {
		return formatErr(s.cfg.RatingsPath,
			fmt.Errorf("%d ratings reference unknown movies (e.g. movieId %d)", missing, example.Int64))
	}
	return nil
}

// queryObservations returns one observation per user and title. Distinct
// movies sharing a title are merged by averaging.
func (s *Store) queryObservations(ctx context.Context, db *sql.DB) ([]Observation, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT r.user_id, m.title, AVG(r.rating)
		FROM ratings r
		JOIN movies m ON r.movie_id = m.movie_id
		GROUP BY r.user_id, m.title
		ORDER BY r.user_id, m.title
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to join ratings with movies: %w", err)
	}
	defer rows.Close()

	var observations []Observation
	for rows.Next() {
		var (
			userID int64
			obs    Observation
		)
		if err := rows.Scan(&userID, &obs.Item, &obs.Rating); err != nil {
			return nil, fmt.Errorf("failed to scan observation: %w", err)
		}
		obs.UserID = int(userID)
		observations = append(observations, obs)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read observations: %w", err)
	}

	return observations, nil
}

// quoteLiteral renders s as a SQL string literal.
// read_csv takes its path as a constant, not a bound parameter.
func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
