package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/KirkDiggler/yahtzee/internal/models"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// defaultRecentLimit caps ListRecentMatches when no limit is given
const defaultRecentLimit = 10

// Config holds configuration for the SQLite history repository
type Config struct {
	// DB is an open database handle with the history schema in place
	DB *sql.DB
}

// sqliteRepository implements the Repository interface using SQLite
type sqliteRepository struct {
	db *sql.DB
}

// NewSQLite creates a new SQLite-backed history repository
func NewSQLite(cfg *Config) (*sqliteRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.DB == nil {
		return nil, errors.New("database handle cannot be nil")
	}

	return &sqliteRepository{
		db: cfg.DB,
	}, nil
}

// InitDB opens the SQLite database at the given path and creates the
// match history schema
func InitDB(path string) (*sql.DB, error) {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	// Create tables
	if err := createSchema(db); err != nil {
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return db, nil
}

func createSchema(db *sql.DB) error {
	schemas := []string{
		`CREATE TABLE IF NOT EXISTS matches (
			id TEXT PRIMARY KEY,
			game_id TEXT NOT NULL,
			player_count INTEGER NOT NULL,
			played_at DATETIME NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS match_results (
			match_id TEXT NOT NULL,
			seat INTEGER NOT NULL,
			player_name TEXT NOT NULL,
			position INTEGER NOT NULL,
			upper_score INTEGER NOT NULL,
			bonus INTEGER NOT NULL,
			lower_score INTEGER NOT NULL,
			total_score INTEGER NOT NULL,
			PRIMARY KEY (match_id, seat),
			FOREIGN KEY (match_id) REFERENCES matches(id)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_matches_played_at ON matches(played_at);`,
		`CREATE INDEX IF NOT EXISTS idx_match_results_total ON match_results(total_score);`,
	}

	for _, query := range schemas {
		if _, err := db.Exec(query); err != nil {
			return err
		}
	}

	return nil
}

// SaveMatch persists a completed match and its per-player results
func (r *sqliteRepository) SaveMatch(ctx context.Context, input *SaveMatchInput) error {
	if input == nil || input.Match == nil {
		return errors.New("input and match cannot be nil")
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO matches (id, game_id, player_count, played_at) VALUES (?, ?, ?, ?)`,
		input.Match.ID, input.Match.GameID, input.Match.PlayerCount, input.Match.PlayedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert match: %w", err)
	}

	for _, result := range input.Match.Results {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO match_results (match_id, seat, player_name, position, upper_score, bonus, lower_score, total_score)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			input.Match.ID, result.Seat, result.PlayerName, result.Position,
			result.UpperScore, result.Bonus, result.LowerScore, result.TotalScore,
		)
		if err != nil {
			return fmt.Errorf("failed to insert match result: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit match: %w", err)
	}

	return nil
}

// ListRecentMatches retrieves the most recently played matches, newest first
func (r *sqliteRepository) ListRecentMatches(ctx context.Context, input *ListRecentMatchesInput) (*ListRecentMatchesOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultRecentLimit
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, game_id, player_count, played_at FROM matches ORDER BY played_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query matches: %w", err)
	}
	defer rows.Close()

	matches := make([]*models.Match, 0, limit)
	for rows.Next() {
		var match models.Match
		if err := rows.Scan(&match.ID, &match.GameID, &match.PlayerCount, &match.PlayedAt); err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		matches = append(matches, &match)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read matches: %w", err)
	}

	for _, match := range matches {
		results, err := r.matchResults(ctx, match.ID)
		if err != nil {
			return nil, err
		}
		match.Results = results
	}

	return &ListRecentMatchesOutput{Matches: matches}, nil
}

func (r *sqliteRepository) matchResults(ctx context.Context, matchID string) ([]*models.MatchResult, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT seat, player_name, position, upper_score, bonus, lower_score, total_score
		FROM match_results WHERE match_id = ? ORDER BY seat`, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to query match results: %w", err)
	}
	defer rows.Close()

	var results []*models.MatchResult
	for rows.Next() {
		var result models.MatchResult
		if err := rows.Scan(&result.Seat, &result.PlayerName, &result.Position,
			&result.UpperScore, &result.Bonus, &result.LowerScore, &result.TotalScore); err != nil {
			return nil, fmt.Errorf("failed to scan match result: %w", err)
		}
		results = append(results, &result)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read match results: %w", err)
	}

	return results, nil
}

// GetBestScore retrieves the highest total ever recorded. Ties go to the
// earliest match, so the original record holder keeps the record.
func (r *sqliteRepository) GetBestScore(ctx context.Context, input *GetBestScoreInput) (*GetBestScoreOutput, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT r.player_name, r.total_score, m.played_at
		FROM match_results r
		JOIN matches m ON m.id = r.match_id
		ORDER BY r.total_score DESC, m.played_at ASC
		LIMIT 1`)

	var output GetBestScoreOutput
	err := row.Scan(&output.PlayerName, &output.TotalScore, &output.PlayedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &GetBestScoreOutput{}, nil
		}
		return nil, fmt.Errorf("failed to query best score: %w", err)
	}
	output.Found = true

	return &output, nil
}
