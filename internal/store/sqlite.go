package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/aidiva/diva-server/internal/domain"
)

// SQLiteStore implements Repository using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite creates a new SQLite-backed repository.
func NewSQLite(dbPath string) (Repository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	// Open database with WAL mode for better concurrency.
	dsn := dbPath + "?_journal=WAL&_sync=NORMAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) initSchema() error {
	query := `
	PRAGMA busy_timeout = 5000;
	CREATE TABLE IF NOT EXISTS players (
		player_id TEXT PRIMARY KEY,
		username TEXT NOT NULL,
		last_seen_at INTEGER NOT NULL,
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_players_last_seen ON players(last_seen_at);

	CREATE TABLE IF NOT EXISTS game_results (
		player_id TEXT PRIMARY KEY,
		games_played INTEGER NOT NULL DEFAULT 0,
		games_won INTEGER NOT NULL DEFAULT 0,
		questions_asked INTEGER NOT NULL DEFAULT 0,
		hints_requested INTEGER NOT NULL DEFAULT 0,
		updated_at INTEGER NOT NULL
	);
	`
	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Ping verifies database connectivity.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// GetPlayer retrieves a player by ID.
func (s *SQLiteStore) GetPlayer(ctx context.Context, playerID string) (*domain.Player, error) {
	query := `
		SELECT player_id, username, last_seen_at, created_at, updated_at
		FROM players WHERE player_id = ?`

	row := s.db.QueryRowContext(ctx, query, playerID)

	var player domain.Player
	var lastSeen, createdAt, updatedAt int64

	err := row.Scan(&player.PlayerID, &player.Username, &lastSeen, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan player row: %w", err)
	}

	player.LastSeenAt = time.Unix(lastSeen, 0)
	player.CreatedAt = time.Unix(createdAt, 0)
	player.UpdatedAt = time.Unix(updatedAt, 0)

	return &player, nil
}

// UpsertPlayer creates or updates a player record.
func (s *SQLiteStore) UpsertPlayer(ctx context.Context, player *domain.Player) error {
	query := `
	INSERT INTO players (player_id, username, last_seen_at, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?)
	ON CONFLICT(player_id) DO UPDATE SET
		username = excluded.username,
		last_seen_at = excluded.last_seen_at,
		updated_at = excluded.updated_at`

	_, err := s.db.ExecContext(ctx, query,
		player.PlayerID, player.Username,
		player.LastSeenAt.Unix(), player.CreatedAt.Unix(), player.UpdatedAt.Unix())
	if err != nil {
		return fmt.Errorf("upsert player: %w", err)
	}
	return nil
}

// UpdateLastSeen updates the last_seen_at timestamp for a player.
func (s *SQLiteStore) UpdateLastSeen(ctx context.Context, playerID string, lastSeen time.Time) error {
	query := `UPDATE players SET last_seen_at = ?, updated_at = ? WHERE player_id = ?`
	_, err := s.db.ExecContext(ctx, query, lastSeen.Unix(), time.Now().Unix(), playerID)
	if err != nil {
		return fmt.Errorf("update last seen: %w", err)
	}
	return nil
}

// RecordGameResult adds one finished round to the player's aggregates.
func (s *SQLiteStore) RecordGameResult(ctx context.Context, playerID string, won bool, questionsAsked int) error {
	wonInc := 0
	if won {
		wonInc = 1
	}

	query := `
	INSERT INTO game_results (player_id, games_played, games_won, questions_asked, hints_requested, updated_at)
	VALUES (?, 1, ?, ?, 0, ?)
	ON CONFLICT(player_id) DO UPDATE SET
		games_played = games_played + 1,
		games_won = games_won + excluded.games_won,
		questions_asked = questions_asked + excluded.questions_asked,
		updated_at = excluded.updated_at`

	_, err := s.db.ExecContext(ctx, query, playerID, wonInc, questionsAsked, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("record game result: %w", err)
	}
	return nil
}

// AddHintRequested increments the player's hint counter.
func (s *SQLiteStore) AddHintRequested(ctx context.Context, playerID string) error {
	query := `
	INSERT INTO game_results (player_id, games_played, games_won, questions_asked, hints_requested, updated_at)
	VALUES (?, 0, 0, 0, 1, ?)
	ON CONFLICT(player_id) DO UPDATE SET
		hints_requested = hints_requested + 1,
		updated_at = excluded.updated_at`

	_, err := s.db.ExecContext(ctx, query, playerID, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("add hint requested: %w", err)
	}
	return nil
}

// GetGameResult retrieves a player's aggregates, zero-valued if none exist.
func (s *SQLiteStore) GetGameResult(ctx context.Context, playerID string) (*domain.GameResult, error) {
	query := `
		SELECT player_id, games_played, games_won, questions_asked, hints_requested, updated_at
		FROM game_results WHERE player_id = ?`

	row := s.db.QueryRowContext(ctx, query, playerID)

	var result domain.GameResult
	var updatedAt int64

	err := row.Scan(&result.PlayerID, &result.GamesPlayed, &result.GamesWon,
		&result.QuestionsAsked, &result.HintsRequested, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return &domain.GameResult{PlayerID: playerID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan game result row: %w", err)
	}

	result.UpdatedAt = time.Unix(updatedAt, 0)
	return &result, nil
}
