// Package store provides data persistence interfaces and implementations.
package store

import (
	"context"
	"time"

	"github.com/aidiva/diva-server/internal/domain"
)

// Repository defines the interface for persisting player identity and
// aggregate game results. Session state itself is memory-resident and never
// stored here.
type Repository interface {
	// GetPlayer retrieves a player by ID, or nil if unknown.
	GetPlayer(ctx context.Context, playerID string) (*domain.Player, error)

	// UpsertPlayer creates or updates a player record.
	UpsertPlayer(ctx context.Context, player *domain.Player) error

	// UpdateLastSeen updates the last_seen_at timestamp for a player.
	UpdateLastSeen(ctx context.Context, playerID string, lastSeen time.Time) error

	// RecordGameResult adds one finished round (won or exhausted) and the
	// questions it consumed to the player's aggregates.
	RecordGameResult(ctx context.Context, playerID string, won bool, questionsAsked int) error

	// AddHintRequested increments the player's hint counter.
	AddHintRequested(ctx context.Context, playerID string) error

	// GetGameResult retrieves a player's aggregates, zero-valued if none.
	GetGameResult(ctx context.Context, playerID string) (*domain.GameResult, error)

	// Ping verifies database connectivity.
	Ping(ctx context.Context) error

	// Close closes the database connection.
	Close() error
}
