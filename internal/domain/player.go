// Package domain holds the core types shared across layers.
package domain

import "time"

// Player is a durable record for one anonymous player identity.
type Player struct {
	PlayerID   string
	Username   string
	LastSeenAt time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// GameResult aggregates a player's minigame outcomes.
type GameResult struct {
	PlayerID       string
	GamesPlayed    int
	GamesWon       int
	QuestionsAsked int
	HintsRequested int
	UpdatedAt      time.Time
}
