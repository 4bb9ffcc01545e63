package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/aidiva/diva-server/internal/domain"
)

func newTestStore(t *testing.T) Repository {
	t.Helper()
	repo, err := NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewSQLite failed: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestPlayerRoundTrip(t *testing.T) {
	t.Parallel()

	repo := newTestStore(t)
	ctx := context.Background()

	got, err := repo.GetPlayer(ctx, "missing")
	if err != nil {
		t.Fatalf("GetPlayer failed: %v", err)
	}
	if got != nil {
		t.Fatal("expected nil for unknown player")
	}

	now := time.Now().Truncate(time.Second)
	player := &domain.Player{
		PlayerID:   "p1",
		Username:   "player-p1",
		LastSeenAt: now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := repo.UpsertPlayer(ctx, player); err != nil {
		t.Fatalf("UpsertPlayer failed: %v", err)
	}

	got, err = repo.GetPlayer(ctx, "p1")
	if err != nil {
		t.Fatalf("GetPlayer failed: %v", err)
	}
	if got == nil || got.Username != "player-p1" {
		t.Fatalf("unexpected player: %+v", got)
	}

	later := now.Add(time.Hour)
	if err := repo.UpdateLastSeen(ctx, "p1", later); err != nil {
		t.Fatalf("UpdateLastSeen failed: %v", err)
	}
	got, err = repo.GetPlayer(ctx, "p1")
	if err != nil {
		t.Fatalf("GetPlayer failed: %v", err)
	}
	if !got.LastSeenAt.Equal(later) {
		t.Errorf("LastSeenAt = %v, want %v", got.LastSeenAt, later)
	}
}

func TestGameResultAggregation(t *testing.T) {
	t.Parallel()

	repo := newTestStore(t)
	ctx := context.Background()

	result, err := repo.GetGameResult(ctx, "p1")
	if err != nil {
		t.Fatalf("GetGameResult failed: %v", err)
	}
	if result.GamesPlayed != 0 {
		t.Fatalf("expected zero-valued result, got %+v", result)
	}

	if err := repo.RecordGameResult(ctx, "p1", true, 7); err != nil {
		t.Fatalf("RecordGameResult failed: %v", err)
	}
	if err := repo.RecordGameResult(ctx, "p1", false, 20); err != nil {
		t.Fatalf("RecordGameResult failed: %v", err)
	}
	if err := repo.AddHintRequested(ctx, "p1"); err != nil {
		t.Fatalf("AddHintRequested failed: %v", err)
	}

	result, err = repo.GetGameResult(ctx, "p1")
	if err != nil {
		t.Fatalf("GetGameResult failed: %v", err)
	}
	if result.GamesPlayed != 2 || result.GamesWon != 1 {
		t.Errorf("games = %d/%d won, want 2/1", result.GamesPlayed, result.GamesWon)
	}
	if result.QuestionsAsked != 27 {
		t.Errorf("QuestionsAsked = %d, want 27", result.QuestionsAsked)
	}
	if result.HintsRequested != 1 {
		t.Errorf("HintsRequested = %d, want 1", result.HintsRequested)
	}
}

func TestPing(t *testing.T) {
	t.Parallel()

	repo := newTestStore(t)
	if err := repo.Ping(context.Background()); err != nil {
		t.Fatalf("Ping failed: %v", err)
	}
}
