package session

import (
	"context"
	"log/slog"
	"time"
)

// sweepInterval is how often the sweeper scans for idle sessions.
const sweepInterval = 5 * time.Minute

// StartSweeper runs a background goroutine that periodically evicts
// sessions idle for longer than ttl. It stops when ctx is canceled.
func StartSweeper(ctx context.Context, r *Registry, ttl time.Duration) {
	ticker := time.NewTicker(sweepInterval)
	go func() {
		defer ticker.Stop()
		slog.Info("Session sweeper started", "interval", sweepInterval, "ttl", ttl)

		for {
			select {
			case <-ticker.C:
				if n := r.evictIdle(ttl); n > 0 {
					slog.Info("Evicted idle sessions", "count", n, "remaining", r.Len())
				}
			case <-ctx.Done():
				slog.Info("Session sweeper shutting down", "reason", ctx.Err())
				return
			}
		}
	}()
}
