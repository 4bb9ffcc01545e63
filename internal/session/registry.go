// Package session multiplexes game and chat state across players.
package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aidiva/diva-server/internal/chat"
	"github.com/aidiva/diva-server/internal/completion"
	"github.com/aidiva/diva-server/internal/game"
)

// Entry is one player's state pair. The game and chat sessions each carry
// their own mutex, so callers may use them directly.
type Entry struct {
	ID   string
	Game *game.Session
	Chat *chat.Session

	mu        sync.Mutex
	lastTouch time.Time
}

// Touch records activity on the entry.
func (e *Entry) Touch() {
	e.mu.Lock()
	e.lastTouch = time.Now()
	e.mu.Unlock()
}

// LastTouch returns the time of the most recent activity.
func (e *Entry) LastTouch() time.Time {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastTouch
}

// Registry maps opaque session identifiers to entries, creating them on
// first contact. Entries are exclusive to their identifier; only the
// used-object set is shared across sessions (inside the generator).
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*Entry

	svc      completion.Service
	gen      *game.Generator
	classify game.Classifier
}

// NewRegistry creates an empty registry.
func NewRegistry(svc completion.Service, gen *game.Generator, classify game.Classifier) *Registry {
	return &Registry{
		entries:  make(map[string]*Entry),
		svc:      svc,
		gen:      gen,
		classify: classify,
	}
}

// Resolve returns the entry for the presented identifier, creating a fresh
// one (with a newly minted identifier if none was presented) when unknown.
// Creation eagerly picks the game's first secret object.
func (r *Registry) Resolve(ctx context.Context, presentedID string) (*Entry, bool) {
	if presentedID != "" {
		r.mu.RLock()
		e, ok := r.entries[presentedID]
		r.mu.RUnlock()
		if ok {
			e.Touch()
			return e, false
		}
	}

	id := presentedID
	if id == "" {
		id = uuid.NewString()
	}

	e := &Entry{
		ID:        id,
		Game:      game.NewSession(ctx, r.svc, r.gen, r.classify),
		Chat:      chat.NewSession(r.svc),
		lastTouch: time.Now(),
	}

	r.mu.Lock()
	// Another request may have created the entry while we built ours.
	if existing, ok := r.entries[id]; ok {
		r.mu.Unlock()
		existing.Touch()
		return existing, false
	}
	r.entries[id] = e
	r.mu.Unlock()

	slog.Info("Session created", "session_id", id)
	return e, true
}

// Remove evicts the entry for the identifier, if present.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, id)
}

// Len returns the number of live entries.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// evictIdle removes entries whose last activity is older than ttl and
// returns how many were dropped.
func (r *Registry) evictIdle(ttl time.Duration) int {
	cutoff := time.Now().Add(-ttl)

	r.mu.Lock()
	defer r.mu.Unlock()

	evicted := 0
	for id, e := range r.entries {
		if e.LastTouch().Before(cutoff) {
			delete(r.entries, id)
			evicted++
		}
	}
	return evicted
}
