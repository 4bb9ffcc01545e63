package session

import (
	"context"
	"testing"
	"time"

	"github.com/aidiva/diva-server/internal/completion"
	"github.com/aidiva/diva-server/internal/game"
)

// objectService hands out distinct object names in sequence for every
// completion call (only the generator calls it during these tests).
type objectService struct {
	objects []string
}

func (s *objectService) Complete(_ context.Context, _ []completion.Message) (string, error) {
	obj := s.objects[0]
	if len(s.objects) > 1 {
		s.objects = s.objects[1:]
	}
	return obj, nil
}

func newTestRegistry(objects ...string) *Registry {
	svc := &objectService{objects: objects}
	gen := game.NewGenerator(svc, game.NewUsedObjects())
	return NewRegistry(svc, gen, func(string) bool { return true })
}

func TestResolveMintsAndReuses(t *testing.T) {
	t.Parallel()

	r := newTestRegistry("umbrella", "bicycle")
	ctx := context.Background()

	e1, isNew := r.Resolve(ctx, "")
	if !isNew {
		t.Fatal("first contact should create a session")
	}
	if e1.ID == "" {
		t.Fatal("minted identifier must be non-empty")
	}
	if e1.Game.SecretObject() == "" {
		t.Fatal("creation should eagerly pick a secret object")
	}

	e2, isNew := r.Resolve(ctx, e1.ID)
	if isNew {
		t.Error("presenting a live identifier must not create a new session")
	}
	if e2 != e1 {
		t.Error("expected the same entry back")
	}
	if r.Len() != 1 {
		t.Errorf("Len = %d, want 1", r.Len())
	}
}

func TestResolveUnknownIDCreatesEntryUnderIt(t *testing.T) {
	t.Parallel()

	r := newTestRegistry("umbrella")
	e, isNew := r.Resolve(context.Background(), "11111111-2222-3333-4444-555555555555")
	if !isNew {
		t.Fatal("unknown identifier should create a session")
	}
	if e.ID != "11111111-2222-3333-4444-555555555555" {
		t.Errorf("entry should keep the presented identifier, got %q", e.ID)
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	t.Parallel()

	r := newTestRegistry("umbrella", "bicycle")
	ctx := context.Background()

	a, _ := r.Resolve(ctx, "")
	b, _ := r.Resolve(ctx, "")

	if a.ID == b.ID {
		t.Fatal("distinct sessions must have distinct identifiers")
	}
	if a.Game.SecretObject() == b.Game.SecretObject() {
		t.Error("used-object tracking should bias sessions toward distinct objects")
	}

	if _, err := a.Game.Ask(ctx, "i guess nothing"); err != nil {
		t.Fatalf("Ask failed: %v", err)
	}
	if b.Game.QuestionCount() != 0 {
		t.Error("one session's questions must not leak into another")
	}
}

func TestRemove(t *testing.T) {
	t.Parallel()

	r := newTestRegistry("umbrella", "bicycle")
	e, _ := r.Resolve(context.Background(), "")

	r.Remove(e.ID)
	if r.Len() != 0 {
		t.Errorf("Len after Remove = %d, want 0", r.Len())
	}

	_, isNew := r.Resolve(context.Background(), e.ID)
	if !isNew {
		t.Error("resolving a removed identifier should create a fresh session")
	}
}

func TestEvictIdle(t *testing.T) {
	t.Parallel()

	r := newTestRegistry("umbrella", "bicycle")
	ctx := context.Background()

	stale, _ := r.Resolve(ctx, "")
	fresh, _ := r.Resolve(ctx, "")

	stale.mu.Lock()
	stale.lastTouch = time.Now().Add(-2 * time.Hour)
	stale.mu.Unlock()

	if n := r.evictIdle(time.Hour); n != 1 {
		t.Fatalf("evictIdle = %d, want 1", n)
	}
	if _, isNew := r.Resolve(ctx, fresh.ID); isNew {
		t.Error("fresh session must survive eviction")
	}
	if _, isNew := r.Resolve(ctx, stale.ID); !isNew {
		t.Error("stale session should have been evicted")
	}
}
