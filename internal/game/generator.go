package game

import (
	"context"
	"log/slog"
	"strings"

	"github.com/aidiva/diva-server/internal/completion"
)

// maxGenerateAttempts bounds the completion round-trips per object pick.
const maxGenerateAttempts = 10

// fallbackObjects is used, in order, when the completion service cannot
// produce an acceptable object.
var fallbackObjects = []string{"cat", "pizza", "phone", "tree", "Superman"}

// rejectedObjects are generic confirmations the model sometimes emits
// instead of an object name.
var rejectedObjects = map[string]struct{}{
	"alright": {}, "okay": {}, "yes": {}, "no": {}, "sure": {}, "got it": {},
}

// Generator picks secret objects for new game rounds, deduplicated against
// everything issued process-wide.
type Generator struct {
	svc  completion.Service
	used *UsedObjects
}

// NewGenerator creates a generator backed by the completion service.
func NewGenerator(svc completion.Service, used *UsedObjects) *Generator {
	return &Generator{svc: svc, used: used}
}

// Generate returns a secret object. It never fails: after the attempt
// budget, or on any completion error, it falls back to the first unused
// entry of the fallback list, and if every fallback was already issued it
// returns the first one regardless (documented non-uniqueness escape hatch).
func (g *Generator) Generate(ctx context.Context) string {
	for attempt := 0; attempt < maxGenerateAttempts; attempt++ {
		candidate, err := g.svc.Complete(ctx, []completion.Message{
			{Role: completion.RoleSystem, Content: objectPrompt},
		})
		if err != nil {
			slog.Error("Secret object generation failed", "error", err, "attempt", attempt+1)
			return g.fallback()
		}

		candidate = strings.TrimSpace(candidate)
		if g.acceptable(candidate) {
			g.used.Add(candidate)
			return candidate
		}
		slog.Warn("Rejected generated object, retrying", "candidate", candidate, "attempt", attempt+1)
	}
	return g.fallback()
}

func (g *Generator) acceptable(candidate string) bool {
	if candidate == "" || len(strings.Fields(candidate)) > 3 {
		return false
	}
	if _, bad := rejectedObjects[strings.ToLower(candidate)]; bad {
		return false
	}
	return !g.used.Contains(candidate)
}

func (g *Generator) fallback() string {
	for _, obj := range fallbackObjects {
		if !g.used.Contains(obj) {
			g.used.Add(obj)
			return obj
		}
	}
	// Every fallback already issued; repeat the first one.
	return fallbackObjects[0]
}
