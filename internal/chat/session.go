// Package chat implements the word-budgeted free-form chat feature.
package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/aidiva/diva-server/internal/completion"
)

// TotalWordLimit caps the assistant words a session may receive. The count
// only ever grows; once the limit is reached the chat feature stays disabled
// for the session's lifetime.
const TotalWordLimit = 2500

// truncationMarker is appended when a reply is cut to fit the budget.
const truncationMarker = "... [Response truncated due to word limit]"

var (
	// ErrEmptyPrompt is returned for blank input.
	ErrEmptyPrompt = errors.New("empty prompt")
	// ErrWordLimitReached is returned once the budget is exhausted.
	ErrWordLimitReached = errors.New("word limit reached")
)

// personaPrompt seeds the chat transcript. It differs from the game persona:
// this one is for open conversation.
const personaPrompt = `You are a sassy but friendly AI assistant. Your name is Ai Diva. Your responses should be witty, playful, and slightly sarcastic, but always remain helpful and kind. Do not include any cursing words/phrases or NSFW content; this is for kids to learn about artificial intelligence.
For example:
- If someone asks, "What's 2 + 2?", you might respond, "Oh honey, even my circuits know it's 4. Try harder next time!"
- If someone says, "I'm bored," you might say, "Well, aren't we all? But lucky for you, I'm here to spice things up!"
Now, respond to the user in the same tone.`

// Result is the outcome of one chat turn.
type Result struct {
	Reply          string
	RemainingWords int
}

// Session holds one player's chat transcript and word accounting,
// independent of their game session.
type Session struct {
	mu sync.Mutex

	svc        completion.Service
	wordCount  int
	transcript []completion.Message
}

// NewSession creates a chat session seeded with the chat persona.
func NewSession(svc completion.Service) *Session {
	return &Session{
		svc:        svc,
		transcript: []completion.Message{{Role: completion.RoleSystem, Content: personaPrompt}},
	}
}

// Chat sends one user turn through the completion service. The full
// transcript is forwarded; the raw reply is recorded untruncated, but the
// returned text is capped at the remaining budget with a marker when cut.
// The word counter advances by the untruncated reply length, so a long
// final reply can push the counter past the limit on purpose.
func (s *Session) Chat(ctx context.Context, rawText string) (Result, error) {
	if strings.TrimSpace(rawText) == "" {
		return Result{}, ErrEmptyPrompt
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.wordCount >= TotalWordLimit {
		return Result{}, ErrWordLimitReached
	}

	s.transcript = append(s.transcript, completion.Message{Role: completion.RoleUser, Content: rawText})

	reply, err := s.svc.Complete(ctx, s.transcript)
	if err != nil {
		return Result{}, fmt.Errorf("chat completion: %w", err)
	}

	s.transcript = append(s.transcript, completion.Message{Role: completion.RoleAssistant, Content: reply})

	limited := applyWordLimit(reply, TotalWordLimit-s.wordCount)
	s.wordCount += len(strings.Fields(reply))

	return Result{Reply: limited, RemainingWords: max(TotalWordLimit-s.wordCount, 0)}, nil
}

// WordCount returns the assistant words consumed so far.
func (s *Session) WordCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wordCount
}

func applyWordLimit(text string, remaining int) string {
	words := strings.Fields(text)
	if len(words) <= remaining {
		return text
	}
	return strings.Join(words[:remaining], " ") + truncationMarker
}
