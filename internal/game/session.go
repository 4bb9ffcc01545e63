// Package game implements the 20 Questions minigame state machine.
package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/aidiva/diva-server/internal/completion"
)

// MaxQuestions is the per-round question budget.
const MaxQuestions = 20

// ResetMessage is returned by the explicit reset operation.
const ResetMessage = replyResetDone

// ErrEmptyPrompt is returned when an operation receives blank input.
var ErrEmptyPrompt = errors.New("empty prompt")

// Classifier decides whether user input is phrased as a question.
type Classifier func(text string) bool

// Outcome describes what an Ask call did, for logging and stats.
type Outcome string

const (
	OutcomeAnswered      Outcome = "answered"
	OutcomeNotAQuestion  Outcome = "not_a_question"
	OutcomeWrongGuess    Outcome = "wrong_guess"
	OutcomeWon           Outcome = "won"
	OutcomeExhausted     Outcome = "exhausted"
	OutcomeUpstreamError Outcome = "upstream_error"
)

// AskResult is the outcome of one Ask call.
type AskResult struct {
	Reply         string
	QuestionsLeft int
	QuestionsUsed int
	GameOver      bool
	Outcome       Outcome
}

// Session holds one player's game round: the secret object, the accepted
// question count, and the transcript seeded with the persona message.
// All operations are serialized by the session mutex; two concurrent Ask
// calls against the same session never race on the counter or transcript.
type Session struct {
	mu sync.Mutex

	svc      completion.Service
	gen      *Generator
	classify Classifier

	secretObject  string
	questionCount int
	transcript    []completion.Message
}

// NewSession creates a session and eagerly picks its first secret object.
func NewSession(ctx context.Context, svc completion.Service, gen *Generator, classify Classifier) *Session {
	s := &Session{svc: svc, gen: gen, classify: classify}
	s.resetLocked(ctx)
	return s
}

// Ask processes one user turn: a property question, a guess, or noise.
func (s *Session) Ask(ctx context.Context, rawText string) (AskResult, error) {
	text := strings.ToLower(strings.TrimSpace(rawText))
	if text == "" {
		return AskResult{}, ErrEmptyPrompt
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.questionCount >= MaxQuestions {
		return AskResult{
			Reply:    replyExhausted,
			GameOver: true,
			Outcome:  OutcomeExhausted,
		}, nil
	}

	slog.Info("Game question received",
		"question_number", s.questionCount+1,
		"max_questions", MaxQuestions)

	// Non-questions are bounced without charging the budget; it is
	// preserved for genuine attempts.
	if !s.classify(text) {
		return AskResult{
			Reply:         replyNotAQuestion,
			QuestionsLeft: MaxQuestions - s.questionCount,
			Outcome:       OutcomeNotAQuestion,
		}, nil
	}

	s.questionCount++
	s.transcript = append(s.transcript, completion.Message{Role: completion.RoleUser, Content: text})
	left := MaxQuestions - s.questionCount

	if candidate, ok := MatchGuess(text); ok {
		if GuessMatches(candidate, s.secretObject) {
			reply := replyCorrectGuess(s.secretObject)
			used := s.questionCount
			slog.Info("Correct guess", "question_number", used)
			s.resetLocked(ctx)
			return AskResult{
				Reply:         reply,
				QuestionsUsed: used,
				GameOver:      true,
				Outcome:       OutcomeWon,
			}, nil
		}
		return AskResult{
			Reply:         replyWrongGuess,
			QuestionsLeft: left,
			QuestionsUsed: s.questionCount,
			Outcome:       OutcomeWrongGuess,
		}, nil
	}

	reply, err := s.svc.Complete(ctx, []completion.Message{
		{Role: completion.RoleSystem, Content: answerPrompt(s.secretObject)},
		{Role: completion.RoleUser, Content: fmt.Sprintf("Does this object relate to: %s?", text)},
	})
	if err != nil {
		// The question stays charged; retries are not free.
		slog.Error("Completion service failed answering question", "error", err)
		return AskResult{
			Reply:         replyUpstreamDown,
			QuestionsLeft: left,
			QuestionsUsed: s.questionCount,
			Outcome:       OutcomeUpstreamError,
		}, nil
	}

	s.transcript = append(s.transcript, completion.Message{Role: completion.RoleAssistant, Content: reply})

	return AskResult{
		Reply:         reply,
		QuestionsLeft: left,
		QuestionsUsed: s.questionCount,
		GameOver:      s.questionCount >= MaxQuestions,
		Outcome:       OutcomeAnswered,
	}, nil
}

// Hint returns a one-sentence hint that never names the object. It does not
// consume question budget; upstream failure yields a fixed apology.
func (s *Session) Hint(ctx context.Context) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	reply, err := s.svc.Complete(ctx, []completion.Message{
		{Role: completion.RoleSystem, Content: hintPrompt(s.secretObject)},
	})
	if err != nil {
		slog.Error("Completion service failed generating hint", "error", err)
		return replyUpstreamDown
	}

	s.transcript = append(s.transcript, completion.Message{Role: completion.RoleAssistant, Content: reply})
	return reply
}

// Reset starts a fresh round: new secret object, zero counter, transcript
// back to just the persona message.
func (s *Session) Reset(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked(ctx)
}

func (s *Session) resetLocked(ctx context.Context) {
	s.questionCount = 0
	s.secretObject = s.gen.Generate(ctx)
	s.transcript = []completion.Message{{Role: completion.RoleSystem, Content: personaPrompt}}
	slog.Info("New secret object chosen", "object", s.secretObject)
}

// SecretObject returns the current answer.
func (s *Session) SecretObject() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.secretObject
}

// QuestionCount returns the number of accepted questions this round.
func (s *Session) QuestionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.questionCount
}

// TranscriptLen returns the number of transcript turns, persona included.
func (s *Session) TranscriptLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.transcript)
}
