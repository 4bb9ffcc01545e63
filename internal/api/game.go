package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aidiva/diva-server/internal/game"
	"github.com/aidiva/diva-server/internal/identity"
	"github.com/aidiva/diva-server/internal/transcript"
)

// Minigame handles one 20 Questions turn.
func (h *Handler) Minigame(w http.ResponseWriter, r *http.Request) {
	sessionID := identity.SessionIDFromContext(r.Context())

	if h.limiter != nil && !h.limiter.Allow(sessionID) {
		Error(w, http.StatusTooManyRequests, "rate limit exceeded")
		return
	}

	req, err := decodePrompt(w, r)
	if err != nil {
		Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, _ := h.registry.Resolve(r.Context(), sessionID)

	res, err := entry.Game.Ask(r.Context(), req.Prompt)
	if errors.Is(err, game.ErrEmptyPrompt) {
		Error(w, http.StatusBadRequest, "No question provided.")
		return
	}
	if err != nil {
		Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	h.transcripts.Log(transcript.Event{
		SessionID: sessionID,
		Channel:   transcript.ChannelGame,
		EventType: "question",
		Content:   req.Prompt,
	})
	h.transcripts.Log(transcript.Event{
		SessionID: sessionID,
		Channel:   transcript.ChannelGame,
		EventType: "answer",
		Content:   res.Reply,
		GameOver:  res.GameOver,
	})

	h.recordFinishedRound(r, sessionID, res)

	JSON(w, http.StatusOK, map[string]interface{}{
		"response":       res.Reply,
		"questions_left": res.QuestionsLeft,
		"game_over":      res.GameOver,
	})
}

// recordFinishedRound persists aggregates when a round ends: a win, or the
// answer that consumed the final question. The fixed exhausted reply on
// later calls does not record again.
func (h *Handler) recordFinishedRound(r *http.Request, sessionID string, res game.AskResult) {
	won := res.Outcome == game.OutcomeWon
	lost := res.Outcome == game.OutcomeAnswered && res.GameOver
	if !won && !lost {
		return
	}
	if err := h.repo.RecordGameResult(r.Context(), sessionID, won, res.QuestionsUsed); err != nil {
		slog.Error("Failed to record game result", "error", err, "session_id", sessionID)
	}
}

// Reset starts a fresh round with a new secret object.
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	sessionID := identity.SessionIDFromContext(r.Context())

	entry, _ := h.registry.Resolve(r.Context(), sessionID)
	entry.Game.Reset(r.Context())

	h.transcripts.Log(transcript.Event{
		SessionID: sessionID,
		Channel:   transcript.ChannelGame,
		EventType: "reset",
	})

	JSON(w, http.StatusOK, map[string]string{"message": game.ResetMessage})
}

// Hint returns a one-sentence hint about the secret object.
func (h *Handler) Hint(w http.ResponseWriter, r *http.Request) {
	sessionID := identity.SessionIDFromContext(r.Context())

	if h.limiter != nil && !h.limiter.Allow(sessionID) {
		Error(w, http.StatusTooManyRequests, "rate limit exceeded")
		return
	}

	entry, _ := h.registry.Resolve(r.Context(), sessionID)
	reply := entry.Game.Hint(r.Context())

	if err := h.repo.AddHintRequested(r.Context(), sessionID); err != nil {
		slog.Error("Failed to record hint request", "error", err, "session_id", sessionID)
	}

	h.transcripts.Log(transcript.Event{
		SessionID: sessionID,
		Channel:   transcript.ChannelGame,
		EventType: "hint",
		Content:   reply,
	})

	JSON(w, http.StatusOK, map[string]string{"response": reply})
}

// Me returns the caller's session identifier and aggregate game results.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	sessionID := identity.SessionIDFromContext(r.Context())
	if sessionID == "" {
		Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	result, err := h.repo.GetGameResult(r.Context(), sessionID)
	if err != nil {
		slog.Error("Failed to load game result", "error", err, "session_id", sessionID)
		Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	JSON(w, http.StatusOK, map[string]interface{}{
		"session_id":      sessionID,
		"username":        identity.UsernameFromContext(r.Context()),
		"games_played":    result.GamesPlayed,
		"games_won":       result.GamesWon,
		"questions_asked": result.QuestionsAsked,
		"hints_requested": result.HintsRequested,
	})
}
