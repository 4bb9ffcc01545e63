package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aidiva/diva-server/internal/chat"
	"github.com/aidiva/diva-server/internal/identity"
	"github.com/aidiva/diva-server/internal/transcript"
)

// Chat handles one free-form chat turn.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
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

	res, err := entry.Chat.Chat(r.Context(), req.Prompt)
	switch {
	case errors.Is(err, chat.ErrEmptyPrompt):
		Error(w, http.StatusBadRequest, "No prompt provided.")
		return
	case errors.Is(err, chat.ErrWordLimitReached):
		JSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":           "Word limit reached. No more responses.",
			"remaining_words": 0,
		})
		return
	case err != nil:
		// Unlike the game endpoints, chat surfaces upstream failure.
		slog.Error("Chat completion failed", "error", err, "session_id", sessionID)
		Error(w, http.StatusInternalServerError, "completion service error")
		return
	}

	h.transcripts.Log(transcript.Event{
		SessionID: sessionID,
		Channel:   transcript.ChannelChat,
		EventType: "chat_user",
		Content:   req.Prompt,
	})
	h.transcripts.Log(transcript.Event{
		SessionID: sessionID,
		Channel:   transcript.ChannelChat,
		EventType: "chat_reply",
		Content:   res.Reply,
	})

	JSON(w, http.StatusOK, map[string]interface{}{
		"response":        res.Reply,
		"remaining_words": res.RemainingWords,
	})
}
