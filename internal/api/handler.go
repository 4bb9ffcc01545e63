// Package api provides HTTP handlers for the Ai Diva API.
package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aidiva/diva-server/internal/session"
	"github.com/aidiva/diva-server/internal/store"
	"github.com/aidiva/diva-server/internal/transcript"
)

// maxRequestBodySize caps request bodies (1MB).
const maxRequestBodySize = 1 << 20

// Handler serves the game and chat endpoints.
type Handler struct {
	registry    *session.Registry
	repo        store.Repository
	limiter     *RateLimiter
	transcripts transcript.Logger
}

// NewHandler creates a new Handler with its dependencies.
func NewHandler(registry *session.Registry, repo store.Repository, limiter *RateLimiter, transcripts transcript.Logger) *Handler {
	if transcripts == nil {
		transcripts = noopTranscripts{}
	}
	return &Handler{
		registry:    registry,
		repo:        repo,
		limiter:     limiter,
		transcripts: transcripts,
	}
}

type noopTranscripts struct{}

func (noopTranscripts) Log(transcript.Event) {}
func (noopTranscripts) Close() error         { return nil }

// RegisterRoutes registers the API routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Post("/minigame", h.Minigame)
		r.Post("/reset", h.Reset)
		r.Post("/hint", h.Hint)
		r.Post("/chat", h.Chat)
		r.Get("/me", h.Me)
	})
}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error": "failed to encode response"}`, http.StatusInternalServerError)
	}
}

// Error writes a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

// promptRequest is the shared body for the prompt-carrying endpoints.
type promptRequest struct {
	Prompt string `json:"prompt"`
}

func decodePrompt(w http.ResponseWriter, r *http.Request) (promptRequest, error) {
	var req promptRequest
	body := http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	if err := json.NewDecoder(body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		return promptRequest{}, err
	}
	return req, nil
}
