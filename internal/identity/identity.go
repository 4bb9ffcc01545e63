// Package identity provides anonymous per-player identity primitives.
package identity

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/aidiva/diva-server/internal/domain"
	"github.com/aidiva/diva-server/internal/store"
)

const (
	// SessionCookieName carries the opaque session token between requests.
	SessionCookieName = "diva_session_id"
	// SessionHeaderName lets cookie-less clients present the token.
	SessionHeaderName = "X-Diva-Session-ID"

	sessionCookieMaxAge = 30 * 24 * time.Hour
)

type contextKey int

const (
	sessionIDKey contextKey = iota
	usernameKey
)

// SessionIDFromContext extracts the session token from the request context.
func SessionIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(sessionIDKey).(string); ok {
		return v
	}
	return ""
}

// UsernameFromContext extracts the derived username from the request context.
func UsernameFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(usernameKey).(string); ok {
		return v
	}
	return ""
}

// WithSession returns a context carrying the given session token, as the
// middleware would produce. Used by handler tests.
func WithSession(ctx context.Context, sessionID string) context.Context {
	ctx = context.WithValue(ctx, sessionIDKey, sessionID)
	return context.WithValue(ctx, usernameKey, deriveUsername(sessionID))
}

func isValidSessionID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func deriveUsername(sessionID string) string {
	if len(sessionID) >= 8 {
		return "player-" + sessionID[:8]
	}
	return "player"
}

func ensurePlayer(ctx context.Context, repo store.Repository, sessionID string) error {
	player, err := repo.GetPlayer(ctx, sessionID)
	if err != nil {
		return err
	}
	if player != nil {
		return repo.UpdateLastSeen(ctx, sessionID, time.Now())
	}

	now := time.Now()
	return repo.UpsertPlayer(ctx, &domain.Player{
		PlayerID:   sessionID,
		Username:   deriveUsername(sessionID),
		LastSeenAt: now,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
}

func sessionIDFromRequest(r *http.Request) string {
	if c, err := r.Cookie(SessionCookieName); err == nil && isValidSessionID(c.Value) {
		return c.Value
	}
	if sid := r.Header.Get(SessionHeaderName); isValidSessionID(sid) {
		return sid
	}
	if sid := r.URL.Query().Get("session_id"); isValidSessionID(sid) {
		return sid
	}
	return ""
}

func setSessionCookie(w http.ResponseWriter, sessionID string, isDev bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int(sessionCookieMaxAge.Seconds()),
		Expires:  time.Now().Add(sessionCookieMaxAge),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   !isDev,
	})
}

// Middleware injects the anonymous session token, minting one on first
// contact and echoing it back as a cookie either way so the caller can
// replay it on subsequent requests.
func Middleware(repo store.Repository, isDev bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := sessionIDFromRequest(r)
			if sessionID == "" {
				sessionID = uuid.NewString()
			}
			setSessionCookie(w, sessionID, isDev)

			if err := ensurePlayer(r.Context(), repo, sessionID); err != nil {
				http.Error(w, `{"error":"failed to initialize player"}`, http.StatusInternalServerError)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), sessionID)))
		})
	}
}

// IPFromRequest returns a normalized remote IP for optional request tracing.
func IPFromRequest(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
