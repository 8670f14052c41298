package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// Key type for context
type contextKey string

const SessionContextKey = contextKey("session")

const sessionCookieName = "storefront_session"

// SessionMiddleware ensures every request carries a session ID, minting a
// new cookie for first-time visitors, and attaches the ID to the context.
// The session ID is the key for the in-memory cart and view state.
func SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var sessionID string
		if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
			sessionID = cookie.Value
		} else {
			sessionID = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     sessionCookieName,
				Value:    sessionID,
				Path:     "/",
				HttpOnly: true,
			})
		}

		ctx := context.WithValue(r.Context(), SessionContextKey, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionID returns the session ID attached by SessionMiddleware.
func SessionID(r *http.Request) string {
	id, _ := r.Context().Value(SessionContextKey).(string)
	return id
}
