package middleware

import (
	"context"
	"net/http"

	"github.com/avelou/sketchbook/internal/auth"
	"github.com/avelou/sketchbook/internal/store"
)

type contextKey string

const UserIDKey contextKey = "user_id"

// UserID returns the authenticated caller's id, or 0 for anonymous
// requests.
func UserID(r *http.Request) int64 {
	if id, ok := r.Context().Value(UserIDKey).(int64); ok {
		return id
	}
	return 0
}

// resolveUser maps the session cookie to a user id. Any failure along
// the chain (missing cookie, bad signature, unknown or expired session)
// resolves to anonymous.
func resolveUser(r *http.Request, codec *auth.Codec, s store.Store) int64 {
	cookie, err := r.Cookie(auth.SessionCookie)
	if err != nil {
		return 0
	}
	token, err := codec.Verify(cookie.Value)
	if err != nil {
		return 0
	}
	sess, err := s.GetSession(token)
	if err != nil {
		return 0
	}
	return sess.UserID
}

// RequireAuth rejects anonymous requests with a 401 JSON error and puts
// the user id in the request context otherwise.
func RequireAuth(codec *auth.Codec, s store.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := resolveUser(r, codec, s)
			if userID == 0 {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error":"authentication required"}`))
				return
			}
			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CurrentUser resolves the session if one is present but lets anonymous
// requests through. Handlers behind it see UserID(r) == 0 for those.
func CurrentUser(codec *auth.Codec, s store.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if userID := resolveUser(r, codec, s); userID != 0 {
				r = r.WithContext(context.WithValue(r.Context(), UserIDKey, userID))
			}
			next.ServeHTTP(w, r)
		})
	}
}
