package httphandler

import (
	"context"
	"net/http"
	"strings"
)

type sessionKey struct{}

func AllowJSON(next http.Handler) http.Handler {
	hf := func(w http.ResponseWriter, r *http.Request) {
		if r.ContentLength == 0 {
			next.ServeHTTP(w, r)
			return
		}

		mediaType, _, _ := strings.Cut(r.Header.Get("Content-Type"), ";")
		if strings.TrimSpace(mediaType) != "application/json" {
			http.Error(w, "invalid media type", http.StatusUnsupportedMediaType)
			return
		}

		next.ServeHTTP(w, r)
	}
	return http.HandlerFunc(hf)
}

// RequireSession rejects requests without the session header and passes
// its value on through the request context.
func RequireSession(header string, next http.Handler) http.Handler {
	hf := func(w http.ResponseWriter, r *http.Request) {
		sid := strings.TrimSpace(r.Header.Get(header))
		if sid == "" {
			http.Error(w, "session id required", http.StatusBadRequest)
			return
		}

		ctx := context.WithValue(r.Context(), sessionKey{}, sid)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
	return http.HandlerFunc(hf)
}

func sessionID(r *http.Request) string {
	sid, _ := r.Context().Value(sessionKey{}).(string)
	return sid
}
