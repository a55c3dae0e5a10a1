package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

const SessionCookie = "storefront_session"

// CartSession gives every request a stable session id for its cart. A missing
// or empty cookie gets a fresh uuid; the cookie is HttpOnly since only the
// server reads it.
func CartSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sid := ""
		if c, err := r.Cookie(SessionCookie); err == nil {
			sid = c.Value
		}
		if sid == "" {
			sid = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     SessionCookie,
				Value:    sid,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(r.Context(), ctxCartSession, sid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func GetCartSession(ctx context.Context) string {
	if v := ctx.Value(ctxCartSession); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
