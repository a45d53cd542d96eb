package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Stefanlynn/zinraicreativesuite/internal/session"
)

type contextKey string

const adminUserKey contextKey = "adminUserID"

// RequireAuth gates admin-only routes behind a live session token from
// the Authorization header. Missing, unknown and expired tokens all get
// the same 401.
func RequireAuth(sessions *session.Registry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := BearerToken(r)
			if token == "" {
				unauthorized(w, "No session token provided")
				return
			}

			userID, ok := sessions.Validate(token)
			if !ok {
				unauthorized(w, "Session expired")
				return
			}

			ctx := context.WithValue(r.Context(), adminUserKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// BearerToken extracts the opaque token from the Authorization header.
func BearerToken(r *http.Request) string {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if strings.HasPrefix(strings.ToLower(header), "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return header
}

// AdminUserID returns the authenticated admin's user id, if the request
// passed through RequireAuth.
func AdminUserID(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(adminUserKey).(int)
	return id, ok
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": message})
}
