package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/cargohondaadm-droid/CONTROLE-DE-FROTA/internal/models"
	"github.com/cargohondaadm-droid/CONTROLE-DE-FROTA/internal/session"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	// SessionContextKey holds the decoded session claims of a request.
	SessionContextKey contextKey = "session"
)

// SessionMiddleware validates session tokens and gates routes by permission.
type SessionMiddleware struct {
	sessions *session.Service
}

// NewSessionMiddleware creates a new session middleware.
func NewSessionMiddleware(sessions *session.Service) *SessionMiddleware {
	return &SessionMiddleware{sessions: sessions}
}

// Authenticate validates the session token and adds its claims to the request
// context. Health checks and session issuance are reachable without a token.
func (m *SessionMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if shouldSkipAuth(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			http.Error(w, "Authorization header required", http.StatusUnauthorized)
			return
		}

		claims, err := m.sessions.Validate(authHeader)
		if err != nil {
			http.Error(w, "Invalid session token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), SessionContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequirePermission checks that the session's access group grants a
// permission before letting the request through.
func (m *SessionMiddleware) RequirePermission(p models.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := GetSessionFromContext(r.Context())
			if !ok {
				http.Error(w, "Session context not found", http.StatusUnauthorized)
				return
			}

			if !claims.HasPermission(p) {
				http.Error(w, "Insufficient permissions", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// GetSessionFromContext retrieves session claims from a request context.
func GetSessionFromContext(ctx context.Context) (*session.Claims, bool) {
	claims, ok := ctx.Value(SessionContextKey).(*session.Claims)
	return claims, ok
}

func shouldSkipAuth(path string) bool {
	skipPaths := []string{
		"/api/health",
		"/api/session",
		"/api/schema/checklist",
	}
	for _, skip := range skipPaths {
		if path == skip || strings.HasPrefix(path, skip+"/") {
			return true
		}
	}
	return false
}
