package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/HavenEstates/HE-Backend/internal/respond"
	"github.com/HavenEstates/HE-Backend/internal/token"
	"github.com/HavenEstates/HE-Backend/internal/utils"
	"github.com/sirupsen/logrus"
)

// TokenVerifier is implemented by the token service; taken as an interface
// so middleware tests can run without a real signing secret.
type TokenVerifier interface {
	Verify(raw string) (token.Claims, error)
}

// Authenticator guards protected routes. It extracts a bearer token from the
// Authorization header, verifies it, and attaches the caller's identity to
// the request context. A "Bearer " prefix is stripped when present; otherwise
// the header value is used verbatim.
func Authenticator(tokens TokenVerifier, log *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				respond.Error(w, http.StatusUnauthorized, "Access denied. No token provided.")
				return
			}

			raw := header
			if strings.HasPrefix(header, "Bearer ") {
				raw = header[len("Bearer "):]
			}
			if raw == "" {
				respond.Error(w, http.StatusUnauthorized, "Access denied. No token provided.")
				return
			}

			claims, err := tokens.Verify(raw)
			if err != nil {
				log.WithError(err).Warn("token verification failed")
				respond.Error(w, http.StatusForbidden, "Invalid token.")
				return
			}

			identity := utils.Identity{ID: claims.UserID, Email: claims.Email}
			ctx := context.WithValue(r.Context(), utils.ContextIdentityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CORS echoes the request origin back when it is on the configured
// allow-list. A single "*" entry allows any origin.
func CORS(origins []string) func(http.Handler) http.Handler {
	allowAll := false
	allowed := make(map[string]struct{}, len(origins))
	for _, o := range origins {
		if o == "*" {
			allowAll = true
		}
		allowed[o] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			_, ok := allowed[origin]
			if origin != "" && (ok || allowAll) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Vary", "Origin") // important for caches
				w.Header().Set("Access-Control-Allow-Credentials", "true")
				w.Header().Set("Access-Control-Allow-Methods",
					"GET, POST, PUT, PATCH, DELETE, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers",
					"Content-Type, Authorization")
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
