package auth

import (
	"net/http"

	"github.com/HavenEstates/HE-Backend/internal/middleware"
	"github.com/go-chi/chi/v5"
	"golang.org/x/time/rate"
)

// Routes mounts the auth endpoints. The credential endpoints sit behind a
// per-IP rate limiter; /me and /password require a verified token.
func (h *Handler) Routes(authn func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(rate.Limit(5), 10))
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
	})

	r.Group(func(r chi.Router) {
		r.Use(authn)
		r.Get("/me", h.Me)
		r.Post("/password", h.UpdatePassword)
	})

	return r
}
