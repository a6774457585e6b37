package booking

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) Routes(authn func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		r.Use(authn)
		r.Post("/", h.Create)
		r.Get("/user", h.ListForUser)
	})

	return r
}
