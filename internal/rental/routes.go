package rental

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) Routes(authn func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Get("/newly-added", h.NewlyAdded)
	r.Get("/{id}", h.Get)

	r.Group(func(r chi.Router) {
		r.Use(authn)
		r.Post("/", h.Create)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})

	return r
}
