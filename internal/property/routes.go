package property

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) Routes(authn func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	// Public read access.
	r.Get("/", h.List)
	r.Get("/featured", h.Featured)
	r.Get("/{id}", h.Get)

	// Mutations require a verified token; update/delete additionally check
	// ownership inside the handler.
	r.Group(func(r chi.Router) {
		r.Use(authn)
		r.Post("/", h.Create)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})

	return r
}
