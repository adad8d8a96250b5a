package users

import "github.com/go-chi/chi/v5"

// Routes returns the users subrouter, mounted under /users.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.ServeCreate)
	r.Get("/", h.ServeList)
	r.Get("/{id}", h.ServeView)
	r.Patch("/{id}", h.ServePatch)
	r.Delete("/{id}", h.ServeDelete)
	return r
}
