package requests

import "github.com/go-chi/chi/v5"

// Routes returns the requester-facing subrouter, mounted under
// /donation-requests: create a request and list one's own requests.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.ServeCreate)
	r.Get("/", h.ServeListByRequester)
	return r
}

// AdminRoutes returns the pool-management subrouter, mounted under
// /donation-request-all: search, transition, and delete.
func AdminRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeSearch)
	r.Patch("/{id}", h.ServeTransition)
	r.Delete("/{id}", h.ServeDelete)
	return r
}
