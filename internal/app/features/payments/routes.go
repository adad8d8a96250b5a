package payments

import "github.com/go-chi/chi/v5"

// Register mounts the payment endpoints directly on the root router:
// both paths are top-level contracts with the frontend clients.
func Register(r chi.Router, h *Handler) {
	r.Post("/create-checkout-session", h.ServeCreateCheckout)
	r.Post("/donation-payment-info", h.ServeConfirm)
}
