package payments

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/lifelinkhq/lifelink/internal/app/payment"
	"github.com/lifelinkhq/lifelink/internal/app/system/httpjson"
	"github.com/lifelinkhq/lifelink/internal/app/system/normalize"
	"github.com/lifelinkhq/lifelink/internal/app/system/timeouts"
	"github.com/lifelinkhq/lifelink/internal/domain/apperr"
)

// checkoutPayload is the body for POST /create-checkout-session.
// Amount is in major currency units.
type checkoutPayload struct {
	Amount int64  `json:"amount"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

// checkoutResponse carries the hosted payment page URL.
type checkoutResponse struct {
	URL string `json:"url"`
}

// ServeCreateCheckout handles POST /create-checkout-session.
//
// Nothing is written locally; the durable fund record is only created
// when the session is later confirmed.
func (h *Handler) ServeCreateCheckout(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	var payload checkoutPayload
	if err := httpjson.Decode(r, &payload); err != nil {
		httpjson.RespondError(w, h.Log, err)
		return
	}
	if payload.Amount <= 0 {
		httpjson.RespondError(w, h.Log, apperr.Validation("amount must be positive"))
		return
	}
	email := normalize.Email(payload.Email)
	if email == "" {
		httpjson.RespondError(w, h.Log, apperr.Validation("email is required"))
		return
	}

	sess, err := h.Provider.CreateCheckoutSession(ctx, payment.CheckoutParams{
		Amount:          payload.Amount,
		Email:           email,
		Name:            strings.TrimSpace(payload.Name),
		ClientReference: uuid.NewString(),
	})
	if err != nil {
		httpjson.RespondError(w, h.Log, apperr.Upstream("payment provider unavailable", err))
		return
	}

	httpjson.Respond(w, http.StatusOK, checkoutResponse{URL: sess.URL})
}
