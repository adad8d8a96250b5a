package requests

import (
	"context"
	"net/http"
	"strings"

	"github.com/lifelinkhq/lifelink/internal/app/system/httpjson"
	"github.com/lifelinkhq/lifelink/internal/app/system/normalize"
	"github.com/lifelinkhq/lifelink/internal/app/system/timeouts"
	"github.com/lifelinkhq/lifelink/internal/domain/apperr"
	"github.com/lifelinkhq/lifelink/internal/domain/models"
)

// listResponse is the body for the requester's own listing.
type listResponse struct {
	Requests []models.DonationRequest `json:"requests"`
}

// ServeListByRequester handles GET /donation-requests?email=.
//
// This is deliberately a distinct operation from the pool search: it
// requires the requester's email and returns that requester's requests
// newest first, with no further filtering.
func (h *Handler) ServeListByRequester(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	email := strings.TrimSpace(r.URL.Query().Get("email"))
	if email == "" {
		httpjson.RespondError(w, h.Log, apperr.Validation("email is required"))
		return
	}

	requests, err := h.Store.ListByRequester(ctx, normalize.Email(email))
	if err != nil {
		httpjson.RespondError(w, h.Log, apperr.Internal(err))
		return
	}

	httpjson.Respond(w, http.StatusOK, listResponse{Requests: requests})
}
