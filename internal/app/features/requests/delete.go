package requests

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	requeststore "github.com/lifelinkhq/lifelink/internal/app/store/requests"
	"github.com/lifelinkhq/lifelink/internal/app/system/httpjson"
	"github.com/lifelinkhq/lifelink/internal/app/system/timeouts"
	"github.com/lifelinkhq/lifelink/internal/domain/apperr"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServeDelete handles DELETE /donation-request-all/{id} and returns the
// deleted snapshot.
func (h *Handler) ServeDelete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.RespondError(w, h.Log, apperr.Validation("invalid request id"))
		return
	}

	deleted, err := h.Store.Delete(ctx, id)
	if err == requeststore.ErrNotFound {
		httpjson.RespondError(w, h.Log, apperr.NotFound("donation request not found"))
		return
	}
	if err != nil {
		httpjson.RespondError(w, h.Log, apperr.Internal(err))
		return
	}

	httpjson.Respond(w, http.StatusOK, deleted)
}
