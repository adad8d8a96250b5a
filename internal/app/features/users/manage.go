package users

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	userstore "github.com/lifelinkhq/lifelink/internal/app/store/users"
	"github.com/lifelinkhq/lifelink/internal/app/system/httpjson"
	"github.com/lifelinkhq/lifelink/internal/app/system/timeouts"
	"github.com/lifelinkhq/lifelink/internal/domain/apperr"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func userID(r *http.Request) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		return primitive.NilObjectID, apperr.Validation("invalid user id")
	}
	return id, nil
}

// ServeView handles GET /users/{id}.
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id, err := userID(r)
	if err != nil {
		httpjson.RespondError(w, h.Log, err)
		return
	}

	u, err := h.Store.GetByID(ctx, id)
	if err == userstore.ErrNotFound {
		httpjson.RespondError(w, h.Log, apperr.NotFound("user not found"))
		return
	}
	if err != nil {
		httpjson.RespondError(w, h.Log, apperr.Internal(err))
		return
	}

	httpjson.Respond(w, http.StatusOK, u)
}

// patchPayload is the allow-listed account patch: name, role, status.
// Email is the lookup key and is not patchable.
type patchPayload struct {
	Name   *string `json:"name"`
	Role   *string `json:"role"`
	Status *string `json:"status"`
}

// ServePatch handles PATCH /users/{id}.
func (h *Handler) ServePatch(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	id, err := userID(r)
	if err != nil {
		httpjson.RespondError(w, h.Log, err)
		return
	}

	var payload patchPayload
	if err := httpjson.Decode(r, &payload); err != nil {
		httpjson.RespondError(w, h.Log, err)
		return
	}

	updated, err := h.Store.Patch(ctx, id, userstore.Update{
		Name:   payload.Name,
		Role:   payload.Role,
		Status: payload.Status,
	})
	switch err {
	case nil:
	case userstore.ErrNotFound:
		httpjson.RespondError(w, h.Log, apperr.NotFound("user not found"))
		return
	case userstore.ErrBadRole, userstore.ErrBadStatus:
		httpjson.RespondError(w, h.Log, apperr.Validation("%s", err.Error()))
		return
	default:
		httpjson.RespondError(w, h.Log, apperr.Internal(err))
		return
	}

	httpjson.Respond(w, http.StatusOK, updated)
}

// ServeDelete handles DELETE /users/{id} and returns the deleted
// snapshot.
func (h *Handler) ServeDelete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id, err := userID(r)
	if err != nil {
		httpjson.RespondError(w, h.Log, err)
		return
	}

	deleted, err := h.Store.Delete(ctx, id)
	if err == userstore.ErrNotFound {
		httpjson.RespondError(w, h.Log, apperr.NotFound("user not found"))
		return
	}
	if err != nil {
		httpjson.RespondError(w, h.Log, apperr.Internal(err))
		return
	}

	httpjson.Respond(w, http.StatusOK, deleted)
}
