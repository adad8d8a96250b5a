package users

import (
	"context"
	"net/http"
	"strings"

	userstore "github.com/lifelinkhq/lifelink/internal/app/store/users"
	"github.com/lifelinkhq/lifelink/internal/app/system/httpjson"
	"github.com/lifelinkhq/lifelink/internal/app/system/timeouts"
	"github.com/lifelinkhq/lifelink/internal/domain/apperr"
	"github.com/lifelinkhq/lifelink/internal/domain/models"
)

// createPayload is the account creation body. Role defaults to donor,
// status to active.
type createPayload struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Status string `json:"status"`
}

// ServeCreate handles POST /users.
func (h *Handler) ServeCreate(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	var payload createPayload
	if err := httpjson.Decode(r, &payload); err != nil {
		httpjson.RespondError(w, h.Log, err)
		return
	}
	if strings.TrimSpace(payload.Name) == "" {
		httpjson.RespondError(w, h.Log, apperr.Validation("name is required"))
		return
	}
	if strings.TrimSpace(payload.Email) == "" {
		httpjson.RespondError(w, h.Log, apperr.Validation("email is required"))
		return
	}

	created, err := h.Store.Create(ctx, models.User{
		Name:   payload.Name,
		Email:  payload.Email,
		Role:   payload.Role,
		Status: payload.Status,
	})
	switch err {
	case nil:
	case userstore.ErrDuplicateEmail:
		httpjson.RespondError(w, h.Log, apperr.Conflict("%s", err.Error()))
		return
	case userstore.ErrBadRole, userstore.ErrBadStatus:
		httpjson.RespondError(w, h.Log, apperr.Validation("%s", err.Error()))
		return
	default:
		httpjson.RespondError(w, h.Log, apperr.Internal(err))
		return
	}

	httpjson.Respond(w, http.StatusCreated, created)
}
