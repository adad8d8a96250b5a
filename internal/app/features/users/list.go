package users

import (
	"context"
	"net/http"
	"strings"

	userstore "github.com/lifelinkhq/lifelink/internal/app/store/users"
	"github.com/lifelinkhq/lifelink/internal/app/system/httpjson"
	"github.com/lifelinkhq/lifelink/internal/app/system/paging"
	"github.com/lifelinkhq/lifelink/internal/app/system/timeouts"
	"github.com/lifelinkhq/lifelink/internal/domain/apperr"
	"github.com/lifelinkhq/lifelink/internal/domain/models"
)

type listResponse struct {
	Users      []models.User `json:"users"`
	TotalUsers int64         `json:"totalUsers"`
}

// ServeList handles GET /users with optional role/status filters and
// clamped pagination.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	q := r.URL.Query()
	page := paging.FromRequest(r)

	users, total, err := h.Store.List(ctx, userstore.ListParams{
		Role:   strings.TrimSpace(q.Get("role")),
		Status: strings.TrimSpace(q.Get("status")),
		Skip:   page.Skip,
		Limit:  page.Limit,
	})
	if err != nil {
		httpjson.RespondError(w, h.Log, apperr.Internal(err))
		return
	}

	httpjson.Respond(w, http.StatusOK, listResponse{Users: users, TotalUsers: total})
}
