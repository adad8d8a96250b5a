package requests

import (
	"context"
	"net/http"
	"strings"

	requeststore "github.com/lifelinkhq/lifelink/internal/app/store/requests"
	"github.com/lifelinkhq/lifelink/internal/app/system/httpjson"
	"github.com/lifelinkhq/lifelink/internal/app/system/paging"
	"github.com/lifelinkhq/lifelink/internal/app/system/timeouts"
	"github.com/lifelinkhq/lifelink/internal/domain/apperr"
	"github.com/lifelinkhq/lifelink/internal/domain/models"
)

// searchResponse is the body for the pool search: one page of requests
// and the total match count for the same filter.
type searchResponse struct {
	Requests      []models.DonationRequest `json:"requests"`
	TotalRequests int64                    `json:"totalRequests"`
}

// ServeSearch handles GET /donation-request-all.
//
// Equality filters AND together; a free-text token additionally matches
// recipientDistrict, recipientUpazila, or bloodGroup case-insensitively.
// Unknown sortBy values fall back to createdAt. The count and the page
// are two independent reads, so under concurrent writes they may
// briefly disagree.
func (h *Handler) ServeSearch(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	q := r.URL.Query()
	page := paging.FromRequest(r)

	params := requeststore.SearchParams{
		ID:             strings.TrimSpace(q.Get("id")),
		RequesterEmail: strings.TrimSpace(q.Get("email")),
		Status:         strings.TrimSpace(q.Get("status")),
		BloodGroup:     strings.TrimSpace(q.Get("bloodGroup")),
		Division:       strings.TrimSpace(q.Get("division")),
		District:       strings.TrimSpace(q.Get("district")),
		RecipientName:  strings.TrimSpace(q.Get("recipientName")),
		Search:         strings.TrimSpace(q.Get("search")),
		SortBy:         strings.TrimSpace(q.Get("sortBy")),
		Order:          strings.TrimSpace(q.Get("order")),
		Skip:           page.Skip,
		Limit:          page.Limit,
	}

	result, err := h.Store.Search(ctx, params)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindValidation {
			httpjson.RespondError(w, h.Log, err)
			return
		}
		httpjson.RespondError(w, h.Log, apperr.Internal(err))
		return
	}

	httpjson.Respond(w, http.StatusOK, searchResponse{
		Requests:      result.Items,
		TotalRequests: result.Total,
	})
}
