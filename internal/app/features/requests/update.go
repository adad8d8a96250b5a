package requests

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	requeststore "github.com/lifelinkhq/lifelink/internal/app/store/requests"
	"github.com/lifelinkhq/lifelink/internal/app/system/httpjson"
	"github.com/lifelinkhq/lifelink/internal/app/system/sanitize"
	"github.com/lifelinkhq/lifelink/internal/app/system/timeouts"
	"github.com/lifelinkhq/lifelink/internal/domain/apperr"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// transitionPayload is the allow-listed patch body. Pointer fields
// distinguish "absent" from "set to empty"; absent fields are dropped
// from the update. Any other JSON key is ignored at decode and never
// reaches storage.
type transitionPayload struct {
	Status     *string `json:"status"`
	DonorName  *string `json:"donorName"`
	DonorEmail *string `json:"donorEmail"`

	RecipientName     *string `json:"recipientName"`
	RecipientDivision *string `json:"recipientDivision"`
	RecipientDistrict *string `json:"recipientDistrict"`
	RecipientUpazila  *string `json:"recipientUpazila"`
	RecipientUnion    *string `json:"recipientUnion"`
	HospitalName      *string `json:"hospitalName"`
	FullAddress       *string `json:"fullAddress"`
	BloodGroup        *string `json:"bloodGroup"`
	DonationDate      *string `json:"donationDate"`
	DonationTime      *string `json:"donationTime"`
	RequestMessage    *string `json:"requestMessage"`
}

func clean(v *string) *string {
	if v == nil {
		return nil
	}
	s := sanitize.Text(*v)
	return &s
}

func (p transitionPayload) patch() requeststore.Patch {
	return requeststore.Patch{
		Status:            p.Status,
		DonorName:         clean(p.DonorName),
		DonorEmail:        clean(p.DonorEmail),
		RecipientName:     clean(p.RecipientName),
		RecipientDivision: clean(p.RecipientDivision),
		RecipientDistrict: clean(p.RecipientDistrict),
		RecipientUpazila:  clean(p.RecipientUpazila),
		RecipientUnion:    clean(p.RecipientUnion),
		HospitalName:      clean(p.HospitalName),
		FullAddress:       clean(p.FullAddress),
		BloodGroup:        clean(p.BloodGroup),
		DonationDate:      clean(p.DonationDate),
		DonationTime:      clean(p.DonationTime),
		RequestMessage:    clean(p.RequestMessage),
	}
}

// ServeTransition handles PATCH /donation-request-all/{id}.
//
// A request in a terminal state refuses every patch with 403. The
// update itself is a single conditional write in the store, so two
// racing transitions cannot both land.
func (h *Handler) ServeTransition(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.RespondError(w, h.Log, apperr.Validation("invalid request id"))
		return
	}

	var payload transitionPayload
	if err := httpjson.Decode(r, &payload); err != nil {
		httpjson.RespondError(w, h.Log, err)
		return
	}

	updated, err := h.Store.Transition(ctx, id, payload.patch())
	switch err {
	case nil:
	case requeststore.ErrNotFound:
		httpjson.RespondError(w, h.Log, apperr.NotFound("donation request not found"))
		return
	case requeststore.ErrTerminalState:
		httpjson.RespondErrorStatus(w, h.Log,
			apperr.Conflict("terminal state, no further mutation"), http.StatusForbidden)
		return
	case requeststore.ErrInvalidStatus:
		httpjson.RespondError(w, h.Log, apperr.Validation("%s", err.Error()))
		return
	default:
		httpjson.RespondError(w, h.Log, apperr.Internal(err))
		return
	}

	httpjson.Respond(w, http.StatusOK, updated)
}
