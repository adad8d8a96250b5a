package requests

import (
	"context"
	"net/http"

	requeststore "github.com/lifelinkhq/lifelink/internal/app/store/requests"
	"github.com/lifelinkhq/lifelink/internal/app/system/httpjson"
	"github.com/lifelinkhq/lifelink/internal/app/system/normalize"
	"github.com/lifelinkhq/lifelink/internal/app/system/sanitize"
	"github.com/lifelinkhq/lifelink/internal/app/system/timeouts"
	"github.com/lifelinkhq/lifelink/internal/domain/apperr"
	"github.com/lifelinkhq/lifelink/internal/domain/models"
)

// createPayload is the creation body. All fields except status are
// required; status may override the pending default at creation only.
type createPayload struct {
	RequesterName     string `json:"requesterName"`
	RequesterEmail    string `json:"requesterEmail"`
	RecipientName     string `json:"recipientName"`
	RecipientDivision string `json:"recipientDivision"`
	RecipientDistrict string `json:"recipientDistrict"`
	RecipientUpazila  string `json:"recipientUpazila"`
	RecipientUnion    string `json:"recipientUnion"`
	HospitalName      string `json:"hospitalName"`
	FullAddress       string `json:"fullAddress"`
	BloodGroup        string `json:"bloodGroup"`
	DonationDate      string `json:"donationDate"`
	DonationTime      string `json:"donationTime"`
	RequestMessage    string `json:"requestMessage"`
	Status            string `json:"status"`
}

// validate checks the thirteen required fields in declaration order and
// reports the first missing one.
func (p createPayload) validate() error {
	required := []struct {
		name, value string
	}{
		{"requesterName", p.RequesterName},
		{"requesterEmail", p.RequesterEmail},
		{"recipientName", p.RecipientName},
		{"recipientDivision", p.RecipientDivision},
		{"recipientDistrict", p.RecipientDistrict},
		{"recipientUpazila", p.RecipientUpazila},
		{"recipientUnion", p.RecipientUnion},
		{"hospitalName", p.HospitalName},
		{"fullAddress", p.FullAddress},
		{"bloodGroup", p.BloodGroup},
		{"donationDate", p.DonationDate},
		{"donationTime", p.DonationTime},
		{"requestMessage", p.RequestMessage},
	}
	for _, f := range required {
		if sanitize.Text(f.value) == "" {
			return apperr.Validation("%s is required", f.name)
		}
	}
	if p.Status != "" && !models.ValidStatus(p.Status) {
		return apperr.Validation("invalid status %q", p.Status)
	}
	return nil
}

// model builds the storage model from the sanitized payload.
func (p createPayload) model() models.DonationRequest {
	return models.DonationRequest{
		RequesterName:     sanitize.Text(p.RequesterName),
		RequesterEmail:    normalize.Email(p.RequesterEmail),
		RecipientName:     sanitize.Text(p.RecipientName),
		RecipientDivision: sanitize.Text(p.RecipientDivision),
		RecipientDistrict: sanitize.Text(p.RecipientDistrict),
		RecipientUpazila:  sanitize.Text(p.RecipientUpazila),
		RecipientUnion:    sanitize.Text(p.RecipientUnion),
		HospitalName:      sanitize.Text(p.HospitalName),
		FullAddress:       sanitize.Text(p.FullAddress),
		BloodGroup:        sanitize.Text(p.BloodGroup),
		DonationDate:      sanitize.Text(p.DonationDate),
		DonationTime:      sanitize.Text(p.DonationTime),
		RequestMessage:    sanitize.Text(p.RequestMessage),
		Status:            p.Status,
	}
}

// ServeCreate handles POST /donation-requests.
//
// Validation runs before any write; a missing field fails with 400 naming
// that field and nothing is persisted.
func (h *Handler) ServeCreate(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	var payload createPayload
	if err := httpjson.Decode(r, &payload); err != nil {
		httpjson.RespondError(w, h.Log, err)
		return
	}
	if err := payload.validate(); err != nil {
		httpjson.RespondError(w, h.Log, err)
		return
	}

	created, err := h.Store.Create(ctx, payload.model())
	if err != nil {
		if err == requeststore.ErrInvalidStatus {
			httpjson.RespondError(w, h.Log, apperr.Validation("invalid status"))
			return
		}
		httpjson.RespondError(w, h.Log, apperr.Internal(err))
		return
	}

	httpjson.Respond(w, http.StatusCreated, created)
}
