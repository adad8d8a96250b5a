package payments

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/lifelinkhq/lifelink/internal/app/payment"
	"github.com/lifelinkhq/lifelink/internal/app/system/httpjson"
	"github.com/lifelinkhq/lifelink/internal/app/system/timeouts"
	"github.com/lifelinkhq/lifelink/internal/domain/apperr"
	"github.com/lifelinkhq/lifelink/internal/domain/models"
	"go.uber.org/zap"
)

// Placeholders used when the provider reports no name. The session
// metadata name is donor-supplied; the cardholder name comes from the
// card itself and may legitimately differ.
const (
	fallbackDonorName  = "Anonymous"
	fallbackHolderName = "Unknown"
)

// confirmPayload is the body for POST /donation-payment-info.
type confirmPayload struct {
	SessionID string `json:"sessionId"`
}

// confirmResponse reports the reconciled fund record.
type confirmResponse struct {
	Success  bool              `json:"success"`
	Donation models.FundRecord `json:"donation"`
}

// fundFromSession derives the durable fund record from a paid checkout
// session. The provider reports amounts in minor units.
func fundFromSession(sess payment.Session) models.FundRecord {
	donor := strings.TrimSpace(sess.Metadata["name"])
	if donor == "" {
		donor = fallbackDonorName
	}
	holder := strings.TrimSpace(sess.CardholderName)
	if holder == "" {
		holder = fallbackHolderName
	}
	return models.FundRecord{
		DonorName:          donor,
		PaymentHolderName:  holder,
		Email:              sess.CustomerEmail,
		Amount:             float64(sess.AmountTotal) / 100,
		TransactionID:      sess.PaymentIntentID,
		PaymentMethodTypes: sess.PaymentMethodTypes,
		Status:             models.FundStatusPaid,
		CreatedAt:          time.Now().UTC(),
	}
}

// ServeConfirm handles POST /donation-payment-info.
//
// Confirmation is idempotent on the session's payment intent: a retry,
// including one after a client-side timeout, returns the record written
// by the first confirmation instead of inserting a duplicate.
func (h *Handler) ServeConfirm(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	var payload confirmPayload
	if err := httpjson.Decode(r, &payload); err != nil {
		httpjson.RespondError(w, h.Log, err)
		return
	}
	sessionID := strings.TrimSpace(payload.SessionID)
	if sessionID == "" {
		httpjson.RespondError(w, h.Log, apperr.Validation("sessionId is required"))
		return
	}

	sess, err := h.Provider.GetCheckoutSession(ctx, sessionID)
	if err != nil {
		httpjson.RespondError(w, h.Log, apperr.Upstream("could not retrieve checkout session", err))
		return
	}
	if sess.PaymentStatus != payment.StatusPaid {
		httpjson.RespondError(w, h.Log, apperr.Conflict("payment not completed"))
		return
	}
	if sess.PaymentIntentID == "" {
		httpjson.RespondError(w, h.Log,
			apperr.Upstream("session has no payment intent", nil))
		return
	}

	fund, created, err := h.Funds.CreateOrGet(ctx, fundFromSession(sess))
	if err != nil {
		httpjson.RespondError(w, h.Log, apperr.Internal(err))
		return
	}
	if !created {
		h.Log.Info("payment already reconciled",
			zap.String("transaction_id", fund.TransactionID))
	}

	httpjson.Respond(w, http.StatusOK, confirmResponse{Success: true, Donation: fund})
}
