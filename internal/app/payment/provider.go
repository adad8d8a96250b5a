// Package payment wraps the external payment provider behind a small
// interface so the reconciliation flow can be exercised without network
// calls. The only operations the platform consumes are "create a hosted
// checkout session" and "retrieve a session by ID".
package payment

import "context"

// Session payment statuses as reported by the provider.
const StatusPaid = "paid"

// CheckoutParams describes the session to create. Amount is in major
// currency units and must be positive; the caller validates before
// reaching the provider.
type CheckoutParams struct {
	Amount int64
	Email  string
	Name   string

	// ClientReference ties the session back to this platform's own
	// tracking; generated per checkout.
	ClientReference string
}

// Session is the provider-neutral view of a checkout session.
type Session struct {
	ID  string
	URL string

	PaymentStatus string

	// AmountTotal is in the provider's minor units (e.g. cents).
	AmountTotal int64
	Currency    string

	CustomerEmail  string
	CardholderName string

	// PaymentIntentID is the provider's charge/intent identifier; it is
	// the idempotency key for fund reconciliation.
	PaymentIntentID string

	PaymentMethodTypes []string
	Metadata           map[string]string
}

// Provider creates and retrieves hosted checkout sessions.
type Provider interface {
	CreateCheckoutSession(ctx context.Context, p CheckoutParams) (Session, error)
	GetCheckoutSession(ctx context.Context, id string) (Session, error)
}
