package payment

import (
	"context"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

// Stripe implements Provider over Stripe Checkout in a single fixed
// currency. The API client is constructed once at startup.
type Stripe struct {
	api        *client.API
	currency   string
	successURL string
	cancelURL  string
}

// NewStripe builds a Stripe provider with its own API client.
func NewStripe(secretKey, currency, successURL, cancelURL string) *Stripe {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &Stripe{
		api:        api,
		currency:   currency,
		successURL: successURL,
		cancelURL:  cancelURL,
	}
}

// CreateCheckoutSession creates a hosted card-payment session embedding
// the donor's name and email as metadata and returns the redirect URL.
func (s *Stripe) CreateCheckoutSession(ctx context.Context, p CheckoutParams) (Session, error) {
	params := &stripe.CheckoutSessionParams{
		Params:             stripe.Params{Context: ctx},
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		CustomerEmail:      stripe.String(p.Email),
		ClientReferenceID:  stripe.String(p.ClientReference),
		SuccessURL:         stripe.String(s.successURL),
		CancelURL:          stripe.String(s.cancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(s.currency),
					UnitAmount: stripe.Int64(p.Amount * 100),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String("Donation Fund Contribution"),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
	}
	params.AddMetadata("name", p.Name)
	params.AddMetadata("email", p.Email)

	sess, err := s.api.CheckoutSessions.New(params)
	if err != nil {
		return Session{}, err
	}
	return fromStripeSession(sess), nil
}

// GetCheckoutSession retrieves a session by ID.
func (s *Stripe) GetCheckoutSession(ctx context.Context, id string) (Session, error) {
	params := &stripe.CheckoutSessionParams{Params: stripe.Params{Context: ctx}}
	sess, err := s.api.CheckoutSessions.Get(id, params)
	if err != nil {
		return Session{}, err
	}
	return fromStripeSession(sess), nil
}

func fromStripeSession(sess *stripe.CheckoutSession) Session {
	out := Session{
		ID:            sess.ID,
		URL:           sess.URL,
		PaymentStatus: string(sess.PaymentStatus),
		AmountTotal:   sess.AmountTotal,
		Currency:      string(sess.Currency),
		Metadata:      sess.Metadata,
	}
	for _, t := range sess.PaymentMethodTypes {
		out.PaymentMethodTypes = append(out.PaymentMethodTypes, string(t))
	}
	if sess.CustomerDetails != nil {
		out.CustomerEmail = sess.CustomerDetails.Email
		out.CardholderName = sess.CustomerDetails.Name
	}
	if sess.PaymentIntent != nil {
		out.PaymentIntentID = sess.PaymentIntent.ID
	}
	return out
}
