package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FundStatusPaid is the only status the reconciler ever writes; a fund
// record exists only for a completed payment.
const FundStatusPaid = "paid"

// FundRecord is the durable representation of one completed payment
// contribution. TransactionID is the payment provider's payment-intent
// identifier and is unique across the collection, so there is at most
// one record per external payment.
type FundRecord struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	DonorName         string `bson:"donor_name" json:"donorName"`
	PaymentHolderName string `bson:"payment_holder_name" json:"paymentHolderName"`
	Email             string `bson:"email" json:"email"`

	// Amount in major currency units, converted from the provider's
	// minor-unit session total.
	Amount float64 `bson:"amount" json:"amount"`

	TransactionID      string   `bson:"transaction_id" json:"transactionId"`
	PaymentMethodTypes []string `bson:"payment_method_types" json:"paymentMethodTypes"`
	Status             string   `bson:"status" json:"status"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
