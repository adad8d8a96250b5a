package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Donation request statuses. Pending and inprogress are open states;
// done and cancel are terminal and accept no further mutation.
const (
	StatusPending    = "pending"
	StatusInProgress = "inprogress"
	StatusDone       = "done"
	StatusCancel     = "cancel"
)

// ValidStatus reports whether s is one of the four request statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusDone, StatusCancel:
		return true
	}
	return false
}

// TerminalStatus reports whether s is a terminal status.
func TerminalStatus(s string) bool {
	return s == StatusDone || s == StatusCancel
}

// DonationRequest is one request for blood, owned by its requester.
//
// JSON field names are camelCase because they are a contract with the
// frontend clients; bson names follow collection conventions.
type DonationRequest struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	RequesterName  string `bson:"requester_name" json:"requesterName"`
	RequesterEmail string `bson:"requester_email" json:"requesterEmail"`

	RecipientName     string `bson:"recipient_name" json:"recipientName"`
	RecipientDivision string `bson:"recipient_division" json:"recipientDivision"`
	RecipientDistrict string `bson:"recipient_district" json:"recipientDistrict"`
	RecipientUpazila  string `bson:"recipient_upazila" json:"recipientUpazila"`
	RecipientUnion    string `bson:"recipient_union" json:"recipientUnion"`

	HospitalName string `bson:"hospital_name" json:"hospitalName"`
	FullAddress  string `bson:"full_address" json:"fullAddress"`
	BloodGroup   string `bson:"blood_group" json:"bloodGroup"`

	DonationDate   string `bson:"donation_date" json:"donationDate"`
	DonationTime   string `bson:"donation_time" json:"donationTime"`
	RequestMessage string `bson:"request_message" json:"requestMessage"`

	Status string `bson:"status" json:"status"`

	// Set only after a donor commits to the request.
	DonorName  string `bson:"donor_name,omitempty" json:"donorName,omitempty"`
	DonorEmail string `bson:"donor_email,omitempty" json:"donorEmail,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
