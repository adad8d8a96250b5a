package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/lifelinkhq/lifelink/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateRequest inserts a donation request with the given requester email
// and status, filling the remaining required fields with plausible values.
func (f *Fixtures) CreateRequest(ctx context.Context, requesterEmail, status string) models.DonationRequest {
	f.t.Helper()

	now := time.Now().UTC()
	req := models.DonationRequest{
		ID:                primitive.NewObjectID(),
		RequesterName:     "Test Requester",
		RequesterEmail:    requesterEmail,
		RecipientName:     "Test Recipient",
		RecipientDivision: "Dhaka",
		RecipientDistrict: "Dhaka",
		RecipientUpazila:  "Savar",
		RecipientUnion:    "Tetuljhora",
		HospitalName:      "Test General Hospital",
		FullAddress:       "12 Test Road, Dhaka",
		BloodGroup:        "A+",
		DonationDate:      "2026-09-15",
		DonationTime:      "10:30",
		RequestMessage:    "Urgent need for surgery",
		Status:            status,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	_, err := f.db.Collection("donation_requests").InsertOne(ctx, req)
	if err != nil {
		f.t.Fatalf("failed to create test donation request: %v", err)
	}

	return req
}

// CreateRequestWithDetails inserts a donation request with caller-chosen
// blood group and recipient district, for search tests.
func (f *Fixtures) CreateRequestWithDetails(ctx context.Context, requesterEmail, status, bloodGroup, district string) models.DonationRequest {
	f.t.Helper()

	req := f.CreateRequest(ctx, requesterEmail, status)
	_, err := f.db.Collection("donation_requests").UpdateByID(ctx, req.ID,
		map[string]any{"$set": map[string]any{
			"blood_group":        bloodGroup,
			"recipient_district": district,
		}})
	if err != nil {
		f.t.Fatalf("failed to adjust test donation request: %v", err)
	}
	req.BloodGroup = bloodGroup
	req.RecipientDistrict = district
	return req
}

// CreateFund inserts a paid fund record with the given transaction id.
func (f *Fixtures) CreateFund(ctx context.Context, email, transactionID string, amount float64) models.FundRecord {
	f.t.Helper()

	fund := models.FundRecord{
		ID:                 primitive.NewObjectID(),
		DonorName:          "Test Donor",
		PaymentHolderName:  "Test Holder",
		Email:              email,
		Amount:             amount,
		TransactionID:      transactionID,
		PaymentMethodTypes: []string{"card"},
		Status:             models.FundStatusPaid,
		CreatedAt:          time.Now().UTC(),
	}

	_, err := f.db.Collection("funds").InsertOne(ctx, fund)
	if err != nil {
		f.t.Fatalf("failed to create test fund record: %v", err)
	}

	return fund
}

// CreateUser inserts an account with the given role and active status.
func (f *Fixtures) CreateUser(ctx context.Context, name, email, role string) models.User {
	f.t.Helper()

	now := time.Now().UTC()
	user := models.User{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Email:     email,
		Role:      role,
		Status:    models.UserActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := f.db.Collection("users").InsertOne(ctx, user)
	if err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}

	return user
}

// CreateDonor inserts a donor account.
func (f *Fixtures) CreateDonor(ctx context.Context, name, email string) models.User {
	f.t.Helper()
	return f.CreateUser(ctx, name, email, models.RoleDonor)
}

// CreateAdmin inserts an admin account.
func (f *Fixtures) CreateAdmin(ctx context.Context, name, email string) models.User {
	f.t.Helper()
	return f.CreateUser(ctx, name, email, models.RoleAdmin)
}
