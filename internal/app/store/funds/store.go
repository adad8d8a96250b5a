package fundstore

import (
	"context"
	"errors"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/lifelinkhq/lifelink/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrMissingTransactionID is returned when a record arrives without the
// provider's payment-intent identifier; the idempotency key cannot be empty.
var ErrMissingTransactionID = errors.New("fund record requires a transaction id")

// Store manages the funds collection.
type Store struct {
	c *mongo.Collection
}

// New creates a fund Store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("funds")}
}

// CreateOrGet inserts a fund record keyed on its transaction ID. If a
// record with the same transaction ID already exists (a re-confirmation
// of the same checkout session) the existing record is returned
// unchanged and created is false. The unique index on transaction_id is
// the serialization point; there is no read-then-write window.
func (s *Store) CreateOrGet(ctx context.Context, f models.FundRecord) (models.FundRecord, bool, error) {
	if f.TransactionID == "" {
		return models.FundRecord{}, false, ErrMissingTransactionID
	}

	f.ID = primitive.NewObjectID()
	f.Status = models.FundStatusPaid
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now().UTC()
	}

	_, err := s.c.InsertOne(ctx, f)
	if err == nil {
		return f, true, nil
	}
	if !wafflemongo.IsDup(err) {
		return models.FundRecord{}, false, err
	}

	existing, err := s.GetByTransactionID(ctx, f.TransactionID)
	if err != nil {
		return models.FundRecord{}, false, err
	}
	return *existing, false, nil
}

// GetByTransactionID loads the record for one payment intent.
func (s *Store) GetByTransactionID(ctx context.Context, txID string) (*models.FundRecord, error) {
	var f models.FundRecord
	if err := s.c.FindOne(ctx, bson.M{"transaction_id": txID}).Decode(&f); err != nil {
		return nil, err
	}
	return &f, nil
}

// ListRecent returns the newest fund records up to limit.
func (s *Store) ListRecent(ctx context.Context, limit int64) ([]models.FundRecord, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	funds := []models.FundRecord{}
	if err := cur.All(ctx, &funds); err != nil {
		return nil, err
	}
	return funds, nil
}

// Count returns the number of fund records.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}
