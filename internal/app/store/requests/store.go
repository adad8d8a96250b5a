package requeststore

import (
	"context"
	"errors"
	"time"

	"github.com/lifelinkhq/lifelink/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	// ErrNotFound is returned when no donation request has the given ID.
	ErrNotFound = errors.New("donation request not found")

	// ErrTerminalState is returned when a mutation targets a request whose
	// status is done or cancel. Also returned when the guarded update
	// matches nothing because a concurrent call moved the request to a
	// terminal state between the read and the write.
	ErrTerminalState = errors.New("terminal state, no further mutation")

	// ErrInvalidStatus is returned for a status outside the four-value enum.
	ErrInvalidStatus = errors.New(`status must be "pending"|"inprogress"|"done"|"cancel"`)
)

// Store manages the donation_requests collection.
type Store struct {
	c *mongo.Collection
}

// New creates a donation request Store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("donation_requests")}
}

// Create inserts a new request. Status defaults to pending when empty and
// must otherwise be a valid enum value; field-presence validation happens
// at the API boundary before this is called, so nothing is half-written.
func (s *Store) Create(ctx context.Context, req models.DonationRequest) (models.DonationRequest, error) {
	req.ID = primitive.NewObjectID()
	if req.Status == "" {
		req.Status = models.StatusPending
	}
	if !models.ValidStatus(req.Status) {
		return models.DonationRequest{}, ErrInvalidStatus
	}

	now := time.Now().UTC()
	req.CreatedAt = now
	req.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, req); err != nil {
		return models.DonationRequest{}, err
	}
	return req, nil
}

// GetByID loads a request by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.DonationRequest, error) {
	var req models.DonationRequest
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&req); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &req, nil
}

// Patch is the allow-listed set of mutable request fields. A nil field is
// absent from the update entirely; caller-supplied keys outside this
// struct never reach storage.
type Patch struct {
	Status     *string
	DonorName  *string
	DonorEmail *string

	RecipientName     *string
	RecipientDivision *string
	RecipientDistrict *string
	RecipientUpazila  *string
	RecipientUnion    *string
	HospitalName      *string
	FullAddress       *string
	BloodGroup        *string
	DonationDate      *string
	DonationTime      *string
	RequestMessage    *string
}

// set builds the $set document from the patch's present fields.
func (p Patch) set() bson.M {
	set := bson.M{}
	put := func(key string, v *string) {
		if v != nil {
			set[key] = *v
		}
	}
	put("status", p.Status)
	put("donor_name", p.DonorName)
	put("donor_email", p.DonorEmail)
	put("recipient_name", p.RecipientName)
	put("recipient_division", p.RecipientDivision)
	put("recipient_district", p.RecipientDistrict)
	put("recipient_upazila", p.RecipientUpazila)
	put("recipient_union", p.RecipientUnion)
	put("hospital_name", p.HospitalName)
	put("full_address", p.FullAddress)
	put("blood_group", p.BloodGroup)
	put("donation_date", p.DonationDate)
	put("donation_time", p.DonationTime)
	put("request_message", p.RequestMessage)
	return set
}

// Transition applies a guarded partial update to a request.
//
// The write is a single conditional FindOneAndUpdate matching the ID AND
// a non-terminal status. Two concurrent transitions on the same request
// serialize on that one storage operation: whichever lands second against
// a now-terminal document matches nothing and fails with ErrTerminalState.
func (s *Store) Transition(ctx context.Context, id primitive.ObjectID, patch Patch) (*models.DonationRequest, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if models.TerminalStatus(current.Status) {
		return nil, ErrTerminalState
	}
	if patch.Status != nil && !models.ValidStatus(*patch.Status) {
		return nil, ErrInvalidStatus
	}

	set := patch.set()
	set["updated_at"] = time.Now().UTC()

	filter := bson.M{
		"_id":    id,
		"status": bson.M{"$in": bson.A{models.StatusPending, models.StatusInProgress}},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.DonationRequest
	err = s.c.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		// The request existed moments ago, so a concurrent transition
		// must have moved it to a terminal state.
		return nil, ErrTerminalState
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a request and returns the deleted snapshot.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (*models.DonationRequest, error) {
	var deleted models.DonationRequest
	err := s.c.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&deleted)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &deleted, nil
}

// ListByRequester returns one requester's requests, newest first.
func (s *Store) ListByRequester(ctx context.Context, email string) ([]models.DonationRequest, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{"requester_email": email}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	requests := []models.DonationRequest{}
	if err := cur.All(ctx, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}
