package userstore

import (
	"context"
	"errors"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/lifelinkhq/lifelink/internal/app/system/normalize"
	"github.com/lifelinkhq/lifelink/internal/app/system/paging"
	"github.com/lifelinkhq/lifelink/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	// ErrDuplicateEmail is returned when attempting to create a user with an email that already exists.
	ErrDuplicateEmail = errors.New("a user with this email already exists")

	// ErrNotFound is returned when no user has the given ID.
	ErrNotFound = errors.New("user not found")

	// ErrBadRole and ErrBadStatus reject values outside the enums.
	ErrBadRole   = errors.New(`role must be "donor"|"admin"|"volunteer"`)
	ErrBadStatus = errors.New(`status must be "active"|"blocked"`)
)

// Store manages the users collection.
type Store struct {
	c *mongo.Collection
}

// New creates a user Store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

// Create inserts a new user after normalizing & validating fields.
// Role defaults to donor and status to active.
func (s *Store) Create(ctx context.Context, u models.User) (models.User, error) {
	u.ID = primitive.NewObjectID()
	u.Name = normalize.Name(u.Name)
	u.Email = normalize.Email(u.Email)
	if u.Role == "" {
		u.Role = models.RoleDonor
	}
	if u.Status == "" {
		u.Status = models.UserActive
	}

	if !models.ValidRole(u.Role) {
		return models.User{}, ErrBadRole
	}
	if !models.ValidUserStatus(u.Status) {
		return models.User{}, ErrBadStatus
	}

	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, u); err != nil {
		if wafflemongo.IsDup(err) {
			return models.User{}, ErrDuplicateEmail
		}
		return models.User{}, err
	}
	return u, nil
}

// GetByID loads a user by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// GetByEmail looks up a user by case-insensitive email.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Decode(&u); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// ListParams filters the user listing. Empty strings mean no constraint.
type ListParams struct {
	Role   string
	Status string
	Skip   int64
	Limit  int64
}

// List returns users matching the filters, newest first, plus the total
// count for the same filter.
func (s *Store) List(ctx context.Context, p ListParams) ([]models.User, int64, error) {
	filter := bson.M{}
	if p.Role != "" {
		filter["role"] = p.Role
	}
	if p.Status != "" {
		filter["status"] = p.Status
	}

	total, err := s.c.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	page := paging.Clamp(p.Skip, p.Limit)
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(page.Skip).
		SetLimit(page.Limit)

	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	users := []models.User{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// Update holds the fields that can be patched on a user. A nil field is
// left untouched.
type Update struct {
	Name   *string
	Role   *string
	Status *string
}

// Patch applies an allow-listed partial update and returns the updated
// user. The whole update is one atomic $set.
func (s *Store) Patch(ctx context.Context, id primitive.ObjectID, upd Update) (*models.User, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if upd.Name != nil {
		set["name"] = normalize.Name(*upd.Name)
	}
	if upd.Role != nil {
		if !models.ValidRole(*upd.Role) {
			return nil, ErrBadRole
		}
		set["role"] = *upd.Role
	}
	if upd.Status != nil {
		if !models.ValidUserStatus(*upd.Status) {
			return nil, ErrBadStatus
		}
		set["status"] = *upd.Status
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var u models.User
	err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Delete removes a user and returns the deleted snapshot.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var deleted models.User
	err := s.c.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&deleted)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &deleted, nil
}
