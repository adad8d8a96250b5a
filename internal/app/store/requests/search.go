package requeststore

import (
	"context"
	"regexp"
	"strings"

	"github.com/lifelinkhq/lifelink/internal/app/system/paging"
	"github.com/lifelinkhq/lifelink/internal/domain/apperr"
	"github.com/lifelinkhq/lifelink/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// sortFields is the allow-list of caller-facing sort keys. Anything else
// silently falls back to createdAt rather than failing.
var sortFields = map[string]string{
	"createdAt":    "created_at",
	"donationDate": "donation_date",
	"status":       "status",
	"bloodGroup":   "blood_group",
}

// searchFields is the fixed whitelist of fields the free-text token is
// matched against.
var searchFields = []string{"recipient_district", "recipient_upazila", "blood_group"}

// SearchParams is the sanitized-on-use specification for a pool search.
// Empty strings mean "no constraint".
type SearchParams struct {
	ID             string
	RequesterEmail string
	Status         string
	BloodGroup     string
	Division       string
	District       string
	RecipientName  string

	Search string

	SortBy string
	Order  string

	Skip  int64
	Limit int64
}

// SearchResult holds one page of matching requests plus the total count
// of all matches.
type SearchResult struct {
	Items []models.DonationRequest
	Total int64
}

// Filter builds the bson filter from the supplied criteria: equality
// constraints ANDed together, plus an ORed case-insensitive contains
// group when a search token is present. A malformed ID is a validation
// error since it can never match anything.
func (p SearchParams) Filter() (bson.M, error) {
	filter := bson.M{}

	if p.ID != "" {
		oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(p.ID))
		if err != nil {
			return nil, apperr.Validation("invalid request id %q", p.ID)
		}
		filter["_id"] = oid
	}
	if p.RequesterEmail != "" {
		filter["requester_email"] = p.RequesterEmail
	}
	if p.Status != "" {
		filter["status"] = p.Status
	}
	if p.BloodGroup != "" {
		filter["blood_group"] = p.BloodGroup
	}
	if p.Division != "" {
		filter["recipient_division"] = p.Division
	}
	if p.District != "" {
		filter["recipient_district"] = p.District
	}
	if p.RecipientName != "" {
		filter["recipient_name"] = p.RecipientName
	}

	if tok := strings.TrimSpace(p.Search); tok != "" {
		pattern := regexp.QuoteMeta(tok)
		or := make(bson.A, 0, len(searchFields))
		for _, f := range searchFields {
			or = append(or, bson.M{f: primitive.Regex{Pattern: pattern, Options: "i"}})
		}
		filter["$or"] = or
	}

	return filter, nil
}

// Sort resolves the allow-listed sort specification. Unknown sortBy keys
// fall back to created_at; order defaults to descending.
func (p SearchParams) Sort() bson.D {
	field, ok := sortFields[p.SortBy]
	if !ok {
		field = "created_at"
	}
	dir := -1
	if strings.EqualFold(p.Order, "asc") {
		dir = 1
	}
	return bson.D{{Key: field, Value: dir}, {Key: "_id", Value: dir}}
}

// Search runs the count and the sorted, paginated fetch against the same
// filter. The two reads share no snapshot, so total and items may
// disagree under concurrent writes; callers treat the pair as eventually
// consistent.
func (s *Store) Search(ctx context.Context, p SearchParams) (SearchResult, error) {
	filter, err := p.Filter()
	if err != nil {
		return SearchResult{}, err
	}
	page := paging.Clamp(p.Skip, p.Limit)

	total, err := s.c.CountDocuments(ctx, filter)
	if err != nil {
		return SearchResult{}, err
	}

	opts := options.Find().
		SetSort(p.Sort()).
		SetSkip(page.Skip).
		SetLimit(page.Limit)

	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return SearchResult{}, err
	}
	defer cur.Close(ctx)

	items := []models.DonationRequest{}
	if err := cur.All(ctx, &items); err != nil {
		return SearchResult{}, err
	}

	return SearchResult{Items: items, Total: total}, nil
}
