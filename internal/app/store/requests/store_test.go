package requeststore_test

import (
	"testing"

	requeststore "github.com/lifelinkhq/lifelink/internal/app/store/requests"
	"github.com/lifelinkhq/lifelink/internal/domain/models"
	"github.com/lifelinkhq/lifelink/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func strptr(s string) *string { return &s }

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := requeststore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	req := models.DonationRequest{
		RequesterName:     "Rahim Uddin",
		RequesterEmail:    "rahim@example.com",
		RecipientName:     "Karim Mia",
		RecipientDivision: "Dhaka",
		RecipientDistrict: "Dhaka",
		RecipientUpazila:  "Savar",
		RecipientUnion:    "Tetuljhora",
		HospitalName:      "Enam Medical College",
		FullAddress:       "Savar, Dhaka",
		BloodGroup:        "B+",
		DonationDate:      "2026-09-10",
		DonationTime:      "09:00",
		RequestMessage:    "Needed before surgery",
	}

	created, err := store.Create(ctx, req)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.ID == primitive.NilObjectID {
		t.Error("expected ID to be assigned")
	}

	// Status defaults to pending when absent
	if created.Status != models.StatusPending {
		t.Errorf("expected status %q, got %q", models.StatusPending, created.Status)
	}

	if created.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
	if created.UpdatedAt.IsZero() {
		t.Error("expected UpdatedAt to be set")
	}
}

func TestStore_Create_InvalidStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := requeststore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	req := models.DonationRequest{
		RequesterEmail: "rahim@example.com",
		Status:         "fulfilled",
	}

	_, err := store.Create(ctx, req)
	if err != requeststore.ErrInvalidStatus {
		t.Errorf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestStore_Transition_Lifecycle(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := requeststore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	req := fixtures.CreateRequest(ctx, "rahim@example.com", models.StatusPending)

	// pending -> inprogress, with a donor committing
	updated, err := store.Transition(ctx, req.ID, requeststore.Patch{
		Status:     strptr(models.StatusInProgress),
		DonorName:  strptr("Salma Akter"),
		DonorEmail: strptr("salma@example.com"),
	})
	if err != nil {
		t.Fatalf("Transition to inprogress failed: %v", err)
	}
	if updated.Status != models.StatusInProgress {
		t.Errorf("expected status %q, got %q", models.StatusInProgress, updated.Status)
	}
	if updated.DonorName != "Salma Akter" {
		t.Errorf("expected donor name to be set, got %q", updated.DonorName)
	}
	if !updated.UpdatedAt.After(req.UpdatedAt) {
		t.Error("expected UpdatedAt to advance")
	}

	// inprogress -> done
	updated, err = store.Transition(ctx, req.ID, requeststore.Patch{
		Status: strptr(models.StatusDone),
	})
	if err != nil {
		t.Fatalf("Transition to done failed: %v", err)
	}
	if updated.Status != models.StatusDone {
		t.Errorf("expected status %q, got %q", models.StatusDone, updated.Status)
	}

	// done is terminal: any further mutation is rejected
	_, err = store.Transition(ctx, req.ID, requeststore.Patch{
		Status: strptr(models.StatusCancel),
	})
	if err != requeststore.ErrTerminalState {
		t.Errorf("expected ErrTerminalState, got %v", err)
	}
}

func TestStore_Transition_TerminalCancel(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := requeststore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	req := fixtures.CreateRequest(ctx, "rahim@example.com", models.StatusCancel)

	// Even a non-status field edit is rejected once terminal.
	_, err := store.Transition(ctx, req.ID, requeststore.Patch{
		HospitalName: strptr("Another Hospital"),
	})
	if err != requeststore.ErrTerminalState {
		t.Errorf("expected ErrTerminalState, got %v", err)
	}
}

func TestStore_Transition_InvalidStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := requeststore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	req := fixtures.CreateRequest(ctx, "rahim@example.com", models.StatusPending)

	_, err := store.Transition(ctx, req.ID, requeststore.Patch{
		Status: strptr("archived"),
	})
	if err != requeststore.ErrInvalidStatus {
		t.Errorf("expected ErrInvalidStatus, got %v", err)
	}

	// The record must be unchanged after the rejected write.
	current, err := store.GetByID(ctx, req.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if current.Status != models.StatusPending {
		t.Errorf("expected status unchanged, got %q", current.Status)
	}
}

func TestStore_Transition_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := requeststore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.Transition(ctx, primitive.NewObjectID(), requeststore.Patch{
		Status: strptr(models.StatusDone),
	})
	if err != requeststore.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := requeststore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	req := fixtures.CreateRequest(ctx, "rahim@example.com", models.StatusPending)

	deleted, err := store.Delete(ctx, req.ID)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if deleted.ID != req.ID {
		t.Errorf("deleted snapshot ID: got %v, want %v", deleted.ID, req.ID)
	}

	_, err = store.GetByID(ctx, req.ID)
	if err != requeststore.ErrNotFound {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}

	// Deleting again reports not found.
	_, err = store.Delete(ctx, req.ID)
	if err != requeststore.ErrNotFound {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestStore_ListByRequester(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := requeststore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateRequest(ctx, "rahim@example.com", models.StatusPending)
	fixtures.CreateRequest(ctx, "rahim@example.com", models.StatusDone)
	fixtures.CreateRequest(ctx, "other@example.com", models.StatusPending)

	requests, err := store.ListByRequester(ctx, "rahim@example.com")
	if err != nil {
		t.Fatalf("ListByRequester failed: %v", err)
	}
	if len(requests) != 2 {
		t.Errorf("expected 2 requests, got %d", len(requests))
	}
	for _, r := range requests {
		if r.RequesterEmail != "rahim@example.com" {
			t.Errorf("unexpected requester %q in results", r.RequesterEmail)
		}
	}

	// Unknown requester gets an empty slice, not an error.
	requests, err = store.ListByRequester(ctx, "nobody@example.com")
	if err != nil {
		t.Fatalf("ListByRequester failed: %v", err)
	}
	if len(requests) != 0 {
		t.Errorf("expected 0 requests, got %d", len(requests))
	}
}
