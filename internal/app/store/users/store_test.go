package userstore_test

import (
	"testing"

	userstore "github.com/lifelinkhq/lifelink/internal/app/store/users"
	"github.com/lifelinkhq/lifelink/internal/app/system/indexes"
	"github.com/lifelinkhq/lifelink/internal/domain/models"
	"github.com/lifelinkhq/lifelink/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func strptr(s string) *string { return &s }

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.User{
		Name:  "  Rahim   Uddin ",
		Email: "Rahim@Example.COM",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.ID == primitive.NilObjectID {
		t.Error("expected ID to be assigned")
	}
	if created.Name != "Rahim Uddin" {
		t.Errorf("expected normalized name, got %q", created.Name)
	}
	if created.Email != "rahim@example.com" {
		t.Errorf("expected normalized email, got %q", created.Email)
	}
	if created.Role != models.RoleDonor {
		t.Errorf("expected default role %q, got %q", models.RoleDonor, created.Role)
	}
	if created.Status != models.UserActive {
		t.Errorf("expected default status %q, got %q", models.UserActive, created.Status)
	}
}

func TestStore_Create_DuplicateEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	_, err := store.Create(ctx, models.User{Name: "Rahim", Email: "rahim@example.com"})
	if err != nil {
		t.Fatalf("first Create failed: %v", err)
	}

	// Same email, different casing: still a duplicate after normalization.
	_, err = store.Create(ctx, models.User{Name: "Other", Email: "RAHIM@example.com"})
	if err != userstore.ErrDuplicateEmail {
		t.Errorf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestStore_Create_BadRole(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.Create(ctx, models.User{
		Name:  "Rahim",
		Email: "rahim@example.com",
		Role:  "superuser",
	})
	if err != userstore.ErrBadRole {
		t.Errorf("expected ErrBadRole, got %v", err)
	}
}

func TestStore_GetByEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateDonor(ctx, "Rahim Uddin", "rahim@example.com")

	u, err := store.GetByEmail(ctx, "  RAHIM@example.com ")
	if err != nil {
		t.Fatalf("GetByEmail failed: %v", err)
	}
	if u.Name != "Rahim Uddin" {
		t.Errorf("unexpected user: %+v", u)
	}

	_, err = store.GetByEmail(ctx, "missing@example.com")
	if err != userstore.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_List(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateDonor(ctx, "Donor One", "d1@example.com")
	fixtures.CreateDonor(ctx, "Donor Two", "d2@example.com")
	fixtures.CreateAdmin(ctx, "Admin", "admin@example.com")

	users, total, err := store.List(ctx, userstore.ListParams{Role: models.RoleDonor})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if total != 2 {
		t.Errorf("expected total 2, got %d", total)
	}
	if len(users) != 2 {
		t.Errorf("expected 2 users, got %d", len(users))
	}
}

func TestStore_Patch(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u := fixtures.CreateDonor(ctx, "Rahim Uddin", "rahim@example.com")

	updated, err := store.Patch(ctx, u.ID, userstore.Update{
		Status: strptr(models.UserBlocked),
	})
	if err != nil {
		t.Fatalf("Patch failed: %v", err)
	}
	if updated.Status != models.UserBlocked {
		t.Errorf("expected status %q, got %q", models.UserBlocked, updated.Status)
	}
	// Untouched fields survive the patch.
	if updated.Name != "Rahim Uddin" {
		t.Errorf("expected name unchanged, got %q", updated.Name)
	}

	_, err = store.Patch(ctx, u.ID, userstore.Update{Status: strptr("suspended")})
	if err != userstore.ErrBadStatus {
		t.Errorf("expected ErrBadStatus, got %v", err)
	}

	_, err = store.Patch(ctx, primitive.NewObjectID(), userstore.Update{Name: strptr("X")})
	if err != userstore.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u := fixtures.CreateDonor(ctx, "Rahim Uddin", "rahim@example.com")

	deleted, err := store.Delete(ctx, u.ID)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if deleted.Email != "rahim@example.com" {
		t.Errorf("deleted snapshot email: got %q", deleted.Email)
	}

	_, err = store.GetByID(ctx, u.ID)
	if err != userstore.ErrNotFound {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}
