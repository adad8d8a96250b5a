package requests_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lifelinkhq/lifelink/internal/app/features/requests"
	"github.com/lifelinkhq/lifelink/internal/domain/models"
	"github.com/lifelinkhq/lifelink/internal/testutil"
	"go.uber.org/zap"
)

func validCreateBody() map[string]any {
	return map[string]any{
		"requesterName":     "Rahim Uddin",
		"requesterEmail":    "Rahim@Example.com",
		"recipientName":     "Karim Mia",
		"recipientDivision": "Dhaka",
		"recipientDistrict": "Dhaka",
		"recipientUpazila":  "Savar",
		"recipientUnion":    "Tetuljhora",
		"hospitalName":      "Enam Medical College",
		"fullAddress":       "Savar, Dhaka",
		"bloodGroup":        "B+",
		"donationDate":      "2026-09-10",
		"donationTime":      "09:00",
		"requestMessage":    "Needed before surgery",
	}
}

func TestServeCreate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := requests.NewHandler(db, zap.NewNop())

	req := testutil.NewJSONRequest(t, "POST", "/donation-requests", validCreateBody())
	rec := httptest.NewRecorder()

	handler.ServeCreate(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, rec.Code, rec.Body.String())
	}

	var created models.DonationRequest
	testutil.DecodeJSONBody(t, rec, &created)

	if created.Status != models.StatusPending {
		t.Errorf("expected default status %q, got %q", models.StatusPending, created.Status)
	}
	if created.RequesterEmail != "rahim@example.com" {
		t.Errorf("expected normalized email, got %q", created.RequesterEmail)
	}
	if created.ID.IsZero() {
		t.Error("expected assigned id in response")
	}
}

func TestServeCreate_MissingField(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := requests.NewHandler(db, zap.NewNop())

	body := validCreateBody()
	delete(body, "bloodGroup")

	req := testutil.NewJSONRequest(t, "POST", "/donation-requests", body)
	rec := httptest.NewRecorder()

	handler.ServeCreate(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}

	// The error names the missing field.
	var resp struct {
		Error struct {
			Kind    string `json:"kind"`
			Message string `json:"message"`
		} `json:"error"`
	}
	testutil.DecodeJSONBody(t, rec, &resp)
	if resp.Error.Kind != "validation" {
		t.Errorf("error kind: got %q, want %q", resp.Error.Kind, "validation")
	}
	if resp.Error.Message != "bloodGroup is required" {
		t.Errorf("error message: got %q", resp.Error.Message)
	}

	// Nothing was persisted.
	count, err := db.Collection("donation_requests").CountDocuments(req.Context(), map[string]any{})
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Errorf("expected no documents, got %d", count)
	}
}

func TestServeCreate_WhitespaceOnlyField(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := requests.NewHandler(db, zap.NewNop())

	body := validCreateBody()
	body["recipientName"] = "   "

	req := testutil.NewJSONRequest(t, "POST", "/donation-requests", body)
	rec := httptest.NewRecorder()

	handler.ServeCreate(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestServeListByRequester_RequiresEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := requests.NewHandler(db, zap.NewNop())

	req := httptest.NewRequest("GET", "/donation-requests", nil)
	rec := httptest.NewRecorder()

	handler.ServeListByRequester(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestServeListByRequester(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := requests.NewHandler(db, zap.NewNop())
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateRequest(ctx, "rahim@example.com", models.StatusPending)
	fixtures.CreateRequest(ctx, "other@example.com", models.StatusPending)

	req := httptest.NewRequest("GET", "/donation-requests?email=rahim@example.com", nil)
	rec := httptest.NewRecorder()

	handler.ServeListByRequester(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var resp struct {
		Requests []models.DonationRequest `json:"requests"`
	}
	testutil.DecodeJSONBody(t, rec, &resp)
	if len(resp.Requests) != 1 {
		t.Errorf("expected 1 request, got %d", len(resp.Requests))
	}
}

func TestServeSearch(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := requests.NewHandler(db, zap.NewNop())
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for i := 0; i < 3; i++ {
		fixtures.CreateRequest(ctx, "rahim@example.com", models.StatusPending)
	}
	fixtures.CreateRequest(ctx, "rahim@example.com", models.StatusDone)

	req := httptest.NewRequest("GET", "/donation-request-all?status=pending&limit=2", nil)
	rec := httptest.NewRecorder()

	handler.ServeSearch(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var resp struct {
		Requests      []models.DonationRequest `json:"requests"`
		TotalRequests int64                    `json:"totalRequests"`
	}
	testutil.DecodeJSONBody(t, rec, &resp)
	if len(resp.Requests) != 2 {
		t.Errorf("expected 2 requests in page, got %d", len(resp.Requests))
	}
	if resp.TotalRequests != 3 {
		t.Errorf("expected totalRequests 3, got %d", resp.TotalRequests)
	}
}

func TestServeSearch_BadID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := requests.NewHandler(db, zap.NewNop())

	req := httptest.NewRequest("GET", "/donation-request-all?id=nope", nil)
	rec := httptest.NewRecorder()

	handler.ServeSearch(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestServeTransition(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := requests.NewHandler(db, zap.NewNop())
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created := fixtures.CreateRequest(ctx, "rahim@example.com", models.StatusPending)

	body := map[string]any{
		"status":    models.StatusInProgress,
		"donorName": "Salma Akter",
	}
	req := testutil.NewJSONRequest(t, "PATCH", "/donation-request-all/"+created.ID.Hex(), body)
	req = testutil.WithChiURLParam(req, "id", created.ID.Hex())
	rec := httptest.NewRecorder()

	handler.ServeTransition(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}

	var updated models.DonationRequest
	testutil.DecodeJSONBody(t, rec, &updated)
	if updated.Status != models.StatusInProgress {
		t.Errorf("expected status %q, got %q", models.StatusInProgress, updated.Status)
	}
	if updated.DonorName != "Salma Akter" {
		t.Errorf("expected donor name set, got %q", updated.DonorName)
	}
}

func TestServeTransition_TerminalState(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := requests.NewHandler(db, zap.NewNop())
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created := fixtures.CreateRequest(ctx, "rahim@example.com", models.StatusDone)

	body := map[string]any{"status": models.StatusCancel}
	req := testutil.NewJSONRequest(t, "PATCH", "/donation-request-all/"+created.ID.Hex(), body)
	req = testutil.WithChiURLParam(req, "id", created.ID.Hex())
	rec := httptest.NewRecorder()

	handler.ServeTransition(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected status %d, got %d", http.StatusForbidden, rec.Code)
	}
}

func TestServeTransition_InvalidID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := requests.NewHandler(db, zap.NewNop())

	req := testutil.NewJSONRequest(t, "PATCH", "/donation-request-all/nope", map[string]any{})
	req = testutil.WithChiURLParam(req, "id", "nope")
	rec := httptest.NewRecorder()

	handler.ServeTransition(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestServeDelete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := requests.NewHandler(db, zap.NewNop())
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created := fixtures.CreateRequest(ctx, "rahim@example.com", models.StatusPending)

	req := httptest.NewRequest("DELETE", "/donation-request-all/"+created.ID.Hex(), nil)
	req = testutil.WithChiURLParam(req, "id", created.ID.Hex())
	rec := httptest.NewRecorder()

	handler.ServeDelete(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var deleted models.DonationRequest
	testutil.DecodeJSONBody(t, rec, &deleted)
	if deleted.ID != created.ID {
		t.Errorf("deleted snapshot id: got %v, want %v", deleted.ID, created.ID)
	}

	// Second delete reports not found.
	rec = httptest.NewRecorder()
	req = httptest.NewRequest("DELETE", "/donation-request-all/"+created.ID.Hex(), nil)
	req = testutil.WithChiURLParam(req, "id", created.ID.Hex())
	handler.ServeDelete(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status %d on second delete, got %d", http.StatusNotFound, rec.Code)
	}
}
