package lab

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/WailSalutem-Health-Care/clinic-service/internal/clock"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/messaging"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/patient"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/store"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/testutil"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/validation"
)

var fixedNow = clock.Fixed(time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC))

func newTestService(t *testing.T) (*Service, *testutil.MockPublisher) {
	t.Helper()
	kv := store.NewMemoryKV()
	pub := testutil.NewMockPublisher()
	svc := NewService(NewRepository(kv, pub), NewCatalogRepository(kv), patient.NewRepository(kv, nil), fixedNow)
	return svc, pub
}

func cost(v float64) *float64 { return &v }

func TestCreateRequest_PrefillsAndTotals(t *testing.T) {
	service, pub := newTestService(t)

	r, err := service.CreateRequest(context.Background(), CreateRequest{
		PatientID: "1",
		Tests: []TestLine{
			{Name: "Lipid Profile"},
			{Name: "HbA1c", Cost: cost(180)},
			{Name: "Allergy Panel"},
		},
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if r.TotalCost != 530 {
		t.Errorf("Expected total 530, got %v", r.TotalCost)
	}
	if r.Tests[2].Cost != 0 {
		t.Errorf("Expected unlisted test to cost 0, got %v", r.Tests[2].Cost)
	}
	if r.DoctorID != External {
		t.Errorf("Expected EXTERNAL doctor, got %q", r.DoctorID)
	}
	if r.Status != StatusPending || r.Date != "2026-10-19T09:00:00Z" {
		t.Errorf("Unexpected status/date %q %q", r.Status, r.Date)
	}
	if !strings.HasPrefix(r.ID, "LAB-") || len(r.ID) != 9 {
		t.Errorf("Unexpected id %q", r.ID)
	}
	pub.AssertEventPublished(t, messaging.EventLabRequested)
}

func TestCreateRequest_Validation(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.CreateRequest(context.Background(), CreateRequest{})
	fields, ok := validation.Fields(err)
	if !ok {
		t.Fatalf("Expected validation error, got %v", err)
	}
	if len(fields) != 2 {
		t.Errorf("Expected patient and tests failures, got %v", fields)
	}

	_, err = service.CreateRequest(context.Background(), CreateRequest{
		PatientID: "1",
		Tests:     []TestLine{{Name: "CBC", Cost: cost(-1)}},
	})
	if _, ok := validation.Fields(err); !ok {
		t.Errorf("Expected negative cost to fail validation, got %v", err)
	}
}

func TestCreateRequest_TotalUnaffectedByCatalogEdits(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	r, err := service.CreateRequest(ctx, CreateRequest{PatientID: "1", Tests: []TestLine{{Name: "Vitamin D"}}})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if _, err := service.UpdateCatalogTest(ctx, "6", CatalogRequest{Name: "Vitamin D", DefaultCost: 999}); err != nil {
		t.Fatalf("UpdateCatalogTest failed: %v", err)
	}

	got, _ := service.GetRequest(ctx, r.ID)
	if got.TotalCost != 800 || got.Tests[0].Cost != 800 {
		t.Errorf("Expected captured cost 800, got %+v", got)
	}
	if c, _ := service.DefaultCost(ctx, "Vitamin D"); c != 999 {
		t.Errorf("Expected new default 999, got %v", c)
	}
}

func TestListRequests_NewestFirstAndSearch(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	first, _ := service.CreateRequest(ctx, CreateRequest{PatientID: "1", Tests: []TestLine{{Name: "HbA1c"}}})
	second, _ := service.CreateRequest(ctx, CreateRequest{PatientID: "ghost", Tests: []TestLine{{Name: "HbA1c"}}})

	all, err := service.ListRequests(ctx, "")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(all) != 2 || all[0].ID != second.ID {
		t.Fatalf("Expected newest request first, got %+v", all)
	}

	byName, _ := service.ListRequests(ctx, "SMITH")
	if len(byName) != 1 || byName[0].ID != first.ID {
		t.Errorf("Expected match on patient last name, got %+v", byName)
	}

	byID, _ := service.ListRequests(ctx, strings.ToLower(second.ID))
	if len(byID) != 1 || byID[0].ID != second.ID {
		t.Errorf("Expected match on request id, got %+v", byID)
	}
}

func TestUpdateStatus(t *testing.T) {
	service, pub := newTestService(t)
	ctx := context.Background()

	r, _ := service.CreateRequest(ctx, CreateRequest{PatientID: "1", Tests: []TestLine{{Name: "HbA1c"}}})

	got, err := service.UpdateStatus(ctx, r.ID, StatusRequest{Status: StatusCompleted})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if !got.Billable() {
		t.Error("Expected completed request to be billable")
	}
	pub.AssertEventPublished(t, messaging.EventLabStatusChanged)

	if _, err := service.UpdateStatus(ctx, r.ID, StatusRequest{Status: "DONE"}); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("Expected ErrInvalidStatus, got %v", err)
	}
	if _, err := service.UpdateStatus(ctx, "LAB-NOPE0", StatusRequest{Status: StatusCollected}); !errors.Is(err, ErrRequestNotFound) {
		t.Errorf("Expected ErrRequestNotFound, got %v", err)
	}
}

func TestCatalog_CRUD(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	tests, err := service.ListCatalog(ctx)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(tests) != 7 || tests[0].DefaultCost != 150 {
		t.Fatalf("Unexpected seed catalog %+v", tests)
	}

	added, err := service.AddCatalogTest(ctx, CatalogRequest{Name: " Ferritin ", DefaultCost: 300})
	if err != nil {
		t.Fatalf("AddCatalogTest failed: %v", err)
	}
	if added.Name != "Ferritin" {
		t.Errorf("Expected trimmed name, got %q", added.Name)
	}

	if err := service.DeleteCatalogTest(ctx, added.ID, false); !errors.Is(err, ErrConfirmationRequired) {
		t.Errorf("Expected ErrConfirmationRequired, got %v", err)
	}
	if err := service.DeleteCatalogTest(ctx, added.ID, true); err != nil {
		t.Fatalf("DeleteCatalogTest failed: %v", err)
	}
	if err := service.DeleteCatalogTest(ctx, added.ID, true); !errors.Is(err, ErrTestNotFound) {
		t.Errorf("Expected ErrTestNotFound, got %v", err)
	}

	tests, _ = service.ListCatalog(ctx)
	if len(tests) != 7 {
		t.Errorf("Expected 7 catalog tests, got %d", len(tests))
	}

	if _, err := service.AddCatalogTest(ctx, CatalogRequest{DefaultCost: -3}); err == nil {
		t.Error("Expected validation error")
	}
}
