package settings

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/WailSalutem-Health-Care/clinic-service/internal/messaging"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/store"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/testutil"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/validation"
)

func TestGet_ReturnsSeed(t *testing.T) {
	service := NewService(NewRepository(store.NewMemoryKV(), nil))

	s, err := service.Get(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if *s != Seed() {
		t.Errorf("Expected seed settings, got %+v", s)
	}
	if s.Logo != nil {
		t.Error("Expected no logo")
	}
}

func TestUpdate_PersistsAndPublishes(t *testing.T) {
	kv := store.NewMemoryKV()
	pub := testutil.NewMockPublisher()
	service := NewService(NewRepository(kv, pub))
	ctx := context.Background()

	next := Seed()
	next.ClinicName = "  Nile Family Clinic "
	next.WeeklyDigest = true
	logo := ""
	next.Logo = &logo

	saved, err := service.Update(ctx, next)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if saved.ClinicName != "Nile Family Clinic" || saved.Logo != nil {
		t.Errorf("Unexpected saved settings %+v", saved)
	}
	pub.AssertEventPublished(t, messaging.EventSettingsUpdated)

	reloaded, _ := NewService(NewRepository(kv, nil)).Get(ctx)
	if reloaded.ClinicName != "Nile Family Clinic" || !reloaded.WeeklyDigest {
		t.Errorf("Expected settings to survive a restart, got %+v", reloaded)
	}
}

func TestUpdate_Validation(t *testing.T) {
	service := NewService(NewRepository(store.NewMemoryKV(), nil))

	bad := Seed()
	bad.ClinicName = ""
	bad.SupportEmail = "not-an-email"

	_, err := service.Update(context.Background(), bad)
	fields, ok := validation.Fields(err)
	if !ok || len(fields) != 2 {
		t.Errorf("Expected two validation failures, got %v", err)
	}
}

func TestHandlerUpdate_ValidationError(t *testing.T) {
	handler := NewHandler(NewService(NewRepository(store.NewMemoryKV(), nil)))

	req := httptest.NewRequest(http.MethodPut, "/api/settings", bytes.NewReader([]byte(`{"clinicName":""}`)))
	rr := httptest.NewRecorder()
	handler.Update(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rr.Code)
	}
}
