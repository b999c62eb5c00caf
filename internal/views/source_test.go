package views

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/WailSalutem-Health-Care/clinic-service/internal/appointment"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/billing"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/clock"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/doctor"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/export"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/lab"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/patient"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/settings"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/store"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/users"
)

func newSeededSource(t *testing.T) (*Source, *appointment.Repository) {
	t.Helper()
	kv := store.NewMemoryKV()
	appts := appointment.NewRepository(kv, nil)
	return NewSource(Collections{
		Patients:     patient.NewRepository(kv, nil),
		Doctors:      doctor.NewRepository(kv, nil),
		Appointments: appts,
		Labs:         lab.NewRepository(kv, nil),
		Invoices:     billing.NewRepository(kv, nil, clock.Fixed(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))),
		Users:        users.NewRepository(kv, nil),
		Settings:     settings.NewRepository(kv, nil),
	}), appts
}

func TestSource_Records(t *testing.T) {
	src, appts := newSeededSource(t)
	ctx := context.Background()

	if err := appts.Create(ctx, &appointment.Appointment{ID: "a1", PatientID: "1", DoctorID: "removed", DateTime: "2024-05-01T10:00", Status: appointment.StatusScheduled}); err != nil {
		t.Fatalf("Failed to seed appointment: %v", err)
	}

	recs, err := src.Records(ctx, "appointments")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(recs))
	}
	if v, _ := recs[0].Get("Doctor"); v != doctor.UnknownName {
		t.Errorf("Expected fallback doctor label, got %v", v)
	}

	invoices, err := src.Records(ctx, "invoices")
	if err != nil || len(invoices) != 1 {
		t.Fatalf("Expected seeded invoice, got %d, %v", len(invoices), err)
	}
	if v, _ := invoices[0].Get("id"); v != "INV-4021" {
		t.Errorf("Expected INV-4021, got %v", v)
	}

	if _, err := src.Records(ctx, "inventory"); !errors.Is(err, export.ErrUnknownCollection) {
		t.Errorf("Expected ErrUnknownCollection, got %v", err)
	}
}

func TestSource_Backup(t *testing.T) {
	src, _ := newSeededSource(t)

	b, err := src.Backup(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(b.Patients) != 1 || len(b.Doctors) != 1 || len(b.Users) != 2 {
		t.Errorf("Expected seeded collections, got %d patients, %d doctors, %d users", len(b.Patients), len(b.Doctors), len(b.Users))
	}
	if b.Settings.ClinicName == "" {
		t.Error("Expected seeded settings")
	}
}
