package billing

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/WailSalutem-Health-Care/clinic-service/internal/appointment"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/clock"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/doctor"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/lab"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/messaging"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/patient"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/store"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/testutil"
)

var fixedNow = clock.Fixed(time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC))

type recordedInvoice struct {
	method string
	amount float64
}

// stubRecorder implements Recorder for testing
type stubRecorder struct {
	calls []recordedInvoice
}

func (s *stubRecorder) RecordInvoice(ctx context.Context, method string, amount float64) {
	s.calls = append(s.calls, recordedInvoice{method, amount})
}

type fixture struct {
	kv           store.KV
	service      *Service
	appointments *appointment.Repository
	doctors      *doctor.Repository
	labs         *lab.Repository
	publisher    *testutil.MockPublisher
	recorder     *stubRecorder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	kv := store.NewMemoryKV()
	f := &fixture{
		kv:           kv,
		appointments: appointment.NewRepository(kv, nil),
		doctors:      doctor.NewRepository(kv, nil),
		labs:         lab.NewRepository(kv, nil),
		publisher:    testutil.NewMockPublisher(),
		recorder:     &stubRecorder{},
	}
	f.service = NewService(
		NewRepository(kv, f.publisher, fixedNow),
		f.appointments,
		patient.NewRepository(kv, nil),
		f.doctors,
		f.labs,
		f.recorder,
		fixedNow,
	)
	return f
}

func (f *fixture) book(t *testing.T, id, patientID, doctorID, status string) {
	t.Helper()
	a := &appointment.Appointment{ID: id, PatientID: patientID, DoctorID: doctorID, DateTime: "2026-10-19T10:00", Status: status}
	if err := f.appointments.Create(context.Background(), a); err != nil {
		t.Fatalf("Failed to book %s: %v", id, err)
	}
}

func TestCheckout_AmountIsCurrentFee(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.book(t, "a1", "1", "d1", appointment.StatusCompleted)

	inv, err := f.service.Checkout(ctx, CheckoutRequest{AppointmentID: "a1", Method: "Card"})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if inv.Amount != 450 {
		t.Errorf("Expected amount 450, got %v", inv.Amount)
	}
	if inv.Patient != "Alice Smith" || inv.Doctor != "Dr. John House" {
		t.Errorf("Unexpected names %q / %q", inv.Patient, inv.Doctor)
	}
	if inv.Status != StatusPaid || inv.Type != TypeConsultation || inv.Date != "2026-10-19" {
		t.Errorf("Unexpected invoice %+v", inv)
	}
	if !strings.HasPrefix(inv.ID, "INV-") {
		t.Errorf("Unexpected id %q", inv.ID)
	}
	f.publisher.AssertEventPublished(t, messaging.EventInvoiceCreated)
	if len(f.recorder.calls) != 1 || f.recorder.calls[0].amount != 450 {
		t.Errorf("Expected one recorded invoice, got %+v", f.recorder.calls)
	}

	_, err = f.doctors.Update(ctx, "d1", func(d *doctor.Doctor) error {
		d.ConsultationFee = 600
		return nil
	})
	if err != nil {
		t.Fatalf("Fee update failed: %v", err)
	}

	again, err := f.service.Checkout(ctx, CheckoutRequest{AppointmentID: "a1", Method: "Cash"})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if again.Amount != 600 {
		t.Errorf("Expected amount to follow the new fee, got %v", again.Amount)
	}
	invoices, _ := f.service.ListInvoices(ctx)
	if invoices[1].Amount != 450 {
		t.Errorf("Expected first invoice to keep 450, got %v", invoices[1].Amount)
	}
}

// Checking out the same appointment twice issues two independent invoices.
func TestCheckout_DuplicateCheckoutIsAllowed(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.book(t, "a1", "1", "d1", appointment.StatusScheduled)

	first, err := f.service.Checkout(ctx, CheckoutRequest{AppointmentID: "a1", Method: "Cash"})
	if err != nil {
		t.Fatalf("First checkout failed: %v", err)
	}
	second, err := f.service.Checkout(ctx, CheckoutRequest{AppointmentID: "a1", Method: "Cash"})
	if err != nil {
		t.Fatalf("Second checkout failed: %v", err)
	}

	invoices, _ := f.service.ListInvoices(ctx)
	if len(invoices) != 3 {
		t.Fatalf("Expected seed plus two invoices, got %d", len(invoices))
	}
	if invoices[0].ID != second.ID || invoices[1].ID != first.ID || invoices[2].ID != "INV-4021" {
		t.Errorf("Expected newest invoices first, got %v, %v, %v", invoices[0].ID, invoices[1].ID, invoices[2].ID)
	}
	if invoices[0].AppointmentID != "a1" || invoices[1].AppointmentID != "a1" {
		t.Error("Expected both invoices to reference the appointment")
	}
}

func TestCheckout_DanglingReferences(t *testing.T) {
	f := newFixture(t)
	f.book(t, "a1", "gone", "gone", appointment.StatusCompleted)

	inv, err := f.service.Checkout(context.Background(), CheckoutRequest{AppointmentID: "a1", Method: "Insurance"})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if inv.Patient != patient.UnknownName || inv.Doctor != doctor.UnknownName || inv.Amount != 0 {
		t.Errorf("Expected fallback labels and zero amount, got %+v", inv)
	}
}

func TestCheckout_UnreadableDirectoryWritesNothing(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		wantErr string
	}{
		{"doctors", store.KeyDoctors, "failed to load doctor"},
		{"patients", store.KeyPatients, "failed to load patient"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			ctx := context.Background()
			f.book(t, "a1", "1", "d1", appointment.StatusCompleted)
			if err := f.kv.Put(ctx, tt.key, []byte(`{"broken":true}`)); err != nil {
				t.Fatalf("Put failed: %v", err)
			}

			inv, err := f.service.Checkout(ctx, CheckoutRequest{AppointmentID: "a1", Method: "Cash"})
			if err == nil {
				t.Fatalf("Expected error, got invoice %+v", inv)
			}
			if !errors.Is(err, store.ErrCorruptSnapshot) || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Unexpected error %v", err)
			}

			invoices, _ := f.service.ListInvoices(ctx)
			if len(invoices) != 1 || invoices[0].ID != "INV-4021" {
				t.Errorf("Expected only the seed invoice, got %+v", invoices)
			}
			f.publisher.AssertEventNotPublished(t, messaging.EventInvoiceCreated)
			if len(f.recorder.calls) != 0 {
				t.Errorf("Expected nothing recorded, got %+v", f.recorder.calls)
			}
		})
	}
}

func TestCheckout_Errors(t *testing.T) {
	f := newFixture(t)

	if _, err := f.service.Checkout(context.Background(), CheckoutRequest{AppointmentID: "missing", Method: "Cash"}); !errors.Is(err, ErrAppointmentNotFound) {
		t.Errorf("Expected ErrAppointmentNotFound, got %v", err)
	}
	if _, err := f.service.Checkout(context.Background(), CheckoutRequest{AppointmentID: "a1", Method: " "}); err == nil {
		t.Error("Expected validation error for blank method")
	}
	f.publisher.AssertEventNotPublished(t, messaging.EventInvoiceCreated)
}

func TestPendingVisits(t *testing.T) {
	f := newFixture(t)
	f.book(t, "a1", "1", "d1", appointment.StatusScheduled)
	f.book(t, "a2", "1", "d1", appointment.StatusCompleted)
	f.book(t, "a3", "1", "d1", appointment.StatusCancelled)
	f.book(t, "a4", "1", "d1", appointment.StatusPending)

	visits, err := f.service.PendingVisits(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(visits) != 2 || visits[0].ID != "a1" || visits[1].ID != "a2" {
		t.Errorf("Unexpected pending visits %+v", visits)
	}
}

func TestRevenue_UsesStoredData(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	req := &lab.Request{ID: "LAB-1", Date: "2026-10-19T08:00:00Z", Status: lab.StatusCompleted, TotalCost: 50}
	if err := f.labs.Create(ctx, req); err != nil {
		t.Fatalf("Failed to create lab request: %v", err)
	}

	summary, err := f.service.Revenue(ctx)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if summary.Consultation != 450 || summary.Labs != 50 || summary.Daily != 500 || summary.Total != 500 {
		t.Errorf("Unexpected summary %+v", summary)
	}
}
