package billing

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/WailSalutem-Health-Care/clinic-service/internal/appointment"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/clock"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/doctor"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/lab"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/patient"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/validation"
)

// Appointments is the schedule as seen by checkout.
type Appointments interface {
	List(ctx context.Context) ([]appointment.Appointment, error)
	GetByID(ctx context.Context, id string) (*appointment.Appointment, error)
}

// PatientDirectory resolves patient references.
type PatientDirectory interface {
	GetByID(ctx context.Context, id string) (*patient.Patient, error)
}

// DoctorDirectory resolves doctor references.
type DoctorDirectory interface {
	GetByID(ctx context.Context, id string) (*doctor.Doctor, error)
}

// LabLog lists lab requests for revenue.
type LabLog interface {
	List(ctx context.Context) ([]lab.Request, error)
}

// Recorder receives a metric for every issued invoice.
type Recorder interface {
	RecordInvoice(ctx context.Context, method string, amount float64)
}

type Service struct {
	repo         RepositoryInterface
	appointments Appointments
	patients     PatientDirectory
	doctors      DoctorDirectory
	labs         LabLog
	recorder     Recorder
	now          clock.Clock
}

func NewService(
	repo RepositoryInterface,
	appointments Appointments,
	patients PatientDirectory,
	doctors DoctorDirectory,
	labs LabLog,
	recorder Recorder,
	now clock.Clock,
) *Service {
	if now == nil {
		now = clock.System
	}
	return &Service{
		repo:         repo,
		appointments: appointments,
		patients:     patients,
		doctors:      doctors,
		labs:         labs,
		recorder:     recorder,
		now:          now,
	}
}

func newInvoiceID() string {
	return "INV-" + strconv.Itoa(rand.IntN(900000)+100000)
}

// Checkout issues a paid consultation invoice for the appointment. The amount
// is the doctor's fee at this moment, or 0 when the doctor no longer exists.
// Any other lookup failure aborts without writing an invoice.
// Nothing stops a second checkout of the same appointment.
func (s *Service) Checkout(ctx context.Context, req CheckoutRequest) (*Invoice, error) {
	req.Method = strings.TrimSpace(req.Method)
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	appt, err := s.appointments.GetByID(ctx, req.AppointmentID)
	if err != nil {
		if errors.Is(err, appointment.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("failed to load appointment: %w", err)
	}

	inv := Invoice{
		ID:            newInvoiceID(),
		Patient:       patient.UnknownName,
		Doctor:        doctor.UnknownName,
		Date:          clock.Date(s.now()),
		Status:        StatusPaid,
		Method:        req.Method,
		Type:          TypeConsultation,
		AppointmentID: appt.ID,
	}
	p, err := s.patients.GetByID(ctx, appt.PatientID)
	switch {
	case err == nil:
		inv.Patient = p.FullName()
	case !errors.Is(err, patient.ErrPatientNotFound):
		return nil, fmt.Errorf("failed to load patient: %w", err)
	}
	d, err := s.doctors.GetByID(ctx, appt.DoctorID)
	switch {
	case err == nil:
		inv.Doctor = d.Name
		inv.Amount = d.ConsultationFee
	case !errors.Is(err, doctor.ErrDoctorNotFound):
		return nil, fmt.Errorf("failed to load doctor: %w", err)
	}

	if err := s.repo.Create(ctx, &inv); err != nil {
		return nil, fmt.Errorf("failed to save invoice: %w", err)
	}
	if s.recorder != nil {
		s.recorder.RecordInvoice(ctx, inv.Method, inv.Amount)
	}
	return &inv, nil
}

// PendingVisits lists appointments that can be settled.
func (s *Service) PendingVisits(ctx context.Context) ([]appointment.Appointment, error) {
	all, err := s.appointments.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	out := []appointment.Appointment{}
	for _, a := range all {
		if a.Billable() {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *Service) ListInvoices(ctx context.Context) ([]Invoice, error) {
	invoices, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	return invoices, nil
}

func (s *Service) Revenue(ctx context.Context) (*Summary, error) {
	invoices, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	labs, err := s.labs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list lab requests: %w", err)
	}
	summary := Summarize(invoices, labs, s.now())
	return &summary, nil
}
