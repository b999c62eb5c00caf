package dashboard

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/WailSalutem-Health-Care/clinic-service/internal/appointment"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/billing"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/clock"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/doctor"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/patient"
)

type PatientLister interface {
	List(ctx context.Context) ([]patient.Patient, error)
}

type AppointmentLister interface {
	List(ctx context.Context) ([]appointment.Appointment, error)
}

type DoctorRoster interface {
	GetByID(ctx context.Context, id string) (*doctor.Doctor, error)
	List(ctx context.Context) ([]doctor.Doctor, error)
}

type RevenueSource interface {
	Revenue(ctx context.Context) (*billing.Summary, error)
}

// ServiceInterface defines the contract for dashboard operations
type ServiceInterface interface {
	Overview(ctx context.Context, withRevenue bool) (*Overview, error)
	Performance(ctx context.Context, doctorID, from, to string) (*Performance, error)
}

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	patients     PatientLister
	appointments AppointmentLister
	doctors      DoctorRoster
	revenue      RevenueSource
	now          clock.Clock
}

func NewService(patients PatientLister, appointments AppointmentLister, doctors DoctorRoster, revenue RevenueSource, now clock.Clock) *Service {
	if now == nil {
		now = clock.System
	}
	return &Service{patients: patients, appointments: appointments, doctors: doctors, revenue: revenue, now: now}
}

func (s *Service) Overview(ctx context.Context, withRevenue bool) (*Overview, error) {
	now := s.now()
	out := &Overview{Date: clock.Date(now), Day: clock.DayCode(now), DoctorsOnDuty: []DoctorOnDuty{}}

	patients, err := s.patients.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	out.TotalPatients = len(patients)

	appts, err := s.appointments.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	for _, a := range appts {
		if a.OnDate(out.Date) {
			out.TodaysVisits++
		}
	}

	doctors, err := s.doctors.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	for _, d := range doctors {
		if !d.WorksOn(out.Day) {
			continue
		}
		duty := DoctorOnDuty{ID: d.ID, Name: d.Name, Specialty: d.Specialty, PhotoURL: d.PhotoURL, Shifts: []doctor.Shift{}}
		for _, sh := range d.DetailedSchedule {
			if sh.Day == out.Day {
				duty.Shifts = append(duty.Shifts, sh)
			}
		}
		out.DoctorsOnDuty = append(out.DoctorsOnDuty, duty)
	}

	if withRevenue && s.revenue != nil {
		if out.Revenue, err = s.revenue.Revenue(ctx); err != nil {
			return nil, fmt.Errorf("failed to summarize revenue: %w", err)
		}
	}
	return out, nil
}

// Performance defaults to the first of the current month through today.
// Revenue is estimated as visits in range times the doctor's current fee.
func (s *Service) Performance(ctx context.Context, doctorID, from, to string) (*Performance, error) {
	now := s.now()
	if from == "" {
		from = clock.Month(now) + "-01"
	}
	if to == "" {
		to = clock.Date(now)
	}
	if !validDate(from) || !validDate(to) || from > to {
		return nil, ErrInvalidRange
	}

	d, err := s.doctors.GetByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	appts, err := s.appointments.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}

	out := &Performance{DoctorID: d.ID, DoctorName: d.Name, From: from, To: to, Appointments: []appointment.Appointment{}}
	patients := map[string]bool{}
	for _, a := range appts {
		day := a.Date()
		if a.DoctorID != doctorID || day < from || day > to {
			continue
		}
		out.Appointments = append(out.Appointments, a)
		patients[a.PatientID] = true
		if a.Status == appointment.StatusCompleted {
			out.CompletedCount++
		}
	}
	sort.SliceStable(out.Appointments, func(i, j int) bool {
		return out.Appointments[i].DateTime < out.Appointments[j].DateTime
	})

	out.VisitCount = len(out.Appointments)
	out.TotalPatients = len(patients)
	out.EstimatedRevenue = float64(out.VisitCount) * d.ConsultationFee
	return out, nil
}

func validDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
