package appointment

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/WailSalutem-Health-Care/clinic-service/internal/clock"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/doctor"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/messaging"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/patient"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Advisor is the part of the clinical assistant used by scheduling.
type Advisor interface {
	AnalyzeConflict(ctx context.Context, candidate, existing interface{}) (string, error)
	DraftReminder(ctx context.Context, patientName, doctorName, dateTime, channel string) (string, error)
}

// PatientDirectory resolves patient references.
type PatientDirectory interface {
	GetByID(ctx context.Context, id string) (*patient.Patient, error)
}

// DoctorDirectory resolves doctor references.
type DoctorDirectory interface {
	GetByID(ctx context.Context, id string) (*doctor.Doctor, error)
}

const reminderTemplate = "Hello %s, this is a reminder of your appointment with %s on %s. Please reply to confirm or reschedule."

type Service struct {
	repo      RepositoryInterface
	patients  PatientDirectory
	doctors   DoctorDirectory
	advisor   Advisor
	publisher messaging.PublisherInterface
	now       clock.Clock
}

func NewService(
	repo RepositoryInterface,
	patients PatientDirectory,
	doctors DoctorDirectory,
	advisor Advisor,
	publisher messaging.PublisherInterface,
	now clock.Clock,
) *Service {
	if now == nil {
		now = clock.System
	}
	return &Service{
		repo:      repo,
		patients:  patients,
		doctors:   doctors,
		advisor:   advisor,
		publisher: publisher,
		now:       now,
	}
}

// Book validates and saves a booking. Unless req.Force is set the advisor is
// asked whether the slot clashes with the same day's schedule; a warning
// aborts with *ConflictError, an advisor failure is ignored.
func (s *Service) Book(ctx context.Context, req BookRequest) (*Appointment, error) {
	a, err := NewBuilder().FromRequest(req).Build(uuid.NewString()[:9])
	if err != nil {
		return nil, err
	}

	if !req.Force && s.advisor != nil {
		if err := s.checkConflict(ctx, a); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Create(ctx, &a); err != nil {
		return nil, fmt.Errorf("failed to book appointment: %w", err)
	}
	return &a, nil
}

func (s *Service) checkConflict(ctx context.Context, candidate Appointment) error {
	all, err := s.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to load schedule: %w", err)
	}
	sameDay := []Appointment{}
	for _, a := range all {
		if a.OnDate(candidate.Date()) {
			sameDay = append(sameDay, a)
		}
	}

	verdict, err := s.advisor.AnalyzeConflict(ctx, candidate, sameDay)
	if err != nil {
		log.Warn().Err(err).Str("doctor_id", candidate.DoctorID).Msg("Conflict check unavailable, saving anyway")
		return nil
	}
	verdict = strings.TrimSpace(verdict)
	if verdict == "" || verdict == NoConflict {
		return nil
	}
	return &ConflictError{Warning: verdict}
}

// List returns the schedule ordered by date time, narrowed to one day when
// date (YYYY-MM-DD) is set.
func (s *Service) List(ctx context.Context, date string) ([]Appointment, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	out := make([]Appointment, 0, len(all))
	for _, a := range all {
		if date == "" || strings.HasPrefix(a.DateTime, date) {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DateTime < out[j].DateTime })
	return out, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Appointment, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateStatus sets any status; there are no transition rules.
func (s *Service) UpdateStatus(ctx context.Context, id string, req StatusRequest) (*Appointment, error) {
	if !ValidStatus(req.Status) {
		return nil, ErrInvalidStatus
	}
	return s.repo.UpdateStatus(ctx, id, req.Status)
}

func (s *Service) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return ErrConfirmationRequired
	}
	return s.repo.Delete(ctx, id)
}

// SendReminder drafts a message for the appointment's patient and publishes
// it for delivery. The fixed template is used when drafting fails.
func (s *Service) SendReminder(ctx context.Context, id string, req ReminderRequest) (*ReminderResponse, error) {
	channel := req.Channel
	if channel == "" {
		channel = ChannelWhatsApp
	}
	if channel != ChannelWhatsApp && channel != ChannelSMS {
		return nil, ErrInvalidChannel
	}

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p, err := s.patients.GetByID(ctx, a.PatientID)
	if err != nil {
		return nil, ErrReminderUnavailable
	}
	d, err := s.doctors.GetByID(ctx, a.DoctorID)
	if err != nil {
		return nil, ErrReminderUnavailable
	}

	when := a.DateTime
	if t, err := ParseDateTime(a.DateTime); err == nil {
		when = t.Format("Mon, 02 Jan 2006 15:04")
	}

	resp := &ReminderResponse{
		AppointmentID: a.ID,
		Channel:       channel,
		Recipient:     p.Phone,
	}
	if s.advisor != nil {
		msg, err := s.advisor.DraftReminder(ctx, p.FullName(), d.Name, when, channel)
		if err != nil {
			log.Warn().Err(err).Str("appointment_id", a.ID).Msg("Reminder drafting unavailable, using template")
		} else if msg = strings.TrimSpace(msg); msg != "" {
			resp.Message = msg
			resp.Drafted = true
		}
	}
	if resp.Message == "" {
		resp.Message = fmt.Sprintf(reminderTemplate, p.FullName(), d.Name, when)
	}

	if s.publisher != nil {
		event := messaging.NewEvent(messaging.EventAppointmentReminder, messaging.ReminderData{
			AppointmentID: resp.AppointmentID,
			Channel:       resp.Channel,
			Recipient:     resp.Recipient,
			Message:       resp.Message,
		})
		if err := s.publisher.Publish(ctx, messaging.EventAppointmentReminder, event); err != nil {
			return nil, fmt.Errorf("failed to dispatch reminder: %w", err)
		}
	}

	log.Info().
		Str("appointment_id", a.ID).
		Str("channel", channel).
		Bool("drafted", resp.Drafted).
		Msg("Reminder dispatched")
	return resp, nil
}

// PatientVisits lists a patient's appointments, newest first, with the
// doctor's name resolved.
func (s *Service) PatientVisits(ctx context.Context, patientID string) ([]Visit, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	visits := []Visit{}
	for _, a := range all {
		if a.PatientID != patientID {
			continue
		}
		name := doctor.UnknownName
		d, err := s.doctors.GetByID(ctx, a.DoctorID)
		switch {
		case err == nil:
			name = d.Name
		case !errors.Is(err, doctor.ErrDoctorNotFound):
			return nil, fmt.Errorf("failed to load doctor: %w", err)
		}
		visits = append(visits, Visit{
			AppointmentID: a.ID,
			DateTime:      a.DateTime,
			Doctor:        name,
			Reason:        a.Reason,
			Status:        a.Status,
		})
	}
	sort.SliceStable(visits, func(i, j int) bool { return visits[i].DateTime > visits[j].DateTime })
	return visits, nil
}
