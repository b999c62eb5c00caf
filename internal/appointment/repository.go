package appointment

import (
	"context"
	"time"

	"github.com/WailSalutem-Health-Care/clinic-service/internal/messaging"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/store"
	"github.com/rs/zerolog/log"
)

type Repository struct {
	appointments *store.Collection[[]Appointment]
	publisher    messaging.PublisherInterface
}

func NewRepository(kv store.KV, publisher messaging.PublisherInterface) *Repository {
	return &Repository{
		appointments: store.NewCollection(kv, store.KeyAppointments, Seed),
		publisher:    publisher,
	}
}

func (r *Repository) List(ctx context.Context) ([]Appointment, error) {
	return r.appointments.Load(ctx)
}

func (r *Repository) GetByID(ctx context.Context, id string) (*Appointment, error) {
	appointments, err := r.appointments.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range appointments {
		if appointments[i].ID == id {
			a := appointments[i]
			return &a, nil
		}
	}
	return nil, ErrAppointmentNotFound
}

// Create appends the appointment to the schedule.
func (r *Repository) Create(ctx context.Context, a *Appointment) error {
	_, err := r.appointments.Update(ctx, func(appointments []Appointment) ([]Appointment, error) {
		return append(appointments, *a), nil
	})
	if err != nil {
		return err
	}

	log.Info().
		Str("appointment_id", a.ID).
		Str("patient_id", a.PatientID).
		Str("doctor_id", a.DoctorID).
		Str("date_time", a.DateTime).
		Msg("Booked appointment")
	r.publish(ctx, messaging.EventAppointmentBooked, a)
	return nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id, status string) (*Appointment, error) {
	var updated Appointment
	var old string
	_, err := r.appointments.Update(ctx, func(appointments []Appointment) ([]Appointment, error) {
		for i := range appointments {
			if appointments[i].ID == id {
				old = appointments[i].Status
				appointments[i].Status = status
				updated = appointments[i]
				return appointments, nil
			}
		}
		return nil, ErrAppointmentNotFound
	})
	if err != nil {
		return nil, err
	}

	r.publish(ctx, messaging.EventAppointmentStatusChanged, messaging.StatusChangedData{
		ID:        id,
		OldStatus: old,
		NewStatus: status,
		ChangedAt: time.Now().UTC(),
	})
	return &updated, nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	_, err := r.appointments.Update(ctx, func(appointments []Appointment) ([]Appointment, error) {
		for i := range appointments {
			if appointments[i].ID == id {
				return append(appointments[:i], appointments[i+1:]...), nil
			}
		}
		return nil, ErrAppointmentNotFound
	})
	if err != nil {
		return err
	}

	log.Info().Str("appointment_id", id).Msg("Deleted appointment")
	r.publish(ctx, messaging.EventAppointmentDeleted, messaging.DeletedData{ID: id, DeletedAt: time.Now().UTC()})
	return nil
}

func (r *Repository) publish(ctx context.Context, key string, data interface{}) {
	if r.publisher == nil {
		return
	}
	if err := r.publisher.Publish(ctx, key, messaging.NewEvent(key, data)); err != nil {
		log.Warn().Err(err).Str("routing_key", key).Msg("failed to publish event")
	}
}
