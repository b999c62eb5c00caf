package doctor

import (
	"context"
	"time"

	"github.com/WailSalutem-Health-Care/clinic-service/internal/messaging"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/store"
	"github.com/rs/zerolog/log"
)

type Repository struct {
	doctors   *store.Collection[[]Doctor]
	publisher messaging.PublisherInterface
}

func NewRepository(kv store.KV, publisher messaging.PublisherInterface) *Repository {
	return &Repository{
		doctors:   store.NewCollection(kv, store.KeyDoctors, Seed),
		publisher: publisher,
	}
}

func (r *Repository) List(ctx context.Context) ([]Doctor, error) {
	return r.doctors.Load(ctx)
}

func (r *Repository) GetByID(ctx context.Context, id string) (*Doctor, error) {
	doctors, err := r.doctors.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range doctors {
		if doctors[i].ID == id {
			d := doctors[i]
			return &d, nil
		}
	}
	return nil, ErrDoctorNotFound
}

func (r *Repository) Create(ctx context.Context, d *Doctor) error {
	_, err := r.doctors.Update(ctx, func(doctors []Doctor) ([]Doctor, error) {
		return append(doctors, *d), nil
	})
	if err != nil {
		return err
	}

	log.Info().Str("doctor_id", d.ID).Str("specialty", d.Specialty).Msg("Added doctor to roster")
	r.publish(ctx, messaging.EventDoctorCreated, d)
	return nil
}

// Update applies fn to the stored doctor and saves the roster. fn errors abort the write.
func (r *Repository) Update(ctx context.Context, id string, fn func(*Doctor) error) (*Doctor, error) {
	var updated Doctor
	_, err := r.doctors.Update(ctx, func(doctors []Doctor) ([]Doctor, error) {
		for i := range doctors {
			if doctors[i].ID == id {
				if err := fn(&doctors[i]); err != nil {
					return nil, err
				}
				updated = doctors[i]
				return doctors, nil
			}
		}
		return nil, ErrDoctorNotFound
	})
	if err != nil {
		return nil, err
	}

	r.publish(ctx, messaging.EventDoctorUpdated, updated)
	return &updated, nil
}

// Delete removes the doctor. Appointments that reference it are left as they are.
func (r *Repository) Delete(ctx context.Context, id string) error {
	_, err := r.doctors.Update(ctx, func(doctors []Doctor) ([]Doctor, error) {
		for i := range doctors {
			if doctors[i].ID == id {
				return append(doctors[:i], doctors[i+1:]...), nil
			}
		}
		return nil, ErrDoctorNotFound
	})
	if err != nil {
		return err
	}

	log.Info().Str("doctor_id", id).Msg("Removed doctor from roster")
	r.publish(ctx, messaging.EventDoctorDeleted, messaging.DeletedData{ID: id, DeletedAt: time.Now().UTC()})
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
