package patient

import (
	"context"

	"github.com/WailSalutem-Health-Care/clinic-service/internal/messaging"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/store"
	"github.com/rs/zerolog/log"
)

type Repository struct {
	patients  *store.Collection[[]Patient]
	publisher messaging.PublisherInterface
}

func NewRepository(kv store.KV, publisher messaging.PublisherInterface) *Repository {
	return &Repository{
		patients:  store.NewCollection(kv, store.KeyPatients, Seed),
		publisher: publisher,
	}
}

func (r *Repository) List(ctx context.Context) ([]Patient, error) {
	return r.patients.Load(ctx)
}

func (r *Repository) GetByID(ctx context.Context, id string) (*Patient, error) {
	patients, err := r.patients.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range patients {
		if patients[i].ID == id {
			p := patients[i]
			return &p, nil
		}
	}
	return nil, ErrPatientNotFound
}

func (r *Repository) Create(ctx context.Context, p *Patient) error {
	_, err := r.patients.Update(ctx, func(patients []Patient) ([]Patient, error) {
		return append(patients, *p), nil
	})
	if err != nil {
		return err
	}

	log.Info().Str("patient_id", p.ID).Msg("Created patient")
	r.publish(ctx, messaging.EventPatientCreated, p)
	return nil
}

// Update applies fn to the stored patient under the collection lock.
func (r *Repository) Update(ctx context.Context, id string, fn func(*Patient) error) (*Patient, error) {
	var updated Patient
	_, err := r.patients.Update(ctx, func(patients []Patient) ([]Patient, error) {
		for i := range patients {
			if patients[i].ID == id {
				if err := fn(&patients[i]); err != nil {
					return nil, err
				}
				updated = patients[i]
				return patients, nil
			}
		}
		return nil, ErrPatientNotFound
	})
	if err != nil {
		return nil, err
	}

	r.publish(ctx, messaging.EventPatientUpdated, updated)
	return &updated, nil
}

func (r *Repository) AppendHistory(ctx context.Context, id, entry string) (*Patient, error) {
	var updated Patient
	_, err := r.patients.Update(ctx, func(patients []Patient) ([]Patient, error) {
		for i := range patients {
			if patients[i].ID == id {
				patients[i].MedicalHistory = append(patients[i].MedicalHistory, entry)
				updated = patients[i]
				return patients, nil
			}
		}
		return nil, ErrPatientNotFound
	})
	if err != nil {
		return nil, err
	}

	r.publish(ctx, messaging.EventPatientNoteAdded, map[string]string{
		"patient_id": id,
		"note":       entry,
	})
	return &updated, nil
}

func (r *Repository) publish(ctx context.Context, key string, data interface{}) {
	if r.publisher == nil {
		return
	}
	if err := r.publisher.Publish(ctx, key, messaging.NewEvent(key, data)); err != nil {
		log.Warn().Err(err).Str("routing_key", key).Msg("failed to publish event")
	}
}
