package settings

import (
	"context"

	"github.com/WailSalutem-Health-Care/clinic-service/internal/messaging"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/store"
	"github.com/rs/zerolog/log"
)

// RepositoryInterface defines the contract for settings storage
type RepositoryInterface interface {
	Get(ctx context.Context) (Settings, error)
	Save(ctx context.Context, s Settings) error
}

// Ensure Repository implements RepositoryInterface
var _ RepositoryInterface = (*Repository)(nil)

type Repository struct {
	settings  *store.Collection[Settings]
	publisher messaging.PublisherInterface
}

func NewRepository(kv store.KV, publisher messaging.PublisherInterface) *Repository {
	return &Repository{
		settings:  store.NewCollection(kv, store.KeySettings, Seed),
		publisher: publisher,
	}
}

func (r *Repository) Get(ctx context.Context) (Settings, error) {
	return r.settings.Load(ctx)
}

func (r *Repository) Save(ctx context.Context, s Settings) error {
	if err := r.settings.Save(ctx, s); err != nil {
		return err
	}

	log.Info().Str("clinic_name", s.ClinicName).Msg("Clinic settings saved")
	if r.publisher != nil {
		if err := r.publisher.Publish(ctx, messaging.EventSettingsUpdated, messaging.NewEvent(messaging.EventSettingsUpdated, s)); err != nil {
			log.Warn().Err(err).Str("routing_key", messaging.EventSettingsUpdated).Msg("failed to publish event")
		}
	}
	return nil
}
