package lab

import (
	"context"
	"time"

	"github.com/WailSalutem-Health-Care/clinic-service/internal/messaging"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/store"
	"github.com/rs/zerolog/log"
)

type Repository struct {
	requests  *store.Collection[[]Request]
	publisher messaging.PublisherInterface
}

func NewRepository(kv store.KV, publisher messaging.PublisherInterface) *Repository {
	return &Repository{
		requests:  store.NewCollection(kv, store.KeyLabs, SeedRequests),
		publisher: publisher,
	}
}

func (r *Repository) List(ctx context.Context) ([]Request, error) {
	return r.requests.Load(ctx)
}

func (r *Repository) GetByID(ctx context.Context, id string) (*Request, error) {
	requests, err := r.requests.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range requests {
		if requests[i].ID == id {
			req := requests[i]
			return &req, nil
		}
	}
	return nil, ErrRequestNotFound
}

// Create prepends the request to the lab log.
func (r *Repository) Create(ctx context.Context, req *Request) error {
	_, err := r.requests.Update(ctx, func(requests []Request) ([]Request, error) {
		return append([]Request{*req}, requests...), nil
	})
	if err != nil {
		return err
	}

	log.Info().
		Str("lab_request_id", req.ID).
		Str("patient_id", req.PatientID).
		Int("tests", len(req.Tests)).
		Float64("total_cost", req.TotalCost).
		Msg("Lab request submitted")
	r.publish(ctx, messaging.EventLabRequested, req)
	return nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id, status string) (*Request, error) {
	var updated Request
	var old string
	_, err := r.requests.Update(ctx, func(requests []Request) ([]Request, error) {
		for i := range requests {
			if requests[i].ID == id {
				old = requests[i].Status
				requests[i].Status = status
				updated = requests[i]
				return requests, nil
			}
		}
		return nil, ErrRequestNotFound
	})
	if err != nil {
		return nil, err
	}

	r.publish(ctx, messaging.EventLabStatusChanged, messaging.StatusChangedData{
		ID:        id,
		OldStatus: old,
		NewStatus: status,
		ChangedAt: time.Now().UTC(),
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

// CatalogRepository stores the master test catalog.
type CatalogRepository struct {
	tests *store.Collection[[]MasterTest]
}

func NewCatalogRepository(kv store.KV) *CatalogRepository {
	return &CatalogRepository{tests: store.NewCollection(kv, store.KeyMasterTests, SeedCatalog)}
}

func (r *CatalogRepository) List(ctx context.Context) ([]MasterTest, error) {
	return r.tests.Load(ctx)
}

func (r *CatalogRepository) Create(ctx context.Context, t *MasterTest) error {
	_, err := r.tests.Update(ctx, func(tests []MasterTest) ([]MasterTest, error) {
		return append(tests, *t), nil
	})
	return err
}

func (r *CatalogRepository) Update(ctx context.Context, t *MasterTest) error {
	_, err := r.tests.Update(ctx, func(tests []MasterTest) ([]MasterTest, error) {
		for i := range tests {
			if tests[i].ID == t.ID {
				tests[i] = *t
				return tests, nil
			}
		}
		return nil, ErrTestNotFound
	})
	return err
}

func (r *CatalogRepository) Delete(ctx context.Context, id string) error {
	_, err := r.tests.Update(ctx, func(tests []MasterTest) ([]MasterTest, error) {
		for i := range tests {
			if tests[i].ID == id {
				return append(tests[:i], tests[i+1:]...), nil
			}
		}
		return nil, ErrTestNotFound
	})
	return err
}
