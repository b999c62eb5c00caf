package billing

import (
	"context"

	"github.com/WailSalutem-Health-Care/clinic-service/internal/clock"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/messaging"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/store"
	"github.com/rs/zerolog/log"
)

type Repository struct {
	invoices  *store.Collection[[]Invoice]
	publisher messaging.PublisherInterface
}

func NewRepository(kv store.KV, publisher messaging.PublisherInterface, now clock.Clock) *Repository {
	if now == nil {
		now = clock.System
	}
	seed := func() []Invoice { return Seed(clock.Date(now())) }
	return &Repository{
		invoices:  store.NewCollection(kv, store.KeyInvoices, seed),
		publisher: publisher,
	}
}

func (r *Repository) List(ctx context.Context) ([]Invoice, error) {
	return r.invoices.Load(ctx)
}

// Create prepends the invoice to the log.
func (r *Repository) Create(ctx context.Context, inv *Invoice) error {
	_, err := r.invoices.Update(ctx, func(invoices []Invoice) ([]Invoice, error) {
		return append([]Invoice{*inv}, invoices...), nil
	})
	if err != nil {
		return err
	}

	log.Info().
		Str("invoice_id", inv.ID).
		Str("appointment_id", inv.AppointmentID).
		Float64("amount", inv.Amount).
		Str("method", inv.Method).
		Msg("Invoice issued")
	if r.publisher != nil {
		if err := r.publisher.Publish(ctx, messaging.EventInvoiceCreated, messaging.NewEvent(messaging.EventInvoiceCreated, inv)); err != nil {
			log.Warn().Err(err).Str("routing_key", messaging.EventInvoiceCreated).Msg("failed to publish event")
		}
	}
	return nil
}
