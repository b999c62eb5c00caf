package billing

import (
	"context"

	"github.com/WailSalutem-Health-Care/clinic-service/internal/appointment"
)

// ServiceInterface defines the contract for settlement operations
type ServiceInterface interface {
	Checkout(ctx context.Context, req CheckoutRequest) (*Invoice, error)
	PendingVisits(ctx context.Context) ([]appointment.Appointment, error)
	ListInvoices(ctx context.Context) ([]Invoice, error)
	Revenue(ctx context.Context) (*Summary, error)
}

// Ensure Service implements ServiceInterface
var _ ServiceInterface = (*Service)(nil)
