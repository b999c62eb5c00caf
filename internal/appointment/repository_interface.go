package appointment

import "context"

// RepositoryInterface defines the contract for appointment data access
type RepositoryInterface interface {
	List(ctx context.Context) ([]Appointment, error)
	GetByID(ctx context.Context, id string) (*Appointment, error)
	Create(ctx context.Context, a *Appointment) error
	UpdateStatus(ctx context.Context, id, status string) (*Appointment, error)
	Delete(ctx context.Context, id string) error
}

// Ensure Repository implements RepositoryInterface
var _ RepositoryInterface = (*Repository)(nil)
