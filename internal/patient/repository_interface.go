package patient

import "context"

// RepositoryInterface defines the contract for patient data access
type RepositoryInterface interface {
	List(ctx context.Context) ([]Patient, error)
	GetByID(ctx context.Context, id string) (*Patient, error)
	Create(ctx context.Context, p *Patient) error
	Update(ctx context.Context, id string, fn func(*Patient) error) (*Patient, error)
	AppendHistory(ctx context.Context, id, entry string) (*Patient, error)
}

// Ensure Repository implements RepositoryInterface
var _ RepositoryInterface = (*Repository)(nil)
