package doctor

import "context"

// RepositoryInterface defines the contract for roster data access
type RepositoryInterface interface {
	List(ctx context.Context) ([]Doctor, error)
	GetByID(ctx context.Context, id string) (*Doctor, error)
	Create(ctx context.Context, d *Doctor) error
	Update(ctx context.Context, id string, fn func(*Doctor) error) (*Doctor, error)
	Delete(ctx context.Context, id string) error
}

// Ensure Repository implements RepositoryInterface
var _ RepositoryInterface = (*Repository)(nil)
