package billing

import "context"

// RepositoryInterface defines the contract for invoice log access
type RepositoryInterface interface {
	List(ctx context.Context) ([]Invoice, error)
	Create(ctx context.Context, inv *Invoice) error
}

// Ensure Repository implements RepositoryInterface
var _ RepositoryInterface = (*Repository)(nil)
