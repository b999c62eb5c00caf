package lab

import "context"

// RepositoryInterface defines the contract for lab request data access
type RepositoryInterface interface {
	List(ctx context.Context) ([]Request, error)
	GetByID(ctx context.Context, id string) (*Request, error)
	Create(ctx context.Context, req *Request) error
	UpdateStatus(ctx context.Context, id, status string) (*Request, error)
}

// CatalogRepositoryInterface defines the contract for the master test catalog
type CatalogRepositoryInterface interface {
	List(ctx context.Context) ([]MasterTest, error)
	Create(ctx context.Context, t *MasterTest) error
	Update(ctx context.Context, t *MasterTest) error
	Delete(ctx context.Context, id string) error
}

// Ensure repositories implement their interfaces
var (
	_ RepositoryInterface        = (*Repository)(nil)
	_ CatalogRepositoryInterface = (*CatalogRepository)(nil)
)
