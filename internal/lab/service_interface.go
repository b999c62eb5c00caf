package lab

import "context"

// ServiceInterface defines the contract for laboratory operations
type ServiceInterface interface {
	CreateRequest(ctx context.Context, req CreateRequest) (*Request, error)
	ListRequests(ctx context.Context, search string) ([]Request, error)
	GetRequest(ctx context.Context, id string) (*Request, error)
	UpdateStatus(ctx context.Context, id string, req StatusRequest) (*Request, error)
	ListCatalog(ctx context.Context) ([]MasterTest, error)
	DefaultCost(ctx context.Context, name string) (float64, error)
	AddCatalogTest(ctx context.Context, req CatalogRequest) (*MasterTest, error)
	UpdateCatalogTest(ctx context.Context, id string, req CatalogRequest) (*MasterTest, error)
	DeleteCatalogTest(ctx context.Context, id string, confirmed bool) error
}

// Ensure Service implements ServiceInterface
var _ ServiceInterface = (*Service)(nil)
