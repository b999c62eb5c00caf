package doctor

import "context"

// ServiceInterface defines the contract for roster operations
type ServiceInterface interface {
	CreateDoctor(ctx context.Context, req DoctorRequest) (*Doctor, error)
	GetDoctor(ctx context.Context, id string) (*Doctor, error)
	ListDoctors(ctx context.Context, specialty string) ([]Doctor, error)
	UpdateDoctor(ctx context.Context, id string, req UpdateDoctorRequest) (*Doctor, error)
	DeleteDoctor(ctx context.Context, id string, confirmed bool) error
	AddDocument(ctx context.Context, id string, req AddDocumentRequest) (*Doctor, error)
	RemoveDocument(ctx context.Context, id, documentID string) (*Doctor, error)
	OnDuty(ctx context.Context, day string) ([]Doctor, error)
}

// Ensure Service implements ServiceInterface
var _ ServiceInterface = (*Service)(nil)
