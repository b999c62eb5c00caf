package patient

import (
	"context"

	"github.com/WailSalutem-Health-Care/clinic-service/internal/pagination"
)

// ServiceInterface defines the contract for patient business logic operations
type ServiceInterface interface {
	CreatePatient(ctx context.Context, req CreatePatientRequest) (*Patient, error)
	GetPatient(ctx context.Context, id string) (*Patient, error)
	ListPatients(ctx context.Context, search string, params pagination.Params) (*PaginatedPatientListResponse, error)
	UpdatePatient(ctx context.Context, id string, req UpdatePatientRequest) (*Patient, error)
	AddNote(ctx context.Context, id string, req AddNoteRequest) (*Patient, error)
	SummarizeHistory(ctx context.Context, id string) (*SummaryResponse, error)
}

// HistorySummarizer condenses a medical history into a short narrative.
type HistorySummarizer interface {
	SummarizeHistory(ctx context.Context, history []string) (string, error)
}

// Ensure Service implements ServiceInterface
var _ ServiceInterface = (*Service)(nil)
