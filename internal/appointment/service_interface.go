package appointment

import "context"

// ServiceInterface defines the contract for scheduling operations
type ServiceInterface interface {
	Book(ctx context.Context, req BookRequest) (*Appointment, error)
	List(ctx context.Context, date string) ([]Appointment, error)
	Get(ctx context.Context, id string) (*Appointment, error)
	UpdateStatus(ctx context.Context, id string, req StatusRequest) (*Appointment, error)
	Delete(ctx context.Context, id string, confirmed bool) error
	SendReminder(ctx context.Context, id string, req ReminderRequest) (*ReminderResponse, error)
	PatientVisits(ctx context.Context, patientID string) ([]Visit, error)
}

// Ensure Service implements ServiceInterface
var _ ServiceInterface = (*Service)(nil)
