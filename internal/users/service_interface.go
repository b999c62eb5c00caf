package users

import "context"

// ServiceInterface defines the contract for account management operations
type ServiceInterface interface {
	CreateUser(ctx context.Context, req CreateUserRequest) (*User, error)
	GetUser(ctx context.Context, id string) (*User, error)
	ListUsers(ctx context.Context) ([]User, error)
	UpdateUser(ctx context.Context, id string, req UpdateUserRequest) (*User, error)
	DeleteUser(ctx context.Context, id string, confirmed bool) error
}

// Ensure Service implements ServiceInterface
var _ ServiceInterface = (*Service)(nil)
