package users

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	repo RepositoryInterface
}

func NewService(repo RepositoryInterface) *Service {
	return &Service{repo: repo}
}

// CreateUser provisions an account. The returned user carries no password.
func (s *Service) CreateUser(ctx context.Context, req CreateUserRequest) (*User, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Username = strings.TrimSpace(req.Username)
	if err := req.Validate(); err != nil {
		return nil, err
	}

	user := User{
		ID:       uuid.NewString()[:9],
		Name:     req.Name,
		Username: req.Username,
		Password: req.Password,
		Role:     req.Role,
		Email:    strings.TrimSpace(req.Email),
	}
	if err := s.repo.Create(ctx, &user); err != nil {
		return nil, err
	}

	out := user.Sanitized()
	return &out, nil
}

func (s *Service) GetUser(ctx context.Context, id string) (*User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	out := u.Sanitized()
	return &out, nil
}

func (s *Service) ListUsers(ctx context.Context) ([]User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	out := make([]User, len(users))
	for i, u := range users {
		out[i] = u.Sanitized()
	}
	return out, nil
}

func (s *Service) UpdateUser(ctx context.Context, id string, req UpdateUserRequest) (*User, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Username = strings.TrimSpace(req.Username)
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Name = req.Name
	existing.Username = req.Username
	existing.Role = req.Role
	existing.Email = strings.TrimSpace(req.Email)
	if req.Password != "" {
		existing.Password = req.Password
	}
	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}

	out := existing.Sanitized()
	return &out, nil
}

// DeleteUser removes an account. The last remaining administrator is
// refused before any confirmation is asked for.
func (s *Service) DeleteUser(ctx context.Context, id string, confirmed bool) error {
	users, err := s.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}
	if IsLastAdmin(users, id) {
		return ErrLastAdmin
	}
	if !confirmed {
		return ErrConfirmationRequired
	}
	return s.repo.Delete(ctx, id)
}
