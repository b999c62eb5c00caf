package settings

import (
	"context"
	"fmt"
	"strings"

	"github.com/WailSalutem-Health-Care/clinic-service/internal/validation"
)

// ServiceInterface defines the contract for settings operations
type ServiceInterface interface {
	Get(ctx context.Context) (*Settings, error)
	Update(ctx context.Context, s Settings) (*Settings, error)
}

// Ensure Service implements ServiceInterface
var _ ServiceInterface = (*Service)(nil)

type Service struct {
	repo RepositoryInterface
}

func NewService(repo RepositoryInterface) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context) (*Settings, error) {
	current, err := s.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return &current, nil
}

// Update replaces the whole settings document.
func (s *Service) Update(ctx context.Context, next Settings) (*Settings, error) {
	next.ClinicName = strings.TrimSpace(next.ClinicName)
	next.SupportEmail = strings.TrimSpace(next.SupportEmail)
	if next.Logo != nil && *next.Logo == "" {
		next.Logo = nil
	}
	if err := validation.Struct(next); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, next); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}
	return &next, nil
}
