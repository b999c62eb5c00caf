package lab

import (
	"context"
	"fmt"
	"strings"

	"github.com/WailSalutem-Health-Care/clinic-service/internal/clock"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/patient"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/validation"
	"github.com/google/uuid"
)

// PatientDirectory lists patients for name search.
type PatientDirectory interface {
	List(ctx context.Context) ([]patient.Patient, error)
}

type Service struct {
	repo     RepositoryInterface
	catalog  CatalogRepositoryInterface
	patients PatientDirectory
	now      clock.Clock
}

func NewService(repo RepositoryInterface, catalog CatalogRepositoryInterface, patients PatientDirectory, now clock.Clock) *Service {
	if now == nil {
		now = clock.System
	}
	return &Service{repo: repo, catalog: catalog, patients: patients, now: now}
}

func newRequestID() string {
	return "LAB-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:5])
}

// CreateRequest submits a lab order. Lines without a cost take the catalog's
// default, or 0 for tests not in the catalog.
func (s *Service) CreateRequest(ctx context.Context, req CreateRequest) (*Request, error) {
	catalog, err := s.catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load test catalog: %w", err)
	}

	b := NewRequestBuilder().Patient(req.PatientID).Doctor(req.DoctorID)
	for _, line := range req.Tests {
		cost := costOf(catalog, line.Name)
		if line.Cost != nil {
			cost = *line.Cost
		}
		b.Test(line.Name, cost)
	}

	r, err := b.Build(newRequestID(), s.now())
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, &r); err != nil {
		return nil, fmt.Errorf("failed to create lab request: %w", err)
	}
	return &r, nil
}

// ListRequests returns the lab log, newest first. search matches the request
// id or the patient's first or last name, case-insensitively.
func (s *Service) ListRequests(ctx context.Context, search string) ([]Request, error) {
	requests, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list lab requests: %w", err)
	}
	term := strings.ToLower(strings.TrimSpace(search))
	if term == "" {
		return requests, nil
	}

	patients, err := s.patients.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	byID := make(map[string]patient.Patient, len(patients))
	for _, p := range patients {
		byID[p.ID] = p
	}

	out := []Request{}
	for _, r := range requests {
		if strings.Contains(strings.ToLower(r.ID), term) {
			out = append(out, r)
			continue
		}
		p, ok := byID[r.PatientID]
		if ok && (strings.Contains(strings.ToLower(p.FirstName), term) || strings.Contains(strings.ToLower(p.LastName), term)) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *Service) GetRequest(ctx context.Context, id string) (*Request, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) UpdateStatus(ctx context.Context, id string, req StatusRequest) (*Request, error) {
	if !ValidStatus(req.Status) {
		return nil, ErrInvalidStatus
	}
	return s.repo.UpdateStatus(ctx, id, req.Status)
}

func (s *Service) ListCatalog(ctx context.Context) ([]MasterTest, error) {
	return s.catalog.List(ctx)
}

// DefaultCost returns the catalog cost for name, or 0 when it is not listed.
func (s *Service) DefaultCost(ctx context.Context, name string) (float64, error) {
	catalog, err := s.catalog.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load test catalog: %w", err)
	}
	return costOf(catalog, name), nil
}

func (s *Service) AddCatalogTest(ctx context.Context, req CatalogRequest) (*MasterTest, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	t := MasterTest{ID: uuid.NewString()[:5], Name: req.Name, DefaultCost: req.DefaultCost}
	if err := s.catalog.Create(ctx, &t); err != nil {
		return nil, fmt.Errorf("failed to add catalog test: %w", err)
	}
	return &t, nil
}

// UpdateCatalogTest edits a catalog entry. Existing requests keep their costs.
func (s *Service) UpdateCatalogTest(ctx context.Context, id string, req CatalogRequest) (*MasterTest, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	t := MasterTest{ID: id, Name: req.Name, DefaultCost: req.DefaultCost}
	if err := s.catalog.Update(ctx, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Service) DeleteCatalogTest(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return ErrConfirmationRequired
	}
	return s.catalog.Delete(ctx, id)
}

func costOf(catalog []MasterTest, name string) float64 {
	for _, t := range catalog {
		if t.Name == name {
			return t.DefaultCost
		}
	}
	return 0
}
