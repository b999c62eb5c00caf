package doctor

import (
	"context"
	"fmt"

	"github.com/WailSalutem-Health-Care/clinic-service/internal/clock"
	"github.com/google/uuid"
)

type Service struct {
	repo RepositoryInterface
	now  clock.Clock
}

func NewService(repo RepositoryInterface, now clock.Clock) *Service {
	if now == nil {
		now = clock.System
	}
	return &Service{repo: repo, now: now}
}

func (s *Service) CreateDoctor(ctx context.Context, req DoctorRequest) (*Doctor, error) {
	d, err := NewBuilder().FromRequest(req).Build("d" + uuid.NewString()[:8])
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, &d); err != nil {
		return nil, fmt.Errorf("failed to create doctor: %w", err)
	}
	return &d, nil
}

func (s *Service) GetDoctor(ctx context.Context, id string) (*Doctor, error) {
	return s.repo.GetByID(ctx, id)
}

// ListDoctors returns the roster, optionally narrowed to one specialty.
// An empty specialty or "All" returns everyone.
func (s *Service) ListDoctors(ctx context.Context, specialty string) ([]Doctor, error) {
	doctors, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	if specialty == "" || specialty == "All" {
		return doctors, nil
	}
	out := []Doctor{}
	for _, d := range doctors {
		if d.Specialty == specialty {
			out = append(out, d)
		}
	}
	return out, nil
}

// UpdateDoctor merges the fields present in req into the stored record and
// rederives the working days.
func (s *Service) UpdateDoctor(ctx context.Context, id string, req UpdateDoctorRequest) (*Doctor, error) {
	return s.repo.Update(ctx, id, func(d *Doctor) error {
		next, err := NewBuilder().FromDoctor(*d).Apply(req).Build(d.ID)
		if err != nil {
			return err
		}
		*d = next
		return nil
	})
}

func (s *Service) DeleteDoctor(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return ErrConfirmationRequired
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) AddDocument(ctx context.Context, id string, req AddDocumentRequest) (*Doctor, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	fileType := req.FileType
	if fileType == "" {
		fileType = DefaultDocumentType
	}
	doc := Document{
		ID:         uuid.NewString()[:9],
		Name:       req.Name,
		FileType:   fileType,
		UploadDate: clock.Date(s.now()),
		URL:        req.URL,
	}
	return s.repo.Update(ctx, id, func(d *Doctor) error {
		d.Documents = append(d.Documents, doc)
		return nil
	})
}

func (s *Service) RemoveDocument(ctx context.Context, id, documentID string) (*Doctor, error) {
	return s.repo.Update(ctx, id, func(d *Doctor) error {
		for i := range d.Documents {
			if d.Documents[i].ID == documentID {
				d.Documents = append(d.Documents[:i], d.Documents[i+1:]...)
				return nil
			}
		}
		return ErrDocumentNotFound
	})
}

// OnDuty lists doctors whose derived schedule includes day (MON..SUN).
func (s *Service) OnDuty(ctx context.Context, day string) ([]Doctor, error) {
	doctors, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	out := []Doctor{}
	for _, d := range doctors {
		if d.WorksOn(day) {
			out = append(out, d)
		}
	}
	return out, nil
}
