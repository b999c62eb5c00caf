package patient

import (
	"context"
	"fmt"
	"strings"

	"github.com/WailSalutem-Health-Care/clinic-service/internal/clock"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/pagination"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Service struct {
	repo       RepositoryInterface
	summarizer HistorySummarizer
	now        clock.Clock
}

func NewService(repo RepositoryInterface, summarizer HistorySummarizer, now clock.Clock) *Service {
	if now == nil {
		now = clock.System
	}
	return &Service{repo: repo, summarizer: summarizer, now: now}
}

func (s *Service) CreatePatient(ctx context.Context, req CreatePatientRequest) (*Patient, error) {
	p, err := NewBuilder().FromRequest(req).Build(uuid.NewString())
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, &p); err != nil {
		return nil, fmt.Errorf("failed to create patient: %w", err)
	}
	return &p, nil
}

func (s *Service) GetPatient(ctx context.Context, id string) (*Patient, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListPatients(ctx context.Context, search string, params pagination.Params) (*PaginatedPatientListResponse, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}

	search = strings.TrimSpace(search)
	matched := make([]Patient, 0, len(all))
	for _, p := range all {
		if p.Matches(search) {
			matched = append(matched, p)
		}
	}

	page, meta := pagination.Paginate(matched, params)
	return &PaginatedPatientListResponse{Patients: page, Pagination: meta}, nil
}

// UpdatePatient merges the fields present in req into the stored record.
// The medical history is carried over untouched.
func (s *Service) UpdatePatient(ctx context.Context, id string, req UpdatePatientRequest) (*Patient, error) {
	p, err := s.repo.Update(ctx, id, func(p *Patient) error {
		next, err := NewBuilder().FromPatient(*p).Apply(req).Build(p.ID)
		if err != nil {
			return err
		}
		next.MedicalHistory = p.MedicalHistory
		*p = next
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update patient: %w", err)
	}
	return p, nil
}

// AddNote appends "Note (<date>): <text>" to the patient's medical history.
func (s *Service) AddNote(ctx context.Context, id string, req AddNoteRequest) (*Patient, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	entry := fmt.Sprintf("Note (%s): %s", clock.Date(s.now()), strings.TrimSpace(req.Note))
	return s.repo.AppendHistory(ctx, id, entry)
}

// SummarizeHistory asks the advisor for a summary. Advisor failures are not
// errors: the response comes back with Available=false.
func (s *Service) SummarizeHistory(ctx context.Context, id string) (*SummaryResponse, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := &SummaryResponse{PatientID: id}
	if len(p.MedicalHistory) == 0 {
		resp.Summary = "No history available."
		resp.Available = true
		return resp, nil
	}
	if s.summarizer == nil {
		return resp, nil
	}

	summary, err := s.summarizer.SummarizeHistory(ctx, p.MedicalHistory)
	if err != nil {
		log.Warn().Err(err).Str("patient_id", id).Msg("history summary unavailable")
		return resp, nil
	}
	resp.Summary = summary
	resp.Available = true
	return resp, nil
}
