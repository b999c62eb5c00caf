package testutil

import (
	"context"
	"sync"

	"github.com/WailSalutem-Health-Care/clinic-service/internal/advisor"
)

// FakeAdvisor is a scripted advisor.Advisor. A nil func answers as if the
// advisor were unavailable.
type FakeAdvisor struct {
	AnalyzeConflictFunc     func(ctx context.Context, candidate, existing interface{}) (string, error)
	SuggestDiagnosisFunc    func(ctx context.Context, notes string) (*advisor.Diagnosis, error)
	TranscribeVoiceNoteFunc func(ctx context.Context, audioBase64, mimeType string) (string, error)
	SummarizeHistoryFunc    func(ctx context.Context, history []string) (string, error)
	DraftReminderFunc       func(ctx context.Context, patientName, doctorName, dateTime, channel string) (string, error)

	mu    sync.Mutex
	calls map[string]int
}

var _ advisor.Advisor = (*FakeAdvisor)(nil)

// Calls returns how often operation was invoked.
func (f *FakeAdvisor) Calls(operation string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[operation]
}

func (f *FakeAdvisor) record(operation string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls == nil {
		f.calls = map[string]int{}
	}
	f.calls[operation]++
}

func (f *FakeAdvisor) AnalyzeConflict(ctx context.Context, candidate, existing interface{}) (string, error) {
	f.record("analyze_conflict")
	if f.AnalyzeConflictFunc == nil {
		return "", advisor.ErrUnavailable
	}
	return f.AnalyzeConflictFunc(ctx, candidate, existing)
}

func (f *FakeAdvisor) SuggestDiagnosis(ctx context.Context, notes string) (*advisor.Diagnosis, error) {
	f.record("suggest_diagnosis")
	if f.SuggestDiagnosisFunc == nil {
		return nil, advisor.ErrUnavailable
	}
	return f.SuggestDiagnosisFunc(ctx, notes)
}

func (f *FakeAdvisor) TranscribeVoiceNote(ctx context.Context, audioBase64, mimeType string) (string, error) {
	f.record("transcribe")
	if f.TranscribeVoiceNoteFunc == nil {
		return "", advisor.ErrUnavailable
	}
	return f.TranscribeVoiceNoteFunc(ctx, audioBase64, mimeType)
}

func (f *FakeAdvisor) SummarizeHistory(ctx context.Context, history []string) (string, error) {
	f.record("summarize_history")
	if f.SummarizeHistoryFunc == nil {
		return "", advisor.ErrUnavailable
	}
	return f.SummarizeHistoryFunc(ctx, history)
}

func (f *FakeAdvisor) DraftReminder(ctx context.Context, patientName, doctorName, dateTime, channel string) (string, error) {
	f.record("draft_reminder")
	if f.DraftReminderFunc == nil {
		return "", advisor.ErrUnavailable
	}
	return f.DraftReminderFunc(ctx, patientName, doctorName, dateTime, channel)
}
