package advisor

import (
	"context"
	"errors"
)

// ErrUnavailable is returned when no advisor is configured or the upstream
// model could not produce an answer.
var ErrUnavailable = errors.New("clinical advisor unavailable")

// NoConflict is the verdict returned when a booking clashes with nothing.
const NoConflict = "NO_CONFLICT"

// Reminder channels understood by DraftReminder.
const (
	ChannelSMS      = "SMS"
	ChannelWhatsApp = "WhatsApp"
)

// Advisor is the clinical assistant. Every call is best-effort: callers treat
// an error as "no advice" and carry on.
type Advisor interface {
	AnalyzeConflict(ctx context.Context, candidate, existing interface{}) (string, error)
	SuggestDiagnosis(ctx context.Context, notes string) (*Diagnosis, error)
	TranscribeVoiceNote(ctx context.Context, audioBase64, mimeType string) (string, error)
	SummarizeHistory(ctx context.Context, history []string) (string, error)
	DraftReminder(ctx context.Context, patientName, doctorName, dateTime, channel string) (string, error)
}

// DiagnosisCode is one suggested ICD-10 code.
type DiagnosisCode struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// Diagnosis is the structured answer to a diagnosis request.
type Diagnosis struct {
	SuggestedDiagnoses []DiagnosisCode `json:"suggestedDiagnoses"`
	TreatmentPlan      string          `json:"treatmentPlan"`
	ClinicalAlerts     []string        `json:"clinicalAlerts"`
	RiskLevel          string          `json:"riskLevel"`
}

var _ Advisor = Disabled{}

// Disabled is used when no API key is configured.
type Disabled struct{}

func (Disabled) AnalyzeConflict(context.Context, interface{}, interface{}) (string, error) {
	return "", ErrUnavailable
}

func (Disabled) SuggestDiagnosis(context.Context, string) (*Diagnosis, error) {
	return nil, ErrUnavailable
}

func (Disabled) TranscribeVoiceNote(context.Context, string, string) (string, error) {
	return "", ErrUnavailable
}

func (Disabled) SummarizeHistory(context.Context, []string) (string, error) {
	return "", ErrUnavailable
}

func (Disabled) DraftReminder(context.Context, string, string, string, string) (string, error) {
	return "", ErrUnavailable
}
