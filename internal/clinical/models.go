package clinical

import "github.com/WailSalutem-Health-Care/clinic-service/internal/advisor"

// DiagnosisRequest carries free-text consultation notes.
type DiagnosisRequest struct {
	Notes string `json:"notes"`
}

// DiagnosisResponse is always 200; Available is false when the advisor
// could not answer.
type DiagnosisResponse struct {
	Available bool               `json:"available"`
	Diagnosis *advisor.Diagnosis `json:"diagnosis,omitempty"`
}

// TranscribeRequest carries a base64 encoded dictation.
type TranscribeRequest struct {
	Audio    string `json:"audio"`
	MimeType string `json:"mimeType"`
}

// TranscribeResponse holds the SOAP formatted note.
type TranscribeResponse struct {
	Available bool   `json:"available"`
	Note      string `json:"note"`
}
