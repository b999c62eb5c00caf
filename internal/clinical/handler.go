package clinical

import (
	"context"
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/WailSalutem-Health-Care/clinic-service/internal/advisor"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/respond"
	"github.com/rs/zerolog/log"
)

// Assistant is the part of the advisor used at the consultation desk.
type Assistant interface {
	SuggestDiagnosis(ctx context.Context, notes string) (*advisor.Diagnosis, error)
	TranscribeVoiceNote(ctx context.Context, audioBase64, mimeType string) (string, error)
}

type Handler struct {
	assistant Assistant
}

func NewHandler(assistant Assistant) *Handler {
	return &Handler{assistant: assistant}
}

// SuggestDiagnosis handles POST /api/clinical/diagnosis
func (h *Handler) SuggestDiagnosis(w http.ResponseWriter, r *http.Request) {
	var req DiagnosisRequest
	if !respond.Decode(w, r, &req) {
		return
	}
	notes := strings.TrimSpace(req.Notes)
	if notes == "" {
		respond.Error(w, http.StatusBadRequest, "validation_error", "notes are required")
		return
	}

	d, err := h.assistant.SuggestDiagnosis(r.Context(), notes)
	if err != nil {
		log.Warn().Err(err).Msg("diagnosis suggestion unavailable")
		respond.JSON(w, http.StatusOK, DiagnosisResponse{})
		return
	}
	respond.JSON(w, http.StatusOK, DiagnosisResponse{Available: true, Diagnosis: d})
}

// TranscribeVoiceNote handles POST /api/clinical/transcribe
func (h *Handler) TranscribeVoiceNote(w http.ResponseWriter, r *http.Request) {
	var req TranscribeRequest
	if !respond.Decode(w, r, &req) {
		return
	}
	if req.Audio == "" {
		respond.Error(w, http.StatusBadRequest, "validation_error", "audio is required")
		return
	}
	if _, err := base64.StdEncoding.DecodeString(req.Audio); err != nil {
		respond.Error(w, http.StatusBadRequest, "validation_error", "audio must be base64 encoded")
		return
	}

	note, err := h.assistant.TranscribeVoiceNote(r.Context(), req.Audio, req.MimeType)
	if err != nil {
		log.Warn().Err(err).Msg("transcription unavailable")
		respond.JSON(w, http.StatusOK, TranscribeResponse{})
		return
	}
	respond.JSON(w, http.StatusOK, TranscribeResponse{Available: true, Note: note})
}
