package patient

import (
	"errors"
	"net/http"

	"github.com/WailSalutem-Health-Care/clinic-service/internal/pagination"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/respond"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service ServiceInterface
}

func NewHandler(service ServiceInterface) *Handler {
	return &Handler{service: service}
}

// CreatePatient handles POST /api/patients
func (h *Handler) CreatePatient(w http.ResponseWriter, r *http.Request) {
	var req CreatePatientRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	p, err := h.service.CreatePatient(r.Context(), req)
	if err != nil {
		if respond.Validation(w, err) {
			return
		}
		log.Error().Err(err).Msg("failed to create patient")
		respond.Error(w, http.StatusInternalServerError, "internal_error", "Failed to create patient")
		return
	}

	respond.JSON(w, http.StatusCreated, p)
}

// ListPatients handles GET /api/patients?search=&page=&limit=
func (h *Handler) ListPatients(w http.ResponseWriter, r *http.Request) {
	params := pagination.Parse(r)
	search := r.URL.Query().Get("search")

	resp, err := h.service.ListPatients(r.Context(), search, params)
	if err != nil {
		log.Error().Err(err).Msg("failed to list patients")
		respond.Error(w, http.StatusInternalServerError, "internal_error", "Failed to list patients")
		return
	}

	respond.JSON(w, http.StatusOK, resp)
}

// GetPatient handles GET /api/patients/{id}
func (h *Handler) GetPatient(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	p, err := h.service.GetPatient(r.Context(), id)
	if err != nil {
		h.writeError(w, err, "Failed to get patient")
		return
	}

	respond.JSON(w, http.StatusOK, p)
}

// UpdatePatient handles PUT /api/patients/{id}
func (h *Handler) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req UpdatePatientRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	p, err := h.service.UpdatePatient(r.Context(), id, req)
	if err != nil {
		h.writeError(w, err, "Failed to update patient")
		return
	}

	respond.JSON(w, http.StatusOK, p)
}

// AddNote handles POST /api/patients/{id}/notes
func (h *Handler) AddNote(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req AddNoteRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	p, err := h.service.AddNote(r.Context(), id, req)
	if err != nil {
		h.writeError(w, err, "Failed to save note")
		return
	}

	respond.JSON(w, http.StatusOK, p)
}

// SummarizeHistory handles POST /api/patients/{id}/summary
func (h *Handler) SummarizeHistory(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	resp, err := h.service.SummarizeHistory(r.Context(), id)
	if err != nil {
		h.writeError(w, err, "Failed to summarize history")
		return
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) writeError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, ErrPatientNotFound):
		respond.Error(w, http.StatusNotFound, "not_found", "Patient not found")
	case errors.Is(err, ErrEmptyNote):
		respond.Error(w, http.StatusBadRequest, "validation_error", err.Error())
	default:
		if respond.Validation(w, err) {
			return
		}
		log.Error().Err(err).Msg(fallback)
		respond.Error(w, http.StatusInternalServerError, "internal_error", fallback)
	}
}
