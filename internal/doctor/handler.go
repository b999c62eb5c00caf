package doctor

import (
	"errors"
	"net/http"

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

type DoctorListResponse struct {
	Doctors []Doctor `json:"doctors"`
	Total   int      `json:"total"`
}

// CreateDoctor handles POST /api/doctors
func (h *Handler) CreateDoctor(w http.ResponseWriter, r *http.Request) {
	var req DoctorRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	d, err := h.service.CreateDoctor(r.Context(), req)
	if err != nil {
		h.writeError(w, err, "Failed to create doctor")
		return
	}

	respond.JSON(w, http.StatusCreated, d)
}

// ListDoctors handles GET /api/doctors?specialty=
func (h *Handler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.service.ListDoctors(r.Context(), r.URL.Query().Get("specialty"))
	if err != nil {
		h.writeError(w, err, "Failed to list doctors")
		return
	}

	respond.JSON(w, http.StatusOK, DoctorListResponse{Doctors: doctors, Total: len(doctors)})
}

// GetDoctor handles GET /api/doctors/{id}
func (h *Handler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	d, err := h.service.GetDoctor(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, err, "Failed to get doctor")
		return
	}

	respond.JSON(w, http.StatusOK, d)
}

// UpdateDoctor handles PUT /api/doctors/{id}
func (h *Handler) UpdateDoctor(w http.ResponseWriter, r *http.Request) {
	var req UpdateDoctorRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	d, err := h.service.UpdateDoctor(r.Context(), mux.Vars(r)["id"], req)
	if err != nil {
		h.writeError(w, err, "Failed to update doctor")
		return
	}

	respond.JSON(w, http.StatusOK, d)
}

// DeleteDoctor handles DELETE /api/doctors/{id}?confirm=true
func (h *Handler) DeleteDoctor(w http.ResponseWriter, r *http.Request) {
	err := h.service.DeleteDoctor(r.Context(), mux.Vars(r)["id"], respond.Confirmed(r))
	if err != nil {
		h.writeError(w, err, "Failed to delete doctor")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AddDocument handles POST /api/doctors/{id}/documents
func (h *Handler) AddDocument(w http.ResponseWriter, r *http.Request) {
	var req AddDocumentRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	d, err := h.service.AddDocument(r.Context(), mux.Vars(r)["id"], req)
	if err != nil {
		h.writeError(w, err, "Failed to add document")
		return
	}

	respond.JSON(w, http.StatusCreated, d)
}

// RemoveDocument handles DELETE /api/doctors/{id}/documents/{docId}
func (h *Handler) RemoveDocument(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	d, err := h.service.RemoveDocument(r.Context(), vars["id"], vars["docId"])
	if err != nil {
		h.writeError(w, err, "Failed to remove document")
		return
	}

	respond.JSON(w, http.StatusOK, d)
}

// ListSpecialties handles GET /api/doctors/specialties
func (h *Handler) ListSpecialties(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, map[string][]string{"specialties": Specialties})
}

func (h *Handler) writeError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, ErrDoctorNotFound):
		respond.Error(w, http.StatusNotFound, "not_found", "Doctor not found")
	case errors.Is(err, ErrDocumentNotFound):
		respond.Error(w, http.StatusNotFound, "not_found", "Document not found")
	case errors.Is(err, ErrMissingDocumentName):
		respond.Error(w, http.StatusBadRequest, "validation_error", err.Error())
	case errors.Is(err, ErrConfirmationRequired):
		respond.ConfirmationRequired(w, "Removing a doctor")
	default:
		if respond.Validation(w, err) {
			return
		}
		log.Error().Err(err).Msg(fallback)
		respond.Error(w, http.StatusInternalServerError, "internal_error", fallback)
	}
}
