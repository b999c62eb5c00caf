package appointment

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

type AppointmentListResponse struct {
	Appointments []Appointment `json:"appointments"`
	Total        int           `json:"total"`
}

type conflictResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Warning string `json:"warning"`
}

// Book handles POST /api/appointments
func (h *Handler) Book(w http.ResponseWriter, r *http.Request) {
	var req BookRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	a, err := h.service.Book(r.Context(), req)
	if err != nil {
		h.writeError(w, err, "Failed to book appointment")
		return
	}

	respond.JSON(w, http.StatusCreated, a)
}

// List handles GET /api/appointments?date=YYYY-MM-DD
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.service.List(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		h.writeError(w, err, "Failed to list appointments")
		return
	}

	respond.JSON(w, http.StatusOK, AppointmentListResponse{Appointments: appointments, Total: len(appointments)})
}

// Get handles GET /api/appointments/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	a, err := h.service.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, err, "Failed to get appointment")
		return
	}

	respond.JSON(w, http.StatusOK, a)
}

// UpdateStatus handles PATCH /api/appointments/{id}/status
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req StatusRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	a, err := h.service.UpdateStatus(r.Context(), mux.Vars(r)["id"], req)
	if err != nil {
		h.writeError(w, err, "Failed to update appointment status")
		return
	}

	respond.JSON(w, http.StatusOK, a)
}

// Delete handles DELETE /api/appointments/{id}?confirm=true
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), mux.Vars(r)["id"], respond.Confirmed(r)); err != nil {
		h.writeError(w, err, "Failed to delete appointment")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SendReminder handles POST /api/appointments/{id}/reminder
func (h *Handler) SendReminder(w http.ResponseWriter, r *http.Request) {
	var req ReminderRequest
	if r.ContentLength != 0 && !respond.Decode(w, r, &req) {
		return
	}

	resp, err := h.service.SendReminder(r.Context(), mux.Vars(r)["id"], req)
	if err != nil {
		h.writeError(w, err, "Failed to send reminder")
		return
	}

	respond.JSON(w, http.StatusOK, resp)
}

// PatientVisits handles GET /api/patients/{id}/visits
func (h *Handler) PatientVisits(w http.ResponseWriter, r *http.Request) {
	visits, err := h.service.PatientVisits(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, err, "Failed to list visits")
		return
	}

	respond.JSON(w, http.StatusOK, map[string]interface{}{"visits": visits, "total": len(visits)})
}

func (h *Handler) writeError(w http.ResponseWriter, err error, fallback string) {
	var conflict *ConflictError
	switch {
	case errors.As(err, &conflict):
		respond.JSON(w, http.StatusConflict, conflictResponse{
			Error:   "scheduling_conflict",
			Message: "Possible scheduling conflict. Resubmit with force=true to save anyway.",
			Warning: conflict.Warning,
		})
	case errors.Is(err, ErrAppointmentNotFound):
		respond.Error(w, http.StatusNotFound, "not_found", "Appointment not found")
	case errors.Is(err, ErrInvalidStatus), errors.Is(err, ErrInvalidChannel):
		respond.Error(w, http.StatusBadRequest, "validation_error", err.Error())
	case errors.Is(err, ErrReminderUnavailable):
		respond.Error(w, http.StatusUnprocessableEntity, "reminder_unavailable", err.Error())
	case errors.Is(err, ErrConfirmationRequired):
		respond.ConfirmationRequired(w, "Deleting an appointment")
	default:
		if respond.Validation(w, err) {
			return
		}
		log.Error().Err(err).Msg(fallback)
		respond.Error(w, http.StatusInternalServerError, "internal_error", fallback)
	}
}
