package dashboard

import (
	"errors"
	"net/http"

	"github.com/WailSalutem-Health-Care/clinic-service/internal/auth"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/doctor"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/respond"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

// RevenuePermission gates the revenue block of the overview.
const RevenuePermission = "billing:view"

type Handler struct {
	service ServiceInterface
	perms   auth.Permissions
}

func NewHandler(service ServiceInterface, perms auth.Permissions) *Handler {
	return &Handler{service: service, perms: perms}
}

// Overview handles GET /api/dashboard
func (h *Handler) Overview(w http.ResponseWriter, r *http.Request) {
	withRevenue := false
	if pr, ok := auth.FromContext(r.Context()); ok {
		withRevenue = auth.HasPermission(pr, RevenuePermission, h.perms)
	}

	out, err := h.service.Overview(r.Context(), withRevenue)
	if err != nil {
		log.Error().Err(err).Msg("Failed to build dashboard")
		respond.Error(w, http.StatusInternalServerError, "internal_error", "Failed to build dashboard")
		return
	}
	respond.JSON(w, http.StatusOK, out)
}

// Performance handles GET /api/doctors/{id}/performance?from=&to=
func (h *Handler) Performance(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	out, err := h.service.Performance(r.Context(), mux.Vars(r)["id"], q.Get("from"), q.Get("to"))
	switch {
	case err == nil:
		respond.JSON(w, http.StatusOK, out)
	case errors.Is(err, ErrInvalidRange):
		respond.Error(w, http.StatusBadRequest, "invalid_range", err.Error())
	case errors.Is(err, doctor.ErrDoctorNotFound):
		respond.Error(w, http.StatusNotFound, "not_found", err.Error())
	default:
		log.Error().Err(err).Msg("Failed to compute doctor performance")
		respond.Error(w, http.StatusInternalServerError, "internal_error", "Failed to compute performance")
	}
}
