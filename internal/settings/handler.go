package settings

import (
	"net/http"

	"github.com/WailSalutem-Health-Care/clinic-service/internal/respond"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service ServiceInterface
}

func NewHandler(service ServiceInterface) *Handler {
	return &Handler{service: service}
}

// Get handles GET /api/settings
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	s, err := h.service.Get(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to load settings")
		respond.Error(w, http.StatusInternalServerError, "internal_error", "Failed to load settings")
		return
	}

	respond.JSON(w, http.StatusOK, s)
}

// Update handles PUT /api/settings
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req Settings
	if !respond.Decode(w, r, &req) {
		return
	}

	s, err := h.service.Update(r.Context(), req)
	if err != nil {
		if respond.Validation(w, err) {
			return
		}
		log.Error().Err(err).Msg("Failed to save settings")
		respond.Error(w, http.StatusInternalServerError, "internal_error", "Failed to save settings")
		return
	}

	respond.JSON(w, http.StatusOK, s)
}
