package auth

import (
	"errors"
	"net/http"

	"github.com/WailSalutem-Health-Care/clinic-service/internal/respond"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	sessions SessionServiceInterface
}

func NewHandler(sessions SessionServiceInterface) *Handler {
	return &Handler{sessions: sessions}
}

// Login handles POST /api/auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	resp, err := h.sessions.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			respond.Error(w, http.StatusUnauthorized, "invalid_credentials", err.Error())
			return
		}
		log.Error().Err(err).Msg("Login failed")
		respond.Error(w, http.StatusInternalServerError, "internal_error", "Login failed")
		return
	}

	respond.JSON(w, http.StatusOK, resp)
}

// Logout handles POST /api/auth/logout
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Logout(r.Context()); err != nil {
		log.Error().Err(err).Msg("Logout failed")
		respond.Error(w, http.StatusInternalServerError, "internal_error", "Logout failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Session handles GET /api/auth/session
func (h *Handler) Session(w http.ResponseWriter, r *http.Request) {
	u, err := h.sessions.Current(r.Context())
	if err != nil {
		if errors.Is(err, ErrNoSession) {
			respond.Error(w, http.StatusNotFound, "no_session", err.Error())
			return
		}
		log.Error().Err(err).Msg("Failed to load session")
		respond.Error(w, http.StatusInternalServerError, "internal_error", "Failed to load session")
		return
	}

	respond.JSON(w, http.StatusOK, u)
}
