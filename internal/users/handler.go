package users

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

// CreateUser handles POST /api/users
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	user, err := h.service.CreateUser(r.Context(), req)
	if err != nil {
		h.writeError(w, err, "failed to create user")
		return
	}

	respond.JSON(w, http.StatusCreated, user)
}

// ListUsers handles GET /api/users
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		h.writeError(w, err, "failed to list users")
		return
	}

	respond.JSON(w, http.StatusOK, UserListResponse{Users: users, Count: len(users)})
}

// GetUser handles GET /api/users/{id}
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.GetUser(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, err, "failed to get user")
		return
	}

	respond.JSON(w, http.StatusOK, user)
}

// UpdateUser handles PUT /api/users/{id}
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var req UpdateUserRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	user, err := h.service.UpdateUser(r.Context(), mux.Vars(r)["id"], req)
	if err != nil {
		h.writeError(w, err, "failed to update user")
		return
	}

	respond.JSON(w, http.StatusOK, user)
}

// DeleteUser handles DELETE /api/users/{id}?confirm=true
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteUser(r.Context(), mux.Vars(r)["id"], respond.Confirmed(r)); err != nil {
		h.writeError(w, err, "failed to delete user")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) writeError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, ErrMissingName), errors.Is(err, ErrMissingUsername),
		errors.Is(err, ErrMissingPassword), errors.Is(err, ErrInvalidRole):
		respond.Error(w, http.StatusBadRequest, "validation_error", err.Error())
	case errors.Is(err, ErrUserNotFound):
		respond.Error(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ErrUsernameTaken):
		respond.Error(w, http.StatusConflict, "username_taken", err.Error())
	case errors.Is(err, ErrLastAdmin):
		respond.Error(w, http.StatusConflict, "last_admin", err.Error())
	case errors.Is(err, ErrConfirmationRequired):
		respond.ConfirmationRequired(w, "Deleting a user")
	default:
		log.Error().Err(err).Msg(fallback)
		respond.Error(w, http.StatusInternalServerError, "internal_error", fallback)
	}
}
