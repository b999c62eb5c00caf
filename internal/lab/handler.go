package lab

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

// CreateRequest handles POST /api/labs
func (h *Handler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	lr, err := h.service.CreateRequest(r.Context(), req)
	if err != nil {
		h.writeError(w, err, "Failed to create lab request")
		return
	}

	respond.JSON(w, http.StatusCreated, lr)
}

// ListRequests handles GET /api/labs?search=
func (h *Handler) ListRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.service.ListRequests(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		h.writeError(w, err, "Failed to list lab requests")
		return
	}

	respond.JSON(w, http.StatusOK, ListResponse{Requests: requests, Total: len(requests)})
}

// GetRequest handles GET /api/labs/{id}
func (h *Handler) GetRequest(w http.ResponseWriter, r *http.Request) {
	lr, err := h.service.GetRequest(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, err, "Failed to get lab request")
		return
	}

	respond.JSON(w, http.StatusOK, lr)
}

// UpdateStatus handles PATCH /api/labs/{id}/status
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req StatusRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	lr, err := h.service.UpdateStatus(r.Context(), mux.Vars(r)["id"], req)
	if err != nil {
		h.writeError(w, err, "Failed to update lab request")
		return
	}

	respond.JSON(w, http.StatusOK, lr)
}

// ListCatalog handles GET /api/labs/catalog, or GET /api/labs/catalog?name=
// to look up the default cost of one test.
func (h *Handler) ListCatalog(w http.ResponseWriter, r *http.Request) {
	if name := r.URL.Query().Get("name"); name != "" {
		cost, err := h.service.DefaultCost(r.Context(), name)
		if err != nil {
			h.writeError(w, err, "Failed to look up test cost")
			return
		}
		respond.JSON(w, http.StatusOK, map[string]interface{}{"name": name, "defaultCost": cost})
		return
	}

	tests, err := h.service.ListCatalog(r.Context())
	if err != nil {
		h.writeError(w, err, "Failed to list test catalog")
		return
	}

	respond.JSON(w, http.StatusOK, map[string]interface{}{"tests": tests, "total": len(tests)})
}

// AddCatalogTest handles POST /api/labs/catalog
func (h *Handler) AddCatalogTest(w http.ResponseWriter, r *http.Request) {
	var req CatalogRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	t, err := h.service.AddCatalogTest(r.Context(), req)
	if err != nil {
		h.writeError(w, err, "Failed to add catalog test")
		return
	}

	respond.JSON(w, http.StatusCreated, t)
}

// UpdateCatalogTest handles PUT /api/labs/catalog/{id}
func (h *Handler) UpdateCatalogTest(w http.ResponseWriter, r *http.Request) {
	var req CatalogRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	t, err := h.service.UpdateCatalogTest(r.Context(), mux.Vars(r)["id"], req)
	if err != nil {
		h.writeError(w, err, "Failed to update catalog test")
		return
	}

	respond.JSON(w, http.StatusOK, t)
}

// DeleteCatalogTest handles DELETE /api/labs/catalog/{id}?confirm=true
func (h *Handler) DeleteCatalogTest(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteCatalogTest(r.Context(), mux.Vars(r)["id"], respond.Confirmed(r)); err != nil {
		h.writeError(w, err, "Failed to delete catalog test")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) writeError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, ErrRequestNotFound):
		respond.Error(w, http.StatusNotFound, "not_found", "Lab request not found")
	case errors.Is(err, ErrTestNotFound):
		respond.Error(w, http.StatusNotFound, "not_found", "Catalog test not found")
	case errors.Is(err, ErrInvalidStatus):
		respond.Error(w, http.StatusBadRequest, "validation_error", err.Error())
	case errors.Is(err, ErrConfirmationRequired):
		respond.ConfirmationRequired(w, "Removing a catalog test")
	default:
		if respond.Validation(w, err) {
			return
		}
		log.Error().Err(err).Msg(fallback)
		respond.Error(w, http.StatusInternalServerError, "internal_error", fallback)
	}
}
