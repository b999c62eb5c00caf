package billing

import (
	"errors"
	"net/http"

	"github.com/WailSalutem-Health-Care/clinic-service/internal/appointment"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/respond"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service ServiceInterface
}

func NewHandler(service ServiceInterface) *Handler {
	return &Handler{service: service}
}

// PendingVisits handles GET /api/billing/pending
func (h *Handler) PendingVisits(w http.ResponseWriter, r *http.Request) {
	visits, err := h.service.PendingVisits(r.Context())
	if err != nil {
		h.writeError(w, err, "Failed to list pending visits")
		return
	}

	respond.JSON(w, http.StatusOK, appointment.AppointmentListResponse{Appointments: visits, Total: len(visits)})
}

// Checkout handles POST /api/billing/checkout
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	inv, err := h.service.Checkout(r.Context(), req)
	if err != nil {
		h.writeError(w, err, "Failed to check out")
		return
	}

	respond.JSON(w, http.StatusCreated, inv)
}

// ListInvoices handles GET /api/billing/invoices
func (h *Handler) ListInvoices(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.service.ListInvoices(r.Context())
	if err != nil {
		h.writeError(w, err, "Failed to list invoices")
		return
	}

	respond.JSON(w, http.StatusOK, InvoiceListResponse{Invoices: invoices, Total: len(invoices)})
}

// Revenue handles GET /api/billing/revenue
func (h *Handler) Revenue(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Revenue(r.Context())
	if err != nil {
		h.writeError(w, err, "Failed to summarize revenue")
		return
	}

	respond.JSON(w, http.StatusOK, summary)
}

func (h *Handler) writeError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, ErrAppointmentNotFound):
		respond.Error(w, http.StatusNotFound, "not_found", "Appointment not found")
	default:
		if respond.Validation(w, err) {
			return
		}
		log.Error().Err(err).Msg(fallback)
		respond.Error(w, http.StatusInternalServerError, "internal_error", fallback)
	}
}
