package billing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/WailSalutem-Health-Care/clinic-service/internal/appointment"
)

// mockService implements ServiceInterface for testing
type mockService struct {
	checkoutFunc func(ctx context.Context, req CheckoutRequest) (*Invoice, error)
	revenueFunc  func(ctx context.Context) (*Summary, error)
}

func (m *mockService) Checkout(ctx context.Context, req CheckoutRequest) (*Invoice, error) {
	return m.checkoutFunc(ctx, req)
}

func (m *mockService) PendingVisits(ctx context.Context) ([]appointment.Appointment, error) {
	return nil, errors.New("not implemented")
}

func (m *mockService) ListInvoices(ctx context.Context) ([]Invoice, error) {
	return nil, errors.New("not implemented")
}

func (m *mockService) Revenue(ctx context.Context) (*Summary, error) {
	return m.revenueFunc(ctx)
}

func TestHandlerCheckout(t *testing.T) {
	handler := NewHandler(&mockService{
		checkoutFunc: func(ctx context.Context, req CheckoutRequest) (*Invoice, error) {
			if req.AppointmentID == "missing" {
				return nil, ErrAppointmentNotFound
			}
			return &Invoice{ID: "INV-1", AppointmentID: req.AppointmentID, Amount: 450}, nil
		},
	})

	tests := []struct {
		body string
		want int
	}{
		{`{"appointmentId":"a1","method":"Cash"}`, http.StatusCreated},
		{`{"appointmentId":"missing","method":"Cash"}`, http.StatusNotFound},
		{`not json`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodPost, "/api/billing/checkout", bytes.NewReader([]byte(tt.body)))
		rr := httptest.NewRecorder()
		handler.Checkout(rr, req)
		if rr.Code != tt.want {
			t.Errorf("%s: expected %d, got %d", tt.body, tt.want, rr.Code)
		}
	}
}

func TestHandlerRevenue(t *testing.T) {
	handler := NewHandler(&mockService{
		revenueFunc: func(ctx context.Context) (*Summary, error) {
			return &Summary{Total: 150, Daily: 150}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/billing/revenue", nil)
	rr := httptest.NewRecorder()
	handler.Revenue(rr, req)

	var got Summary
	json.NewDecoder(rr.Body).Decode(&got)
	if rr.Code != http.StatusOK || got.Total != 150 {
		t.Errorf("Unexpected response %d %+v", rr.Code, got)
	}
}
