package appointment

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
)

// mockService implements ServiceInterface for testing
type mockService struct {
	ServiceInterface
	bookFunc         func(ctx context.Context, req BookRequest) (*Appointment, error)
	listFunc         func(ctx context.Context, date string) ([]Appointment, error)
	deleteFunc       func(ctx context.Context, id string, confirmed bool) error
	sendReminderFunc func(ctx context.Context, id string, req ReminderRequest) (*ReminderResponse, error)
}

func (m *mockService) Book(ctx context.Context, req BookRequest) (*Appointment, error) {
	return m.bookFunc(ctx, req)
}

func (m *mockService) List(ctx context.Context, date string) ([]Appointment, error) {
	return m.listFunc(ctx, date)
}

func (m *mockService) Delete(ctx context.Context, id string, confirmed bool) error {
	return m.deleteFunc(ctx, id, confirmed)
}

func (m *mockService) SendReminder(ctx context.Context, id string, req ReminderRequest) (*ReminderResponse, error) {
	return m.sendReminderFunc(ctx, id, req)
}

func TestHandlerBook_Conflict(t *testing.T) {
	handler := NewHandler(&mockService{
		bookFunc: func(ctx context.Context, req BookRequest) (*Appointment, error) {
			if req.Force {
				return &Appointment{ID: "a1"}, nil
			}
			return nil, &ConflictError{Warning: "Double booked"}
		},
	})

	body := []byte(`{"patientId":"1","doctorId":"d1","dateTime":"2026-10-19T10:30"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/appointments", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	handler.Book(rr, req)

	if rr.Code != http.StatusConflict {
		t.Fatalf("Expected status 409, got %d", rr.Code)
	}
	var got conflictResponse
	json.NewDecoder(rr.Body).Decode(&got)
	if got.Error != "scheduling_conflict" || got.Warning != "Double booked" {
		t.Errorf("Unexpected body %+v", got)
	}

	body = []byte(`{"patientId":"1","doctorId":"d1","dateTime":"2026-10-19T10:30","force":true}`)
	req = httptest.NewRequest(http.MethodPost, "/api/appointments", bytes.NewReader(body))
	rr = httptest.NewRecorder()
	handler.Book(rr, req)

	if rr.Code != http.StatusCreated {
		t.Errorf("Expected status 201, got %d", rr.Code)
	}
}

func TestHandlerList_PassesDate(t *testing.T) {
	handler := NewHandler(&mockService{
		listFunc: func(ctx context.Context, date string) ([]Appointment, error) {
			if date != "2026-10-19" {
				t.Errorf("Expected date filter, got %q", date)
			}
			return []Appointment{{ID: "a1"}}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/appointments?date=2026-10-19", nil)
	rr := httptest.NewRecorder()
	handler.List(rr, req)

	var got AppointmentListResponse
	json.NewDecoder(rr.Body).Decode(&got)
	if rr.Code != http.StatusOK || got.Total != 1 {
		t.Errorf("Unexpected response %d %+v", rr.Code, got)
	}
}

func TestHandlerDelete_Confirmation(t *testing.T) {
	handler := NewHandler(&mockService{
		deleteFunc: func(ctx context.Context, id string, confirmed bool) error {
			if !confirmed {
				return ErrConfirmationRequired
			}
			return nil
		},
	})

	tests := []struct {
		url  string
		want int
	}{
		{"/api/appointments/a1", http.StatusConflict},
		{"/api/appointments/a1?confirm=true", http.StatusNoContent},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodDelete, tt.url, nil)
		req = mux.SetURLVars(req, map[string]string{"id": "a1"})
		rr := httptest.NewRecorder()
		handler.Delete(rr, req)
		if rr.Code != tt.want {
			t.Errorf("%s: expected %d, got %d", tt.url, tt.want, rr.Code)
		}
	}
}

func TestHandlerSendReminder_EmptyBody(t *testing.T) {
	handler := NewHandler(&mockService{
		sendReminderFunc: func(ctx context.Context, id string, req ReminderRequest) (*ReminderResponse, error) {
			if id != "a1" || req.Channel != "" {
				t.Errorf("Unexpected input %q %+v", id, req)
			}
			return &ReminderResponse{AppointmentID: id, Channel: ChannelWhatsApp}, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/appointments/a1/reminder", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "a1"})
	rr := httptest.NewRecorder()
	handler.SendReminder(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rr.Code)
	}
}

func TestHandlerSendReminder_MissingReferences(t *testing.T) {
	handler := NewHandler(&mockService{
		sendReminderFunc: func(ctx context.Context, id string, req ReminderRequest) (*ReminderResponse, error) {
			return nil, ErrReminderUnavailable
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/appointments/a1/reminder", bytes.NewReader([]byte(`{"channel":"SMS"}`)))
	req = mux.SetURLVars(req, map[string]string{"id": "a1"})
	rr := httptest.NewRecorder()
	handler.SendReminder(rr, req)

	if rr.Code != http.StatusUnprocessableEntity {
		t.Errorf("Expected status 422, got %d", rr.Code)
	}
}
