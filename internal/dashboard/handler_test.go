package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/WailSalutem-Health-Care/clinic-service/internal/auth"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/doctor"
	"github.com/gorilla/mux"
)

type mockService struct {
	OverviewFunc    func(ctx context.Context, withRevenue bool) (*Overview, error)
	PerformanceFunc func(ctx context.Context, doctorID, from, to string) (*Performance, error)
}

func (m *mockService) Overview(ctx context.Context, withRevenue bool) (*Overview, error) {
	return m.OverviewFunc(ctx, withRevenue)
}

func (m *mockService) Performance(ctx context.Context, doctorID, from, to string) (*Performance, error) {
	return m.PerformanceFunc(ctx, doctorID, from, to)
}

func TestHandler_OverviewRevenueByRole(t *testing.T) {
	perms := auth.Permissions{"ADMIN": {"billing:view"}, "SECRETARY": {"dashboard:view"}}
	for role, want := range map[string]bool{"ADMIN": true, "SECRETARY": false} {
		var got bool
		mock := &mockService{OverviewFunc: func(ctx context.Context, withRevenue bool) (*Overview, error) {
			got = withRevenue
			return &Overview{}, nil
		}}
		req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
		req = req.WithContext(auth.ContextWithPrincipal(req.Context(), &auth.Principal{UserID: "u", Roles: []string{role}}))
		rec := httptest.NewRecorder()
		NewHandler(mock, perms).Overview(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", role, rec.Code)
		}
		if got != want {
			t.Errorf("%s: expected withRevenue=%v, got %v", role, want, got)
		}
	}
}

func TestHandler_Performance(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"ok", nil, http.StatusOK},
		{"bad range", ErrInvalidRange, http.StatusBadRequest},
		{"unknown doctor", doctor.ErrDoctorNotFound, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockService{PerformanceFunc: func(ctx context.Context, doctorID, from, to string) (*Performance, error) {
				if doctorID != "d1" || from != "2026-10-01" || to != "2026-10-19" {
					t.Errorf("Unexpected arguments %s %s %s", doctorID, from, to)
				}
				if tt.err != nil {
					return nil, tt.err
				}
				return &Performance{DoctorID: doctorID, VisitCount: 3}, nil
			}}
			req := httptest.NewRequest(http.MethodGet, "/api/doctors/d1/performance?from=2026-10-01&to=2026-10-19", nil)
			req = mux.SetURLVars(req, map[string]string{"id": "d1"})
			rec := httptest.NewRecorder()
			NewHandler(mock, nil).Performance(rec, req)

			if rec.Code != tt.want {
				t.Fatalf("Expected %d, got %d", tt.want, rec.Code)
			}
			if tt.err == nil {
				var out Performance
				_ = json.NewDecoder(rec.Body).Decode(&out)
				if out.VisitCount != 3 {
					t.Errorf("Unexpected body %+v", out)
				}
			}
		})
	}
}
