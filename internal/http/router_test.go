package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/WailSalutem-Health-Care/clinic-service/internal/auth"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/store"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/users"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

type recordedRequest struct {
	method string
	route  string
	status int
}

type mockHTTPMetrics struct {
	mu       sync.Mutex
	requests []recordedRequest
}

func (m *mockHTTPMetrics) RecordHTTPRequest(ctx context.Context, method, route string, statusCode int, durationMs float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = append(m.requests, recordedRequest{method: method, route: route, status: statusCode})
}

func newTestRouter(t *testing.T, staticDir string) (*mux.Router, *auth.Verifier) {
	t.Helper()

	perms, err := auth.LoadPermissions("../../permissions.yml")
	if err != nil {
		t.Fatalf("Failed to load permissions: %v", err)
	}
	cfg := auth.Config{Secret: []byte("router-secret"), TTL: time.Hour}
	verifier := auth.NewVerifier(cfg)
	logger := zerolog.Nop()

	r := SetupRouter(Deps{
		KV:         store.NewMemoryKV(),
		Verifier:   verifier,
		Perms:      perms,
		AuthConfig: cfg,
		Logger:     &logger,
		StaticDir:  staticDir,
	})
	return r, verifier
}

func tokenFor(t *testing.T, v *auth.Verifier, role string) string {
	t.Helper()
	token, _, err := v.Sign(users.User{ID: "u1", Name: "Test", Role: role}, time.Now())
	if err != nil {
		t.Fatalf("Failed to sign token: %v", err)
	}
	return token
}

func serve(r http.Handler, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestRouter_Health(t *testing.T) {
	r, _ := newTestRouter(t, "")

	rr := serve(r, http.MethodGet, "/health", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"service":"clinic-service"`) {
		t.Errorf("Unexpected body %s", rr.Body.String())
	}
}

func TestRouter_Permissions(t *testing.T) {
	r, v := newTestRouter(t, "")
	admin := tokenFor(t, v, users.RoleAdmin)
	secretary := tokenFor(t, v, users.RoleSecretary)
	doctor := tokenFor(t, v, users.RoleDoctor)

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		want   int
	}{
		{"anonymous", http.MethodGet, "/api/patients", "", http.StatusUnauthorized},
		{"secretary lists patients", http.MethodGet, "/api/patients", secretary, http.StatusOK},
		{"doctor lists specialties", http.MethodGet, "/api/doctors/specialties", doctor, http.StatusOK},
		{"secretary revenue", http.MethodGet, "/api/billing/revenue", secretary, http.StatusForbidden},
		{"admin revenue", http.MethodGet, "/api/billing/revenue", admin, http.StatusOK},
		{"doctor users", http.MethodGet, "/api/users", doctor, http.StatusForbidden},
		{"secretary exports patients", http.MethodGet, "/api/export/patients", secretary, http.StatusOK},
		{"secretary exports invoices", http.MethodGet, "/api/export/invoices", secretary, http.StatusForbidden},
		{"admin exports invoices", http.MethodGet, "/api/export/invoices", admin, http.StatusOK},
		{"secretary catalog", http.MethodGet, "/api/labs/catalog", secretary, http.StatusOK},
		{"secretary edits catalog", http.MethodDelete, "/api/labs/catalog/1?confirm=true", secretary, http.StatusForbidden},
		{"unknown lab", http.MethodGet, "/api/labs/nope", secretary, http.StatusNotFound},
		{"secretary diagnosis", http.MethodPost, "/api/clinical/diagnosis", secretary, http.StatusForbidden},
		{"admin backup", http.MethodGet, "/api/settings/backup", admin, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := serve(r, tt.method, tt.path, tt.token)
			if rr.Code != tt.want {
				t.Errorf("Expected %d, got %d: %s", tt.want, rr.Code, rr.Body.String())
			}
		})
	}
}

func TestRouter_StaticFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>MedCore</h1>"), 0644); err != nil {
		t.Fatalf("Failed to write index: %v", err)
	}
	r, _ := newTestRouter(t, dir)

	rr := serve(r, http.MethodGet, "/", "")
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), "MedCore") {
		t.Errorf("Expected index page, got %d %s", rr.Code, rr.Body.String())
	}
}

func TestCORSMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	h := CORSMiddleware([]string{"http://localhost:5173"})(next)

	req := httptest.NewRequest(http.MethodOptions, "/api/patients", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusNoContent {
		t.Errorf("Expected preflight 204, got %d", rr.Code)
	}
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("Expected allowed origin, got %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/patients", nil)
	req.Header.Set("Origin", "http://evil.example")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusTeapot {
		t.Errorf("Expected request to reach handler, got %d", rr.Code)
	}
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("Expected no allowed origin, got %q", got)
	}
}

func TestRecovery(t *testing.T) {
	h := RequestID(Recovery(zerolog.Nop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if rr.Code != http.StatusInternalServerError {
		t.Errorf("Expected 500, got %d", rr.Code)
	}
	if rr.Header().Get(RequestIDHeader) == "" {
		t.Error("Expected a request id header")
	}
}

func TestRequestID_ReusesIncoming(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if seen != "req-42" || rr.Header().Get(RequestIDHeader) != "req-42" {
		t.Errorf("Expected req-42, got context %q header %q", seen, rr.Header().Get(RequestIDHeader))
	}
}

func TestMetrics_UsesRouteTemplate(t *testing.T) {
	m := &mockHTTPMetrics{}
	r := mux.NewRouter()
	r.Use(Metrics(m))
	r.HandleFunc("/api/patients/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}).Methods("GET")

	serve(r, http.MethodGet, "/api/patients/17", "")

	if len(m.requests) != 1 {
		t.Fatalf("Expected 1 recorded request, got %d", len(m.requests))
	}
	got := m.requests[0]
	if got.route != "/api/patients/{id}" || got.status != http.StatusAccepted || got.method != "GET" {
		t.Errorf("Unexpected observation %+v", got)
	}
}
