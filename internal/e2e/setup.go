package e2e

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/WailSalutem-Health-Care/clinic-service/internal/advisor"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/auth"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/clock"
	httpserver "github.com/WailSalutem-Health-Care/clinic-service/internal/http"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/store"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/testutil"
)

// Today is a Monday in the past; the seeded doctor works MON 09:00-17:00.
// Session tokens are issued at Today, so they carry a long TTL.
var Today = time.Date(2026, 10, 12, 8, 0, 0, 0, time.UTC)

// TestServer is a complete service backed by the in-memory store.
type TestServer struct {
	Server        *httptest.Server
	KV            *store.MemoryKV
	MockPublisher *testutil.MockPublisher
	Advisor       *testutil.FakeAdvisor
	Verifier      *auth.Verifier
}

// SetupE2ETest starts the full router over a fresh store. The advisor
// reports no conflicts unless a test replaces AnalyzeConflictFunc.
func SetupE2ETest(t *testing.T) *TestServer {
	t.Helper()

	perms, err := auth.LoadPermissions("../../permissions.yml")
	if err != nil {
		t.Fatalf("Failed to load permissions: %v", err)
	}

	cfg := auth.Config{Secret: []byte("e2e-secret"), Issuer: "medcore-e2e", TTL: 50 * 365 * 24 * time.Hour}
	verifier := auth.NewVerifier(cfg)

	fake := &testutil.FakeAdvisor{
		AnalyzeConflictFunc: func(context.Context, interface{}, interface{}) (string, error) {
			return advisor.NoConflict, nil
		},
	}

	ts := &TestServer{
		KV:            store.NewMemoryKV(),
		MockPublisher: testutil.NewMockPublisher(),
		Advisor:       fake,
		Verifier:      verifier,
	}

	router := httpserver.SetupRouter(httpserver.Deps{
		KV:         ts.KV,
		Publisher:  ts.MockPublisher,
		Advisor:    fake,
		Verifier:   verifier,
		Perms:      perms,
		AuthConfig: cfg,
		Clock:      clock.Fixed(Today),
	})
	ts.Server = httptest.NewServer(router)
	t.Cleanup(ts.Server.Close)

	return ts
}

// NewClient returns a client that sends token.
func (ts *TestServer) NewClient(token string) *testutil.HTTPTestClient {
	return testutil.NewHTTPTestClient(ts.Server.URL, token)
}

// Login signs in through the API and returns the bearer token.
func (ts *TestServer) Login(t *testing.T, username, password string) string {
	t.Helper()

	resp := ts.NewClient("").POST(t, "/api/auth/login", auth.LoginRequest{Username: username, Password: password})
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var out auth.LoginResponse
	testutil.DecodeJSON(t, resp, &out)
	if out.Token == "" {
		t.Fatal("Expected a session token")
	}
	return out.Token
}

// AdminClient signs in as the seeded administrator.
func (ts *TestServer) AdminClient(t *testing.T) *testutil.HTTPTestClient {
	t.Helper()
	return ts.NewClient(ts.Login(t, "admin", "admin"))
}

// SecretaryClient signs in as the seeded secretary.
func (ts *TestServer) SecretaryClient(t *testing.T) *testutil.HTTPTestClient {
	t.Helper()
	return ts.NewClient(ts.Login(t, "secretary", "password"))
}
