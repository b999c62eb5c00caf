package http

import (
	"net/http"

	"github.com/WailSalutem-Health-Care/clinic-service/internal/advisor"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/appointment"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/auth"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/billing"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/clinical"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/clock"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/dashboard"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/doctor"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/export"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/lab"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/messaging"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/patient"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/respond"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/settings"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/store"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/telemetry"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/users"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/views"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
)

const serviceName = "clinic-service"

// Deps carries everything the router wires into the domain packages.
type Deps struct {
	KV         store.KV
	Publisher  messaging.PublisherInterface
	Advisor    advisor.Advisor
	Verifier   *auth.Verifier
	Perms      auth.Permissions
	AuthConfig auth.Config
	Metrics    *telemetry.Metrics
	Clock      clock.Clock
	Logger     *zerolog.Logger
	StaticDir  string
}

// SetupRouter initializes all routes for the application
func SetupRouter(d Deps) *mux.Router {
	if d.Publisher == nil {
		d.Publisher = messaging.NoopPublisher{}
	}
	if d.Advisor == nil {
		d.Advisor = advisor.Disabled{}
	}
	if d.Clock == nil {
		d.Clock = clock.System
	}
	logger := log.Logger
	if d.Logger != nil {
		logger = *d.Logger
	}

	var (
		authMetrics    auth.MetricsRecorder
		permMetrics    auth.PermissionMetricsRecorder
		loginRecorder  auth.LoginRecorder
		invoiceMetrics billing.Recorder
	)
	if d.Metrics != nil {
		authMetrics = d.Metrics
		permMetrics = d.Metrics
		loginRecorder = d.Metrics
		invoiceMetrics = d.Metrics
	}

	// Repositories
	patientRepo := patient.NewRepository(d.KV, d.Publisher)
	doctorRepo := doctor.NewRepository(d.KV, d.Publisher)
	appointmentRepo := appointment.NewRepository(d.KV, d.Publisher)
	labRepo := lab.NewRepository(d.KV, d.Publisher)
	catalogRepo := lab.NewCatalogRepository(d.KV)
	invoiceRepo := billing.NewRepository(d.KV, d.Publisher, d.Clock)
	userRepo := users.NewRepository(d.KV, d.Publisher)
	settingsRepo := settings.NewRepository(d.KV, d.Publisher)

	// Services
	patientService := patient.NewService(patientRepo, d.Advisor, d.Clock)
	doctorService := doctor.NewService(doctorRepo, d.Clock)
	appointmentService := appointment.NewService(appointmentRepo, patientRepo, doctorRepo, d.Advisor, d.Publisher, d.Clock)
	labService := lab.NewService(labRepo, catalogRepo, patientRepo, d.Clock)
	billingService := billing.NewService(invoiceRepo, appointmentRepo, patientRepo, doctorRepo, labRepo, invoiceMetrics, d.Clock)
	userService := users.NewService(userRepo)
	settingsService := settings.NewService(settingsRepo)
	sessionService := auth.NewSessionService(d.KV, userRepo, d.Verifier, d.AuthConfig, loginRecorder, d.Clock)
	dashboardService := dashboard.NewService(patientRepo, appointmentRepo, doctorRepo, billingService, d.Clock)
	source := views.NewSource(views.Collections{
		Patients:     patientRepo,
		Doctors:      doctorRepo,
		Appointments: appointmentRepo,
		Labs:         labRepo,
		Invoices:     invoiceRepo,
		Users:        userRepo,
		Settings:     settingsRepo,
	})

	// Handlers
	patientHandler := patient.NewHandler(patientService)
	doctorHandler := doctor.NewHandler(doctorService)
	appointmentHandler := appointment.NewHandler(appointmentService)
	labHandler := lab.NewHandler(labService)
	billingHandler := billing.NewHandler(billingService)
	userHandler := users.NewHandler(userService)
	settingsHandler := settings.NewHandler(settingsService)
	authHandler := auth.NewHandler(sessionService)
	clinicalHandler := clinical.NewHandler(d.Advisor)
	exportHandler := export.NewHandler(source, d.Clock)
	dashboardHandler := dashboard.NewHandler(dashboardService, d.Perms)

	authenticated := auth.MiddlewareWithMetrics(d.Verifier, authMetrics)
	protect := func(permission string, h http.HandlerFunc) http.Handler {
		return authenticated(
			auth.RequirePermissionWithMetrics(permission, d.Perms, permMetrics)(h),
		)
	}

	r := mux.NewRouter()
	r.Use(RequestID)
	r.Use(Recovery(logger))
	r.Use(Logger(logger))
	r.Use(otelmux.Middleware(serviceName))
	if d.Metrics != nil {
		r.Use(Metrics(d.Metrics))
	}

	// Public health endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		respond.JSON(w, http.StatusOK, map[string]string{"status": "ok", "service": serviceName})
	}).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()

	// Session routes
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	api.Handle("/auth/logout", authenticated(http.HandlerFunc(authHandler.Logout))).Methods("POST")
	api.Handle("/auth/session", authenticated(http.HandlerFunc(authHandler.Session))).Methods("GET")

	// Dashboard
	api.Handle("/dashboard", protect("dashboard:view", dashboardHandler.Overview)).Methods("GET")

	// Patient routes
	api.Handle("/patients", protect("patient:create", patientHandler.CreatePatient)).Methods("POST")
	api.Handle("/patients", protect("patient:view", patientHandler.ListPatients)).Methods("GET")
	api.Handle("/patients/{id}", protect("patient:view", patientHandler.GetPatient)).Methods("GET")
	api.Handle("/patients/{id}", protect("patient:update", patientHandler.UpdatePatient)).Methods("PUT")
	api.Handle("/patients/{id}/notes", protect("patient:note", patientHandler.AddNote)).Methods("POST")
	api.Handle("/patients/{id}/summary", protect("clinical:assist", patientHandler.SummarizeHistory)).Methods("POST")
	api.Handle("/patients/{id}/visits", protect("appointment:view", appointmentHandler.PatientVisits)).Methods("GET")

	// Doctor routes; fixed paths before {id}
	api.Handle("/doctors/specialties", protect("doctor:view", doctorHandler.ListSpecialties)).Methods("GET")
	api.Handle("/doctors", protect("doctor:manage", doctorHandler.CreateDoctor)).Methods("POST")
	api.Handle("/doctors", protect("doctor:view", doctorHandler.ListDoctors)).Methods("GET")
	api.Handle("/doctors/{id}", protect("doctor:view", doctorHandler.GetDoctor)).Methods("GET")
	api.Handle("/doctors/{id}", protect("doctor:manage", doctorHandler.UpdateDoctor)).Methods("PUT")
	api.Handle("/doctors/{id}", protect("doctor:manage", doctorHandler.DeleteDoctor)).Methods("DELETE")
	api.Handle("/doctors/{id}/documents", protect("doctor:manage", doctorHandler.AddDocument)).Methods("POST")
	api.Handle("/doctors/{id}/documents/{docId}", protect("doctor:manage", doctorHandler.RemoveDocument)).Methods("DELETE")
	api.Handle("/doctors/{id}/performance", protect("dashboard:view", dashboardHandler.Performance)).Methods("GET")

	// Appointment routes
	api.Handle("/appointments", protect("appointment:manage", appointmentHandler.Book)).Methods("POST")
	api.Handle("/appointments", protect("appointment:view", appointmentHandler.List)).Methods("GET")
	api.Handle("/appointments/{id}", protect("appointment:view", appointmentHandler.Get)).Methods("GET")
	api.Handle("/appointments/{id}/status", protect("appointment:manage", appointmentHandler.UpdateStatus)).Methods("PATCH")
	api.Handle("/appointments/{id}", protect("appointment:manage", appointmentHandler.Delete)).Methods("DELETE")
	api.Handle("/appointments/{id}/reminder", protect("appointment:manage", appointmentHandler.SendReminder)).Methods("POST")

	// Lab routes; catalog before {id}
	api.Handle("/labs/catalog", protect("lab:view", labHandler.ListCatalog)).Methods("GET")
	api.Handle("/labs/catalog", protect("lab:catalog", labHandler.AddCatalogTest)).Methods("POST")
	api.Handle("/labs/catalog/{id}", protect("lab:catalog", labHandler.UpdateCatalogTest)).Methods("PUT")
	api.Handle("/labs/catalog/{id}", protect("lab:catalog", labHandler.DeleteCatalogTest)).Methods("DELETE")
	api.Handle("/labs", protect("lab:manage", labHandler.CreateRequest)).Methods("POST")
	api.Handle("/labs", protect("lab:view", labHandler.ListRequests)).Methods("GET")
	api.Handle("/labs/{id}", protect("lab:view", labHandler.GetRequest)).Methods("GET")
	api.Handle("/labs/{id}/status", protect("lab:manage", labHandler.UpdateStatus)).Methods("PATCH")

	// Billing routes (ADMIN only)
	api.Handle("/billing/pending", protect("billing:view", billingHandler.PendingVisits)).Methods("GET")
	api.Handle("/billing/checkout", protect("billing:checkout", billingHandler.Checkout)).Methods("POST")
	api.Handle("/billing/invoices", protect("billing:view", billingHandler.ListInvoices)).Methods("GET")
	api.Handle("/billing/revenue", protect("billing:view", billingHandler.Revenue)).Methods("GET")

	// Clinical assistant
	api.Handle("/clinical/diagnosis", protect("clinical:assist", clinicalHandler.SuggestDiagnosis)).Methods("POST")
	api.Handle("/clinical/transcribe", protect("clinical:assist", clinicalHandler.TranscribeVoiceNote)).Methods("POST")

	// User management (ADMIN only)
	api.Handle("/users", protect("user:manage", userHandler.CreateUser)).Methods("POST")
	api.Handle("/users", protect("user:manage", userHandler.ListUsers)).Methods("GET")
	api.Handle("/users/{id}", protect("user:manage", userHandler.GetUser)).Methods("GET")
	api.Handle("/users/{id}", protect("user:manage", userHandler.UpdateUser)).Methods("PUT")
	api.Handle("/users/{id}", protect("user:manage", userHandler.DeleteUser)).Methods("DELETE")

	// Settings and backup
	api.Handle("/settings", protect("settings:view", settingsHandler.Get)).Methods("GET")
	api.Handle("/settings", protect("settings:manage", settingsHandler.Update)).Methods("PUT")
	api.Handle("/settings/backup", protect("settings:backup", exportHandler.Backup)).Methods("GET")

	// Exports; financial collections need the stricter permission
	api.Handle("/export/{collection:doctors|invoices|lab-revenue}", protect("export:finance", exportHandler.Export)).Methods("GET")
	api.Handle("/export/{collection}", protect("export:run", exportHandler.Export)).Methods("GET")

	if d.StaticDir != "" {
		r.PathPrefix("/").Handler(http.FileServer(http.Dir(d.StaticDir))).Methods("GET")
	}

	return r
}
