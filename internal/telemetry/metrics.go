package telemetry

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics holds all custom metrics for the service
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal metric.Int64Counter
	HTTPDurationMs    metric.Float64Histogram

	// Clinic metrics
	InvoicesTotal  metric.Int64Counter
	InvoicedAmount metric.Float64Counter
	AdvisorCalls   metric.Int64Counter

	// Auth metrics
	LoginsTotal             metric.Int64Counter
	AuthFailuresTotal       metric.Int64Counter
	PermissionCheckDuration metric.Float64Histogram
}

// InitMetrics initializes all custom metrics on the global meter provider
func InitMetrics() (*Metrics, error) {
	meter := otel.Meter("github.com/WailSalutem-Health-Care/clinic-service")
	m := &Metrics{}
	var err error

	if m.HTTPRequestsTotal, err = meter.Int64Counter(
		"http_server_requests_total",
		metric.WithDescription("Total number of HTTP requests"),
		metric.WithUnit("{request}"),
	); err != nil {
		return nil, err
	}

	if m.HTTPDurationMs, err = meter.Float64Histogram(
		"http_server_duration_milliseconds",
		metric.WithDescription("HTTP request duration in milliseconds"),
		metric.WithUnit("ms"),
	); err != nil {
		return nil, err
	}

	if m.InvoicesTotal, err = meter.Int64Counter(
		"clinic_invoices_total",
		metric.WithDescription("Total number of invoices issued at checkout"),
		metric.WithUnit("{invoice}"),
	); err != nil {
		return nil, err
	}

	if m.InvoicedAmount, err = meter.Float64Counter(
		"clinic_invoiced_amount",
		metric.WithDescription("Sum of invoiced consultation fees"),
		metric.WithUnit("{currency}"),
	); err != nil {
		return nil, err
	}

	if m.AdvisorCalls, err = meter.Int64Counter(
		"clinic_advisor_calls_total",
		metric.WithDescription("Total number of AI advisor calls"),
		metric.WithUnit("{call}"),
	); err != nil {
		return nil, err
	}

	if m.LoginsTotal, err = meter.Int64Counter(
		"auth_logins_total",
		metric.WithDescription("Total number of login attempts"),
		metric.WithUnit("{attempt}"),
	); err != nil {
		return nil, err
	}

	if m.AuthFailuresTotal, err = meter.Int64Counter(
		"auth_failures_total",
		metric.WithDescription("Total number of authentication failures"),
		metric.WithUnit("{failure}"),
	); err != nil {
		return nil, err
	}

	if m.PermissionCheckDuration, err = meter.Float64Histogram(
		"permission_check_duration_ms",
		metric.WithDescription("Permission check duration in milliseconds"),
		metric.WithUnit("ms"),
	); err != nil {
		return nil, err
	}

	log.Info().Msg("✓ Custom metrics initialized")
	return m, nil
}

// RecordHTTPRequest records an HTTP request metric
func (m *Metrics) RecordHTTPRequest(ctx context.Context, method, route string, statusCode int, durationMs float64) {
	attrs := []attribute.KeyValue{
		attribute.String("http_method", method),
		attribute.String("http_route", route),
		attribute.Int("http_status_code", statusCode),
	}

	m.HTTPRequestsTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.HTTPDurationMs.Record(ctx, durationMs, metric.WithAttributes(attrs...))
}

// RecordInvoice records an issued invoice
func (m *Metrics) RecordInvoice(ctx context.Context, method string, amount float64) {
	attrs := metric.WithAttributes(attribute.String("payment_method", method))
	m.InvoicesTotal.Add(ctx, 1, attrs)
	m.InvoicedAmount.Add(ctx, amount, attrs)
}

// RecordAdvisorCall records one AI advisor call
func (m *Metrics) RecordAdvisorCall(ctx context.Context, operation string, success bool) {
	m.AdvisorCalls.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.Bool("success", success),
	))
}

// RecordLogin records a login attempt
func (m *Metrics) RecordLogin(ctx context.Context, success bool) {
	m.LoginsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.Bool("success", success),
	))
}

// RecordAuthFailure records an authentication failure metric
func (m *Metrics) RecordAuthFailure(ctx context.Context, reason string) {
	m.AuthFailuresTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("reason", reason),
	))
}

// RecordPermissionCheck records a permission check duration metric
func (m *Metrics) RecordPermissionCheck(ctx context.Context, permission string, durationMs float64, allowed bool) {
	m.PermissionCheckDuration.Record(ctx, durationMs, metric.WithAttributes(
		attribute.String("permission", permission),
		attribute.Bool("allowed", allowed),
	))
}
