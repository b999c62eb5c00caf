package telemetry

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Metrics {
	t.Helper()
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Failed to collect metrics: %v", err)
	}
	out := map[string]metricdata.Metrics{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			out[m.Name] = m
		}
	}
	return out
}

func TestMetrics_Record(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	prev := otel.GetMeterProvider()
	otel.SetMeterProvider(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)))
	t.Cleanup(func() { otel.SetMeterProvider(prev) })

	m, err := InitMetrics()
	if err != nil {
		t.Fatalf("Failed to init metrics: %v", err)
	}

	ctx := context.Background()
	m.RecordInvoice(ctx, "Cash", 450)
	m.RecordInvoice(ctx, "Card", 300)
	m.RecordLogin(ctx, false)
	m.RecordAdvisorCall(ctx, "draft_reminder", true)
	m.RecordHTTPRequest(ctx, "GET", "/api/dashboard", 200, 12.5)

	got := collect(t, reader)

	amount, ok := got["clinic_invoiced_amount"].Data.(metricdata.Sum[float64])
	if !ok {
		t.Fatalf("Expected float sum for invoiced amount, got %T", got["clinic_invoiced_amount"].Data)
	}
	var total float64
	for _, dp := range amount.DataPoints {
		total += dp.Value
	}
	if total != 750 {
		t.Errorf("Expected invoiced total 750, got %v", total)
	}

	for _, name := range []string{"clinic_invoices_total", "auth_logins_total", "clinic_advisor_calls_total", "http_server_requests_total"} {
		if _, ok := got[name]; !ok {
			t.Errorf("Expected metric %s to be exported", name)
		}
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("OTEL_SERVICE_NAME", "")
	t.Setenv("OTEL_SDK_DISABLED", "true")

	cfg := LoadConfig()
	if cfg.ServiceName != "clinic-service" {
		t.Errorf("Expected default service name, got %s", cfg.ServiceName)
	}
	if cfg.Enabled() {
		t.Error("Expected telemetry to be disabled")
	}
}

func TestLoadConfig_SamplerOverrides(t *testing.T) {
	t.Setenv("OTEL_TRACES_SAMPLER", "traceidratio")
	t.Setenv("OTEL_TRACES_SAMPLER_ARG", "0.25")
	t.Setenv("OTEL_METRICS_EXPORT_INTERVAL", "5s")
	t.Setenv("OTEL_SDK_DISABLED", "")

	cfg := LoadConfig()
	if cfg.SampleRatio != 0.25 {
		t.Errorf("Expected ratio 0.25, got %v", cfg.SampleRatio)
	}
	if cfg.MetricsInterval.String() != "5s" {
		t.Errorf("Expected 5s interval, got %v", cfg.MetricsInterval)
	}
	if !cfg.Enabled() {
		t.Error("Expected telemetry to be enabled")
	}

	t.Setenv("OTEL_TRACES_SAMPLER_ARG", "7")
	if got := LoadConfig().SampleRatio; got != 0.1 {
		t.Errorf("Expected out of range ratio to be ignored, got %v", got)
	}
}
