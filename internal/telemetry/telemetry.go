package telemetry

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const exportTimeout = 5 * time.Second

// Config holds OpenTelemetry configuration
type Config struct {
	ServiceName      string
	ServiceNamespace string
	ServiceVersion   string
	Environment      string
	OTLPEndpoint     string
	TracesSampler    string
	SampleRatio      float64
	MetricsInterval  time.Duration
	Disabled         bool
}

// Enabled reports whether an OTLP export should be attempted.
func (c Config) Enabled() bool {
	return !c.Disabled
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// LoadConfig reads the standard OTEL_* variables. ENV names the deployment.
func LoadConfig() Config {
	cfg := Config{
		ServiceName:      envOr("OTEL_SERVICE_NAME", "clinic-service"),
		ServiceNamespace: envOr("OTEL_SERVICE_NAMESPACE", "medcore"),
		ServiceVersion:   envOr("OTEL_SERVICE_VERSION", "1.0.0"),
		Environment:      envOr("ENV", "development"),
		OTLPEndpoint:     envOr("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
		TracesSampler:    envOr("OTEL_TRACES_SAMPLER", "parentbased_always_on"),
		SampleRatio:      0.1,
		MetricsInterval:  30 * time.Second,
		Disabled:         os.Getenv("OTEL_SDK_DISABLED") == "true",
	}
	if r, err := strconv.ParseFloat(os.Getenv("OTEL_TRACES_SAMPLER_ARG"), 64); err == nil && r >= 0 && r <= 1 {
		cfg.SampleRatio = r
	}
	if d, err := time.ParseDuration(os.Getenv("OTEL_METRICS_EXPORT_INTERVAL")); err == nil && d > 0 {
		cfg.MetricsInterval = d
	}
	return cfg
}

func (c Config) sampler() trace.Sampler {
	switch c.TracesSampler {
	case "always_off":
		return trace.NeverSample()
	case "always_on":
		return trace.AlwaysSample()
	case "traceidratio":
		return trace.TraceIDRatioBased(c.SampleRatio)
	case "parentbased_traceidratio":
		return trace.ParentBased(trace.TraceIDRatioBased(c.SampleRatio))
	default:
		return trace.ParentBased(trace.AlwaysSample())
	}
}

// Provider holds the OpenTelemetry providers. Either may be nil when its
// exporter could not be created.
type Provider struct {
	TracerProvider *trace.TracerProvider
	MeterProvider  *metric.MeterProvider
}

// InitProvider installs global tracer and meter providers exporting over
// OTLP/gRPC. A failing exporter is logged and skipped.
func InitProvider(ctx context.Context, cfg Config) (*Provider, error) {
	log.Info().Str("endpoint", cfg.OTLPEndpoint).Msg("Initializing OpenTelemetry")

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(cfg.ServiceName),
			semconv.ServiceNamespace(cfg.ServiceNamespace),
			semconv.ServiceVersion(cfg.ServiceVersion),
			semconv.DeploymentEnvironment(cfg.Environment),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	p := &Provider{}
	dial := grpc.WithTransportCredentials(insecure.NewCredentials())

	exportCtx, cancel := context.WithTimeout(ctx, exportTimeout)
	defer cancel()

	spans, err := otlptracegrpc.New(exportCtx,
		otlptracegrpc.WithEndpoint(cfg.OTLPEndpoint),
		otlptracegrpc.WithDialOption(dial),
		otlptracegrpc.WithTimeout(exportTimeout),
	)
	if err != nil {
		log.Warn().Err(err).Msg("Tracing disabled")
	} else {
		p.TracerProvider = trace.NewTracerProvider(
			trace.WithResource(res),
			trace.WithSampler(cfg.sampler()),
			trace.WithBatcher(spans, trace.WithBatchTimeout(exportTimeout)),
		)
		otel.SetTracerProvider(p.TracerProvider)
	}

	points, err := otlpmetricgrpc.New(exportCtx,
		otlpmetricgrpc.WithEndpoint(cfg.OTLPEndpoint),
		otlpmetricgrpc.WithDialOption(dial),
		otlpmetricgrpc.WithTimeout(exportTimeout),
	)
	if err != nil {
		log.Warn().Err(err).Msg("Metrics export disabled")
	} else {
		p.MeterProvider = metric.NewMeterProvider(
			metric.WithResource(res),
			metric.WithReader(metric.NewPeriodicReader(points, metric.WithInterval(cfg.MetricsInterval))),
		)
		otel.SetMeterProvider(p.MeterProvider)
	}

	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	log.Info().
		Bool("tracing", p.TracerProvider != nil).
		Bool("metrics", p.MeterProvider != nil).
		Msg("✓ OpenTelemetry initialized")
	return p, nil
}

// Shutdown flushes and stops both providers.
func (p *Provider) Shutdown(ctx context.Context) error {
	var errs []error
	if p.TracerProvider != nil {
		errs = append(errs, p.TracerProvider.Shutdown(ctx))
	}
	if p.MeterProvider != nil {
		errs = append(errs, p.MeterProvider.Shutdown(ctx))
	}
	if err := errors.Join(errs...); err != nil {
		log.Error().Err(err).Msg("OpenTelemetry shutdown failed")
		return err
	}
	return nil
}
