// Package exporters builds the OpenTelemetry span exporters and metric
// readers selectable on the command line.
package exporters

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

var (
	// ErrUnknownExporter is returned for an unsupported exporter name.
	ErrUnknownExporter = errors.New("exporters: unknown exporter")

	// ErrEndpointNotConfigured is returned when a network exporter has no
	// endpoint in the environment.
	ErrEndpointNotConfigured = errors.New("exporters: endpoint not configured")
)

// Environment variables naming collector endpoints.
const (
	envOTLPEndpoint        = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOTLPTracesEndpoint  = "OTEL_EXPORTER_OTLP_TRACES_ENDPOINT"
	envOTLPMetricsEndpoint = "OTEL_EXPORTER_OTLP_METRICS_ENDPOINT"
	envJaegerEndpoint      = "OTEL_EXPORTER_JAEGER_ENDPOINT"
)

// firstEnv returns the first non-empty variable among keys.
func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}

func writerOrStderr(w io.Writer) io.Writer {
	if w == nil {
		return os.Stderr
	}
	return w
}

// NewTracingExporter returns the span exporter called name: stdout (to w,
// default os.Stderr), otlp, or jaeger over OTLP. "none" and "" return nil.
func NewTracingExporter(ctx context.Context, name string, w io.Writer) (sdktrace.SpanExporter, error) {
	switch name {
	case "none", "":
		return nil, nil
	case "stdout":
		return stdouttrace.New(stdouttrace.WithWriter(writerOrStderr(w)))
	case "otlp":
		if firstEnv(envOTLPEndpoint, envOTLPTracesEndpoint) == "" {
			return nil, fmt.Errorf("%w: set %s or %s", ErrEndpointNotConfigured, envOTLPEndpoint, envOTLPTracesEndpoint)
		}
		return otlptracegrpc.New(ctx)
	case "jaeger":
		endpoint := firstEnv(envJaegerEndpoint)
		if endpoint == "" {
			return nil, fmt.Errorf("%w: set %s", ErrEndpointNotConfigured, envJaegerEndpoint)
		}
		return otlptracegrpc.New(ctx, otlptracegrpc.WithEndpointURL(endpoint))
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownExporter, name)
}

// NewMetricsReader returns a periodic reader over the metrics exporter called
// name: stdout (to w, default os.Stderr) or otlp. "none" and "" return nil.
func NewMetricsReader(ctx context.Context, name string, w io.Writer) (sdkmetric.Reader, error) {
	var (
		exp sdkmetric.Exporter
		err error
	)
	switch name {
	case "none", "":
		return nil, nil
	case "stdout":
		exp, err = stdoutmetric.New(stdoutmetric.WithWriter(writerOrStderr(w)))
	case "otlp":
		if firstEnv(envOTLPEndpoint, envOTLPMetricsEndpoint) == "" {
			return nil, fmt.Errorf("%w: set %s or %s", ErrEndpointNotConfigured, envOTLPEndpoint, envOTLPMetricsEndpoint)
		}
		exp, err = otlpmetricgrpc.New(ctx)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownExporter, name)
	}
	if err != nil {
		return nil, fmt.Errorf("exporters: %s metrics: %w", name, err)
	}
	return sdkmetric.NewPeriodicReader(exp), nil
}
