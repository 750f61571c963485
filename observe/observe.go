package observe

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	"github.com/jonwraymond/check-actuator/observe/exporters"
)

// Config selects the telemetry of one plugin run.
type Config struct {
	ServiceName string
	Version     string

	// TraceExporter is otlp, jaeger, stdout or none. Empty means none.
	TraceExporter string

	// MetricsExporter is otlp, stdout or none. Empty means none.
	MetricsExporter string

	// LogLevel is debug, info, warn or error. Empty disables logging.
	LogLevel string

	// Writer receives logs and stdout exporter output. Default: os.Stderr
	Writer io.Writer
}

// Validate checks the service name and every selected value.
func (c *Config) Validate() error {
	switch {
	case c.ServiceName == "":
		return ErrMissingServiceName
	case !slices.Contains(TraceExporters, c.TraceExporter):
		return fmt.Errorf("%w: %q", ErrInvalidTraceExporter, c.TraceExporter)
	case !slices.Contains(MetricsExporters, c.MetricsExporter):
		return fmt.Errorf("%w: %q", ErrInvalidMetricsExporter, c.MetricsExporter)
	case !slices.Contains(LogLevels, c.LogLevel):
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}
	return nil
}

func enabled(name string) bool {
	return name != "" && name != "none"
}

// Observer provides access to telemetry primitives.
//
// Contract:
// - Context: Shutdown must honor cancellation/deadlines.
// - Errors: Shutdown flushes pending spans and metrics and returns all errors joined.
type Observer interface {
	Tracer() trace.Tracer
	Meter() metric.Meter
	Logger() Logger
	Shutdown(ctx context.Context) error
}

type observer struct {
	tracer trace.Tracer
	meter  metric.Meter
	logger Logger

	// shutdown flushes the SDK providers in creation order.
	shutdown []func(context.Context) error
}

// NewObserver validates cfg and builds the configured providers. Disabled
// subsystems get no-op implementations.
func NewObserver(ctx context.Context, cfg Config) (Observer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}

	obs := &observer{
		tracer: tracenoop.NewTracerProvider().Tracer(cfg.ServiceName),
		meter:  metricnoop.NewMeterProvider().Meter(cfg.ServiceName),
		logger: &noopLogger{},
	}
	if cfg.LogLevel != "" {
		obs.logger = NewLoggerWithWriter(cfg.LogLevel, cfg.Writer)
	}
	if !enabled(cfg.TraceExporter) && !enabled(cfg.MetricsExporter) {
		return obs, nil
	}

	res, err := resource.New(ctx, resource.WithAttributes(
		semconv.ServiceName(cfg.ServiceName),
		semconv.ServiceVersion(cfg.Version),
	))
	if err != nil {
		return nil, fmt.Errorf("observe: resource: %w", err)
	}

	if enabled(cfg.TraceExporter) {
		exp, err := exporters.NewTracingExporter(ctx, cfg.TraceExporter, cfg.Writer)
		if err != nil {
			return nil, fmt.Errorf("observe: tracing: %w", err)
		}
		// Spans are exported synchronously: the process exits right after one run.
		tp := sdktrace.NewTracerProvider(
			sdktrace.WithResource(res),
			sdktrace.WithSampler(sdktrace.AlwaysSample()),
			sdktrace.WithSyncer(exp),
		)
		otel.SetTracerProvider(tp)
		obs.tracer = tp.Tracer(cfg.ServiceName)
		obs.shutdown = append(obs.shutdown, tp.Shutdown)
	}

	if enabled(cfg.MetricsExporter) {
		reader, err := exporters.NewMetricsReader(ctx, cfg.MetricsExporter, cfg.Writer)
		if err != nil {
			return nil, errors.Join(fmt.Errorf("observe: metrics: %w", err), obs.Shutdown(ctx))
		}
		mp := sdkmetric.NewMeterProvider(sdkmetric.WithResource(res), sdkmetric.WithReader(reader))
		otel.SetMeterProvider(mp)
		obs.meter = mp.Meter(cfg.ServiceName)
		obs.shutdown = append(obs.shutdown, mp.Shutdown)
	}

	return obs, nil
}

// Noop returns an Observer whose tracer, meter and logger discard everything.
func Noop() Observer {
	return &observer{
		tracer: tracenoop.NewTracerProvider().Tracer("noop"),
		meter:  metricnoop.NewMeterProvider().Meter("noop"),
		logger: &noopLogger{},
	}
}

func (o *observer) Tracer() trace.Tracer { return o.tracer }

func (o *observer) Meter() metric.Meter { return o.meter }

func (o *observer) Logger() Logger { return o.logger }

// Shutdown flushes every provider; the meter provider performs the final
// collection of the periodic reader.
func (o *observer) Shutdown(ctx context.Context) error {
	var errs []error
	for _, fn := range o.shutdown {
		if err := fn(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
