package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Instrument names.
const (
	MetricFetchTotal    = "actuator.fetch.total"
	MetricFetchErrors   = "actuator.fetch.errors"
	MetricFetchDuration = "actuator.fetch.duration_ms"
)

// Metrics records actuator fetch metrics.
//
// Contract:
// - Errors: implementations must not panic.
type Metrics interface {
	// RecordFetch records one actuator request with its duration and error.
	RecordFetch(ctx context.Context, endpoint string, duration time.Duration, err error)
}

type fetchMetrics struct {
	requests metric.Int64Counter
	failures metric.Int64Counter
	latency  metric.Float64Histogram
}

// NewMetrics creates the fetch instruments on meter.
func NewMetrics(meter metric.Meter) (Metrics, error) {
	var (
		m   fetchMetrics
		err error
	)
	if m.requests, err = meter.Int64Counter(MetricFetchTotal,
		metric.WithDescription("Actuator requests issued"),
		metric.WithUnit("{request}"),
	); err != nil {
		return nil, err
	}
	if m.failures, err = meter.Int64Counter(MetricFetchErrors,
		metric.WithDescription("Actuator requests that failed"),
		metric.WithUnit("{error}"),
	); err != nil {
		return nil, err
	}
	if m.latency, err = meter.Float64Histogram(MetricFetchDuration,
		metric.WithDescription("Actuator request latency"),
		metric.WithUnit("ms"),
	); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *fetchMetrics) RecordFetch(ctx context.Context, endpoint string, duration time.Duration, err error) {
	attrs := metric.WithAttributes(
		attribute.String("actuator.endpoint", endpoint),
		attribute.Bool("actuator.error", err != nil),
	)
	m.requests.Add(ctx, 1, attrs)
	if err != nil {
		m.failures.Add(ctx, 1, attrs)
	}
	m.latency.Record(ctx, float64(duration)/float64(time.Millisecond), attrs)
}

type noopMetrics struct{}

func (noopMetrics) RecordFetch(context.Context, string, time.Duration, error) {}
