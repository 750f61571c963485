package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
)

// Operation is a unit of work observed by Middleware.
type Operation func(ctx context.Context) error

// Middleware wraps actuator requests with tracing, metrics and logging.
//
// Contract:
//   - Context: the span context is propagated to the wrapped operation.
//   - Errors: errors from the wrapped operation are recorded and returned unchanged.
type Middleware struct {
	tracer  Tracer
	metrics Metrics
	logger  Logger
}

// NewMiddleware creates a new Middleware with the given observability components.
// Nil components are replaced with no-op implementations.
func NewMiddleware(tracer Tracer, metrics Metrics, logger Logger) *Middleware {
	if tracer == nil {
		tracer = NewTracer(nil)
	}
	if metrics == nil {
		metrics = noopMetrics{}
	}
	if logger == nil {
		logger = &noopLogger{}
	}
	return &Middleware{
		tracer:  tracer,
		metrics: metrics,
		logger:  logger,
	}
}

// NoopMiddleware returns a Middleware that only runs the operation.
func NoopMiddleware() *Middleware {
	return NewMiddleware(nil, nil, nil)
}

// Wrap wraps op for the given endpoint URL.
func (m *Middleware) Wrap(endpoint string, op Operation) Operation {
	return func(ctx context.Context) error {
		ctx, span := m.tracer.StartSpan(ctx, SpanFetch, attribute.String("actuator.endpoint", endpoint))

		start := time.Now()
		err := op(ctx)
		duration := time.Since(start)

		m.tracer.EndSpan(span, err)
		m.metrics.RecordFetch(ctx, endpoint, duration, err)

		fields := []Field{
			{Key: "endpoint", Value: endpoint},
			{Key: "duration_ms", Value: float64(duration.Milliseconds())},
		}
		if err != nil {
			fields = append(fields, Field{Key: "error", Value: err.Error()})
			m.logger.Warn(ctx, "actuator request failed", fields...)
		} else {
			m.logger.Debug(ctx, "actuator request completed", fields...)
		}

		return err
	}
}

// Logger returns the middleware logger.
func (m *Middleware) Logger() Logger {
	return m.logger
}

// Tracer returns the middleware tracer.
func (m *Middleware) Tracer() Tracer {
	return m.tracer
}

// MiddlewareFromObserver creates a Middleware from an Observer.
func MiddlewareFromObserver(obs Observer) (*Middleware, error) {
	if obs == nil {
		return nil, ErrNilObserver
	}

	metrics, err := NewMetrics(obs.Meter())
	if err != nil {
		return nil, err
	}

	return NewMiddleware(NewTracer(obs.Tracer()), metrics, obs.Logger()), nil
}
