package check

import (
	"context"
	"errors"
	"sort"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/jonwraymond/check-actuator/actuator"
	"github.com/jonwraymond/check-actuator/health"
	"github.com/jonwraymond/check-actuator/nagios"
	"github.com/jonwraymond/check-actuator/observe"
	"github.com/jonwraymond/check-actuator/resilience"
)

const globalCheck = "global"

// Runner executes a single check against one actuator.
type Runner struct {
	config Config
	client *actuator.Client
	mw     *observe.Middleware
}

// Option configures a Runner.
type Option func(*Runner)

// WithMiddleware observes the run and every request with mw.
func WithMiddleware(mw *observe.Middleware) Option {
	return func(r *Runner) {
		if mw != nil {
			r.mw = mw
		}
	}
}

// New creates a Runner from cfg.
func New(cfg Config, opts ...Option) (*Runner, error) {
	r := &Runner{
		config: cfg.withDefaults(),
		mw:     observe.NoopMiddleware(),
	}
	for _, opt := range opts {
		opt(r)
	}

	client, err := actuator.NewClient(r.config.Actuator, actuator.WithMiddleware(r.mw))
	if err != nil {
		return nil, err
	}
	r.client = client
	return r, nil
}

// Config returns the effective configuration.
func (r *Runner) Config() Config {
	return r.config
}

// Run performs the check. It always returns an Output; failures are
// reported through its status and summary.
func (r *Runner) Run(ctx context.Context) *nagios.Output {
	ctx, span := r.mw.Tracer().StartSpan(ctx, observe.SpanCheck,
		attribute.String("actuator.url", r.client.BaseURL()),
		attribute.Bool("actuator.metrics_mode", len(r.config.Metrics) > 0),
	)

	// After a timeout the abandoned run may still write completed, so the
	// error path builds a fresh output.
	var completed *nagios.Output
	err := resilience.ExecuteWithTimeout(ctx, r.config.Timeout, func(ctx context.Context) error {
		completed = r.run(ctx)
		return ctx.Err()
	})

	var result *nagios.Output
	if err == nil {
		result = completed
	} else {
		result = nagios.NewOutput(r.config.Separator)
		result.SetStatus(health.StatusUnknown)
		if errors.Is(err, resilience.ErrTimeout) {
			result.AddSummaryf("check timed out after %s", r.config.Timeout)
		} else {
			result.AddSummaryf("check aborted: %v", err)
		}
	}

	span.SetAttributes(attribute.String("nagios.status", result.Status().String()))
	r.mw.Tracer().EndSpan(span, err)
	r.mw.Logger().Info(ctx, "check completed",
		observe.Field{Key: "status", Value: result.Status().String()},
		observe.Field{Key: "url", Value: r.client.BaseURL()},
	)
	return result
}

func (r *Runner) run(ctx context.Context) *nagios.Output {
	out := nagios.NewOutput(r.config.Separator)

	h, err := r.client.Health(ctx)
	switch {
	case errors.Is(err, actuator.ErrNoData):
		out.SetStatus(health.StatusUnknown)
		out.AddSummary("no health data available")
	case err != nil:
		out.SetStatus(health.StatusCritical)
		out.AddSummaryf("could not fetch health data: %v", err)
	case len(r.config.Metrics) == 0:
		r.checkHealth(ctx, out, h)
	default:
		r.checkMetrics(ctx, out, h.Version())
	}

	out.CheckThresholds(r.config.Thresholds)
	return out
}

func (r *Runner) checkHealth(ctx context.Context, out *nagios.Output, h *actuator.Health) {
	agg := health.NewAggregator(r.config.Timeout)
	agg.Register(health.NewCheckerFunc(globalCheck, func(context.Context) health.Result {
		status := h.Status()
		if status == "" {
			status = health.ActuatorUnknown
		}
		return health.ActuatorResult(status, "global status is "+status)
	}))
	for _, c := range health.ComponentCheckers(h, r.config.Components) {
		agg.Register(c)
	}

	results := agg.CheckAll(ctx)
	for _, nr := range results {
		out.AddSummary(nr.Result.Message)
	}
	out.SetStatus(agg.OverallStatus(results))
}

func (r *Runner) checkMetrics(ctx context.Context, out *nagios.Output, version int) {
	counters := statusCounters{}
	defer func() {
		for _, code := range counters.codes() {
			label := "http" + code
			out.AddMetric(label, counters[code])
			out.AddSummaryf("%s is %s", label, nagios.FormatValue(counters[code]))
		}
	}()

	if version == 1 {
		m, err := r.client.Metrics(ctx)
		if err != nil {
			metricsError(out, err)
			return
		}

		values := m.Values()
		keys := make([]string, 0, len(values))
		for key := range values {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		for _, key := range keys {
			if code, ok := statusCode(key); ok {
				counters.add(code, values[key])
				continue
			}
			recordMetric(out, key, values[key])
		}
		return
	}

	for _, name := range r.config.Metrics {
		m, err := r.client.Metric(ctx, name)
		if err != nil {
			metricsError(out, err)
			return
		}

		code, isCounter := statusCode(name)
		for _, ms := range m.Measurements() {
			if isCounter {
				counters.add(code, ms.Value)
				continue
			}
			recordMetric(out, name+"."+strings.ToLower(ms.Statistic), ms.Value)
		}
	}
}

func recordMetric(out *nagios.Output, label string, value float64) {
	out.AddMetric(label, value)
	out.AddSummaryf("%s is %s", label, nagios.FormatValue(value))
}

func metricsError(out *nagios.Output, err error) {
	out.SetStatus(health.StatusUnknown)
	if errors.Is(err, actuator.ErrNoData) {
		out.AddSummary("no metrics data available")
		return
	}
	out.AddSummaryf("error fetching metrics data: %v", err)
}
