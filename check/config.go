package check

import (
	"slices"
	"strings"
	"time"

	"github.com/jonwraymond/check-actuator/actuator"
	"github.com/jonwraymond/check-actuator/health"
	"github.com/jonwraymond/check-actuator/nagios"
	"github.com/jonwraymond/check-actuator/resilience"
)

// Config configures a Runner.
type Config struct {
	// Actuator configures the HTTP client.
	Actuator actuator.Config

	// Metrics names the metrics to report. Empty selects health mode.
	Metrics []string

	// Thresholds are evaluated against the recorded metrics.
	Thresholds []nagios.Threshold

	// Components lists the health components to report.
	// Default: health.DefaultComponents
	Components []string

	// Separator joins summary fragments.
	// Default: nagios.DefaultSeparator
	Separator string

	// Timeout bounds the whole run.
	// Default: resilience.DefaultTimeout
	Timeout time.Duration
}

func (c Config) withDefaults() Config {
	if len(c.Components) == 0 {
		c.Components = slices.Clone(health.DefaultComponents)
	}
	if c.Separator == "" {
		c.Separator = nagios.DefaultSeparator
	}
	if c.Timeout <= 0 {
		c.Timeout = resilience.DefaultTimeout
	}
	c.Metrics = metricNames(c.Metrics)
	return c
}

// metricNames trims names and drops empty ones.
func metricNames(names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		if name = strings.TrimSpace(name); name != "" {
			out = append(out, name)
		}
	}
	return out
}

// SplitNames splits a comma separated list of metric or component names.
func SplitNames(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return metricNames(strings.Split(s, ","))
}
