package nagios

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jonwraymond/check-actuator/health"
)

// DefaultSeparator joins summary fragments.
const DefaultSeparator = ". "

// PerfDatum is one performance data entry.
type PerfDatum struct {
	Label string
	Value float64
}

// String renders the datum as label=value, quoting the label when needed.
func (p PerfDatum) String() string {
	return quoteLabel(p.Label) + "=" + FormatValue(p.Value)
}

// Output accumulates the result of a single plugin run.
type Output struct {
	separator string
	status    health.Status
	summary   []string
	perf      []PerfDatum
	index     map[string]int
}

// NewOutput creates an Output whose fragments are joined with separator.
// An empty separator uses DefaultSeparator.
func NewOutput(separator string) *Output {
	if separator == "" {
		separator = DefaultSeparator
	}
	return &Output{
		separator: separator,
		status:    health.StatusOK,
		index:     make(map[string]int),
	}
}

// SetStatus folds status into the output by severity.
func (o *Output) SetStatus(status health.Status) {
	o.status = health.Worse(o.status, status)
}

// Status returns the worst status recorded so far.
func (o *Output) Status() health.Status {
	return o.status
}

// AddSummary appends a summary fragment. Empty fragments are ignored.
func (o *Output) AddSummary(msg string) {
	if msg == "" {
		return
	}
	o.summary = append(o.summary, msg)
}

// AddSummaryf appends a formatted summary fragment.
func (o *Output) AddSummaryf(format string, args ...any) {
	o.AddSummary(fmt.Sprintf(format, args...))
}

// Summary returns the recorded fragments.
func (o *Output) Summary() []string {
	out := make([]string, len(o.summary))
	copy(out, o.summary)
	return out
}

// AddMetric records a performance datum. Recording an existing label
// replaces its value in place.
func (o *Output) AddMetric(label string, value float64) {
	if i, ok := o.index[label]; ok {
		o.perf[i].Value = value
		return
	}
	o.index[label] = len(o.perf)
	o.perf = append(o.perf, PerfDatum{Label: label, Value: value})
}

// Metric returns the value recorded for label.
func (o *Output) Metric(label string) (float64, bool) {
	i, ok := o.index[label]
	if !ok {
		return 0, false
	}
	return o.perf[i].Value, true
}

// PerfData returns the recorded performance data in insertion order.
func (o *Output) PerfData() []PerfDatum {
	out := make([]PerfDatum, len(o.perf))
	copy(out, o.perf)
	return out
}

// CheckThresholds evaluates every threshold against the recorded metrics and
// folds the results. A threshold for an unrecorded metric is UNKNOWN.
func (o *Output) CheckThresholds(thresholds []Threshold) {
	for _, th := range thresholds {
		value, ok := o.Metric(th.Metric)
		if !ok {
			o.SetStatus(health.StatusUnknown)
			o.AddSummaryf("metric %s not found", th.Metric)
			continue
		}

		status := th.Evaluate(value)
		o.SetStatus(status)
		if status != health.StatusOK {
			o.AddSummaryf("%s %s is %s", status, th.Metric, FormatValue(value))
		}
	}
}

// String renders the plugin line without a trailing newline.
func (o *Output) String() string {
	var b strings.Builder
	b.WriteString(o.status.String())
	if len(o.summary) > 0 {
		b.WriteString(" - ")
		b.WriteString(strings.Join(o.summary, o.separator))
	}
	if len(o.perf) > 0 {
		b.WriteString(" |")
		for _, p := range o.perf {
			b.WriteByte(' ')
			b.WriteString(p.String())
		}
	}
	return b.String()
}

// Write renders the plugin line to w.
func (o *Output) Write(w io.Writer) error {
	_, err := io.WriteString(w, o.String()+"\n")
	return err
}

// ExitCode returns the process exit code for the recorded status.
func (o *Output) ExitCode() int {
	return o.status.ExitCode()
}

// FormatValue renders a metric value with the shortest exact representation.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func quoteLabel(label string) string {
	if !strings.ContainsAny(label, " ='") {
		return label
	}
	return "'" + strings.ReplaceAll(label, "'", "''") + "'"
}
