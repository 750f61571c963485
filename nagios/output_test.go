package nagios

import (
	"bytes"
	"testing"

	"github.com/jonwraymond/check-actuator/health"
)

func TestOutput_EmptySummary(t *testing.T) {
	o := NewOutput("")
	if got := o.String(); got != "OK" {
		t.Errorf("String() = %q, want %q", got, "OK")
	}
	if o.ExitCode() != 0 {
		t.Errorf("ExitCode() = %d, want 0", o.ExitCode())
	}
}

func TestOutput_SummaryAndPerfData(t *testing.T) {
	o := NewOutput("")
	o.AddSummary("global status is UP")
	o.AddSummaryf("%s status is %s", "db", "UP")
	o.AddMetric("mem", 1024)
	o.AddMetric("heap.used", 0.5)

	want := "OK - global status is UP. db status is UP | mem=1024 heap.used=0.5"
	if got := o.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestOutput_CustomSeparator(t *testing.T) {
	o := NewOutput(", ")
	o.AddSummary("a")
	o.AddSummary("")
	o.AddSummary("b")

	if got := o.String(); got != "OK - a, b" {
		t.Errorf("String() = %q", got)
	}
}

func TestOutput_SetStatusFolds(t *testing.T) {
	o := NewOutput("")
	o.SetStatus(health.StatusWarning)
	o.SetStatus(health.StatusCritical)
	o.SetStatus(health.StatusUnknown)
	o.SetStatus(health.StatusOK)

	if o.Status() != health.StatusCritical {
		t.Errorf("Status() = %v, want CRITICAL", o.Status())
	}
	if o.ExitCode() != 2 {
		t.Errorf("ExitCode() = %d, want 2", o.ExitCode())
	}
}

func TestOutput_AddMetricReplaces(t *testing.T) {
	o := NewOutput("")
	o.AddMetric("http200", 1)
	o.AddMetric("http404", 2)
	o.AddMetric("http200", 5)

	perf := o.PerfData()
	if len(perf) != 2 {
		t.Fatalf("len(PerfData()) = %d, want 2", len(perf))
	}
	if perf[0].Label != "http200" || perf[0].Value != 5 {
		t.Errorf("perf[0] = %+v, want http200=5", perf[0])
	}
	if v, ok := o.Metric("http404"); !ok || v != 2 {
		t.Errorf("Metric(http404) = %v, %v", v, ok)
	}
	if _, ok := o.Metric("missing"); ok {
		t.Error("Metric(missing) should not be found")
	}
}

func TestPerfDatum_String(t *testing.T) {
	tests := []struct {
		datum PerfDatum
		want  string
	}{
		{PerfDatum{"mem", 10}, "mem=10"},
		{PerfDatum{"mem free", 1.25}, "'mem free'=1.25"},
		{PerfDatum{"a=b", -3}, "'a=b'=-3"},
		{PerfDatum{"it's", 0}, "'it''s'=0"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.datum.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{42, "42"},
		{0.125, "0.125"},
		{1e21, "1000000000000000000000"},
	}

	for _, tt := range tests {
		if got := FormatValue(tt.in); got != tt.want {
			t.Errorf("FormatValue(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestOutput_Write(t *testing.T) {
	o := NewOutput("")
	o.SetStatus(health.StatusCritical)
	o.AddSummary("global status is DOWN")

	var buf bytes.Buffer
	if err := o.Write(&buf); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if got := buf.String(); got != "CRITICAL - global status is DOWN\n" {
		t.Errorf("Write() = %q", got)
	}
}

func TestOutput_CheckThresholds(t *testing.T) {
	th, err := ParseThreshold("metric=http500,warning=1..10,critical=10..inf")
	if err != nil {
		t.Fatalf("ParseThreshold() error = %v", err)
	}

	o := NewOutput("")
	o.AddMetric("http500", 3)
	o.CheckThresholds([]Threshold{th})

	if o.Status() != health.StatusWarning {
		t.Errorf("Status() = %v, want WARNING", o.Status())
	}
	want := "WARNING - WARNING http500 is 3 | http500=3"
	if got := o.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestOutput_CheckThresholdsMissingMetric(t *testing.T) {
	o := NewOutput("")
	o.CheckThresholds([]Threshold{{Metric: "mem"}})

	if o.Status() != health.StatusUnknown {
		t.Errorf("Status() = %v, want UNKNOWN", o.Status())
	}
	if got := o.String(); got != "UNKNOWN - metric mem not found" {
		t.Errorf("String() = %q", got)
	}
}

func TestOutput_CheckThresholdsOKAddsNoSummary(t *testing.T) {
	th, err := ParseThreshold("metric=mem,critical=1000..inf")
	if err != nil {
		t.Fatalf("ParseThreshold() error = %v", err)
	}

	o := NewOutput("")
	o.AddMetric("mem", 10)
	o.CheckThresholds([]Threshold{th})

	if len(o.Summary()) != 0 {
		t.Errorf("Summary() = %v, want empty", o.Summary())
	}
}
