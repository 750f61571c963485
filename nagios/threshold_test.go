package nagios

import (
	"errors"
	"math"
	"testing"

	"github.com/jonwraymond/check-actuator/health"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		in   string
		want Range
	}{
		{"0..0", Range{Start: 0, End: 0}},
		{"1..20", Range{Start: 1, End: 20}},
		{"20..inf", Range{Start: 20, End: math.Inf(1)}},
		{"-inf..5", Range{Start: math.Inf(-1), End: 5}},
		{"7", Range{Start: 7, End: 7}},
		{"^0..10", Range{Start: 0, End: 10, Inverted: true}},
		{"..3", Range{Start: math.Inf(-1), End: 3}},
		{"3..", Range{Start: 3, End: math.Inf(1)}},
		{" 1.5..2.5 ", Range{Start: 1.5, End: 2.5}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRange(tt.in)
			if err != nil {
				t.Fatalf("ParseRange(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseRange(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseRange_Invalid(t *testing.T) {
	for _, in := range []string{"", "abc", "5..1", "1..x", "^"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseRange(in)
			if !errors.Is(err, ErrInvalidRange) {
				t.Errorf("ParseRange(%q) error = %v, want ErrInvalidRange", in, err)
			}
		})
	}
}

func TestRange_Contains(t *testing.T) {
	r := Range{Start: 1, End: 20}
	for v, want := range map[float64]bool{0: false, 1: true, 10: true, 20: true, 21: false} {
		if got := r.Contains(v); got != want {
			t.Errorf("Contains(%v) = %v, want %v", v, got, want)
		}
	}

	inv := Range{Start: 1, End: 20, Inverted: true}
	if !inv.Contains(0) || inv.Contains(10) {
		t.Error("inverted range should match only outside values")
	}
}

func TestRange_String(t *testing.T) {
	tests := []struct {
		r    Range
		want string
	}{
		{Range{Start: 0, End: 0}, "0..0"},
		{Range{Start: 20, End: math.Inf(1)}, "20..inf"},
		{Range{Start: math.Inf(-1), End: 1.5, Inverted: true}, "^-inf..1.5"},
	}

	for _, tt := range tests {
		if got := tt.r.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestParseThreshold(t *testing.T) {
	th, err := ParseThreshold("metric=x,ok=0..0,warning=1..20,critical=20..inf")
	if err != nil {
		t.Fatalf("ParseThreshold() error = %v", err)
	}
	if th.Metric != "x" {
		t.Errorf("Metric = %q, want x", th.Metric)
	}
	if th.OK == nil || th.Warning == nil || th.Critical == nil {
		t.Fatalf("ranges not all set: %+v", th)
	}
	if th.Critical.Start != 20 || !math.IsInf(th.Critical.End, 1) {
		t.Errorf("Critical = %+v", *th.Critical)
	}
}

func TestParseThreshold_Aliases(t *testing.T) {
	th, err := ParseThreshold("metric=mem, warn=5, crit=10..")
	if err != nil {
		t.Fatalf("ParseThreshold() error = %v", err)
	}
	if th.Warning == nil || th.Critical == nil {
		t.Fatalf("aliases not applied: %+v", th)
	}
}

func TestParseThreshold_Invalid(t *testing.T) {
	tests := []string{
		"",
		"ok=0..1",
		"metric=x,warning",
		"metric=x,warning=abc",
		"metric=x,severe=1..2",
	}

	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			_, err := ParseThreshold(in)
			if !errors.Is(err, ErrInvalidThreshold) {
				t.Errorf("ParseThreshold(%q) error = %v, want ErrInvalidThreshold", in, err)
			}
		})
	}
}

func TestParseThresholds(t *testing.T) {
	ths, err := ParseThresholds([]string{"metric=a,critical=1..", "", "metric=b"})
	if err != nil {
		t.Fatalf("ParseThresholds() error = %v", err)
	}
	if len(ths) != 2 || ths[0].Metric != "a" || ths[1].Metric != "b" {
		t.Errorf("ParseThresholds() = %+v", ths)
	}

	if _, err := ParseThresholds([]string{"metric=a", "bad"}); err == nil {
		t.Error("ParseThresholds() should fail on an invalid entry")
	}
}

func TestThreshold_Evaluate(t *testing.T) {
	th, err := ParseThreshold("metric=x,ok=0..0,warning=1..20,critical=20..inf")
	if err != nil {
		t.Fatalf("ParseThreshold() error = %v", err)
	}

	tests := []struct {
		value float64
		want  health.Status
	}{
		{0, health.StatusOK},
		{1, health.StatusWarning},
		{19.5, health.StatusWarning},
		{20, health.StatusCritical},
		{1000, health.StatusCritical},
		{-1, health.StatusCritical},
	}

	for _, tt := range tests {
		if got := th.Evaluate(tt.value); got != tt.want {
			t.Errorf("Evaluate(%v) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestThreshold_EvaluateOKRangeFirst(t *testing.T) {
	tests := []struct {
		def   string
		value float64
		want  health.Status
	}{
		{"metric=x,ok=0..10,critical=5..inf", 7, health.StatusOK},
		{"metric=x,ok=0..10,critical=5..inf", 11, health.StatusCritical},
		{"metric=x,ok=0..10,warning=5..inf", 7, health.StatusOK},
		{"metric=x,ok=0..10,warning=5..inf", 11, health.StatusWarning},
		{"metric=x,ok=0..10", 11, health.StatusCritical},
		{"metric=x,warning=0..10,critical=5..inf", 7, health.StatusCritical},
	}

	for _, tt := range tests {
		th, err := ParseThreshold(tt.def)
		if err != nil {
			t.Fatalf("ParseThreshold(%q) error = %v", tt.def, err)
		}
		if got := th.Evaluate(tt.value); got != tt.want {
			t.Errorf("%s: Evaluate(%v) = %v, want %v", tt.def, tt.value, got, tt.want)
		}
	}
}

func TestThreshold_EvaluateWithoutOK(t *testing.T) {
	th := Threshold{Metric: "x"}
	if got := th.Evaluate(123); got != health.StatusOK {
		t.Errorf("Evaluate() = %v, want OK", got)
	}
}
