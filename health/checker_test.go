package health

import (
	"context"
	"errors"
	"testing"
)

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusOK, "OK"},
		{StatusWarning, "WARNING"},
		{StatusCritical, "CRITICAL"},
		{StatusUnknown, "UNKNOWN"},
		{Status(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.status.String(); got != tt.want {
				t.Errorf("Status.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStatus_ExitCode(t *testing.T) {
	tests := []struct {
		status Status
		want   int
	}{
		{StatusOK, 0},
		{StatusWarning, 1},
		{StatusCritical, 2},
		{StatusUnknown, 3},
		{Status(-1), 3},
	}

	for _, tt := range tests {
		if got := tt.status.ExitCode(); got != tt.want {
			t.Errorf("%v.ExitCode() = %d, want %d", tt.status, got, tt.want)
		}
	}
}

func TestWorse(t *testing.T) {
	tests := []struct {
		a, b Status
		want Status
	}{
		{StatusOK, StatusOK, StatusOK},
		{StatusOK, StatusWarning, StatusWarning},
		{StatusOK, StatusUnknown, StatusUnknown},
		{StatusWarning, StatusUnknown, StatusUnknown},
		{StatusUnknown, StatusCritical, StatusCritical},
		{StatusCritical, StatusUnknown, StatusCritical},
		{StatusCritical, StatusOK, StatusCritical},
		{StatusUnknown, StatusWarning, StatusUnknown},
	}

	for _, tt := range tests {
		if got := Worse(tt.a, tt.b); got != tt.want {
			t.Errorf("Worse(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestFromActuator(t *testing.T) {
	tests := []struct {
		raw  string
		want Status
	}{
		{"UP", StatusOK},
		{"DOWN", StatusCritical},
		{"OUT_OF_SERVICE", StatusCritical},
		{"UNKNOWN", StatusUnknown},
		{"PARTIAL", StatusUnknown},
		{"up", StatusUnknown},
		{"", StatusUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := FromActuator(tt.raw); got != tt.want {
				t.Errorf("FromActuator(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestActuatorResult(t *testing.T) {
	tests := []struct {
		raw     string
		want    Status
		wantErr error
	}{
		{"UP", StatusOK, nil},
		{"DOWN", StatusCritical, ErrCheckFailed},
		{"OUT_OF_SERVICE", StatusCritical, ErrCheckFailed},
		{"UNKNOWN", StatusUnknown, ErrUnknownStatus},
		{"degraded", StatusUnknown, ErrUnknownStatus},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			r := ActuatorResult(tt.raw, "db status is "+tt.raw)
			if r.Status != tt.want {
				t.Errorf("Status = %v, want %v", r.Status, tt.want)
			}
			if !errors.Is(r.Error, tt.wantErr) {
				t.Errorf("Error = %v, want %v", r.Error, tt.wantErr)
			}
			if r.Message != "db status is "+tt.raw {
				t.Errorf("Message = %q", r.Message)
			}
			if r.Details["status"] != tt.raw {
				t.Errorf("Details[status] = %v, want %q", r.Details["status"], tt.raw)
			}
			if r.Timestamp.IsZero() {
				t.Error("Timestamp should not be zero")
			}
		})
	}
}

func TestCheckerFunc(t *testing.T) {
	called := false
	checker := NewCheckerFunc("func-checker", func(ctx context.Context) Result {
		called = true
		return OK("func result")
	})

	if checker.Name() != "func-checker" {
		t.Errorf("Name() = %v, want 'func-checker'", checker.Name())
	}

	result := checker.Check(context.Background())
	if !called {
		t.Error("Check function was not called")
	}
	if result.Message != "func result" {
		t.Errorf("Message = %v, want 'func result'", result.Message)
	}
}
