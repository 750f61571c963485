package health

import (
	"context"
	"time"
)

// Status represents the Nagios status of a check. The numeric value is the
// plugin exit code.
type Status int

const (
	// StatusOK indicates the target is functioning normally.
	StatusOK Status = iota
	// StatusWarning indicates a threshold was crossed.
	StatusWarning
	// StatusCritical indicates the target or one of its components is down.
	StatusCritical
	// StatusUnknown indicates the status could not be determined.
	StatusUnknown
)

// String returns the Nagios text of the status.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusWarning:
		return "WARNING"
	case StatusCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// ExitCode returns the process exit code for the status.
func (s Status) ExitCode() int {
	switch s {
	case StatusOK, StatusWarning, StatusCritical:
		return int(s)
	default:
		return int(StatusUnknown)
	}
}

// severity orders statuses for folding: OK < WARNING < UNKNOWN < CRITICAL.
func (s Status) severity() int {
	switch s {
	case StatusOK:
		return 0
	case StatusWarning:
		return 1
	case StatusCritical:
		return 3
	default:
		return 2
	}
}

// Worse returns the more severe of a and b.
func Worse(a, b Status) Status {
	if b.severity() > a.severity() {
		return b
	}
	return a
}

// Actuator status strings.
const (
	ActuatorUp           = "UP"
	ActuatorDown         = "DOWN"
	ActuatorOutOfService = "OUT_OF_SERVICE"
	ActuatorUnknown      = "UNKNOWN"
)

// FromActuator maps a raw actuator status string to a Status.
func FromActuator(raw string) Status {
	switch raw {
	case ActuatorUp:
		return StatusOK
	case ActuatorDown, ActuatorOutOfService:
		return StatusCritical
	default:
		return StatusUnknown
	}
}

// Result contains the outcome of a check.
type Result struct {
	// Status is the folded status.
	Status Status

	// Message is the summary fragment for the check.
	Message string

	// Details contains arbitrary metadata about the check.
	Details map[string]any

	// Duration is how long the check took.
	Duration time.Duration

	// Timestamp is when the check was performed.
	Timestamp time.Time

	// Error is the error if the check failed.
	Error error
}

// OK creates an OK result.
func OK(message string) Result {
	return Result{Status: StatusOK, Message: message, Timestamp: time.Now()}
}

// Critical creates a critical result.
func Critical(message string, err error) Result {
	return Result{Status: StatusCritical, Message: message, Error: err, Timestamp: time.Now()}
}

// Unknown creates an unknown result.
func Unknown(message string, err error) Result {
	return Result{Status: StatusUnknown, Message: message, Error: err, Timestamp: time.Now()}
}

// ActuatorResult builds the result for a raw actuator status string.
// DOWN and OUT_OF_SERVICE carry ErrCheckFailed; unrecognized statuses carry
// ErrUnknownStatus. The raw value is kept under Details["status"].
func ActuatorResult(raw, message string) Result {
	var r Result
	switch FromActuator(raw) {
	case StatusOK:
		r = OK(message)
	case StatusCritical:
		r = Critical(message, ErrCheckFailed)
	default:
		r = Unknown(message, ErrUnknownStatus)
	}
	r.Details = map[string]any{"status": raw}
	return r
}

// Checker is the interface for checks.
type Checker interface {
	// Name returns the name of this checker.
	Name() string

	// Check performs the check and returns the result.
	Check(ctx context.Context) Result
}

// CheckerFunc is an adapter to allow ordinary functions to be used as Checkers.
type CheckerFunc struct {
	name string
	fn   func(context.Context) Result
}

// NewCheckerFunc creates a new CheckerFunc.
func NewCheckerFunc(name string, fn func(context.Context) Result) *CheckerFunc {
	return &CheckerFunc{name: name, fn: fn}
}

// Name returns the name of this checker.
func (f *CheckerFunc) Name() string {
	return f.name
}

// Check performs the check.
func (f *CheckerFunc) Check(ctx context.Context) Result {
	return f.fn(ctx)
}
