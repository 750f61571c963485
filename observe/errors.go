package observe

import "errors"

var (
	// ErrMissingServiceName indicates Config.ServiceName is empty.
	ErrMissingServiceName = errors.New("observe: service name is required")

	// ErrInvalidTraceExporter indicates an unknown trace exporter name.
	ErrInvalidTraceExporter = errors.New("observe: invalid trace exporter")

	// ErrInvalidMetricsExporter indicates an unknown metrics exporter name.
	ErrInvalidMetricsExporter = errors.New("observe: invalid metrics exporter")

	// ErrInvalidLogLevel indicates an unknown log level.
	ErrInvalidLogLevel = errors.New("observe: invalid log level")

	// ErrNilObserver indicates a nil Observer was provided.
	ErrNilObserver = errors.New("observe: observer is nil")
)

// Accepted configuration values. The empty string disables the subsystem.
var (
	TraceExporters   = []string{"otlp", "jaeger", "stdout", "none", ""}
	MetricsExporters = []string{"otlp", "stdout", "none", ""}
	LogLevels        = []string{"debug", "info", "warn", "error", ""}
)

// RedactedFields lists log field keys whose values are never written.
var RedactedFields = []string{
	"password",
	"secret",
	"token",
	"credential",
	"credentials",
	"user_credentials",
	"authorization",
}
