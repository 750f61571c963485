// Package observe provides the logging, tracing and metrics primitives used by
// the actuator check.
//
// It is a pure instrumentation library: no execution and no I/O beyond
// exporter setup. All telemetry is written to stderr or shipped over OTLP;
// stdout is reserved for the plugin status line.
package observe
