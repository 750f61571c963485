// Package check runs one actuator check and renders its Nagios result.
//
// Without requested metrics the runner reports the global health status and
// the status of every configured component present in the health document.
// With requested metrics it reports metric values as performance data;
// version 1 applications expose all metrics on one endpoint, version 2 and 3
// applications are queried per metric name. Thresholds are applied last.
package check
