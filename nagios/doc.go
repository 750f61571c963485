// Package nagios formats plugin output and evaluates metric thresholds.
//
// An Output collects summary fragments, performance data and the worst status
// seen during a run and renders them as one plugin line:
//
//	CRITICAL - global status is DOWN. diskSpace status is DOWN | 'jvm threads'=42 http200=7
//
// Thresholds use the range syntax "start..end" with "inf" and "-inf" bounds,
// e.g. "metric=errors,ok=0..0,warning=1..20,critical=20..inf".
package nagios
