// Package actuator fetches and interprets Spring Boot Actuator documents.
//
// A Client issues GET requests against the health and metrics endpoints of a
// single application. The schema version of every response is taken from its
// Content-Type header:
//
//	application/vnd.spring-boot.actuator.v1+json  version 1
//	application/vnd.spring-boot.actuator.v2+json  version 2
//	application/vnd.spring-boot.actuator.v3+json  version 3
//	anything else                                 version 2
//
// Bodies are accepted for 2xx responses and for 503, which Spring Boot returns
// together with a health document when the application is DOWN.
//
// Health and Metric are read-only views over a fetched Document that hide the
// per-version layout differences.
package actuator
