// Package auth provides client-side authentication for actuator requests.
//
// Only static HTTP basic authentication is supported. Credentials are given as
// a single "username:password" value, which is split on the first colon so
// passwords may themselves contain colons.
package auth
