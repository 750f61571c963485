// Package secret resolves credential values before they reach the HTTP client.
//
// A value passed to --user-credentials, set in the environment, or written in
// the config file may be:
//   - A literal:            admin:changeme
//   - Env-expanded:         ${ACTUATOR_USER}:${ACTUATOR_PASSWORD}
//   - A full reference:     secretref:file:/run/secrets/actuator
//   - An inline reference:  admin:secretref:env:ACTUATOR_PASSWORD
//
// Two providers ship in DefaultRegistry: "env" reads an environment
// variable and "file" reads the trimmed contents of a file.
package secret
