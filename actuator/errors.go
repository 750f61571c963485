package actuator

import (
	"errors"
	"fmt"
)

// Sentinel errors for actuator requests.
var (
	// ErrConnection indicates the endpoint could not be reached.
	ErrConnection = errors.New("actuator: connection failed")

	// ErrTLS indicates the TLS handshake or certificate verification failed.
	ErrTLS = errors.New("actuator: tls failure")

	// ErrNoData indicates the response carried no usable JSON document.
	ErrNoData = errors.New("actuator: no data available")

	// ErrTrustStore indicates the trust store could not be loaded.
	ErrTrustStore = errors.New("actuator: invalid trust store")

	// ErrInvalidURL indicates the base URL is malformed.
	ErrInvalidURL = errors.New("actuator: invalid url")
)

// StatusError reports a response with an unaccepted HTTP status code.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d from %s", e.Code, e.URL)
}
