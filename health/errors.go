package health

import "errors"

var (
	// ErrCheckFailed indicates a component reported a failing status.
	ErrCheckFailed = errors.New("health: check failed")

	// ErrCheckTimeout indicates the check deadline expired before a checker ran.
	ErrCheckTimeout = errors.New("health: check timeout")

	// ErrUnknownStatus indicates a component reported a status string that
	// does not map to UP, DOWN or OUT_OF_SERVICE.
	ErrUnknownStatus = errors.New("health: unknown status")
)
