package nagios

import "errors"

var (
	// ErrInvalidRange indicates a malformed threshold range.
	ErrInvalidRange = errors.New("nagios: invalid range")

	// ErrInvalidThreshold indicates a malformed threshold definition.
	ErrInvalidThreshold = errors.New("nagios: invalid threshold")
)
