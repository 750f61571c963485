package resilience

import (
	"errors"
	"fmt"
	"time"
)

// ErrTimeout is returned when an operation times out.
var ErrTimeout = errors.New("resilience: operation timed out")

// TimeoutError records the deadline that expired. It matches ErrTimeout.
type TimeoutError struct {
	After time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("timed out after %s", e.After)
}

// Is reports whether target is ErrTimeout.
func (e *TimeoutError) Is(target error) bool {
	return target == ErrTimeout
}
