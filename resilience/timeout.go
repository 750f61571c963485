package resilience

import (
	"context"
	"errors"
	"time"
)

// DefaultTimeout bounds a run when no timeout is configured.
const DefaultTimeout = 10 * time.Second

// Timeout runs operations under a fixed deadline.
type Timeout struct {
	// After is the deadline. A non-positive value means DefaultTimeout.
	After time.Duration
}

// NewTimeout creates a Timeout that expires after d.
func NewTimeout(d time.Duration) *Timeout {
	if d <= 0 {
		d = DefaultTimeout
	}
	return &Timeout{After: d}
}

// Execute runs op with a derived deadline.
//
// When the deadline expires before op returns, Execute returns a
// *TimeoutError without waiting; op sees its context cancelled and must not
// touch state the caller reads afterwards. An op that returns the expired
// deadline as its own error is reported the same way. Cancellation of the
// parent context is returned unchanged.
func (t *Timeout) Execute(ctx context.Context, op func(context.Context) error) error {
	after := t.After
	if after <= 0 {
		after = DefaultTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, after)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- op(ctx) }()

	var err error
	select {
	case err = <-done:
	case <-ctx.Done():
		err = ctx.Err()
	}
	if errors.Is(err, context.DeadlineExceeded) && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return &TimeoutError{After: after}
	}
	return err
}

// ExecuteWithTimeout runs op under a deadline of d.
func ExecuteWithTimeout(ctx context.Context, d time.Duration, op func(context.Context) error) error {
	return NewTimeout(d).Execute(ctx, op)
}
