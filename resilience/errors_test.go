package resilience

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestTimeoutError(t *testing.T) {
	err := &TimeoutError{After: 2 * time.Second}

	if err.Error() != "timed out after 2s" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, ErrTimeout) {
		t.Error("TimeoutError should match ErrTimeout")
	}

	wrapped := fmt.Errorf("run: %w", err)
	var te *TimeoutError
	if !errors.As(wrapped, &te) || te.After != 2*time.Second {
		t.Errorf("errors.As(%v) did not yield a 2s TimeoutError", wrapped)
	}
}
