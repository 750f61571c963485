package health

import (
	"context"
	"slices"
	"time"
)

// DefaultCheckTimeout bounds CheckAll when the aggregator is built without one.
const DefaultCheckTimeout = 10 * time.Second

// NamedResult pairs a result with the name of the checker that produced it.
type NamedResult struct {
	Name   string
	Result Result
}

// Aggregator runs checkers sequentially in registration order.
// It is not safe for concurrent registration.
type Aggregator struct {
	timeout  time.Duration
	checkers []Checker
}

// NewAggregator creates an aggregator whose CheckAll is bounded by timeout.
// A non-positive timeout selects DefaultCheckTimeout.
func NewAggregator(timeout time.Duration) *Aggregator {
	if timeout <= 0 {
		timeout = DefaultCheckTimeout
	}
	return &Aggregator{timeout: timeout}
}

// Register appends checker. A checker whose name is already registered
// replaces the earlier one in place.
func (a *Aggregator) Register(checker Checker) {
	i := slices.IndexFunc(a.checkers, func(c Checker) bool { return c.Name() == checker.Name() })
	if i >= 0 {
		a.checkers[i] = checker
		return
	}
	a.checkers = append(a.checkers, checker)
}

// CheckerNames returns the registered names in order.
func (a *Aggregator) CheckerNames() []string {
	names := make([]string, len(a.checkers))
	for i, c := range a.checkers {
		names[i] = c.Name()
	}
	return names
}

// CheckAll runs every checker in order. Checkers not started before the
// deadline report UNKNOWN with ErrCheckTimeout.
func (a *Aggregator) CheckAll(ctx context.Context) []NamedResult {
	results := make([]NamedResult, 0, len(a.checkers))
	if len(a.checkers) == 0 {
		return results
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	for _, c := range a.checkers {
		results = append(results, NamedResult{Name: c.Name(), Result: run(ctx, c)})
	}
	return results
}

// OverallStatus folds results by severity. No results is OK.
func (a *Aggregator) OverallStatus(results []NamedResult) Status {
	status := StatusOK
	for _, r := range results {
		status = Worse(status, r.Result.Status)
	}
	return status
}

func run(ctx context.Context, c Checker) Result {
	start := time.Now()
	if ctx.Err() != nil {
		return Result{
			Status:    StatusUnknown,
			Message:   c.Name() + " check timed out",
			Error:     ErrCheckTimeout,
			Timestamp: start,
		}
	}

	result := c.Check(ctx)
	result.Duration = time.Since(start)
	if result.Timestamp.IsZero() {
		result.Timestamp = start
	}
	return result
}
