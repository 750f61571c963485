// Package resilience bounds the duration of a plugin run.
//
// A Nagios plugin must always print a status line and exit, even when the
// monitored endpoint hangs. Timeout runs an operation under a deadline and
// reports expiry as ErrTimeout, leaving the caller free to render an UNKNOWN
// result.
//
//	err := resilience.ExecuteWithTimeout(ctx, 10*time.Second, func(ctx context.Context) error {
//	    return run(ctx)
//	})
//	if errors.Is(err, resilience.ErrTimeout) {
//	    // report UNKNOWN
//	}
package resilience
