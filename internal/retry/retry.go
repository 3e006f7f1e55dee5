package retry

import (
	"context"
	"time"
)

// Wait blocks for d or until ctx is done, whichever comes first. It is the
// delay primitive between provider fallback attempts so an in-flight
// request can still be abandoned during backoff.
func Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
