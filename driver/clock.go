package driver

import (
	"context"
	"time"
)

// Clock is the timing source the loop waits on between ticks
type Clock interface {
	// Sleep blocks for d or until ctx is done, returning ctx.Err() in the latter case
	Sleep(ctx context.Context, d time.Duration) error
}

// RealClock sleeps on the system monotonic clock
type RealClock struct{}

// Sleep waits for d on a timer
func (RealClock) Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
