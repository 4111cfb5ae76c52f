package summarize

import (
	"context"
	"time"
)

// DefaultPacingInterval is the pause inserted between chain invocations
// to stay under the provider's rate limits
const DefaultPacingInterval = 3 * time.Second

// Pacer paces consecutive external calls. Invocation order stays
// strictly sequential; the pacer only controls the gap between calls.
type Pacer interface {
	Wait(ctx context.Context) error
}

// fixedPacer waits a fixed interval, honoring context cancellation
type fixedPacer struct {
	interval time.Duration
}

// NewFixedPacer creates a Pacer with a fixed inter-call interval
func NewFixedPacer(interval time.Duration) Pacer {
	return &fixedPacer{interval: interval}
}

func (p *fixedPacer) Wait(ctx context.Context) error {
	timer := time.NewTimer(p.interval)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
