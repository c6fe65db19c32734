package cron

import (
	"context"
	"log"
	"time"
)

// Sweeper drops expired entries and reports how many went.
type Sweeper interface {
	Sweep() int
}

// StartSweepTask sweeps s once immediately and then every interval until ctx
// is cancelled.
func StartSweepTask(ctx context.Context, s Sweeper, interval time.Duration) {
	go func() {
		log.Printf("Starting revoked-token sweep (every %s)", interval)
		runSweep(s)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				runSweep(s)
			}
		}
	}()
}

func runSweep(s Sweeper) {
	if n := s.Sweep(); n > 0 {
		log.Printf("Swept %d expired revoked tokens", n)
	}
}
