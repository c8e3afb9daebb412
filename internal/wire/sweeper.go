package wire

import (
	"context"
	"log/slog"
	"time"

	portreset "github.com/avelar/taskhub/internal/port/reset"
)

// sweepInterval is how often expired password reset tokens are purged.
const sweepInterval = time.Hour

// startResetSweeper purges expired password reset tokens on a fixed interval.
// One sweep runs immediately on startup so tokens that expired while the
// process was down do not linger until the first tick.
func startResetSweeper(ctx context.Context, resets portreset.Repository) {
	sweep := func() {
		n, err := resets.DeleteExpired(ctx, time.Now().UTC())
		if err != nil {
			slog.Error("reset sweeper: purge failed", "error", err)
			return
		}
		if n > 0 {
			slog.Info("reset sweeper: purged expired tokens", "count", n)
		}
	}

	go func() {
		sweep()

		ticker := time.NewTicker(sweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				sweep()
			}
		}
	}()
}
