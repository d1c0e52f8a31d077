package service

import (
	"context"
	"log/slog"
	"time"
)

// DefaultPurgeInterval is used when RunPurger is given a non-positive interval.
const DefaultPurgeInterval = time.Hour

// RunPurger deletes expired sessions once immediately and then every interval until ctx
// is done. Failures are logged and retried on the next tick. It returns ctx.Err().
func RunPurger(ctx context.Context, store *Store, interval time.Duration, logger *slog.Logger) error {
	if interval <= 0 {
		interval = DefaultPurgeInterval
	}
	if logger == nil {
		logger = slog.Default()
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		n, err := store.PurgeExpired(ctx)
		switch {
		case err != nil && ctx.Err() == nil:
			logger.WarnContext(ctx, "session purge failed", slog.Any("error", err))
		case n > 0:
			logger.InfoContext(ctx, "purged expired sessions", slog.Int64("count", n))
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
