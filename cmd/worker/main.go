// Worker deletes expired sessions on an interval (SESSION_PURGE_INTERVAL, default 1h).
// It needs DATABASE_URL; HTTP_ADDR is ignored.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"opsboard/backend/internal/config"
	"opsboard/backend/internal/db"
	"opsboard/backend/internal/observability"
	sessionrepo "opsboard/backend/internal/session/repository"
	sessionservice "opsboard/backend/internal/session/service"
)

func main() { os.Exit(run()) }

func run() int {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", slog.Any("error", err))
		return 1
	}
	logger := observability.InitSlog(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("worker: db", slog.Any("error", err))
		return 1
	}
	defer conn.Close()

	store := sessionservice.NewStore(sessionrepo.NewPostgresRepository(conn), cfg.SessionTTL())
	interval := cfg.SessionPurgeInterval()
	logger.InfoContext(ctx, "worker: purging expired sessions", slog.Duration("interval", interval))

	grp, ctx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		return sessionservice.RunPurger(ctx, store, interval, logger)
	})
	if err := grp.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("worker: stopped", slog.Any("error", err))
		return 1
	}
	logger.Info("worker: stopped")
	return 0
}
