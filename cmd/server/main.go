// server runs the opsboard HTTP API.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"opsboard/backend/internal/audit"
	auditrepo "opsboard/backend/internal/audit/repository"
	"opsboard/backend/internal/config"
	"opsboard/backend/internal/db"
	identityrepo "opsboard/backend/internal/identity/repository"
	identityservice "opsboard/backend/internal/identity/service"
	"opsboard/backend/internal/observability"
	prospectrepo "opsboard/backend/internal/prospect/repository"
	prospectservice "opsboard/backend/internal/prospect/service"
	"opsboard/backend/internal/security"
	"opsboard/backend/internal/server"
	"opsboard/backend/internal/server/interceptors"
	sessionhandler "opsboard/backend/internal/session/handler"
	sessionrepo "opsboard/backend/internal/session/repository"
	sessionservice "opsboard/backend/internal/session/service"
	taskrepo "opsboard/backend/internal/task/repository"
	taskservice "opsboard/backend/internal/task/service"
	"opsboard/backend/internal/telemetry"
	telemetryotel "opsboard/backend/internal/telemetry/otel"
	userrepo "opsboard/backend/internal/user/repository"
	userservice "opsboard/backend/internal/user/service"
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

	if err := serve(ctx, cfg, logger); err != nil {
		logger.Error("server stopped", slog.Any("error", err))
		return 1
	}
	return 0
}

func serve(ctx context.Context, cfg *config.Config, logger *slog.Logger) (runErr error) {
	conn, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer func() { runErr = errors.Join(runErr, conn.Close()) }()

	providers, err := telemetryotel.NewProviders(ctx, telemetryotel.Settings{
		Endpoint:    cfg.OTLPEndpoint,
		ServiceName: cfg.OTELServiceName,
		Insecure:    cfg.OTLPInsecure,
		Environment: cfg.Env,
	})
	if err != nil {
		return err
	}
	providers.SetGlobal()
	emitter := telemetryotel.NewEventEmitter(providers.LoggerProvider)
	defer func() {
		if cfg.OTLPEndpoint != "" {
			// in-flight async emits finish before the log exporter is flushed
			time.Sleep(telemetry.ShutdownDrainDuration)
		}
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), server.ShutdownTimeout)
		defer cancel()
		runErr = errors.Join(runErr, providers.Shutdown(shutdownCtx))
	}()

	hasher := security.NewHasher(cfg.BcryptCost)
	users := userrepo.NewPostgresRepository(conn)
	sessions := sessionservice.NewStore(sessionrepo.NewPostgresRepository(conn), cfg.SessionTTL())
	auditRepo := auditrepo.NewPostgresRepository(conn)
	auditLogger := audit.NewLogger(auditRepo, interceptors.ClientIP, emitter)
	creds := identityservice.NewCredentialStore(identityrepo.NewPostgresRepository(conn), users, hasher)

	e := server.NewRouter(server.Deps{
		Logger:         logger,
		DB:             conn,
		Sessions:       sessions,
		Cookies:        sessionhandler.Cookies{Name: cfg.SessionCookieName, Secure: cfg.CookieSecure},
		Auth:           identityservice.NewAuthService(creds, sessions, hasher, auditLogger),
		Users:          userservice.NewService(users),
		Prospects:      prospectservice.NewService(prospectrepo.NewPostgresRepository(conn)),
		Tasks:          taskservice.NewService(taskrepo.NewPostgresRepository(conn)),
		AuditRepo:      auditRepo,
		AuditLogger:    auditLogger,
		TracerProvider: providers.TracerProvider,
		MeterProvider:  providers.MeterProvider,
		TrustProxy:     cfg.TrustProxy,
	})

	listener, err := server.Listen(ctx, cfg.HTTPAddr)
	if err != nil {
		return err
	}
	grp, ctx := errgroup.WithContext(ctx)
	logger.InfoContext(ctx, "starting HTTP server...", slog.String("address", listener.Addr().String()))
	server.Serve(ctx, grp, e.Server, listener, server.ShutdownTimeout)
	return grp.Wait()
}
