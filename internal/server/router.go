package server

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	"opsboard/backend/internal/audit"
	audithandler "opsboard/backend/internal/audit/handler"
	auditrepo "opsboard/backend/internal/audit/repository"
	healthhandler "opsboard/backend/internal/health/handler"
	identityhandler "opsboard/backend/internal/identity/handler"
	identityservice "opsboard/backend/internal/identity/service"
	prospecthandler "opsboard/backend/internal/prospect/handler"
	prospectservice "opsboard/backend/internal/prospect/service"
	"opsboard/backend/internal/server/httperr"
	"opsboard/backend/internal/server/interceptors"
	sessionhandler "opsboard/backend/internal/session/handler"
	taskhandler "opsboard/backend/internal/task/handler"
	taskservice "opsboard/backend/internal/task/service"
	userhandler "opsboard/backend/internal/user/handler"
	userservice "opsboard/backend/internal/user/service"
)

// Deps holds everything the HTTP API needs. Telemetry providers may be nil (no-op).
type Deps struct {
	Logger   *slog.Logger
	DB       healthhandler.Pinger
	Sessions interceptors.SessionResolver
	Cookies  sessionhandler.Cookies

	Auth      *identityservice.AuthService
	Users     *userservice.Service
	Prospects *prospectservice.Service
	Tasks     *taskservice.Service

	AuditRepo   auditrepo.Repository
	AuditLogger audit.AuditLogger

	TracerProvider trace.TracerProvider
	MeterProvider  metric.MeterProvider

	// TrustProxy reads the client IP from X-Forwarded-For set by a private-network proxy.
	// When false the peer address is recorded and forwarding headers are ignored.
	TrustProxy bool
}

// NewRouter builds the echo instance serving /api.
//
// Public: GET /api/health and POST /api/auth/{register,login,logout}.
// Everything else under /api requires a live session cookie.
func NewRouter(d Deps) *echo.Echo {
	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}
	tp := d.TracerProvider
	if tp == nil {
		tp = tracenoop.NewTracerProvider()
	}
	mp := d.MeterProvider
	if mp == nil {
		mp = metricnoop.NewMeterProvider()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = httperr.Handler(logger)
	e.Validator = NewValidator()
	if d.TrustProxy {
		e.IPExtractor = echo.ExtractIPFromXFFHeader()
	} else {
		e.IPExtractor = echo.ExtractIPDirect()
	}

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(interceptors.ClientInfo())
	e.Use(interceptors.LogRequests(logger))
	e.Use(interceptors.Telemetry(tp, mp, map[string]bool{"/api/health": true}))

	api := e.Group("/api")
	api.GET("/health", healthhandler.NewHandler(d.DB).Check)
	identityhandler.NewAuthHandler(d.Auth, d.Cookies).Register(api)

	guarded := api.Group("",
		interceptors.RequireUser(d.Sessions, d.Cookies.Name),
		interceptors.Audit(d.AuditLogger, nil),
	)
	userhandler.NewHandler(d.Users, d.Prospects, d.Tasks, d.Cookies).Register(guarded)
	prospecthandler.NewHandler(d.Prospects).Register(guarded)
	taskhandler.NewHandler(d.Tasks).Register(guarded)
	audithandler.NewHandler(d.AuditRepo).Register(guarded)

	return e
}
