// Package handler serves the readiness probe.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// pingTimeout bounds the database check so a stuck pool cannot hang the probe.
const pingTimeout = 2 * time.Second

// Pinger checks database connectivity. *sql.DB implements it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	db Pinger
}

// NewHandler returns a health handler. If db is nil, the probe reports the database as skipped.
func NewHandler(db Pinger) *Handler {
	return &Handler{db: db}
}

type response struct {
	OK bool   `json:"ok"`
	DB string `json:"db,omitempty"`
}

// Check pings the database: 200 {ok:true, db:"up"} or 500 {ok:false, db:"down"}.
func (h *Handler) Check(c echo.Context) error {
	if h.db == nil {
		return c.JSON(http.StatusOK, response{OK: true, DB: "skipped"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), pingTimeout)
	defer cancel()
	if err := h.db.PingContext(ctx); err != nil {
		slog.WarnContext(ctx, "health: database ping failed", "error", err)
		return c.JSON(http.StatusInternalServerError, response{OK: false, DB: "down"})
	}
	return c.JSON(http.StatusOK, response{OK: true, DB: "up"})
}
