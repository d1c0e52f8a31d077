// Package handler serves the caller's own audit trail.
package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	auditrepo "opsboard/backend/internal/audit/repository"
	"opsboard/backend/internal/platform/apperr"
	"opsboard/backend/internal/platform/scope"
)

const (
	defaultLimit = 50
	maxLimit     = 200
)

type Handler struct {
	repo auditrepo.Repository
}

func NewHandler(repo auditrepo.Repository) *Handler {
	return &Handler{repo: repo}
}

// Register mounts the routes on an authenticated group.
func (h *Handler) Register(g *echo.Group) {
	g.GET("/me/activity", h.Activity)
}

type entryResponse struct {
	Action    string    `json:"action"`
	Resource  string    `json:"resource"`
	IP        string    `json:"ip"`
	Metadata  string    `json:"metadata,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Activity lists the caller's most recent audit events, newest first. ?limit= caps the page (1..200).
func (h *Handler) Activity(c echo.Context) error {
	o, err := scope.Require(c.Request().Context())
	if err != nil {
		return apperr.ErrUnauthenticated
	}
	limit := defaultLimit
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return apperr.Validation("limit", "limit must be a positive integer")
		}
		limit = min(n, maxLimit)
	}
	list, err := h.repo.ListByUser(c.Request().Context(), o, int32(limit))
	if err != nil {
		return err
	}
	out := make([]entryResponse, len(list))
	for i, a := range list {
		out[i] = entryResponse{Action: a.Action, Resource: a.Resource, IP: a.IP, Metadata: a.Metadata, CreatedAt: a.CreatedAt}
	}
	return c.JSON(http.StatusOK, map[string]any{"activity": out})
}
