// Package handler serves the prospect CRUD endpoints.
package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"opsboard/backend/internal/platform/apperr"
	"opsboard/backend/internal/platform/scope"
	"opsboard/backend/internal/prospect/domain"
	prospectservice "opsboard/backend/internal/prospect/service"
)

type Handler struct {
	svc *prospectservice.Service
}

func NewHandler(svc *prospectservice.Service) *Handler {
	return &Handler{svc: svc}
}

// Register mounts the routes on an authenticated group.
func (h *Handler) Register(g *echo.Group) {
	g.GET("/prospects", h.List)
	g.POST("/prospects", h.Create)
	g.GET("/prospects/:id", h.Get)
	g.PATCH("/prospects/:id", h.Update)
	g.DELETE("/prospects/:id", h.Delete)
}

type prospectResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Company   string    `json:"company,omitempty"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Stage     string    `json:"stage"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toResponse(p *domain.Prospect) prospectResponse {
	return prospectResponse{
		ID:        p.ID,
		Name:      p.Name,
		Company:   p.Company,
		Email:     p.Email,
		Phone:     p.Phone,
		Stage:     string(p.Stage),
		Notes:     p.Notes,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

type createRequest struct {
	Name    string `json:"name" validate:"max=200"`
	Company string `json:"company" validate:"max=200"`
	Email   string `json:"email" validate:"max=320"`
	Phone   string `json:"phone" validate:"max=50"`
	Stage   string `json:"stage"`
	Notes   string `json:"notes" validate:"max=10000"`
}

type updateRequest struct {
	Name    *string `json:"name" validate:"omitempty,max=200"`
	Company *string `json:"company" validate:"omitempty,max=200"`
	Email   *string `json:"email" validate:"omitempty,max=320"`
	Phone   *string `json:"phone" validate:"omitempty,max=50"`
	Stage   *string `json:"stage"`
	Notes   *string `json:"notes" validate:"omitempty,max=10000"`
}

func owner(c echo.Context) (scope.Owner, error) {
	o, err := scope.Require(c.Request().Context())
	if err != nil {
		return scope.Owner{}, apperr.ErrUnauthenticated
	}
	return o, nil
}

func (h *Handler) List(c echo.Context) error {
	o, err := owner(c)
	if err != nil {
		return err
	}
	list, err := h.svc.List(c.Request().Context(), o)
	if err != nil {
		return err
	}
	out := make([]prospectResponse, len(list))
	for i, p := range list {
		out[i] = toResponse(p)
	}
	return c.JSON(http.StatusOK, map[string]any{"prospects": out})
}

func (h *Handler) Get(c echo.Context) error {
	o, err := owner(c)
	if err != nil {
		return err
	}
	p, err := h.svc.Get(c.Request().Context(), o, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"prospect": toResponse(p)})
}

func (h *Handler) Create(c echo.Context) error {
	o, err := owner(c)
	if err != nil {
		return err
	}
	var req createRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("", "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	p, err := h.svc.Create(c.Request().Context(), o, prospectservice.CreateInput{
		Name:    req.Name,
		Company: req.Company,
		Email:   req.Email,
		Phone:   req.Phone,
		Stage:   req.Stage,
		Notes:   req.Notes,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]any{"prospect": toResponse(p)})
}

func (h *Handler) Update(c echo.Context) error {
	o, err := owner(c)
	if err != nil {
		return err
	}
	var req updateRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("", "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	p, err := h.svc.Update(c.Request().Context(), o, c.Param("id"), prospectservice.UpdateInput{
		Name:    req.Name,
		Company: req.Company,
		Email:   req.Email,
		Phone:   req.Phone,
		Stage:   req.Stage,
		Notes:   req.Notes,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"prospect": toResponse(p)})
}

func (h *Handler) Delete(c echo.Context) error {
	o, err := owner(c)
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), o, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}
