// Package handler serves the task and task-category endpoints.
package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"opsboard/backend/internal/platform/apperr"
	"opsboard/backend/internal/platform/scope"
	"opsboard/backend/internal/task/domain"
	taskservice "opsboard/backend/internal/task/service"
)

// dateLayout is the wire format of due_date.
const dateLayout = "2006-01-02"

type Handler struct {
	svc *taskservice.Service
}

func NewHandler(svc *taskservice.Service) *Handler {
	return &Handler{svc: svc}
}

// Register mounts the routes on an authenticated group.
func (h *Handler) Register(g *echo.Group) {
	g.GET("/task-categories", h.ListCategories)
	g.POST("/task-categories", h.CreateCategory)
	g.GET("/tasks", h.List)
	g.POST("/tasks", h.Create)
	g.GET("/tasks/:id", h.Get)
	g.PATCH("/tasks/:id", h.Update)
	g.DELETE("/tasks/:id", h.Delete)
}

type categoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type taskResponse struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	CategoryID   string     `json:"category_id,omitempty"`
	CategoryName string     `json:"category_name,omitempty"`
	Priority     string     `json:"priority"`
	Status       string     `json:"status"`
	DueDate      string     `json:"due_date,omitempty"`
	ActivatedAt  *time.Time `json:"activated_at"`
	CompletedAt  *time.Time `json:"completed_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func toResponse(t *domain.Task) taskResponse {
	r := taskResponse{
		ID:           t.ID,
		Title:        t.Title,
		Description:  t.Description,
		CategoryID:   t.CategoryID,
		CategoryName: t.CategoryName,
		Priority:     string(t.Priority),
		Status:       string(t.Status),
		ActivatedAt:  t.ActivatedAt,
		CompletedAt:  t.CompletedAt,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
	if t.DueDate != nil {
		r.DueDate = t.DueDate.Format(dateLayout)
	}
	return r
}

type createCategoryRequest struct {
	Name string `json:"name" validate:"max=100"`
}

type createRequest struct {
	Title       string `json:"title" validate:"max=500"`
	Description string `json:"description" validate:"max=10000"`
	CategoryID  string `json:"category_id"`
	Priority    string `json:"priority"`
	DueDate     string `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
}

// updateRequest: an empty category_id or due_date clears the field, so due_date is
// format-checked by parseDate rather than a validator tag.
type updateRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=500"`
	Description *string `json:"description" validate:"omitempty,max=10000"`
	CategoryID  *string `json:"category_id"`
	Priority    *string `json:"priority"`
	Status      *string `json:"status"`
	DueDate     *string `json:"due_date"`
}

func owner(c echo.Context) (scope.Owner, error) {
	o, err := scope.Require(c.Request().Context())
	if err != nil {
		return scope.Owner{}, apperr.ErrUnauthenticated
	}
	return o, nil
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, apperr.Validation("due_date", "due_date must be formatted as 2006-01-02")
	}
	return &d, nil
}

func (h *Handler) ListCategories(c echo.Context) error {
	o, err := owner(c)
	if err != nil {
		return err
	}
	cats, err := h.svc.ListCategories(c.Request().Context(), o)
	if err != nil {
		return err
	}
	out := make([]categoryResponse, len(cats))
	for i, cat := range cats {
		out[i] = categoryResponse{ID: cat.ID, Name: cat.Name, CreatedAt: cat.CreatedAt}
	}
	return c.JSON(http.StatusOK, map[string]any{"categories": out})
}

func (h *Handler) CreateCategory(c echo.Context) error {
	o, err := owner(c)
	if err != nil {
		return err
	}
	var req createCategoryRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("", "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	cat, err := h.svc.CreateCategory(c.Request().Context(), o, req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{
		"category": categoryResponse{ID: cat.ID, Name: cat.Name, CreatedAt: cat.CreatedAt},
	})
}

func (h *Handler) List(c echo.Context) error {
	o, err := owner(c)
	if err != nil {
		return err
	}
	tasks, err := h.svc.List(c.Request().Context(), o)
	if err != nil {
		return err
	}
	out := make([]taskResponse, len(tasks))
	for i, t := range tasks {
		out[i] = toResponse(t)
	}
	return c.JSON(http.StatusOK, map[string]any{"tasks": out})
}

func (h *Handler) Get(c echo.Context) error {
	o, err := owner(c)
	if err != nil {
		return err
	}
	t, err := h.svc.Get(c.Request().Context(), o, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"task": toResponse(t)})
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
	due, err := parseDate(req.DueDate)
	if err != nil {
		return err
	}
	t, err := h.svc.Create(c.Request().Context(), o, taskservice.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		Priority:    req.Priority,
		DueDate:     due,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]any{"task": toResponse(t)})
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
	in := taskservice.UpdateInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Status:      req.Status,
	}
	if req.CategoryID != nil {
		if *req.CategoryID == "" {
			in.ClearCategory = true
		} else {
			in.CategoryID = req.CategoryID
		}
	}
	if req.DueDate != nil {
		if *req.DueDate == "" {
			in.ClearDueDate = true
		} else if in.DueDate, err = parseDate(*req.DueDate); err != nil {
			return err
		}
	}
	t, err := h.svc.Update(c.Request().Context(), o, c.Param("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"task": toResponse(t)})
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
