// Package handler serves the profile and module-settings endpoints.
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"opsboard/backend/internal/platform/apperr"
	"opsboard/backend/internal/platform/scope"
	"opsboard/backend/internal/server/interceptors"
	sessionhandler "opsboard/backend/internal/session/handler"
	"opsboard/backend/internal/user/domain"
	userservice "opsboard/backend/internal/user/service"
)

// UserResponse is the public projection of a user. It never includes the password hash.
type UserResponse struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	Name           string    `json:"name,omitempty"`
	ActiveModule   string    `json:"active_module,omitempty"`
	ModulesEnabled []string  `json:"modules_enabled"`
	Role           string    `json:"role"`
	IsPremium      bool      `json:"is_premium"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewUserResponse converts u for the wire.
func NewUserResponse(u *domain.User) UserResponse {
	modules := u.ModulesEnabled
	if modules == nil {
		modules = []string{}
	}
	return UserResponse{
		ID:             u.ID,
		Email:          u.Email,
		Name:           u.Name,
		ActiveModule:   u.ActiveModule,
		ModulesEnabled: modules,
		Role:           string(u.Role),
		IsPremium:      u.IsPremium,
		CreatedAt:      u.CreatedAt,
	}
}

// ProspectCounter counts the owner's prospects.
type ProspectCounter interface {
	Count(ctx context.Context, owner scope.Owner) (int64, error)
}

// TaskCounter counts the owner's tasks and task categories.
type TaskCounter interface {
	Counts(ctx context.Context, owner scope.Owner) (tasks, categories int64, err error)
}

type Handler struct {
	users     *userservice.Service
	prospects ProspectCounter
	tasks     TaskCounter
	cookies   sessionhandler.Cookies
}

func NewHandler(users *userservice.Service, prospects ProspectCounter, tasks TaskCounter, cookies sessionhandler.Cookies) *Handler {
	return &Handler{users: users, prospects: prospects, tasks: tasks, cookies: cookies}
}

// Register mounts the routes on an authenticated group.
func (h *Handler) Register(g *echo.Group) {
	g.GET("/me", h.Me)
	g.GET("/settings/modules", h.GetModules)
	g.POST("/settings/modules", h.SetModule)
}

type countsResponse struct {
	Prospects      int64 `json:"prospects"`
	Tasks          int64 `json:"tasks"`
	TaskCategories int64 `json:"task_categories"`
}

type meResponse struct {
	User   UserResponse   `json:"user"`
	Counts countsResponse `json:"counts"`
}

func currentUser(c echo.Context) (*domain.User, scope.Owner, error) {
	ctx := c.Request().Context()
	u, ok := interceptors.UserFromContext(ctx)
	if !ok {
		return nil, scope.Owner{}, apperr.ErrUnauthenticated
	}
	owner, err := scope.Require(ctx)
	if err != nil {
		return nil, scope.Owner{}, apperr.ErrUnauthenticated
	}
	return u, owner, nil
}

// Me returns the caller with per-user row counts.
func (h *Handler) Me(c echo.Context) error {
	u, owner, err := currentUser(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	var counts countsResponse
	if counts.Prospects, err = h.prospects.Count(ctx, owner); err != nil {
		return err
	}
	if counts.Tasks, counts.TaskCategories, err = h.tasks.Counts(ctx, owner); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, meResponse{User: NewUserResponse(u), Counts: counts})
}

type modulesResponse struct {
	Allowed   []string `json:"allowed"`
	Active    string   `json:"active"`
	Enabled   []string `json:"enabled"`
	Role      string   `json:"role"`
	IsPremium bool     `json:"is_premium"`
}

func (h *Handler) GetModules(c echo.Context) error {
	u, _, err := currentUser(c)
	if err != nil {
		return err
	}
	resp := NewUserResponse(u)
	return c.JSON(http.StatusOK, modulesResponse{
		Allowed:   domain.AllowedModules(),
		Active:    resp.ActiveModule,
		Enabled:   resp.ModulesEnabled,
		Role:      resp.Role,
		IsPremium: resp.IsPremium,
	})
}

type setModuleRequest struct {
	ActiveModule string `json:"active_module" validate:"required,max=32"`
}

type setModuleResponse struct {
	OK   bool         `json:"ok"`
	User UserResponse `json:"user"`
}

// SetModule switches the active module and refreshes the informational cookies.
func (h *Handler) SetModule(c echo.Context) error {
	u, _, err := currentUser(c)
	if err != nil {
		return err
	}
	var req setModuleRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("", "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	updated, err := h.users.SelectModule(c.Request().Context(), u.ID, req.ActiveModule)
	if err != nil {
		return err
	}
	h.cookies.SetProfile(c, updated)
	return c.JSON(http.StatusOK, setModuleResponse{OK: true, User: NewUserResponse(updated)})
}
