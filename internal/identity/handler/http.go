// Package handler serves the register, login and logout endpoints.
package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	identityservice "opsboard/backend/internal/identity/service"
	"opsboard/backend/internal/platform/apperr"
	"opsboard/backend/internal/server/interceptors"
	sessionhandler "opsboard/backend/internal/session/handler"
	userhandler "opsboard/backend/internal/user/handler"
)

type AuthHandler struct {
	auth    *identityservice.AuthService
	cookies sessionhandler.Cookies
}

func NewAuthHandler(auth *identityservice.AuthService, cookies sessionhandler.Cookies) *AuthHandler {
	return &AuthHandler{auth: auth, cookies: cookies}
}

// Register mounts the public auth routes.
func (h *AuthHandler) Register(g *echo.Group) {
	g.POST("/auth/register", h.SignUp)
	g.POST("/auth/login", h.Login)
	g.POST("/auth/logout", h.Logout)
}

// RegisterRequest represents a user registration request. Presence and format are
// checked by the auth service so the error messages stay stable.
type RegisterRequest struct {
	Email    string `json:"email" validate:"max=320"`
	Password string `json:"password"`
	Name     string `json:"name" validate:"max=200"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	OK   bool                     `json:"ok"`
	User userhandler.UserResponse `json:"user"`
}

func (h *AuthHandler) SignUp(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("", "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	ctx := c.Request().Context()
	res, err := h.auth.Register(ctx, identityservice.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		Name:      req.Name,
		IP:        interceptors.ClientIP(ctx),
		UserAgent: interceptors.UserAgent(ctx),
	})
	if err != nil {
		return err
	}
	h.cookies.SetSession(c, res.Session)
	h.cookies.SetProfile(c, res.User)
	return c.JSON(http.StatusOK, AuthResponse{OK: true, User: userhandler.NewUserResponse(res.User)})
}

// Login never reveals whether the email exists; a malformed body is reported like bad credentials.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return apperr.ErrInvalidCredentials
	}
	ctx := c.Request().Context()
	res, err := h.auth.Login(ctx, identityservice.LoginInput{
		Email:     req.Email,
		Password:  req.Password,
		IP:        interceptors.ClientIP(ctx),
		UserAgent: interceptors.UserAgent(ctx),
	})
	if err != nil {
		return err
	}
	h.cookies.SetSession(c, res.Session)
	h.cookies.SetProfile(c, res.User)
	return c.JSON(http.StatusOK, AuthResponse{OK: true, User: userhandler.NewUserResponse(res.User)})
}

// Logout deletes the server-side session when a cookie is present and always clears the cookies.
func (h *AuthHandler) Logout(c echo.Context) error {
	token := interceptors.SessionToken(c.Request(), h.cookies.Name)
	h.cookies.Clear(c)
	if err := h.auth.Logout(c.Request().Context(), token); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}
