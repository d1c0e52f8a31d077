package interceptors

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"opsboard/backend/internal/platform/apperr"
	"opsboard/backend/internal/platform/scope"
	sessionservice "opsboard/backend/internal/session/service"
	userdomain "opsboard/backend/internal/user/domain"
)

// SessionResolver resolves a session token to its user. *sessionservice.Store implements it.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*userdomain.User, error)
}

// SessionToken returns the URL-decoded value of the named cookie, or "" when absent.
// A value that does not decode is used as is.
func SessionToken(r *http.Request, cookieName string) string {
	ck, err := r.Cookie(cookieName)
	if err != nil {
		return ""
	}
	if v, err := url.QueryUnescape(ck.Value); err == nil {
		return v
	}
	return ck.Value
}

// Authenticate resolves the session cookie on r. It returns apperr.ErrUnauthenticated when
// no cookie is present, apperr.ErrSessionExpired when the token is unknown or expired, and
// the store error otherwise.
func Authenticate(ctx context.Context, r *http.Request, resolver SessionResolver, cookieName string) (*userdomain.User, error) {
	token := SessionToken(r, cookieName)
	if token == "" {
		return nil, apperr.ErrUnauthenticated
	}
	u, err := resolver.Resolve(ctx, token)
	if err != nil {
		if errors.Is(err, sessionservice.ErrNotFound) {
			return nil, apperr.ErrSessionExpired
		}
		return nil, err
	}
	return u, nil
}

// RequireUser rejects requests without a live session and binds the user and its
// data-scoping owner to the request context for everything downstream.
func RequireUser(resolver SessionResolver, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			u, err := Authenticate(ctx, c.Request(), resolver, cookieName)
			if err != nil {
				return err
			}
			ctx = WithUser(ctx, u)
			ctx = scope.WithOwner(ctx, u.ID)
			setContext(c, ctx)
			return next(c)
		}
	}
}
