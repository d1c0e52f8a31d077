package interceptors

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opsboard/backend/internal/platform/apperr"
	"opsboard/backend/internal/platform/scope"
	sessionservice "opsboard/backend/internal/session/service"
	userdomain "opsboard/backend/internal/user/domain"
)

type stubResolver struct {
	users map[string]*userdomain.User
	err   error
	seen  []string
}

func (s *stubResolver) Resolve(ctx context.Context, token string) (*userdomain.User, error) {
	s.seen = append(s.seen, token)
	if s.err != nil {
		return nil, s.err
	}
	if u, ok := s.users[token]; ok {
		return u, nil
	}
	return nil, sessionservice.ErrNotFound
}

func runGuarded(t *testing.T, resolver SessionResolver, req *http.Request) (*userdomain.User, scope.Owner, error) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	var gotUser *userdomain.User
	var gotOwner scope.Owner
	err := RequireUser(resolver, "sid")(func(c echo.Context) error {
		gotUser, _ = UserFromContext(c.Request().Context())
		gotOwner, _ = scope.FromContext(c.Request().Context())
		return c.NoContent(http.StatusOK)
	})(c)
	return gotUser, gotOwner, err
}

func TestRequireUser_NoCookie(t *testing.T) {
	resolver := &stubResolver{}
	u, _, err := runGuarded(t, resolver, httptest.NewRequest(http.MethodGet, "/api/me", nil))
	assert.True(t, errors.Is(err, apperr.ErrUnauthenticated), "err = %v", err)
	assert.Nil(t, u)
	assert.Empty(t, resolver.seen, "resolver must not be called without a cookie")
}

func TestRequireUser_UnknownToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: "stale"})
	_, _, err := runGuarded(t, &stubResolver{}, req)
	assert.True(t, errors.Is(err, apperr.ErrSessionExpired), "err = %v", err)
}

func TestRequireUser_StoreErrorIsNotAuthError(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: "tok"})
	boom := errors.New("db down")
	_, _, err := runGuarded(t, &stubResolver{err: boom}, req)
	assert.ErrorIs(t, err, boom)
	_, isApp := apperr.As(err)
	assert.False(t, isApp)
}

func TestRequireUser_BindsUserAndOwner(t *testing.T) {
	resolver := &stubResolver{users: map[string]*userdomain.User{"tok-1": {ID: "u-1", Email: "a@example.com"}}}
	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: "tok-1"})
	u, owner, err := runGuarded(t, resolver, req)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "u-1", u.ID)
	assert.Equal(t, "u-1", owner.UserID())
}

func TestSessionToken_URLDecoded(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: "abc%2Bdef"})
	assert.Equal(t, "abc+def", SessionToken(req, "sid"))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: "bad%zz"})
	assert.Equal(t, "bad%zz", SessionToken(req, "sid"), "undecodable values are used raw")

	assert.Equal(t, "", SessionToken(httptest.NewRequest(http.MethodGet, "/", nil), "sid"))
}
