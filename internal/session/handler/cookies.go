// Package handler holds the HTTP cookie contract for sessions: the HttpOnly session
// cookie plus the informational module, role and premium cookies.
package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"opsboard/backend/internal/session/domain"
	userdomain "opsboard/backend/internal/user/domain"
)

// Informational cookie names.
const (
	ActiveModuleCookie = "am"
	RoleCookie         = "role"
	PremiumCookie      = "prem"
)

// profileMaxAge is how long the informational cookies live.
const profileMaxAge = 90 * 24 * time.Hour

// Cookies writes and clears the cookies that carry a session to the browser.
type Cookies struct {
	// Name of the session cookie.
	Name string
	// Secure sets the Secure attribute on every cookie.
	Secure bool
}

func (k Cookies) cookie(name, value string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   k.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// SetSession sets the session cookie; it expires together with the session.
func (k Cookies) SetSession(c echo.Context, s *domain.Session) {
	ck := k.cookie(k.Name, s.Token)
	ck.Expires = s.ExpiresAt
	ck.MaxAge = int(time.Until(s.ExpiresAt).Seconds())
	if ck.MaxAge <= 0 {
		ck.MaxAge = -1
	}
	c.SetCookie(ck)
}

// SetProfile refreshes the informational cookies from u.
func (k Cookies) SetProfile(c echo.Context, u *userdomain.User) {
	maxAge := int(profileMaxAge.Seconds())
	if u.ActiveModule != "" {
		am := k.cookie(ActiveModuleCookie, u.ActiveModule)
		am.MaxAge = maxAge
		c.SetCookie(am)
	}
	role := k.cookie(RoleCookie, string(u.Role))
	role.MaxAge = maxAge
	c.SetCookie(role)
	if u.IsPremium {
		prem := k.cookie(PremiumCookie, "1")
		prem.MaxAge = maxAge
		c.SetCookie(prem)
	} else {
		k.clear(c, PremiumCookie)
	}
}

// Clear expires the session cookie and every informational cookie.
func (k Cookies) Clear(c echo.Context) {
	for _, name := range []string{k.Name, ActiveModuleCookie, RoleCookie, PremiumCookie} {
		k.clear(c, name)
	}
}

func (k Cookies) clear(c echo.Context, name string) {
	ck := k.cookie(name, "")
	ck.MaxAge = -1
	ck.Expires = time.Unix(0, 0)
	c.SetCookie(ck)
}
