package interceptors

import (
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
)

// LogRequests logs one line per request. Cookies, bodies and query strings are never logged.
func LogRequests(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			latency := time.Since(start)

			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			attrs := []slog.Attr{
				slog.String("method", req.Method),
				slog.String("path", req.URL.Path),
				slog.String("route", c.Path()),
				slog.Duration("latency", latency),
				slog.Int("status", res.Status),
				slog.String("request_id", res.Header().Get(echo.HeaderXRequestID)),
			}
			if u, ok := UserFromContext(req.Context()); ok {
				attrs = append(attrs, slog.String("user_id", u.ID))
			}
			level := slog.LevelInfo
			if res.Status >= 500 {
				level = slog.LevelWarn
			}
			logger.LogAttrs(req.Context(), level, "request handled", attrs...)
			return err
		}
	}
}
