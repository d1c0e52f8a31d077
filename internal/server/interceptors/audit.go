package interceptors

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"opsboard/backend/internal/audit"
)

// Audit returns middleware that records an audit entry for each successful mutating request
// made by an authenticated user. Routes in skip (method + " " + route) are not audited.
// Recording is best-effort and never changes the response.
func Audit(logger audit.AuditLogger, skip map[string]bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			req := c.Request()
			if logger == nil || err != nil || !audit.IsMutation(req.Method) {
				return err
			}
			if c.Response().Status >= http.StatusBadRequest || skip[req.Method+" "+c.Path()] {
				return err
			}
			u, ok := UserFromContext(req.Context())
			if !ok {
				return err
			}
			ar := audit.ParseRoute(req.Method, c.Path())
			meta := ""
			if id := c.Param("id"); id != "" {
				b, _ := json.Marshal(map[string]string{"id": id})
				meta = string(b)
			}
			logger.LogEvent(req.Context(), u.ID, ar.Action, ar.Resource, meta)
			return err
		}
	}
}
