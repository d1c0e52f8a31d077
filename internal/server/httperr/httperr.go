// Package httperr maps application errors to JSON HTTP responses.
package httperr

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"opsboard/backend/internal/platform/apperr"
)

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
	Field string `json:"field,omitempty"`
}

// Status returns the HTTP status for an application error code.
func Status(code apperr.Code) int {
	switch code {
	case apperr.CodeValidation:
		return http.StatusBadRequest
	case apperr.CodeAuthRequired, apperr.CodeAuthExpired, apperr.CodeInvalidCredentials:
		return http.StatusUnauthorized
	case apperr.CodeEmailTaken:
		return http.StatusConflict
	case apperr.CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Response converts err into a status and body. Unclassified errors become a 500
// with a fixed message; their detail is never sent to the client.
func Response(err error) (int, ErrorResponse) {
	if e, ok := apperr.As(err); ok {
		return Status(e.Code), ErrorResponse{Error: e.Message, Code: string(e.Code), Field: e.Field}
	}
	var he *echo.HTTPError
	if errors.As(err, &he) {
		msg := http.StatusText(he.Code)
		if s, ok := he.Message.(string); ok && he.Code < http.StatusInternalServerError {
			msg = s
		}
		return he.Code, ErrorResponse{Error: msg, Code: codeForStatus(he.Code)}
	}
	return http.StatusInternalServerError, ErrorResponse{Error: "internal error", Code: string(apperr.CodeInternal)}
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return string(apperr.CodeValidation)
	case http.StatusUnauthorized:
		return string(apperr.CodeAuthRequired)
	case http.StatusNotFound:
		return string(apperr.CodeNotFound)
	case http.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case http.StatusRequestEntityTooLarge:
		return "PAYLOAD_TOO_LARGE"
	}
	if status >= http.StatusInternalServerError {
		return string(apperr.CodeInternal)
	}
	return http.StatusText(status)
}

// Handler is the echo HTTPErrorHandler. 5xx errors are logged with their cause.
func Handler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		status, body := Response(err)
		if status >= http.StatusInternalServerError {
			logger.ErrorContext(c.Request().Context(), "request failed",
				slog.String("method", c.Request().Method),
				slog.String("route", c.Path()),
				slog.Any("error", err),
			)
		}
		var werr error
		if c.Request().Method == http.MethodHead {
			werr = c.NoContent(status)
		} else {
			werr = c.JSON(status, body)
		}
		if werr != nil {
			logger.WarnContext(c.Request().Context(), "write error response", slog.Any("error", werr))
		}
	}
}
