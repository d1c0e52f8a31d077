package httperr

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opsboard/backend/internal/platform/apperr"
)

func TestResponse_Taxonomy(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{apperr.Validation("email", "invalid email format"), http.StatusBadRequest, "VALIDATION_FAILED"},
		{apperr.ErrUnauthenticated, http.StatusUnauthorized, "AUTH_REQUIRED"},
		{apperr.ErrSessionExpired, http.StatusUnauthorized, "AUTH_EXPIRED"},
		{apperr.ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{fmt.Errorf("create user: %w", apperr.ErrDuplicateEmail), http.StatusConflict, "EMAIL_TAKEN"},
		{apperr.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{errors.New("pq: relation does not exist"), http.StatusInternalServerError, "INTERNAL"},
		{echo.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{echo.ErrMethodNotAllowed, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED"},
	}
	for _, c := range cases {
		status, body := Response(c.err)
		assert.Equal(t, c.status, status, "status for %v", c.err)
		assert.Equal(t, c.code, body.Code, "code for %v", c.err)
	}
}

func TestResponse_InternalDetailHidden(t *testing.T) {
	_, body := Response(errors.New("dial tcp 10.0.0.5:5432: connection refused"))
	assert.Equal(t, "internal error", body.Error)
}

func TestResponse_ValidationField(t *testing.T) {
	_, body := Response(apperr.Validation("name", "name required"))
	assert.Equal(t, "name", body.Field)
	assert.Equal(t, "name required", body.Error)
}

func TestHandler_WritesJSON(t *testing.T) {
	e := echo.New()
	var logs bytes.Buffer
	e.HTTPErrorHandler = Handler(slog.New(slog.NewTextHandler(&logs, nil)))
	e.GET("/boom", func(echo.Context) error { return errors.New("secret detail") })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var body ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "INTERNAL", body.Code)
	assert.NotContains(t, rec.Body.String(), "secret detail")
	assert.Contains(t, logs.String(), "secret detail")
}

func TestHandler_HeadHasNoBody(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = Handler(slog.New(slog.NewTextHandler(io.Discard, nil)))
	e.HEAD("/missing", func(echo.Context) error { return apperr.ErrNotFound })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodHead, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Zero(t, rec.Body.Len())
}
