package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opsboard/backend/internal/audit/domain"
	"opsboard/backend/internal/platform/apperr"
	"opsboard/backend/internal/platform/scope"
	"opsboard/backend/internal/storetest"
)

func activity(t *testing.T, h *Handler, userID, query string) (*httptest.ResponseRecorder, error) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/me/activity"+query, nil)
	if userID != "" {
		req = req.WithContext(scope.WithOwner(req.Context(), userID))
	}
	rec := httptest.NewRecorder()
	return rec, h.Activity(echo.New().NewContext(req, rec))
}

func TestActivity_RequiresOwner(t *testing.T) {
	h := NewHandler(storetest.New().Audit())
	_, err := activity(t, h, "", "")
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)
}

func TestActivity_LimitAndScope(t *testing.T) {
	db := storetest.New()
	repo := db.Audit()
	base := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	for i := range 5 {
		require.NoError(t, repo.Create(context.Background(), &domain.AuditLog{
			ID: fmt.Sprintf("a-%d", i), UserID: "u-1", Action: "update", Resource: "task",
			IP: "10.0.0.1", CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}
	require.NoError(t, repo.Create(context.Background(), &domain.AuditLog{
		ID: "b-1", UserID: "u-2", Action: "delete", Resource: "prospect", CreatedAt: base,
	}))
	h := NewHandler(repo)

	rec, err := activity(t, h, "u-1", "?limit=2")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"created_at":"2026-05-01T08:04:00Z"`)
	assert.Contains(t, rec.Body.String(), `"created_at":"2026-05-01T08:03:00Z"`)
	assert.NotContains(t, rec.Body.String(), `"created_at":"2026-05-01T08:02:00Z"`)

	rec, err = activity(t, h, "u-2", "")
	require.NoError(t, err)
	assert.Contains(t, rec.Body.String(), `"action":"delete"`)
	assert.NotContains(t, rec.Body.String(), `"action":"update"`)
}

func TestActivity_InvalidLimit(t *testing.T) {
	h := NewHandler(storetest.New().Audit())
	for _, q := range []string{"?limit=0", "?limit=-3", "?limit=ten"} {
		_, err := activity(t, h, "u-1", q)
		e, ok := apperr.As(err)
		require.True(t, ok, q)
		assert.Equal(t, apperr.CodeValidation, e.Code, q)
	}
}
