package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opsboard/backend/internal/platform/apperr"
)

type sample struct {
	Name  string `json:"name" validate:"required,max=5"`
	Email string `json:"email" validate:"omitempty,email"`
	Due   string `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
}

func TestValidator_ReportsJSONFieldName(t *testing.T) {
	v := NewValidator()

	cases := []struct {
		in    sample
		field string
		msg   string
	}{
		{sample{}, "name", "name required"},
		{sample{Name: "toolong"}, "name", "name must be at most 5 characters"},
		{sample{Name: "ok", Email: "nope"}, "email", "invalid email format"},
		{sample{Name: "ok", Due: "03/01/2026"}, "due_date", "due_date must be formatted as 2006-01-02"},
	}
	for _, c := range cases {
		err := v.Validate(&c.in)
		e, ok := apperr.As(err)
		require.True(t, ok, "want apperr for %+v, got %v", c.in, err)
		assert.Equal(t, apperr.CodeValidation, e.Code)
		assert.Equal(t, c.field, e.Field)
		assert.Equal(t, c.msg, e.Message)
	}
	assert.NoError(t, v.Validate(&sample{Name: "ok", Email: "a@b.co", Due: "2026-03-01"}))
}
