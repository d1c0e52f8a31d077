package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"opsboard/backend/internal/db/sqlc/gen"
	"opsboard/backend/internal/user/domain"
)

// GenUserToDomain converts a users row. The password hash is dropped.
func GenUserToDomain(u *gen.User) (*domain.User, error) {
	return toDomain(u.ID, u.Email, u.Name, u.ActiveModule, u.ModulesEnabled, u.Role, u.IsPremium, u.CreatedAt, u.UpdatedAt)
}

// SessionRowToDomain converts the user half of a session join.
func SessionRowToDomain(u *gen.GetSessionUserRow) (*domain.User, error) {
	return toDomain(u.ID, u.Email, u.Name, u.ActiveModule, u.ModulesEnabled, u.Role, u.IsPremium, u.CreatedAt, u.UpdatedAt)
}

// EncodeModules renders an enabled-module list for the jsonb column.
func EncodeModules(modules []string) (json.RawMessage, error) {
	if modules == nil {
		modules = []string{}
	}
	return json.Marshal(modules)
}

func toDomain(id, email string, name, active sql.NullString, modules json.RawMessage, role string, premium bool, created, updated time.Time) (*domain.User, error) {
	enabled := []string{}
	if len(modules) > 0 {
		if err := json.Unmarshal(modules, &enabled); err != nil {
			return nil, fmt.Errorf("user %s: decode modules_enabled: %w", id, err)
		}
	}
	return &domain.User{
		ID:             id,
		Email:          email,
		Name:           name.String,
		ActiveModule:   active.String,
		ModulesEnabled: enabled,
		Role:           domain.Role(role),
		IsPremium:      premium,
		CreatedAt:      created,
		UpdatedAt:      updated,
	}, nil
}
