package repository

import (
	"context"
	"time"

	"opsboard/backend/internal/user/domain"
)

// Repository defines persistence for users. Credentials are handled by the identity repository.
type Repository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	// UpdateModules sets the active module and adds it to the enabled set. Returns nil if the user does not exist.
	UpdateModules(ctx context.Context, id, module string, at time.Time) (*domain.User, error)
	// SetRoleByEmail changes the role of the user with the given email (case-insensitive). Reports whether a row matched.
	SetRoleByEmail(ctx context.Context, email string, role domain.Role, at time.Time) (bool, error)
}
