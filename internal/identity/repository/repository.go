package repository

import (
	"context"

	"opsboard/backend/internal/identity/domain"
)

// Repository defines credential persistence.
type Repository interface {
	// GetByEmail matches email case-insensitively. Returns nil if not found.
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	// Create inserts the account. A case-insensitive email collision returns apperr.ErrDuplicateEmail.
	Create(ctx context.Context, a *domain.Account) error
}
