package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"opsboard/backend/internal/db"
	"opsboard/backend/internal/db/sqlc/gen"
	"opsboard/backend/internal/identity/domain"
	"opsboard/backend/internal/platform/apperr"
	userrepo "opsboard/backend/internal/user/repository"
)

// emailIndex is the unique index on LOWER(email).
const emailIndex = "users_email_lower_key"

type PostgresRepository struct {
	queries *gen.Queries
}

// NewPostgresRepository returns a credential repository that uses the given db for persistence.
func NewPostgresRepository(conn *sql.DB) *PostgresRepository {
	return &PostgresRepository{queries: gen.New(conn)}
}

// GetByEmail returns the account with the given email, or nil if not found.
// It returns an error only for database failures, not for missing rows.
func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	u, err := r.queries.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	user, err := userrepo.GenUserToDomain(&u)
	if err != nil {
		return nil, err
	}
	return &domain.Account{User: *user, PasswordHash: u.PasswordHash}, nil
}

// Create persists the account. The user must have ID set; it is not assigned by this method.
func (r *PostgresRepository) Create(ctx context.Context, a *domain.Account) error {
	modules, err := userrepo.EncodeModules(a.User.ModulesEnabled)
	if err != nil {
		return err
	}
	_, err = r.queries.CreateUser(ctx, gen.CreateUserParams{
		ID:             a.User.ID,
		Email:          a.User.Email,
		PasswordHash:   a.PasswordHash,
		Name:           sql.NullString{String: a.User.Name, Valid: a.User.Name != ""},
		ActiveModule:   sql.NullString{String: a.User.ActiveModule, Valid: a.User.ActiveModule != ""},
		ModulesEnabled: modules,
		Role:           string(a.User.Role),
		IsPremium:      a.User.IsPremium,
		CreatedAt:      a.User.CreatedAt,
		UpdatedAt:      a.User.UpdatedAt,
	})
	if db.IsUniqueViolation(err, emailIndex) {
		return fmt.Errorf("create user: %w", apperr.ErrDuplicateEmail)
	}
	return err
}
