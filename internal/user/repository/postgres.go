package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"opsboard/backend/internal/db/sqlc/gen"
	"opsboard/backend/internal/user/domain"
)

type PostgresRepository struct {
	queries *gen.Queries
}

// NewPostgresRepository returns a user repository that uses the given db for persistence.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{queries: gen.New(db)}
}

// GetByID returns the user for id, or nil if not found.
// It returns an error only for database failures, not for missing rows.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	u, err := r.queries.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return GenUserToDomain(&u)
}

// UpdateModules sets active_module and appends it to modules_enabled when absent.
func (r *PostgresRepository) UpdateModules(ctx context.Context, id, module string, at time.Time) (*domain.User, error) {
	u, err := r.queries.UpdateUserModules(ctx, gen.UpdateUserModulesParams{
		ID:           id,
		ActiveModule: sql.NullString{String: module, Valid: true},
		UpdatedAt:    at,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return GenUserToDomain(&u)
}

func (r *PostgresRepository) SetRoleByEmail(ctx context.Context, email string, role domain.Role, at time.Time) (bool, error) {
	n, err := r.queries.SetUserRoleByEmail(ctx, gen.SetUserRoleByEmailParams{
		Lower:     email,
		Role:      string(role),
		UpdatedAt: at,
	})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
